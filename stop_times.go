package gtfsfeed

import (
	"cmp"
	"errors"
	"math"
	"slices"
	"strconv"
	"strings"
)

func stopTimeTripID(st *StopTime) string       { return st.TripID }
func stopTimeStopSequence(st *StopTime) string { return st.StopSequence }

func (f *Feed) SetStopTime(stopTime *StopTime) {
	f.stopTimeByStopSequenceByTripID.set(stopTime.TripID, stopTime.StopSequence, stopTime)
}

func (f *Feed) SetStopTimes(stopTimes []*StopTime) {
	for _, stopTime := range stopTimes {
		f.SetStopTime(stopTime)
	}
}

func (f *Feed) GetStopTime(tripID, stopSequence string) *StopTime {
	stopTime, _ := f.stopTimeByStopSequenceByTripID.get(tripID, stopSequence)
	return stopTime
}

// NumberOfStopTimes counts stop times across all trips.
func (f *Feed) NumberOfStopTimes() int {
	return f.stopTimeByStopSequenceByTripID.len()
}

func (f *Feed) BuildArrayOfStopTimes() []*StopTime {
	return f.stopTimeByStopSequenceByTripID.values()
}

// BuildArrayOfStopTimesOfTripID returns the stop times of a trip in the order they were set.
func (f *Feed) BuildArrayOfStopTimesOfTripID(tripID string) []*StopTime {
	return f.stopTimeByStopSequenceByTripID.group(tripID)
}

// BuildOrderedStopTimesOfTripID returns the stop times of a trip sorted by the numeric value of
// stop_sequence. Surrounding whitespace is ignored and an empty sequence counts as 0. Sequences
// that are not numbers, NaN included, sort last in the order they were set.
func (f *Feed) BuildOrderedStopTimesOfTripID(tripID string) []*StopTime {
	stopTimes := f.BuildArrayOfStopTimesOfTripID(tripID)
	slices.SortStableFunc(stopTimes, func(a, b *StopTime) int {
		return compareStopSequences(a.StopSequence, b.StopSequence)
	})
	return stopTimes
}

func compareStopSequences(a, b string) int {
	aValue, aOK := parseStopSequence(a)
	bValue, bOK := parseStopSequence(b)
	switch {
	case !aOK && !bOK:
		return 0
	case !aOK:
		return 1
	case !bOK:
		return -1
	default:
		return cmp.Compare(aValue, bValue)
	}
}

func parseStopSequence(sequence string) (float64, bool) {
	sequence = strings.TrimSpace(sequence)
	if sequence == "" {
		return 0, true
	}
	value, err := strconv.ParseFloat(sequence, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return value, !math.IsNaN(value)
}

// ReindexStopTimesOfTripID renumbers the stop_sequence of a trip's stop times 1, 2, 3, ...
// keeping their order.
func (f *Feed) ReindexStopTimesOfTripID(tripID string) {
	stopTimes := f.BuildOrderedStopTimesOfTripID(tripID)
	if len(stopTimes) == 0 {
		return
	}

	f.DeleteStopTimesOfTripIDWithoutDeletingReferences(tripID)
	for i, stopTime := range stopTimes {
		stopTime.StopSequence = strconv.Itoa(i + 1)
		f.SetStopTime(stopTime)
	}
}

// UpdateStopTimesTripIDWithoutUpdatingReferences moves every stop time of oldTripID to
// newTripID. The trip itself is not renamed.
func (f *Feed) UpdateStopTimesTripIDWithoutUpdatingReferences(oldTripID, newTripID string) {
	for _, stopTime := range f.stopTimeByStopSequenceByTripID.deleteGroup(oldTripID) {
		stopTime.TripID = newTripID
		f.SetStopTime(stopTime)
	}
}

func (f *Feed) UpdateStopTimeStopSequenceWithoutUpdatingReferences(tripID, oldStopSequence, newStopSequence string) {
	stopTime, ok := f.stopTimeByStopSequenceByTripID.delete(tripID, oldStopSequence)
	if !ok {
		return
	}
	stopTime.StopSequence = newStopSequence
	f.SetStopTime(stopTime)
}

func (f *Feed) DeleteStopTimeWithoutDeletingReferences(tripID, stopSequence string) {
	f.stopTimeByStopSequenceByTripID.delete(tripID, stopSequence)
}

func (f *Feed) DeleteStopTimesOfTripIDWithoutDeletingReferences(tripID string) {
	f.stopTimeByStopSequenceByTripID.deleteGroup(tripID)
}
