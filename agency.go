package gtfsfeed

import (
	"errors"
	"fmt"
)

var (
	ErrAgencyIDRequired   = errors.New("agency cardinality is multiple, must provide agency_id")
	ErrAgencyIDsMustBeSet = errors.New("if there are more than one agency, their agency_id must be set")
)

type AgencyCardinality int

const (
	AgencyAbsent AgencyCardinality = iota
	AgencySingleton
	AgencyMultiple
)

func (c AgencyCardinality) String() string {
	switch c {
	case AgencyAbsent:
		return "absent"
	case AgencySingleton:
		return "singleton"
	case AgencyMultiple:
		return "multiple"
	default:
		return fmt.Sprintf("AgencyCardinality(%d)", int(c))
	}
}

// agencyState is one of agencyAbsent, agencySingleton or agencyMultiple. A single agency is
// stored unkeyed because its agency_id may be empty.
type agencyState interface {
	cardinality() AgencyCardinality
}

type agencyAbsent struct{}

type agencySingleton struct {
	agency *Agency
}

type agencyMultiple struct {
	agencyByAgencyID *index[*Agency]
}

func (agencyAbsent) cardinality() AgencyCardinality    { return AgencyAbsent }
func (agencySingleton) cardinality() AgencyCardinality { return AgencySingleton }
func (agencyMultiple) cardinality() AgencyCardinality  { return AgencyMultiple }

func newAgencyState(agencies []*Agency) (agencyState, error) {
	switch len(agencies) {
	case 0:
		return agencyAbsent{}, nil
	case 1:
		return agencySingleton{agency: agencies[0]}, nil
	default:
		byID := newIndex[*Agency]()
		for _, agency := range agencies {
			if agency.AgencyID == "" {
				return nil, fmt.Errorf("agency %q: %w", agency.AgencyName, ErrAgencyIDsMustBeSet)
			}
			byID.set(agency.AgencyID, agency)
		}
		return agencyMultiple{agencyByAgencyID: byID}, nil
	}
}

func (f *Feed) AgencyCardinality() AgencyCardinality {
	return f.agencies.cardinality()
}

// SetAgency inserts or replaces an agency. Setting a second agency with a different agency_id
// moves the feed from a singleton agency to agencies keyed by agency_id; it never moves back.
func (f *Feed) SetAgency(agency *Agency) error {
	switch state := f.agencies.(type) {
	case agencyAbsent:
		f.agencies = agencySingleton{agency: agency}
	case agencySingleton:
		current := state.agency
		if current.AgencyID == agency.AgencyID {
			f.agencies = agencySingleton{agency: agency}
		} else if current.AgencyID != "" && agency.AgencyID != "" {
			byID := newIndex[*Agency]()
			byID.set(current.AgencyID, current)
			byID.set(agency.AgencyID, agency)
			f.agencies = agencyMultiple{agencyByAgencyID: byID}
		} else {
			return ErrAgencyIDsMustBeSet
		}
	case agencyMultiple:
		if agency.AgencyID == "" {
			return fmt.Errorf("set agency %q: %w", agency.AgencyName, ErrAgencyIDRequired)
		}
		state.agencyByAgencyID.set(agency.AgencyID, agency)
	}
	return nil
}

// SetAgencies calls SetAgency in order and stops at the first error.
func (f *Feed) SetAgencies(agencies []*Agency) error {
	for _, agency := range agencies {
		if err := f.SetAgency(agency); err != nil {
			return err
		}
	}
	return nil
}

// GetAgency returns the feed's only agency regardless of agencyID when there is just one. With
// multiple agencies agencyID is required. A missing agency is returned as nil without error.
func (f *Feed) GetAgency(agencyID string) (*Agency, error) {
	switch state := f.agencies.(type) {
	case agencySingleton:
		return state.agency, nil
	case agencyMultiple:
		if agencyID == "" {
			return nil, ErrAgencyIDRequired
		}
		agency, _ := state.agencyByAgencyID.get(agencyID)
		return agency, nil
	default:
		return nil, nil
	}
}

func (f *Feed) NumberOfAgencies() int {
	switch state := f.agencies.(type) {
	case agencySingleton:
		return 1
	case agencyMultiple:
		return state.agencyByAgencyID.len()
	default:
		return 0
	}
}

func (f *Feed) BuildArrayOfAgencies() []*Agency {
	switch state := f.agencies.(type) {
	case agencySingleton:
		return []*Agency{state.agency}
	case agencyMultiple:
		return state.agencyByAgencyID.values()
	default:
		return []*Agency{}
	}
}

// UpdateAgency is SetAgency without the promotion to multiple agencies: a singleton agency is
// replaced whatever its agency_id.
func (f *Feed) UpdateAgency(agency *Agency) error {
	switch state := f.agencies.(type) {
	case agencyAbsent, agencySingleton:
		f.agencies = agencySingleton{agency: agency}
	case agencyMultiple:
		if agency.AgencyID == "" {
			return fmt.Errorf("update agency %q: %w", agency.AgencyName, ErrAgencyIDRequired)
		}
		state.agencyByAgencyID.set(agency.AgencyID, agency)
	}
	return nil
}

// DeleteAgencyWithoutDeletingReferences removes an agency. Routes keep their agency_id.
// Multiple agencies stay keyed by agency_id even when one or none remain.
func (f *Feed) DeleteAgencyWithoutDeletingReferences(agencyID string) error {
	switch state := f.agencies.(type) {
	case agencySingleton:
		if state.agency.AgencyID == agencyID {
			f.agencies = agencyAbsent{}
		}
	case agencyMultiple:
		if agencyID == "" {
			return fmt.Errorf("delete agency: %w", ErrAgencyIDRequired)
		}
		state.agencyByAgencyID.delete(agencyID)
	}
	return nil
}
