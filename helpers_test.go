package gtfsfeed

import (
	"fmt"
	"github.com/stretchr/testify/require"
	"os"
	"testing"
)

func testTempdir(t *testing.T) string {
	dir, err := os.MkdirTemp("", "")
	require.NoError(t, err)
	t.Cleanup(func() {
		if t.Failed() {
			fmt.Println("Preserving tempdir after failed test", dir)
		} else {
			_ = os.RemoveAll(dir)
		}
	})
	return dir
}

func testFeed(t *testing.T, tables *FeedTables) *Feed {
	t.Helper()
	feed, err := NewFeed(tables)
	require.NoError(t, err)
	return feed
}

func testAgency(agencyID string) *Agency {
	return &Agency{
		AgencyID:       agencyID,
		AgencyName:     "Agency " + agencyID,
		AgencyURL:      "http://agency-url.com",
		AgencyTimezone: "America/New_York",
		AgencyLang:     "en",
		AgencyPhone:    "1234567890",
		AgencyFareURL:  "http://agency-fare-url.com",
		AgencyEmail:    "agency@example.com",
	}
}

func testStop(stopID string) *Stop {
	return &Stop{StopID: stopID, StopName: "Stop " + stopID, StopLat: "1.0", StopLon: "1.0"}
}

func testRoute(routeID string) *Route {
	return &Route{RouteID: routeID, RouteShortName: "Route " + routeID, RouteType: RouteTypeBus}
}

func testTrip(tripID, routeID, serviceID string) *Trip {
	return &Trip{TripID: tripID, RouteID: routeID, ServiceID: serviceID}
}

func testStopTime(tripID, stopSequence, stopID string) *StopTime {
	return &StopTime{
		TripID:        tripID,
		StopSequence:  stopSequence,
		StopID:        stopID,
		ArrivalTime:   "08:00:00",
		DepartureTime: "08:01:00",
		PickupType:    PickupRegularlyScheduled,
		DropOffType:   DropOffRegularlyScheduled,
	}
}

func testCalendarDate(serviceID, date string) *CalendarDate {
	return &CalendarDate{ServiceID: serviceID, Date: date, ExceptionType: ExceptionAdded}
}

func testShapePoint(shapeID string) *ShapePoint {
	return &ShapePoint{ShapeID: shapeID, ShapePtLat: "1.0", ShapePtLon: "1.0", ShapePtSequence: "1"}
}

func stopSequences(stopTimes []*StopTime) []string {
	var out []string
	for _, stopTime := range stopTimes {
		out = append(out, stopTime.StopSequence)
	}
	return out
}
