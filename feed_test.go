package gtfsfeed

import (
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestNewFeedLastWins(t *testing.T) {
	first := testStop("stop_id_1")
	second := testStop("stop_id_2")
	replacement := testStop("stop_id_1")
	replacement.StopName = "Replacement"

	feed := testFeed(t, &FeedTables{Stops: []*Stop{first, second, replacement}})

	assert.Equal(t, 2, feed.NumberOfStops())
	assert.Same(t, replacement, feed.GetStop("stop_id_1"))
	if diff := cmp.Diff([]*Stop{replacement, second}, feed.BuildArrayOfStops()); diff != "" {
		t.Errorf("stops mismatch (-want +got):\n%s", diff)
	}
}

func TestNewFeedEmpty(t *testing.T) {
	feed := testFeed(t, nil)
	assert.Equal(t, 0, feed.NumberOfStops())
	assert.Equal(t, 0, feed.NumberOfRoutes())
	assert.Equal(t, 0, feed.NumberOfTrips())
	assert.Equal(t, 0, feed.NumberOfStopTimes())
	assert.Equal(t, 0, feed.NumberOfCalendars())
	assert.Equal(t, 0, feed.NumberOfCalendarDates())
	assert.Equal(t, 0, feed.NumberOfShapePoints())
	assert.Empty(t, feed.BuildArrayOfStops())
	assert.Empty(t, feed.BuildArrayOfStopTimes())
}

func TestSetAndGetStop(t *testing.T) {
	feed := testFeed(t, nil)

	stop := testStop("stop_id_1")
	feed.SetStop(stop)
	assert.Equal(t, 1, feed.NumberOfStops())
	assert.Same(t, stop, feed.GetStop("stop_id_1"))
	assert.Nil(t, feed.GetStop("unknown"))

	again := testStop("stop_id_1")
	again.StopName = "Again"
	feed.SetStop(again)
	assert.Equal(t, 1, feed.NumberOfStops())
	assert.Equal(t, "Again", feed.GetStop("stop_id_1").StopName)

	feed.SetStops([]*Stop{testStop("stop_id_2"), testStop("stop_id_3")})
	assert.Equal(t, 3, feed.NumberOfStops())
}

func TestUpdateStopID(t *testing.T) {
	feed := testFeed(t, nil)
	feed.SetStops([]*Stop{testStop("stop_id_1"), testStop("stop_id_2")})
	feed.SetStopTime(testStopTime("trip_1", "1", "stop_id_1"))

	feed.UpdateStopIDWithoutUpdatingReferences("stop_id_1", "stop_id_renamed")
	assert.Nil(t, feed.GetStop("stop_id_1"))
	renamed := feed.GetStop("stop_id_renamed")
	require.NotNil(t, renamed)
	assert.Equal(t, "stop_id_renamed", renamed.StopID)
	assert.Equal(t, 2, feed.NumberOfStops())

	// References are left alone
	assert.Equal(t, "stop_id_1", feed.GetStopTime("trip_1", "1").StopID)

	feed.UpdateStopIDWithoutUpdatingReferences("unknown", "whatever")
	assert.Equal(t, 2, feed.NumberOfStops())
	assert.Nil(t, feed.GetStop("whatever"))
}

func TestDeleteStop(t *testing.T) {
	feed := testFeed(t, nil)
	feed.SetStops([]*Stop{testStop("stop_id_1"), testStop("stop_id_2")})

	feed.DeleteStopWithoutDeletingReferences("stop_id_1")
	assert.Nil(t, feed.GetStop("stop_id_1"))
	assert.Equal(t, 1, feed.NumberOfStops())

	feed.DeleteStopWithoutDeletingReferences("unknown")
	assert.Equal(t, 1, feed.NumberOfStops())
}

func TestRoutes(t *testing.T) {
	feed := testFeed(t, nil)
	route1 := testRoute("route_id_1")
	route2 := testRoute("route_id_2")
	feed.SetRoutes([]*Route{route1, route2})
	feed.SetTrip(testTrip("trip_1", "route_id_1", "everyday"))

	assert.Equal(t, 2, feed.NumberOfRoutes())
	assert.Equal(t, []*Route{route1, route2}, feed.BuildArrayOfRoutes())

	feed.UpdateRouteIDWithoutUpdatingReferences("route_id_1", "route_id_3")
	assert.Nil(t, feed.GetRoute("route_id_1"))
	assert.Equal(t, "route_id_3", feed.GetRoute("route_id_3").RouteID)
	assert.Equal(t, []*Route{route2, route1}, feed.BuildArrayOfRoutes())
	assert.Equal(t, "route_id_1", feed.GetTrip("trip_1").RouteID)

	feed.DeleteRouteWithoutDeletingReferences("route_id_3")
	assert.Equal(t, 1, feed.NumberOfRoutes())
	assert.NotNil(t, feed.GetTrip("trip_1"))
}

func TestTrips(t *testing.T) {
	feed := testFeed(t, nil)
	feed.SetTrips([]*Trip{testTrip("trip_1", "route_1", "everyday"), testTrip("trip_2", "route_1", "everyday")})
	feed.SetStopTime(testStopTime("trip_1", "1", "stop_1"))
	assert.Equal(t, 2, feed.NumberOfTrips())

	feed.UpdateTripIDWithoutUpdatingReferences("trip_1", "trip_3")
	assert.Nil(t, feed.GetTrip("trip_1"))
	assert.Equal(t, "trip_3", feed.GetTrip("trip_3").TripID)
	assert.Len(t, feed.BuildArrayOfStopTimesOfTripID("trip_1"), 1)
	assert.Empty(t, feed.BuildArrayOfStopTimesOfTripID("trip_3"))

	feed.DeleteTripWithoutDeletingReferences("trip_2")
	feed.DeleteTripWithoutDeletingReferences("unknown")
	assert.Equal(t, 1, feed.NumberOfTrips())
}

func TestShapePoints(t *testing.T) {
	feed := testFeed(t, nil)
	feed.SetShapePoints([]*ShapePoint{testShapePoint("shape_1"), testShapePoint("shape_2")})

	second := testShapePoint("shape_1")
	second.ShapePtSequence = "2"
	feed.SetShapePoint(second)

	// One point per shape_id
	assert.Equal(t, 2, feed.NumberOfShapePoints())
	assert.Equal(t, "2", feed.GetShapePoint("shape_1").ShapePtSequence)

	feed.UpdateShapeIDWithoutUpdatingReferences("shape_1", "shape_3")
	assert.Nil(t, feed.GetShapePoint("shape_1"))
	assert.Equal(t, "shape_3", feed.GetShapePoint("shape_3").ShapeID)

	feed.DeleteShapePointWithoutDeletingReferences("shape_2")
	assert.Equal(t, 1, feed.NumberOfShapePoints())
}

func TestFeedInfo(t *testing.T) {
	feed := testFeed(t, nil)
	info := feed.FeedInfo()
	require.NotNil(t, info)
	assert.Equal(t, DefaultFeedPublisherName, info.FeedPublisherName)
	assert.Equal(t, DefaultFeedPublisherURL, info.FeedPublisherURL)
	assert.Equal(t, "en", info.FeedLang)

	feed.SetFeedStartDate("20250101")
	feed.SetFeedEndDate("20251231")
	feed.SetFeedVersion("v1")
	feed.SetFeedContactURL("not a url")
	assert.Equal(t, "20250101", feed.FeedStartDate())
	assert.Equal(t, "20251231", feed.FeedEndDate())
	assert.Equal(t, "v1", feed.FeedVersion())
	assert.Equal(t, "not a url", feed.FeedContactURL())
	assert.Equal(t, "v1", feed.FeedInfo().FeedVersion)

	feed.SetFeedInfo(nil)
	assert.Equal(t, DefaultFeedPublisherName, feed.FeedInfo().FeedPublisherName)
	assert.Empty(t, feed.FeedVersion())

	provided := &FeedInfo{FeedPublisherName: "Publisher", FeedPublisherURL: "http://example.com", FeedLang: "fr"}
	feed = testFeed(t, &FeedTables{FeedInfo: provided})
	assert.Same(t, provided, feed.FeedInfo())
}

func TestFeedsAreIndependent(t *testing.T) {
	a := testFeed(t, nil)
	b := testFeed(t, nil)
	a.SetStop(testStop("stop_id_1"))
	a.SetFeedVersion("a")

	assert.Equal(t, 0, b.NumberOfStops())
	assert.Empty(t, b.FeedVersion())
}
