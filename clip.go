package gtfsfeed

import (
	"fmt"
	"github.com/tidwall/geojson"
	"github.com/tidwall/geojson/geometry"
	"log/slog"
	"strconv"
)

// Clip removes everything from feed that does not serve a stop inside clipFeature, a GeoJSON
// object. Trips that never call at a stop inside are dropped, then whatever only those trips
// used: stop times, stops, routes, agencies, calendars, calendar dates and shapes.
func Clip(feed *Feed, clipFeature string) error {
	feature, err := geojson.Parse(clipFeature, &geojson.ParseOptions{RequireValid: true})
	if err != nil {
		return fmt.Errorf("parse clip feature: %w", err)
	}

	slog.Info(fmt.Sprintf("Clipping feed (clipFeature has %d points)", feature.NumPoints()))

	stopsInside := make(map[string]struct{})
	stops := feed.BuildArrayOfStops()
	for _, stop := range stops {
		lng, err := strconv.ParseFloat(stop.StopLon, 64)
		if err != nil {
			slog.Error("Failed to parse stop_lon", "stop_id", stop.StopID)
			continue
		}
		lat, err := strconv.ParseFloat(stop.StopLat, 64)
		if err != nil {
			slog.Error("Failed to parse stop_lat", "stop_id", stop.StopID)
			continue
		}
		point := geojson.NewPoint(geometry.Point{X: lng, Y: lat})

		if feature.Contains(point) {
			stopsInside[stop.StopID] = struct{}{}
		}
	}
	slog.Info(fmt.Sprintf("%d of %d stops are inside", len(stopsInside), len(stops)))

	for _, trip := range feed.BuildArrayOfTrips() {
		if !callsAtAny(feed.BuildArrayOfStopTimesOfTripID(trip.TripID), stopsInside) {
			feed.DeleteTripWithoutDeletingReferences(trip.TripID)
		}
	}

	usedStops := make(map[string]struct{})
	for _, stopTime := range feed.BuildArrayOfStopTimes() {
		if feed.GetTrip(stopTime.TripID) == nil {
			feed.DeleteStopTimesOfTripIDWithoutDeletingReferences(stopTime.TripID)
			continue
		}
		usedStops[stopTime.StopID] = struct{}{}
	}

	parentStations := make(map[string]struct{})
	for _, stop := range stops {
		if _, ok := usedStops[stop.StopID]; ok && stop.ParentStation != "" {
			parentStations[stop.ParentStation] = struct{}{}
		}
	}
	for _, stop := range stops {
		_, used := usedStops[stop.StopID]
		_, parent := parentStations[stop.StopID]
		if !used && !parent {
			feed.DeleteStopWithoutDeletingReferences(stop.StopID)
		}
	}

	usedRoutes := make(map[string]struct{})
	usedServices := make(map[string]struct{})
	usedShapes := make(map[string]struct{})
	for _, trip := range feed.BuildArrayOfTrips() {
		usedRoutes[trip.RouteID] = struct{}{}
		usedServices[trip.ServiceID] = struct{}{}
		usedShapes[trip.ShapeID] = struct{}{}
	}

	usedAgencies := make(map[string]struct{})
	for _, route := range feed.BuildArrayOfRoutes() {
		if _, ok := usedRoutes[route.RouteID]; !ok {
			feed.DeleteRouteWithoutDeletingReferences(route.RouteID)
			continue
		}
		usedAgencies[route.AgencyID] = struct{}{}
	}

	// A lone agency may be referenced implicitly by routes without an agency_id.
	if feed.AgencyCardinality() == AgencyMultiple {
		for _, agency := range feed.BuildArrayOfAgencies() {
			if _, ok := usedAgencies[agency.AgencyID]; !ok {
				if err := feed.DeleteAgencyWithoutDeletingReferences(agency.AgencyID); err != nil {
					return err
				}
			}
		}
	}

	for _, calendar := range feed.BuildArrayOfCalendars() {
		if _, ok := usedServices[calendar.ServiceID]; !ok {
			feed.DeleteCalendarWithoutDeletingReferences(calendar.ServiceID)
		}
	}
	for _, calendarDate := range feed.BuildArrayOfCalendarDates() {
		if _, ok := usedServices[calendarDate.ServiceID]; !ok {
			feed.DeleteCalendarDatesOfServiceIDWithoutDeletingReferences(calendarDate.ServiceID)
		}
	}

	for _, point := range feed.BuildArrayOfShapePoints() {
		if _, ok := usedShapes[point.ShapeID]; !ok {
			feed.DeleteShapePointWithoutDeletingReferences(point.ShapeID)
		}
	}

	if _, err = validate(feed, validateOpts{logLevel: slog.LevelWarn}); err != nil {
		return err
	}

	slog.Info(fmt.Sprintf("Clipped feed to %d stops, %d trips and %d routes",
		feed.NumberOfStops(), feed.NumberOfTrips(), feed.NumberOfRoutes()))
	return nil
}

func callsAtAny(stopTimes []*StopTime, stopIDs map[string]struct{}) bool {
	for _, stopTime := range stopTimes {
		if _, ok := stopIDs[stopTime.StopID]; ok {
			return true
		}
	}
	return false
}
