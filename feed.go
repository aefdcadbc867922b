// Package gtfsfeed holds a GTFS feed in memory and writes it back out as GTFS files.
//
// A Feed keeps each table indexed by its primary key. Cross-table references are plain string
// IDs and are never updated or deleted automatically: the WithoutUpdatingReferences and
// WithoutDeletingReferences operations touch exactly one table, and callers cascade as needed.
// A Feed is not safe for concurrent use.
package gtfsfeed

type Feed struct {
	agencies agencyState

	stopByStopID                   *index[*Stop]
	routeByRouteID                 *index[*Route]
	tripByTripID                   *index[*Trip]
	stopTimeByStopSequenceByTripID *groupedIndex[*StopTime]
	calendarByServiceID            *index[*Calendar]
	calendarDateByDateByServiceID  *groupedIndex[*CalendarDate]
	shapePointByShapeID            *index[*ShapePoint]
	feedInfo                       *FeedInfo
}

// NewFeed indexes tables, which may be nil. Records with a duplicate key replace earlier ones.
func NewFeed(tables *FeedTables) (*Feed, error) {
	if tables == nil {
		tables = &FeedTables{}
	}

	agencies, err := newAgencyState(tables.Agencies)
	if err != nil {
		return nil, err
	}

	return &Feed{
		agencies:                       agencies,
		stopByStopID:                   indexByOneKey(tables.Stops, func(s *Stop) string { return s.StopID }),
		routeByRouteID:                 indexByOneKey(tables.Routes, func(r *Route) string { return r.RouteID }),
		tripByTripID:                   indexByOneKey(tables.Trips, func(t *Trip) string { return t.TripID }),
		stopTimeByStopSequenceByTripID: indexByTwoKeys(tables.StopTimes, stopTimeTripID, stopTimeStopSequence),
		calendarByServiceID:            indexByOneKey(tables.Calendars, func(c *Calendar) string { return c.ServiceID }),
		calendarDateByDateByServiceID:  indexByTwoKeys(tables.CalendarDates, calendarDateServiceID, calendarDateDate),
		shapePointByShapeID:            indexByOneKey(tables.ShapePoints, func(p *ShapePoint) string { return p.ShapeID }),
		feedInfo:                       ensureFeedInfo(tables.FeedInfo),
	}, nil
}

/*
 * stops.txt
 */

func (f *Feed) SetStop(stop *Stop) {
	f.stopByStopID.set(stop.StopID, stop)
}

func (f *Feed) SetStops(stops []*Stop) {
	for _, stop := range stops {
		f.SetStop(stop)
	}
}

// GetStop returns nil if there is no stop with stopID.
func (f *Feed) GetStop(stopID string) *Stop {
	stop, _ := f.stopByStopID.get(stopID)
	return stop
}

func (f *Feed) NumberOfStops() int {
	return f.stopByStopID.len()
}

func (f *Feed) BuildArrayOfStops() []*Stop {
	return f.stopByStopID.values()
}

// UpdateStopIDWithoutUpdatingReferences renames a stop. Stop times, parent stations and other
// references to oldStopID are left alone.
func (f *Feed) UpdateStopIDWithoutUpdatingReferences(oldStopID, newStopID string) {
	stop, ok := f.stopByStopID.delete(oldStopID)
	if !ok {
		return
	}
	stop.StopID = newStopID
	f.SetStop(stop)
}

func (f *Feed) DeleteStopWithoutDeletingReferences(stopID string) {
	f.stopByStopID.delete(stopID)
}

/*
 * routes.txt
 */

func (f *Feed) SetRoute(route *Route) {
	f.routeByRouteID.set(route.RouteID, route)
}

func (f *Feed) SetRoutes(routes []*Route) {
	for _, route := range routes {
		f.SetRoute(route)
	}
}

func (f *Feed) GetRoute(routeID string) *Route {
	route, _ := f.routeByRouteID.get(routeID)
	return route
}

func (f *Feed) NumberOfRoutes() int {
	return f.routeByRouteID.len()
}

func (f *Feed) BuildArrayOfRoutes() []*Route {
	return f.routeByRouteID.values()
}

func (f *Feed) UpdateRouteIDWithoutUpdatingReferences(oldRouteID, newRouteID string) {
	route, ok := f.routeByRouteID.delete(oldRouteID)
	if !ok {
		return
	}
	route.RouteID = newRouteID
	f.SetRoute(route)
}

func (f *Feed) DeleteRouteWithoutDeletingReferences(routeID string) {
	f.routeByRouteID.delete(routeID)
}

/*
 * trips.txt
 */

func (f *Feed) SetTrip(trip *Trip) {
	f.tripByTripID.set(trip.TripID, trip)
}

func (f *Feed) SetTrips(trips []*Trip) {
	for _, trip := range trips {
		f.SetTrip(trip)
	}
}

func (f *Feed) GetTrip(tripID string) *Trip {
	trip, _ := f.tripByTripID.get(tripID)
	return trip
}

func (f *Feed) NumberOfTrips() int {
	return f.tripByTripID.len()
}

func (f *Feed) BuildArrayOfTrips() []*Trip {
	return f.tripByTripID.values()
}

// UpdateTripIDWithoutUpdatingReferences renames a trip. Its stop times keep the old trip ID
// until UpdateStopTimesTripIDWithoutUpdatingReferences is called.
func (f *Feed) UpdateTripIDWithoutUpdatingReferences(oldTripID, newTripID string) {
	trip, ok := f.tripByTripID.delete(oldTripID)
	if !ok {
		return
	}
	trip.TripID = newTripID
	f.SetTrip(trip)
}

func (f *Feed) DeleteTripWithoutDeletingReferences(tripID string) {
	f.tripByTripID.delete(tripID)
}

/*
 * shapes.txt
 */

func (f *Feed) SetShapePoint(point *ShapePoint) {
	f.shapePointByShapeID.set(point.ShapeID, point)
}

func (f *Feed) SetShapePoints(points []*ShapePoint) {
	for _, point := range points {
		f.SetShapePoint(point)
	}
}

func (f *Feed) GetShapePoint(shapeID string) *ShapePoint {
	point, _ := f.shapePointByShapeID.get(shapeID)
	return point
}

func (f *Feed) NumberOfShapePoints() int {
	return f.shapePointByShapeID.len()
}

func (f *Feed) BuildArrayOfShapePoints() []*ShapePoint {
	return f.shapePointByShapeID.values()
}

func (f *Feed) UpdateShapeIDWithoutUpdatingReferences(oldShapeID, newShapeID string) {
	point, ok := f.shapePointByShapeID.delete(oldShapeID)
	if !ok {
		return
	}
	point.ShapeID = newShapeID
	f.SetShapePoint(point)
}

func (f *Feed) DeleteShapePointWithoutDeletingReferences(shapeID string) {
	f.shapePointByShapeID.delete(shapeID)
}
