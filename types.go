package gtfsfeed

// Records keep every field as the string written to disk. Enumerated fields hold the GTFS code,
// see the constants below.

type Agency struct {
	AgencyID       string `csv:"agency_id"`
	AgencyName     string `csv:"agency_name" validate:"required"`
	AgencyURL      string `csv:"agency_url" validate:"required"`
	AgencyTimezone string `csv:"agency_timezone" validate:"required"`
	AgencyLang     string `csv:"agency_lang"`
	AgencyPhone    string `csv:"agency_phone"`
	AgencyFareURL  string `csv:"agency_fare_url"`
	AgencyEmail    string `csv:"agency_email"`
}

type Stop struct {
	StopID             string `csv:"stop_id" validate:"required"`
	StopCode           string `csv:"stop_code"`
	StopName           string `csv:"stop_name"`
	StopDesc           string `csv:"stop_desc"`
	StopLat            string `csv:"stop_lat"`
	StopLon            string `csv:"stop_lon"`
	ZoneID             string `csv:"zone_id"`
	StopURL            string `csv:"stop_url"`
	LocationType       string `csv:"location_type"`
	ParentStation      string `csv:"parent_station"`
	StopTimezone       string `csv:"stop_timezone"`
	WheelchairBoarding string `csv:"wheelchair_boarding"`
	LevelID            string `csv:"level_id"`
	PlatformCode       string `csv:"platform_code"`
}

type Route struct {
	RouteID           string    `csv:"route_id" validate:"required"`
	AgencyID          string    `csv:"agency_id"`
	RouteShortName    string    `csv:"route_short_name"`
	RouteLongName     string    `csv:"route_long_name"`
	RouteDesc         string    `csv:"route_desc"`
	RouteType         RouteType `csv:"route_type" validate:"required"`
	RouteURL          string    `csv:"route_url"`
	RouteColor        string    `csv:"route_color"`
	RouteTextColor    string    `csv:"route_text_color"`
	RouteSortOrder    string    `csv:"route_sort_order"`
	ContinuousPickup  string    `csv:"continuous_pickup"`
	ContinuousDropOff string    `csv:"continuous_drop_off"`
	NetworkID         string    `csv:"network_id"`
}

type Trip struct {
	RouteID              string `csv:"route_id" validate:"required"`
	ServiceID            string `csv:"service_id" validate:"required"`
	TripID               string `csv:"trip_id" validate:"required"`
	TripHeadsign         string `csv:"trip_headsign"`
	TripShortName        string `csv:"trip_short_name"`
	DirectionID          string `csv:"direction_id"`
	BlockID              string `csv:"block_id"`
	ShapeID              string `csv:"shape_id"`
	WheelchairAccessible string `csv:"wheelchair_accessible"`
	BikesAllowed         string `csv:"bikes_allowed"`
}

type StopTime struct {
	TripID                   string      `csv:"trip_id" validate:"required"`
	ArrivalTime              string      `csv:"arrival_time"`
	DepartureTime            string      `csv:"departure_time"`
	StopID                   string      `csv:"stop_id"`
	LocationGroupID          string      `csv:"location_group_id"`
	LocationID               string      `csv:"location_id"`
	StopSequence             string      `csv:"stop_sequence" validate:"required"`
	StopHeadsign             string      `csv:"stop_headsign"`
	StartPickupDropOffWindow string      `csv:"start_pickup_drop_off_window"`
	EndPickupDropOffWindow   string      `csv:"end_pickup_drop_off_window"`
	PickupType               PickupType  `csv:"pickup_type"`
	DropOffType              DropOffType `csv:"drop_off_type"`
	ContinuousPickup         string      `csv:"continuous_pickup"`
	ContinuousDropOff        string      `csv:"continuous_drop_off"`
	ShapeDistTraveled        string      `csv:"shape_dist_traveled"`
	Timepoint                string      `csv:"timepoint"`
	PickupBookingRuleID      string      `csv:"pickup_booking_rule_id"`
	DropOffBookingRuleID     string      `csv:"drop_off_booking_rule_id"`
}

type Calendar struct {
	ServiceID string              `csv:"service_id" validate:"required"`
	Monday    ServiceAvailability `csv:"monday" validate:"required"`
	Tuesday   ServiceAvailability `csv:"tuesday" validate:"required"`
	Wednesday ServiceAvailability `csv:"wednesday" validate:"required"`
	Thursday  ServiceAvailability `csv:"thursday" validate:"required"`
	Friday    ServiceAvailability `csv:"friday" validate:"required"`
	Saturday  ServiceAvailability `csv:"saturday" validate:"required"`
	Sunday    ServiceAvailability `csv:"sunday" validate:"required"`
	StartDate string              `csv:"start_date" validate:"required"`
	EndDate   string              `csv:"end_date" validate:"required"`
}

type CalendarDate struct {
	ServiceID     string        `csv:"service_id" validate:"required"`
	Date          string        `csv:"date" validate:"required"`
	ExceptionType ExceptionType `csv:"exception_type" validate:"required"`
}

// ShapePoint is one row of shapes.txt.
type ShapePoint struct {
	ShapeID           string `csv:"shape_id" validate:"required"`
	ShapePtLat        string `csv:"shape_pt_lat" validate:"required"`
	ShapePtLon        string `csv:"shape_pt_lon" validate:"required"`
	ShapePtSequence   string `csv:"shape_pt_sequence" validate:"required"`
	ShapeDistTraveled string `csv:"shape_dist_traveled"`
}

type FeedInfo struct {
	FeedPublisherName string `csv:"feed_publisher_name" validate:"required"`
	FeedPublisherURL  string `csv:"feed_publisher_url" validate:"required"`
	FeedLang          string `csv:"feed_lang" validate:"required"`
	DefaultLang       string `csv:"default_lang"`
	FeedStartDate     string `csv:"feed_start_date"`
	FeedEndDate       string `csv:"feed_end_date"`
	FeedVersion       string `csv:"feed_version"`
	FeedContactEmail  string `csv:"feed_contact_email"`
	FeedContactURL    string `csv:"feed_contact_url"`
}

type RouteType string

const (
	RouteTypeTram       RouteType = "0"
	RouteTypeSubway     RouteType = "1"
	RouteTypeRail       RouteType = "2"
	RouteTypeBus        RouteType = "3"
	RouteTypeFerry      RouteType = "4"
	RouteTypeCableCar   RouteType = "5"
	RouteTypeAerialLift RouteType = "6"
	RouteTypeFunicular  RouteType = "7"
	RouteTypeTrolleybus RouteType = "11"
	RouteTypeMonorail   RouteType = "12"
)

type PickupType string

const (
	PickupRegularlyScheduled PickupType = "0"
	PickupNotAvailable       PickupType = "1"
	PickupPhone              PickupType = "2"
	PickupCoordinate         PickupType = "3"
)

type DropOffType string

const (
	DropOffRegularlyScheduled DropOffType = "0"
	DropOffNotAvailable       DropOffType = "1"
	DropOffPhone              DropOffType = "2"
	DropOffCoordinate         DropOffType = "3"
)

type ServiceAvailability string

const (
	ServiceAvailable   ServiceAvailability = "1"
	ServiceUnavailable ServiceAvailability = "0"
)

type ExceptionType string

const (
	ExceptionAdded   ExceptionType = "1"
	ExceptionRemoved ExceptionType = "2"
)

// FeedTables is the per-table input NewFeed indexes. Any field may be left empty.
type FeedTables struct {
	Agencies      []*Agency
	Stops         []*Stop
	Routes        []*Route
	Trips         []*Trip
	StopTimes     []*StopTime
	Calendars     []*Calendar
	CalendarDates []*CalendarDate
	ShapePoints   []*ShapePoint
	FeedInfo      *FeedInfo
}
