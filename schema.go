package gtfsfeed

import "slices"

// NOTE: Foreign IDs into tables this package does not model (levels, location_groups,
// booking_rules, ...) are described but not declared as ForeignID.

const (
	AgencyFileName       = "agency.txt"
	StopFileName         = "stops.txt"
	RouteFileName        = "routes.txt"
	TripFileName         = "trips.txt"
	StopTimeFileName     = "stop_times.txt"
	CalendarFileName     = "calendar.txt"
	CalendarDateFileName = "calendar_dates.txt"
	ShapeFileName        = "shapes.txt"
	FeedInfoFileName     = "feed_info.txt"
)

type tableSchema struct {
	FileName   string
	PrimaryKey []string
	Columns    []columnSchema
}

type columnSchema struct {
	Name                string
	TypeDescription     string
	PresenceDescription string
	ForeignID           *foreignIDSchema
}

type foreignIDSchema struct {
	Table  string
	Column string
	AnyOf  []foreignIDSchema
}

// tableName is the file name without the .txt suffix, which is also the SQLite table name.
func (s tableSchema) tableName() string {
	return s.FileName[:len(s.FileName)-len(".txt")]
}

func (s tableSchema) header() []string {
	header := make([]string, 0, len(s.Columns))
	for _, col := range s.Columns {
		header = append(header, col.Name)
	}
	return header
}

// columnIndex returns the position of column in the header, or -1.
func (s tableSchema) columnIndex(column string) int {
	return slices.IndexFunc(s.Columns, func(c columnSchema) bool { return c.Name == column })
}

// gtfsSchema is in export order.
var gtfsSchema = []tableSchema{
	{
		FileName:   AgencyFileName,
		PrimaryKey: []string{"agency_id"},
		Columns: []columnSchema{
			{Name: "agency_id", TypeDescription: "Unique ID", PresenceDescription: "Conditionally Required"},
			{Name: "agency_name", TypeDescription: "Text", PresenceDescription: "Required"},
			{Name: "agency_url", TypeDescription: "URL", PresenceDescription: "Required"},
			{Name: "agency_timezone", TypeDescription: "Timezone", PresenceDescription: "Required"},
			{Name: "agency_lang", TypeDescription: "Language code", PresenceDescription: "Optional"},
			{Name: "agency_phone", TypeDescription: "Phone number", PresenceDescription: "Optional"},
			{Name: "agency_fare_url", TypeDescription: "URL", PresenceDescription: "Optional"},
			{Name: "agency_email", TypeDescription: "Email", PresenceDescription: "Optional"},
		},
	},

	{
		FileName:   StopFileName,
		PrimaryKey: []string{"stop_id"},
		Columns: []columnSchema{
			{Name: "stop_id", TypeDescription: "Unique ID", PresenceDescription: "Required"},
			{Name: "stop_code", TypeDescription: "Text", PresenceDescription: "Optional"},
			{Name: "stop_name", TypeDescription: "Text", PresenceDescription: "Conditionally Required"},
			{Name: "stop_desc", TypeDescription: "Text", PresenceDescription: "Optional"},
			{Name: "stop_lat", TypeDescription: "Latitude", PresenceDescription: "Conditionally Required"},
			{Name: "stop_lon", TypeDescription: "Longitude", PresenceDescription: "Conditionally Required"},
			{Name: "zone_id", TypeDescription: "ID", PresenceDescription: "Optional"},
			{Name: "stop_url", TypeDescription: "URL", PresenceDescription: "Optional"},
			{Name: "location_type", TypeDescription: "Enum", PresenceDescription: "Optional"},
			{
				Name:                "parent_station",
				TypeDescription:     "Foreign ID referencing stops.stop_id",
				ForeignID:           &foreignIDSchema{Table: "stops", Column: "stop_id"},
				PresenceDescription: "Conditionally Required",
			},
			{Name: "stop_timezone", TypeDescription: "Timezone", PresenceDescription: "Optional"},
			{Name: "wheelchair_boarding", TypeDescription: "Enum", PresenceDescription: "Optional"},
			{Name: "level_id", TypeDescription: "Foreign ID referencing levels.level_id", PresenceDescription: "Optional"},
			{Name: "platform_code", TypeDescription: "Text", PresenceDescription: "Optional"},
		},
	},

	{
		FileName:   RouteFileName,
		PrimaryKey: []string{"route_id"},
		Columns: []columnSchema{
			{Name: "route_id", TypeDescription: "Unique ID", PresenceDescription: "Required"},
			{
				Name:                "agency_id",
				TypeDescription:     "Foreign ID referencing agency.agency_id",
				ForeignID:           &foreignIDSchema{Table: "agency", Column: "agency_id"},
				PresenceDescription: "Conditionally Required",
			},
			{Name: "route_short_name", TypeDescription: "Text", PresenceDescription: "Conditionally Required"},
			{Name: "route_long_name", TypeDescription: "Text", PresenceDescription: "Conditionally Required"},
			{Name: "route_desc", TypeDescription: "Text", PresenceDescription: "Optional"},
			{Name: "route_type", TypeDescription: "Enum", PresenceDescription: "Required"},
			{Name: "route_url", TypeDescription: "URL", PresenceDescription: "Optional"},
			{Name: "route_color", TypeDescription: "Color", PresenceDescription: "Optional"},
			{Name: "route_text_color", TypeDescription: "Color", PresenceDescription: "Optional"},
			{Name: "route_sort_order", TypeDescription: "Non-negative integer", PresenceDescription: "Optional"},
			{Name: "continuous_pickup", TypeDescription: "Enum", PresenceDescription: "Conditionally Forbidden"},
			{Name: "continuous_drop_off", TypeDescription: "Enum", PresenceDescription: "Conditionally Forbidden"},
			{Name: "network_id", TypeDescription: "ID", PresenceDescription: "Conditionally Forbidden"},
		},
	},

	{
		FileName:   TripFileName,
		PrimaryKey: []string{"trip_id"},
		Columns: []columnSchema{
			{
				Name:                "route_id",
				TypeDescription:     "Foreign ID referencing routes.route_id",
				ForeignID:           &foreignIDSchema{Table: "routes", Column: "route_id"},
				PresenceDescription: "Required",
			},
			{
				Name:            "service_id",
				TypeDescription: "Foreign ID referencing calendar.service_id or calendar_dates.service_id",
				ForeignID: &foreignIDSchema{AnyOf: []foreignIDSchema{
					{Table: "calendar", Column: "service_id"},
					{Table: "calendar_dates", Column: "service_id"},
				}},
				PresenceDescription: "Required",
			},
			{Name: "trip_id", TypeDescription: "Unique ID", PresenceDescription: "Required"},
			{Name: "trip_headsign", TypeDescription: "Text", PresenceDescription: "Optional"},
			{Name: "trip_short_name", TypeDescription: "Text", PresenceDescription: "Optional"},
			{Name: "direction_id", TypeDescription: "Enum", PresenceDescription: "Optional"},
			{Name: "block_id", TypeDescription: "ID", PresenceDescription: "Optional"},
			{
				Name:                "shape_id",
				TypeDescription:     "Foreign ID referencing shapes.shape_id",
				ForeignID:           &foreignIDSchema{Table: "shapes", Column: "shape_id"},
				PresenceDescription: "Conditionally Required",
			},
			{Name: "wheelchair_accessible", TypeDescription: "Enum", PresenceDescription: "Optional"},
			{Name: "bikes_allowed", TypeDescription: "Enum", PresenceDescription: "Optional"},
		},
	},

	{
		FileName:   StopTimeFileName,
		PrimaryKey: []string{"trip_id", "stop_sequence"},
		Columns: []columnSchema{
			{
				Name:                "trip_id",
				TypeDescription:     "Foreign ID referencing trips.trip_id",
				ForeignID:           &foreignIDSchema{Table: "trips", Column: "trip_id"},
				PresenceDescription: "Required",
			},
			{Name: "arrival_time", TypeDescription: "Time", PresenceDescription: "Conditionally Required"},
			{Name: "departure_time", TypeDescription: "Time", PresenceDescription: "Conditionally Required"},
			{
				Name:                "stop_id",
				TypeDescription:     "Foreign ID referencing stops.stop_id",
				ForeignID:           &foreignIDSchema{Table: "stops", Column: "stop_id"},
				PresenceDescription: "Conditionally Required",
			},
			{Name: "location_group_id", TypeDescription: "Foreign ID referencing location_groups.location_group_id", PresenceDescription: "Conditionally Forbidden"},
			{Name: "location_id", TypeDescription: "Foreign ID referencing id from locations.geojson", PresenceDescription: "Conditionally Forbidden"},
			{Name: "stop_sequence", TypeDescription: "Non-negative integer", PresenceDescription: "Required"},
			{Name: "stop_headsign", TypeDescription: "Text", PresenceDescription: "Optional"},
			{Name: "start_pickup_drop_off_window", TypeDescription: "Time", PresenceDescription: "Conditionally Required"},
			{Name: "end_pickup_drop_off_window", TypeDescription: "Time", PresenceDescription: "Conditionally Required"},
			{Name: "pickup_type", TypeDescription: "Enum", PresenceDescription: "Conditionally Forbidden"},
			{Name: "drop_off_type", TypeDescription: "Enum", PresenceDescription: "Conditionally Forbidden"},
			{Name: "continuous_pickup", TypeDescription: "Enum", PresenceDescription: "Conditionally Forbidden"},
			{Name: "continuous_drop_off", TypeDescription: "Enum", PresenceDescription: "Conditionally Forbidden"},
			{Name: "shape_dist_traveled", TypeDescription: "Non-negative float", PresenceDescription: "Optional"},
			{Name: "timepoint", TypeDescription: "Enum", PresenceDescription: "Recommended"},
			{Name: "pickup_booking_rule_id", TypeDescription: "Foreign ID referencing booking_rules.booking_rule_id", PresenceDescription: "Optional"},
			{Name: "drop_off_booking_rule_id", TypeDescription: "Foreign ID referencing booking_rules.booking_rule_id", PresenceDescription: "Optional"},
		},
	},

	{
		FileName:   CalendarFileName,
		PrimaryKey: []string{"service_id"},
		Columns: []columnSchema{
			{Name: "service_id", TypeDescription: "Unique ID", PresenceDescription: "Required"},
			{Name: "monday", TypeDescription: "Enum", PresenceDescription: "Required"},
			{Name: "tuesday", TypeDescription: "Enum", PresenceDescription: "Required"},
			{Name: "wednesday", TypeDescription: "Enum", PresenceDescription: "Required"},
			{Name: "thursday", TypeDescription: "Enum", PresenceDescription: "Required"},
			{Name: "friday", TypeDescription: "Enum", PresenceDescription: "Required"},
			{Name: "saturday", TypeDescription: "Enum", PresenceDescription: "Required"},
			{Name: "sunday", TypeDescription: "Enum", PresenceDescription: "Required"},
			{Name: "start_date", TypeDescription: "Date", PresenceDescription: "Required"},
			{Name: "end_date", TypeDescription: "Date", PresenceDescription: "Required"},
		},
	},

	{
		FileName:   CalendarDateFileName,
		PrimaryKey: []string{"service_id", "date"},
		Columns: []columnSchema{
			{Name: "service_id", TypeDescription: "Foreign ID referencing calendar.service_id or ID", PresenceDescription: "Required"},
			{Name: "date", TypeDescription: "Date", PresenceDescription: "Required"},
			{Name: "exception_type", TypeDescription: "Enum", PresenceDescription: "Required"},
		},
	},

	{
		// Keyed by shape_id alone, so each shape holds a single point.
		FileName:   ShapeFileName,
		PrimaryKey: []string{"shape_id"},
		Columns: []columnSchema{
			{Name: "shape_id", TypeDescription: "ID", PresenceDescription: "Required"},
			{Name: "shape_pt_lat", TypeDescription: "Latitude", PresenceDescription: "Required"},
			{Name: "shape_pt_lon", TypeDescription: "Longitude", PresenceDescription: "Required"},
			{Name: "shape_pt_sequence", TypeDescription: "Non-negative integer", PresenceDescription: "Required"},
			{Name: "shape_dist_traveled", TypeDescription: "Non-negative float", PresenceDescription: "Optional"},
		},
	},

	{
		FileName:   FeedInfoFileName,
		PrimaryKey: nil,
		Columns: []columnSchema{
			{Name: "feed_publisher_name", TypeDescription: "Text", PresenceDescription: "Required"},
			{Name: "feed_publisher_url", TypeDescription: "URL", PresenceDescription: "Required"},
			{Name: "feed_lang", TypeDescription: "Language code", PresenceDescription: "Required"},
			{Name: "default_lang", TypeDescription: "Language code", PresenceDescription: "Optional"},
			{Name: "feed_start_date", TypeDescription: "Date", PresenceDescription: "Recommended"},
			{Name: "feed_end_date", TypeDescription: "Date", PresenceDescription: "Recommended"},
			{Name: "feed_version", TypeDescription: "Text", PresenceDescription: "Recommended"},
			{Name: "feed_contact_email", TypeDescription: "Email", PresenceDescription: "Optional"},
			{Name: "feed_contact_url", TypeDescription: "URL", PresenceDescription: "Optional"},
		},
	},
}

func schemaFor(fileName string) tableSchema {
	for _, schema := range gtfsSchema {
		if schema.FileName == fileName {
			return schema
		}
	}
	panic("Unknown GTFS file " + fileName)
}

// FileNames lists the files an export writes, in the order they are written.
func FileNames() []string {
	names := make([]string, 0, len(gtfsSchema))
	for _, schema := range gtfsSchema {
		names = append(names, schema.FileName)
	}
	return names
}
