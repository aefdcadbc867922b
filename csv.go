package gtfsfeed

import (
	"fmt"
	"github.com/gocarina/gocsv"
	"slices"
	"strings"
)

// escapeFieldValue quotes values containing a comma, newline, double quote or single quote,
// doubling any double quotes inside.
func escapeFieldValue(value string) string {
	if value == "" {
		return ""
	}
	if strings.ContainsAny(value, ",\n\"'") {
		return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
	}
	return value
}

// convertRecordsToCSV writes the header of fileName followed by one line per record. records
// is a slice of record structs or pointers to them. There is no newline after the last record,
// so an empty table is the header and a single "\n".
func convertRecordsToCSV(records any, fileName string) string {
	schema := schemaFor(fileName)
	return formatCSV(schema.header(), marshalRows(records, schema))
}

func formatCSV(header []string, rows [][]string) string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		fields := make([]string, len(row))
		for i, value := range row {
			fields[i] = escapeFieldValue(value)
		}
		lines = append(lines, strings.Join(fields, ","))
	}
	return strings.Join(header, ",") + "\n" + strings.Join(lines, "\n")
}

// rowCollector is a gocsv.CSVWriter that keeps rows instead of encoding them.
type rowCollector struct {
	rows [][]string
}

func (c *rowCollector) Write(row []string) error {
	c.rows = append(c.rows, slices.Clone(row))
	return nil
}

func (c *rowCollector) Flush() {}

func (c *rowCollector) Error() error { return nil }

// marshalRows renders records to one row of values per record, in the column order of schema.
// The csv tags of the record type must match the schema's header exactly.
func marshalRows(records any, schema tableSchema) [][]string {
	c := &rowCollector{}
	if err := gocsv.MarshalCSV(records, c); err != nil {
		panic(fmt.Sprintf("marshal %s: %s", schema.FileName, err))
	}
	if len(c.rows) == 0 || !slices.Equal(c.rows[0], schema.header()) {
		panic(fmt.Sprintf("csv tags of %T do not match the header of %s", records, schema.FileName))
	}
	return c.rows[1:]
}

func asRecords[R any](records []*R) []any {
	out := make([]any, len(records))
	for i, record := range records {
		out[i] = record
	}
	return out
}

// tableRecords is a snapshot of one table. rows[i] holds the values of records[i] in header
// order.
type tableRecords struct {
	schema  tableSchema
	records []any
	rows    [][]string
}

func newTableRecords[R any](fileName string, records []*R) tableRecords {
	schema := schemaFor(fileName)
	return tableRecords{schema: schema, records: asRecords(records), rows: marshalRows(records, schema)}
}

// value returns the value of column in row i, or "" if the table has no such column.
func (t tableRecords) value(i int, column string) string {
	j := t.schema.columnIndex(column)
	if j == -1 {
		return ""
	}
	return t.rows[i][j]
}

// buildTableRecords snapshots every table of feed, in gtfsSchema order.
func buildTableRecords(feed *Feed) []tableRecords {
	tablesByFileName := map[string]tableRecords{
		AgencyFileName:       newTableRecords(AgencyFileName, feed.BuildArrayOfAgencies()),
		StopFileName:         newTableRecords(StopFileName, feed.BuildArrayOfStops()),
		RouteFileName:        newTableRecords(RouteFileName, feed.BuildArrayOfRoutes()),
		TripFileName:         newTableRecords(TripFileName, feed.BuildArrayOfTrips()),
		StopTimeFileName:     newTableRecords(StopTimeFileName, feed.BuildArrayOfStopTimes()),
		CalendarFileName:     newTableRecords(CalendarFileName, feed.BuildArrayOfCalendars()),
		CalendarDateFileName: newTableRecords(CalendarDateFileName, feed.BuildArrayOfCalendarDates()),
		ShapeFileName:        newTableRecords(ShapeFileName, feed.BuildArrayOfShapePoints()),
		FeedInfoFileName:     newTableRecords(FeedInfoFileName, []*FeedInfo{feed.FeedInfo()}),
	}

	tables := make([]tableRecords, 0, len(gtfsSchema))
	for _, schema := range gtfsSchema {
		tables = append(tables, tablesByFileName[schema.FileName])
	}
	return tables
}
