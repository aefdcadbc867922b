package gtfsfeed

import (
	"context"
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"reflect"
	"strings"
)

var ErrInvalidInput = errors.New("invalid input")

type validateOpts struct {
	logLevel slog.Level
}

// Validate checks that required fields are set and that foreign IDs refer to existing records.
// The feed is not modified. If there are issues they are returned along with ErrInvalidInput.
func Validate(feed *Feed) ([]string, error) {
	return validate(feed, validateOpts{logLevel: slog.LevelError})
}

func validate(feed *Feed, opts validateOpts) ([]string, error) {
	structs := validator.New()
	structs.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("csv")
	})

	v := &feedValidator{
		opts:         opts,
		structs:      structs,
		tables:       make(map[string]tableRecords),
		columnValues: make(map[string]map[string]struct{}),
	}

	slog.Info("Validating")

	tables := buildTableRecords(feed)
	for _, table := range tables {
		v.tables[table.schema.tableName()] = table
	}
	for _, table := range tables {
		if err := v.validateTable(table); err != nil {
			return nil, err
		}
	}

	if len(v.issues) > 0 {
		return v.issues, ErrInvalidInput
	}
	return nil, nil
}

type feedValidator struct {
	opts         validateOpts
	structs      *validator.Validate
	issues       []string
	tables       map[string]tableRecords
	columnValues map[string]map[string]struct{} // "table.column" -> values present
}

func (v *feedValidator) append(msg string, args ...any) {
	issue := fmt.Sprintf(msg, args...)
	slog.Log(context.Background(), v.opts.logLevel, issue)
	v.issues = append(v.issues, issue)
}

func (v *feedValidator) validateTable(table tableRecords) error {
	for i := range table.records {
		if err := v.validateRequired(table, i); err != nil {
			return err
		}
	}
	for _, column := range table.schema.Columns {
		if column.ForeignID != nil {
			v.validateForeignID(table, column.Name, *column.ForeignID)
		}
	}
	return nil
}

func (v *feedValidator) validateRequired(table tableRecords, i int) error {
	err := v.structs.Struct(table.records[i])
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fieldErr := range fieldErrs {
			v.append("%s in %s is %s [%s]", fieldErr.Field(), table.schema.FileName, fieldErr.Tag(), prettyPrintRow(table.schema, table.rows[i]))
		}
		return nil
	}
	return err
}

func (v *feedValidator) validateForeignID(table tableRecords, column string, schema foreignIDSchema) {
	// Normalize to AnyOf form
	if len(schema.AnyOf) > 0 {
		if schema.Table != "" || schema.Column != "" {
			panic("If AnyOf cannot have Table or Column")
		}
	} else {
		schema.AnyOf = []foreignIDSchema{{Table: schema.Table, Column: schema.Column}}
		schema.Table = ""
		schema.Column = ""
	}

	for i, row := range table.rows {
		value := table.value(i, column)
		if value == "" {
			continue
		}

		found := false
		for _, subSchema := range schema.AnyOf {
			if _, ok := v.valuesOf(subSchema.Table, subSchema.Column)[value]; ok {
				found = true
				break
			}
		}
		if !found {
			v.append("%s in %s is not a valid %s [%s]", value, table.schema.FileName, column, prettyPrintRow(table.schema, row))
		}
	}
}

func (v *feedValidator) valuesOf(table, column string) map[string]struct{} {
	key := table + "." + column
	if values, ok := v.columnValues[key]; ok {
		return values
	}

	values := make(map[string]struct{})
	records := v.tables[table]
	for i := range records.rows {
		if value := records.value(i, column); value != "" {
			values[value] = struct{}{}
		}
	}
	v.columnValues[key] = values
	return values
}

func prettyPrintRow(schema tableSchema, row []string) string {
	var out []string
	for i, column := range schema.header() {
		if value := row[i]; value != "" {
			out = append(out, fmt.Sprintf("%s: %s", column, value))
		}
	}
	return strings.Join(out, ", ")
}
