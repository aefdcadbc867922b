package gtfsfeed

import (
	"crawshaw.io/sqlite"
	"crawshaw.io/sqlite/sqlitex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

var exportPragmas = map[string]string{
	"synchronous": "OFF",
}

func sqlitexNoop(*sqlite.Stmt) error { return nil }

// ExportToSQLite writes feed to a new SQLite database at outputPath, replacing any existing
// file. Each GTFS file becomes a table of TEXT columns named after the file, with empty values
// stored as NULL.
func ExportToSQLite(feed *Feed, outputPath string, opts *ExportOpts) error {
	if outputPath == "" {
		panic("Missing outputPath")
	}

	slog.Info(fmt.Sprintf("Exporting feed to %s", outputPath))

	err := os.Remove(outputPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	db, err := sqlite.OpenConn(outputPath, 0)
	if err != nil {
		return err
	}
	defer func() {
		if db != nil {
			_ = db.Close()
		}
	}()

	for pragma, value := range exportPragmas {
		err = sqlitex.Exec(db, "PRAGMA "+pragma+" = "+value, sqlitexNoop)
		if err != nil {
			return err
		}
	}

	if err := writeTables(db, buildTableRecords(feed)); err != nil {
		return err
	}

	err = db.Close()
	db = nil
	if err != nil {
		return err
	}

	if err := os.Chmod(outputPath, opts.withDefaults().FilePerm); err != nil {
		return err
	}

	slog.Info(fmt.Sprintf("Wrote %s", outputPath))
	return nil
}

func writeTables(db *sqlite.Conn, tables []tableRecords) (err error) {
	defer sqlitex.Save(db)(&err)

	for _, table := range tables {
		if err := createTable(db, table.schema); err != nil {
			return err
		}
		if err := insertRecords(db, table); err != nil {
			return err
		}
	}
	return nil
}

func createTable(db *sqlite.Conn, schema tableSchema) error {
	var columnFragments []string
	for _, column := range schema.Columns {
		columnFragments = append(columnFragments, column.Name+" TEXT")
	}
	query := fmt.Sprintf("CREATE TABLE %s (%s)", schema.tableName(), strings.Join(columnFragments, ", "))
	return sqlitex.ExecTransient(db, query, sqlitexNoop)
}

func insertRecords(db *sqlite.Conn, table tableRecords) error {
	header := table.schema.header()

	var argFragments []string
	for i := range header {
		argFragments = append(argFragments, fmt.Sprintf("?%d", i+1))
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table.schema.tableName(), strings.Join(header, ", "), strings.Join(argFragments, ", "))
	insertStmt, err := db.Prepare(query)
	if err != nil {
		return err
	}

	for _, row := range table.rows {
		if err := insertStmt.Reset(); err != nil {
			return err
		}
		if err := insertStmt.ClearBindings(); err != nil {
			return err
		}

		for i, v := range row {
			param := i + 1
			if v == "" {
				insertStmt.BindNull(param)
			} else {
				insertStmt.BindText(param, v)
			}
		}

		for {
			rowReturned, err := insertStmt.Step()
			if err != nil {
				return err
			}
			if !rowReturned {
				break
			}
		}
	}
	slog.Debug(fmt.Sprintf("Wrote %d rows to %s", len(table.rows), table.schema.tableName()))

	return nil
}
