package gtfsfeed

import (
	"archive/zip"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

type ExportOpts struct {
	// DirPerm is used when creating the output directory. Defaults to 0o755.
	DirPerm os.FileMode
	// FilePerm is used for every file written. Defaults to 0o644.
	FilePerm os.FileMode
}

func (o *ExportOpts) withDefaults() ExportOpts {
	var opts ExportOpts
	if o != nil {
		opts = *o
	}
	if opts.DirPerm == 0 {
		opts.DirPerm = 0o755
	}
	if opts.FilePerm == 0 {
		opts.FilePerm = 0o644
	}
	return opts
}

// BuildFilesByFileName renders every table of feed to the contents of its GTFS file.
func BuildFilesByFileName(feed *Feed) map[string]string {
	files := make(map[string]string, len(gtfsSchema))
	for _, table := range buildTableRecords(feed) {
		files[table.schema.FileName] = formatCSV(table.schema.header(), table.rows)
	}
	return files
}

// ExportToDirectory writes one file per table into outputPath, creating it if needed and
// overwriting existing files. Files written before a failure are left in place.
func ExportToDirectory(feed *Feed, outputPath string, opts *ExportOpts) error {
	if outputPath == "" {
		panic("Missing outputPath")
	}
	o := opts.withDefaults()

	slog.Info(fmt.Sprintf("Exporting feed to directory %s", outputPath))

	if err := os.MkdirAll(outputPath, o.DirPerm); err != nil {
		return err
	}

	files := BuildFilesByFileName(feed)
	for _, name := range FileNames() {
		if err := os.WriteFile(filepath.Join(outputPath, name), []byte(files[name]), o.FilePerm); err != nil {
			return err
		}
		slog.Debug(fmt.Sprintf("Wrote %s (%d bytes)", name, len(files[name])))
	}

	slog.Info(fmt.Sprintf("Wrote %s", outputPath))
	return nil
}

// ExportToZip writes the same files as ExportToDirectory into a single zip archive.
func ExportToZip(feed *Feed, outputPath string, opts *ExportOpts) error {
	if outputPath == "" {
		panic("Missing outputPath")
	}
	o := opts.withDefaults()

	slog.Info(fmt.Sprintf("Exporting feed to %s", outputPath))

	outputF, err := os.OpenFile(outputPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, o.FilePerm)
	if err != nil {
		return err
	}
	outputZip := zip.NewWriter(outputF)
	defer func() {
		_ = outputZip.Close()
		_ = outputF.Close()
	}()

	files := BuildFilesByFileName(feed)
	for _, name := range FileNames() {
		entry, err := outputZip.Create(name)
		if err != nil {
			return err
		}
		if _, err := entry.Write([]byte(files[name])); err != nil {
			return err
		}
		slog.Debug(fmt.Sprintf("Wrote %s (%d bytes)", name, len(files[name])))
	}

	if err := outputZip.Close(); err != nil {
		return err
	}
	if err := outputF.Close(); err != nil {
		return err
	}

	slog.Info(fmt.Sprintf("Wrote %s", outputPath))
	return nil
}
