package gtfsfeed

import (
	"archive/zip"
	"fmt"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func minimalFiles() map[string]string {
	files := make(map[string]string)
	for _, schema := range gtfsSchema {
		files[schema.FileName] = strings.Join(schema.header(), ",") + "\n"
	}
	files[FeedInfoFileName] += DefaultFeedPublisherName + "," + DefaultFeedPublisherURL + "," + DefaultFeedLang + ",,,,,,"
	return files
}

func TestBuildFilesByFileNameMinimal(t *testing.T) {
	feed := testFeed(t, nil)
	assert.Equal(t, minimalFiles(), BuildFilesByFileName(feed))
}

func TestBuildFilesByFileName(t *testing.T) {
	feed := testFeed(t, nil)
	require.NoError(t, feed.SetAgency(&Agency{AgencyName: "O'Brien Transit", AgencyURL: "http://obrien.example", AgencyTimezone: "Europe/Dublin"}))
	feed.SetStop(&Stop{StopID: "s1", StopName: `The "Main" Stop`, StopLat: "53.3", StopLon: "-6.2"})
	feed.SetStopTime(testStopTime("t1", "2", "s1"))
	feed.SetStopTime(testStopTime("t1", "1", "s1"))
	feed.SetFeedVersion("2025-01")

	files := BuildFilesByFileName(feed)

	assert.Len(t, files, 9)
	assert.Equal(t,
		"agency_id,agency_name,agency_url,agency_timezone,agency_lang,agency_phone,agency_fare_url,agency_email\n"+
			",\"O'Brien Transit\",http://obrien.example,Europe/Dublin,,,,",
		files[AgencyFileName])
	assert.Contains(t, files[StopFileName], "\ns1,,\"The \"\"Main\"\" Stop\",,53.3,-6.2,")

	stopTimeLines := strings.Split(files[StopTimeFileName], "\n")
	require.Len(t, stopTimeLines, 3)
	assert.True(t, strings.HasPrefix(stopTimeLines[1], "t1,08:00:00,08:01:00,s1,,,2,"))
	assert.True(t, strings.HasPrefix(stopTimeLines[2], "t1,08:00:00,08:01:00,s1,,,1,"))

	feedInfoLines := strings.Split(files[FeedInfoFileName], "\n")
	require.Len(t, feedInfoLines, 2)
	assert.Equal(t, DefaultFeedPublisherName+","+DefaultFeedPublisherURL+",en,,,,2025-01,,", feedInfoLines[1])
}

func TestExportToDirectory(t *testing.T) {
	outDir := filepath.Join(testTempdir(t), "nested", "feed")
	feed := testFeed(t, nil)

	require.NoError(t, ExportToDirectory(feed, outDir, nil))
	assertDirEqual(t, minimalFiles(), outDir)

	// Existing files are overwritten
	feed.SetStop(testStop("stop_id_1"))
	require.NoError(t, ExportToDirectory(feed, outDir, nil))
	assertDirEqual(t, BuildFilesByFileName(feed), outDir)
}

func TestExportToDirectoryFailure(t *testing.T) {
	outDir := testTempdir(t)
	notADir := filepath.Join(outDir, "file")
	require.NoError(t, os.WriteFile(notADir, []byte("x"), 0o644))

	err := ExportToDirectory(testFeed(t, nil), notADir, nil)
	require.Error(t, err)
}

func TestExportToDirectoryKeepsFilesWrittenBeforeFailure(t *testing.T) {
	outDir := testTempdir(t)
	require.NoError(t, os.Mkdir(filepath.Join(outDir, StopTimeFileName), 0o755))

	err := ExportToDirectory(testFeed(t, nil), outDir, nil)
	var pathErr *fs.PathError
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, filepath.Join(outDir, StopTimeFileName), pathErr.Path)

	for _, name := range []string{AgencyFileName, StopFileName, RouteFileName, TripFileName} {
		assert.FileExists(t, filepath.Join(outDir, name))
	}
	assert.NoFileExists(t, filepath.Join(outDir, CalendarFileName))
}

func TestExportToDirectoryPerms(t *testing.T) {
	outDir := filepath.Join(testTempdir(t), "feed")
	require.NoError(t, ExportToDirectory(testFeed(t, nil), outDir, &ExportOpts{FilePerm: 0o600}))

	info, err := os.Stat(filepath.Join(outDir, AgencyFileName))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestExportToZip(t *testing.T) {
	outPath := filepath.Join(testTempdir(t), "feed.zip")
	feed := testFeed(t, nil)
	feed.SetStop(testStop("stop_id_1"))
	feed.SetEverydayCalendar(Calendar{})

	require.NoError(t, ExportToZip(feed, outPath, nil))

	gotZip, err := zip.OpenReader(outPath)
	require.NoError(t, err)
	defer func() { _ = gotZip.Close() }()

	var names []string
	for _, entry := range gotZip.File {
		names = append(names, entry.Name)
	}
	assert.Equal(t, FileNames(), names)

	expected := BuildFilesByFileName(feed)
	for _, name := range names {
		f, err := gotZip.Open(name)
		require.NoError(t, err)
		got, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, expected[name], string(got), name)
	}
}

func assertDirEqual(t *testing.T, expected map[string]string, dir string) {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var actualFiles []string
	for _, entry := range entries {
		actualFiles = append(actualFiles, entry.Name())
	}
	var expectedFiles []string
	for name := range expected {
		expectedFiles = append(expectedFiles, name)
	}
	slices.Sort(actualFiles)
	slices.Sort(expectedFiles)
	require.Equal(t, expectedFiles, actualFiles)

	var out strings.Builder
	for _, name := range expectedFiles {
		actual, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)

		edits := myers.ComputeEdits(span.URIFromPath(name), expected[name], string(actual))
		if len(edits) > 0 {
			t.Fail()
			fmt.Fprint(&out, gotextdiff.ToUnified("expected/"+name, "actual/"+name, expected[name], edits))
		}
	}

	if out.Len() > 0 {
		t.Log(dir, "\n", out.String())
	}
}
