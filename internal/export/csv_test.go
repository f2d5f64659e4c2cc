package export

import (
	"compress/gzip"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/drscat/internal/catalog"
	"github.com/backmassage/drscat/internal/drs"
)

func fixture() *catalog.Table {
	return &catalog.Table{
		Columns: []string{"variable_id", "dcpp_init_year", "version", "path"},
		Rows: [][]drs.Value{
			{drs.Str("tas"), drs.Missing, drs.Str("v20180701"), drs.Str("/a/tas.nc")},
			{drs.Str("pr"), drs.Num(1960), drs.Str("v20190110"), drs.Str("/b/pr.nc")},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.csv")
	require.NoError(t, WriteCSV(path, fixture()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"variable_id", "dcpp_init_year", "version", "path"},
		{"tas", "", "v20180701", "/a/tas.nc"},
		{"pr", "1960.0", "v20190110", "/b/pr.nc"},
	}, rows)
}

func TestWriteCSV_Gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.csv.gz")
	require.NoError(t, WriteCSV(path, fixture()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	gz, err := gzip.NewReader(f)
	require.NoError(t, err)
	defer gz.Close()

	rows, err := csv.NewReader(gz).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, "variable_id", rows[0][0])
}

func TestWrite_FormatSelection(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "out.csv.gz")
	require.NoError(t, Write(csvPath, fixture()))
	raw, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	// gzip magic bytes
	require.True(t, len(raw) > 2)
	assert.Equal(t, []byte{0x1f, 0x8b}, raw[:2])

	dbPath := filepath.Join(dir, "out.db")
	require.NoError(t, Write(dbPath, fixture()))
	raw, err = os.ReadFile(dbPath)
	require.NoError(t, err)
	require.True(t, len(raw) > 16)
	assert.Equal(t, "SQLite format 3\x00", string(raw[:16]))
}
