package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/drscat/internal/drs"
)

func latestFixture() *Table {
	return &Table{
		Columns: []string{"source_id", "variable_id", "version", "path"},
		Rows: [][]drs.Value{
			{drs.Str("GFDL-CM4"), drs.Str("tas"), drs.Str("v20180701"), drs.Str("/a/v20180701/tas.nc")},
			{drs.Str("GFDL-CM4"), drs.Str("tas"), drs.Str("v20190101"), drs.Str("/a/v20190101/tas.nc")},
			{drs.Str("GFDL-CM4"), drs.Str("pr"), drs.Str("v20180701"), drs.Str("/a/v20180701/pr.nc")},
			{drs.Str("CESM2"), drs.Str("tas"), drs.Str("v20180701"), drs.Str("/b/v20180701/tas.nc")},
		},
	}
}

func TestSelectLatest(t *testing.T) {
	out, removed, err := latestFixture().SelectLatest(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, 1, removed)
	assert.Equal(t, 3, out.Len())

	// The stale GFDL-CM4/tas row is gone; survivors keep their order.
	pi := out.ColumnIndex("path")
	var paths []string
	for _, row := range out.Rows {
		paths = append(paths, row[pi].Encode())
	}
	assert.Equal(t, []string{
		"/a/v20190101/tas.nc",
		"/a/v20180701/pr.nc",
		"/b/v20180701/tas.nc",
	}, paths)
}

// A group whose rows all share one version keeps every row: multiple files
// of the same dataset version (distinct time ranges collapse into the same
// group here) must all survive.
func TestSelectLatest_SingleVersionGroupUntouched(t *testing.T) {
	tbl := &Table{
		Columns: []string{"variable_id", "version", "path"},
		Rows: [][]drs.Value{
			{drs.Str("tas"), drs.Str("v20180701"), drs.Str("/a/tas_1.nc")},
			{drs.Str("tas"), drs.Str("v20180701"), drs.Str("/a/tas_2.nc")},
		},
	}
	out, removed, err := tbl.SelectLatest(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 0, removed)
	assert.Equal(t, 2, out.Len())
}

// The defaulted v0 always loses against a recovered version.
func TestSelectLatest_DefaultVersionLoses(t *testing.T) {
	tbl := &Table{
		Columns: []string{"variable_id", "version", "path"},
		Rows: [][]drs.Value{
			{drs.Str("tas"), drs.Str("v0"), drs.Str("/unversioned/tas.nc")},
			{drs.Str("tas"), drs.Str("v1"), drs.Str("/v1/tas.nc")},
		},
	}
	out, removed, err := tbl.SelectLatest(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	require.Equal(t, 1, out.Len())
	assert.Equal(t, "/v1/tas.nc", out.Rows[0][2].Encode())
}

// Missing and empty-string cells group separately, so a partial record never
// merges into a fully parsed dataset's group.
func TestSelectLatest_MissingCellsGroupApart(t *testing.T) {
	tbl := &Table{
		Columns: []string{"variable_id", "version", "path"},
		Rows: [][]drs.Value{
			{drs.Str(""), drs.Str("v1"), drs.Str("/a.nc")},
			{drs.Missing, drs.Str("v2"), drs.Str("/b.nc")},
		},
	}
	out, removed, err := tbl.SelectLatest(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 0, removed)
	assert.Equal(t, 2, out.Len())
}

func TestSelectLatest_NoVersionColumn(t *testing.T) {
	tbl := &Table{Columns: []string{"path"}, Rows: [][]drs.Value{{drs.Str("/a.nc")}}}
	out, removed, err := tbl.SelectLatest(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 0, removed)
	assert.Same(t, tbl, out)
}
