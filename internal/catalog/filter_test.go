package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/backmassage/drscat/internal/drs"
)

func filterFixture() *Table {
	return &Table{
		Columns: []string{"activity_id", "path"},
		Rows: [][]drs.Value{
			{drs.Str("CMIP"), drs.Str("/a.nc")},
			{drs.Str("NotAnActivity"), drs.Str("/b.nc")},
			{drs.Missing, drs.Str("/c.nc")},
			{drs.Str("ScenarioMIP"), drs.Str("/d.nc")},
		},
	}
}

func TestFilterIn(t *testing.T) {
	permitted := map[string]struct{}{"CMIP": {}, "ScenarioMIP": {}}

	out := filterFixture().FilterIn("activity_id", permitted)
	assert.Equal(t, 2, out.Len())
	assert.Equal(t, "/a.nc", out.Rows[0][1].Encode())
	assert.Equal(t, "/d.nc", out.Rows[1][1].Encode())
}

// A Missing cell never passes, even when the vocabulary happens to contain
// the empty string.
func TestFilterIn_MissingNeverMatches(t *testing.T) {
	out := filterFixture().FilterIn("activity_id", map[string]struct{}{"": {}})
	assert.Equal(t, 0, out.Len())
}

func TestFilterIn_AbsentColumn(t *testing.T) {
	tbl := filterFixture()
	out := tbl.FilterIn("institution_id", map[string]struct{}{"NOAA": {}})
	assert.Equal(t, tbl.Len(), out.Len())
}

func TestFilterIn_EmptyVocabulary(t *testing.T) {
	out := filterFixture().FilterIn("activity_id", nil)
	assert.Equal(t, 0, out.Len())
}
