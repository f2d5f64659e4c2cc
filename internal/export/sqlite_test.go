package export

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func TestWriteSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")
	require.NoError(t, WriteSQLite(path, fixture()))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	rows, err := db.Query(`SELECT variable_id, dcpp_init_year, version, path FROM catalog ORDER BY path`)
	require.NoError(t, err)
	defer rows.Close()

	type rec struct {
		variable string
		initYear sql.NullFloat64
		version  string
		path     string
	}
	var got []rec
	for rows.Next() {
		var r rec
		require.NoError(t, rows.Scan(&r.variable, &r.initYear, &r.version, &r.path))
		got = append(got, r)
	}
	require.NoError(t, rows.Err())

	require.Len(t, got, 2)
	assert.Equal(t, "tas", got[0].variable)
	assert.False(t, got[0].initYear.Valid, "Missing must land as NULL")
	assert.Equal(t, "v20180701", got[0].version)
	assert.Equal(t, "pr", got[1].variable)
	require.True(t, got[1].initYear.Valid)
	assert.Equal(t, 1960.0, got[1].initYear.Float64)
}

// Rerunning the export replaces the file instead of appending.
func TestWriteSQLite_Rerun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")
	require.NoError(t, WriteSQLite(path, fixture()))
	require.NoError(t, WriteSQLite(path, fixture()))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM catalog`).Scan(&n))
	assert.Equal(t, 2, n)
}
