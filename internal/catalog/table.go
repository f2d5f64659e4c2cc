// Package catalog assembles per-file attribute records into a tabular
// catalog with a fixed column schema, and provides the row-level
// post-processing steps: controlled-vocabulary filtering and latest-version
// selection.
package catalog

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/backmassage/drscat/internal/drs"
)

// Table is an ordered collection of rows sharing one column schema. The
// table owns its rows; columns keep a fixed, deterministic order regardless
// of which fields individual parse calls produced.
type Table struct {
	Columns []string
	Rows    [][]drs.Value
}

// ColumnIndex returns the position of name in the schema, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Rows) }

// SortByPath orders rows by their path column ascending. Tables without a
// path column are left untouched.
func (t *Table) SortByPath() {
	pi := t.ColumnIndex("path")
	if pi < 0 {
		return
	}
	sort.SliceStable(t.Rows, func(i, j int) bool {
		return t.Rows[i][pi].Encode() < t.Rows[j][pi].Encode()
	})
}

// BuildStats counts parse outcomes for the run summary.
type BuildStats struct {
	Assets  int // Paths handed to the parser after exclusion.
	Partial int // Records where the filename matched no template.
}

// Build invokes the convention parser once per path (workers in parallel,
// each writing its own pre-allocated slot, so results reassemble
// positionally) and projects every record onto columns, filling absent
// fields with the Missing marker. Rows come back sorted by path; two builds
// over the same inputs yield identical tables.
func Build(ctx context.Context, paths []string, conv drs.Convention, columns []string, workers int) (*Table, BuildStats, error) {
	if len(columns) == 0 {
		columns = conv.Columns
	}
	stats := BuildStats{Assets: len(paths)}

	records := make([]drs.Record, len(paths))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, p := range paths {
		i, p := i, p
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			records[i] = conv.Parse(p)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, stats, err
	}

	t := &Table{
		Columns: append([]string(nil), columns...),
		Rows:    make([][]drs.Value, 0, len(records)),
	}
	for _, rec := range records {
		if isPartial(rec) {
			stats.Partial++
		}
		row := make([]drs.Value, len(t.Columns))
		for j, c := range t.Columns {
			row[j] = rec.Get(c)
		}
		t.Rows = append(t.Rows, row)
	}
	t.SortByPath()
	return t, stats, nil
}

// isPartial reports whether rec carries nothing beyond the always-present
// path/version pair and explicit Missing markers, i.e. the filename matched
// no template.
func isPartial(rec drs.Record) bool {
	for field, v := range rec {
		if field == "path" || field == "version" || v.IsMissing() {
			continue
		}
		return false
	}
	return true
}
