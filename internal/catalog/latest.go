package catalog

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/backmassage/drscat/internal/drs"
)

// SelectLatest partitions rows into logical-dataset groups (rows equal on
// every column except path and version) and, in each group holding more than
// one distinct version, keeps only the row with the greatest version under
// the typed comparator. Single-version groups are untouched. Groups are
// independent, so the per-group scans run in parallel; concatenating the
// per-group drop lists is the only synchronization point. Returns the new
// table and the number of rows removed.
func (t *Table) SelectLatest(ctx context.Context, workers int) (*Table, int, error) {
	vi := t.ColumnIndex("version")
	if vi < 0 {
		return t, 0, nil
	}
	pi := t.ColumnIndex("path")

	var groupCols []int
	for i := range t.Columns {
		if i != vi && i != pi {
			groupCols = append(groupCols, i)
		}
	}

	// Group keys in first-seen order so the scan order is deterministic.
	var order []string
	groups := make(map[string][]int)
	for i, row := range t.Rows {
		key := groupKey(row, groupCols)
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], i)
	}

	drops := make([][]int, len(order))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for gi, key := range order {
		gi := gi
		members := groups[key]
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			drops[gi] = t.staleRows(members, vi)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}

	dropSet := make(map[int]struct{})
	for _, d := range drops {
		for _, i := range d {
			dropSet[i] = struct{}{}
		}
	}
	if len(dropSet) == 0 {
		return t, 0, nil
	}

	out := &Table{Columns: t.Columns, Rows: make([][]drs.Value, 0, len(t.Rows)-len(dropSet))}
	for i, row := range t.Rows {
		if _, gone := dropSet[i]; !gone {
			out.Rows = append(out.Rows, row)
		}
	}
	return out, len(dropSet), nil
}

// staleRows returns the row indexes to remove from one group: every member
// except the first row carrying the maximum version. Groups with a single
// distinct version return nothing.
func (t *Table) staleRows(members []int, vi int) []int {
	distinct := make(map[string]struct{}, len(members))
	for _, r := range members {
		distinct[t.Rows[r][vi].Encode()] = struct{}{}
	}
	if len(distinct) < 2 {
		return nil
	}

	best := members[0]
	for _, r := range members[1:] {
		if drs.CompareVersions(t.Rows[r][vi].Encode(), t.Rows[best][vi].Encode()) > 0 {
			best = r
		}
	}
	drop := make([]int, 0, len(members)-1)
	for _, r := range members {
		if r != best {
			drop = append(drop, r)
		}
	}
	return drop
}

// groupKey encodes the grouping columns of a row. A kind tag precedes each
// cell so a Missing cell never collides with an empty string.
func groupKey(row []drs.Value, cols []int) string {
	var b strings.Builder
	for _, c := range cols {
		b.WriteByte('0' + byte(row[c].Kind()))
		b.WriteString(row[c].Encode())
		b.WriteByte(0x1f)
	}
	return b.String()
}
