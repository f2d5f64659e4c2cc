package catalog

// FilterIn returns a new table retaining only rows whose value for field is
// a member of permitted. Rows with Missing or out-of-vocabulary values are
// dropped silently: encountered trees legitimately contain non-conforming
// experimental data the catalog should not surface. A field absent from the
// schema leaves the table unchanged.
func (t *Table) FilterIn(field string, permitted map[string]struct{}) *Table {
	out := &Table{Columns: t.Columns}
	fi := t.ColumnIndex(field)
	if fi < 0 {
		out.Rows = t.Rows
		return out
	}
	for _, row := range t.Rows {
		if _, ok := permitted[row[fi].StringVal()]; ok && !row[fi].IsMissing() {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}
