package drs

// ParseFunc is a pure per-file parser: one asset path in, one attribute
// record out. Implementations never fail past their own boundary.
type ParseFunc func(path string) Record

// Convention bundles the parser and fixed column schema for one DRS revision.
type Convention struct {
	ID      string
	Columns []string
	Parse   ParseFunc
}

var conventions = map[string]Convention{
	"6": {
		ID: "6",
		Columns: []string{
			"activity_id",
			"institution_id",
			"source_id",
			"experiment_id",
			"member_id",
			"table_id",
			"variable_id",
			"grid_label",
			"dcpp_init_year",
			"version",
			"time_range",
			"path",
		},
		Parse: ParseCMIP6,
	},
	"5": {
		ID: "5",
		Columns: []string{
			"product_id",
			"institute",
			"model",
			"experiment",
			"frequency",
			"modeling_realm",
			"mip_table",
			"ensemble_member",
			"variable",
			"temporal_subset",
			"version",
			"path",
		},
		Parse: ParseCMIP5,
	},
}

// Lookup returns the convention registered under id ("5" or "6").
func Lookup(id string) (Convention, bool) {
	c, ok := conventions[id]
	return c, ok
}
