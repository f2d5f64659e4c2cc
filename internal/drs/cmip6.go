package drs

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// CMIP6 directory structure, below the project root:
//
//	<mip_era>/<activity_id>/<institution_id>/<source_id>/<experiment_id>/
//	    <member_id>/<table_id>/<variable_id>/<grid_label>/<version>
//
// Filename: <variable_id>_<table_id>_<source_id>_<experiment_id>_<member_id>_
// <grid_label>[_<time_range>].nc; time-invariant fields omit the last
// segment. Example with a sub-experiment:
// pr_day_CNRM-CM6-1_dcppA-hindcast_s1960-r2i1p1f1_gn_198001-198412.nc
var cmip6Templates = []Template{
	MustParseTemplate("{variable_id}_{table_id}_{source_id}_{experiment_id}_{member_id}_{grid_label}_{time_range}.nc"),
	MustParseTemplate("{variable_id}_{table_id}_{source_id}_{experiment_id}_{member_id}_{grid_label}.nc"),
}

// ParseCMIP6 extracts the attributes of a file from its CMIP6 DRS path.
// Extraction is best-effort: a filename that matches no template yields a
// record holding only path and the defaulted version, and each
// directory-derived field is recovered independently so one malformed level
// never discards the rest.
func ParseCMIP6(path string) Record {
	rec := Record{}
	fields, err := Match(filepath.Base(path), cmip6Templates)
	if err == nil {
		for k, v := range fields {
			rec[k] = Str(v)
		}
	}
	rec["path"] = Str(path)
	rec["version"] = Str(ExtractVersion(path))
	if err != nil {
		return rec
	}

	parent := strings.Trim(filepath.Dir(path), "/")

	// Directory structure is the canonical source for grid_label; it
	// overrides the filename-derived value when recoverable.
	if gl, derr := gridLabelFromDir(parent, fields["variable_id"]); derr == nil {
		rec["grid_label"] = Str(gl)
	}
	if act, inst, derr := activityInstitutionFromDir(parent, fields["source_id"]); derr == nil {
		rec["activity_id"] = Str(act)
		rec["institution_id"] = Str(inst)
	}

	splitDCPPMember(rec)
	return rec
}

// gridLabelFromDir returns the path segment immediately following the
// variable-named directory.
func gridLabelFromDir(parent, variable string) (string, error) {
	needle := "/" + variable + "/"
	i := strings.Index(parent, needle)
	if variable == "" || i < 0 {
		return "", fmt.Errorf("no %q directory in %q", variable, parent)
	}
	after := strings.Trim(parent[i+len(needle):], "/")
	return strings.SplitN(after, "/", 2)[0], nil
}

// activityInstitutionFromDir returns the second-to-last and last directory
// segments preceding the source-named directory.
func activityInstitutionFromDir(parent, source string) (string, string, error) {
	before := parent
	if source != "" {
		before = strings.SplitN(parent, "/"+source+"/", 2)[0]
	}
	segs := strings.Split(strings.Trim(before, "/"), "/")
	if len(segs) < 2 {
		return "", "", fmt.Errorf("too few directory levels before %q in %q", source, parent)
	}
	return segs[len(segs)-2], segs[len(segs)-1], nil
}

// splitDCPPMember post-processes member_id. Initialized-prediction members
// carry a composite identifier like "s1960-r2i1p1f1": the numeric prefix
// becomes the float field dcpp_init_year and member_id is rewritten to the
// trailing ensemble token. All other members get a Missing dcpp_init_year.
func splitDCPPMember(rec Record) {
	member := rec.Get("member_id")
	if member.IsMissing() {
		return
	}
	m := member.StringVal()
	rec["dcpp_init_year"] = Missing
	if !strings.HasPrefix(m, "s") {
		return
	}
	parts := strings.Split(m, "-")
	year, err := strconv.ParseFloat(strings.TrimPrefix(parts[0], "s"), 64)
	if err != nil {
		return
	}
	rec["dcpp_init_year"] = Num(year)
	rec["member_id"] = Str(parts[len(parts)-1])
}
