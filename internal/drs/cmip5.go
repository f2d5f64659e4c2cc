package drs

import (
	"path/filepath"
	"regexp"
	"strings"
)

// CMIP5 encodes frequency and realm as directory markers rather than fixed
// levels, so both are recovered by regex over the full path. The marker sets
// come from the CMIP5 DRS document; alternation is leftmost-first, so "land"
// wins over "landIce" at the same offset.
var (
	cmip5FreqRe  = regexp.MustCompile(`/3hr/|/6hr/|/day/|/fx/|/mon/|/monClim/|/subhr/|/yr/`)
	cmip5RealmRe = regexp.MustCompile(`aerosol|atmos|land|landIce|ocean|ocnBgchem|seaIce`)
)

var cmip5Templates = []Template{
	MustParseTemplate("{variable}_{mip_table}_{model}_{experiment}_{ensemble_member}_{temporal_subset}.nc"),
	MustParseTemplate("{variable}_{mip_table}_{model}_{experiment}_{ensemble_member}.nc"),
}

// ParseCMIP5 extracts the attributes of a file from its CMIP5 DRS path.
// frequency and modeling_realm are set to Missing when their markers are
// absent; the row is still emitted with all other fields populated.
func ParseCMIP5(path string) Record {
	rec := Record{}
	fields, err := Match(filepath.Base(path), cmip5Templates)
	if err == nil {
		for k, v := range fields {
			rec[k] = Str(v)
		}
	}

	rec["frequency"] = Missing
	if f, ok := ExtractAttr(path, cmip5FreqRe, "/"); ok {
		rec["frequency"] = Str(f)
	}
	rec["modeling_realm"] = Missing
	if r, ok := ExtractAttr(path, cmip5RealmRe, ""); ok {
		rec["modeling_realm"] = Str(r)
	}
	rec["version"] = Str(ExtractVersion(path))
	rec["path"] = Str(path)
	if err != nil {
		return rec
	}

	instituteProductFromDir(rec, filepath.Dir(path), fields["experiment"])
	return rec
}

// instituteProductFromDir splits the parent directory on the literal
// experiment value and takes the second- and third-from-last segments of the
// portion before it. Unexpected structure (experiment absent, repeated, or
// too shallow) leaves the fields absent.
func instituteProductFromDir(rec Record, dir, experiment string) {
	if experiment == "" {
		return
	}
	parts := strings.Split(dir, experiment)
	if len(parts) != 2 {
		return
	}
	segs := strings.Split(strings.Trim(parts[0], "/"), "/")
	if len(segs) >= 2 {
		rec["institute"] = Str(segs[len(segs)-2])
	}
	if len(segs) >= 3 {
		rec["product_id"] = Str(segs[len(segs)-3])
	}
}
