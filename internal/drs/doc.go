// Package drs infers dataset metadata from CMIP file paths according to the
// Data Reference Syntax conventions.
//
// Types:
//   - Template (underscore-delimited filename pattern with named placeholders)
//   - Value / Record (per-file attribute mapping with an explicit Missing sentinel)
//   - Convention (column schema + parser for one DRS revision)
//   - Version (typed version token for latest-version ranking)
//
// Functions:
//   - Match(filename, templates) returns a field map.
//     Templates tried in order; first structural match wins. The full
//     template (with time range) is listed before the gridspec template so
//     time-invariant files are not mis-bound.
//   - ExtractAttr(haystack, re, stripChars) returns (value, ok).
//     Single regex search over the whole path; never errors.
//   - ParseCMIP6 / ParseCMIP5 turn a file path into a Record.
//     Best-effort: sub-extraction failures leave fields absent; path and
//     version are always present.
//
// Split along these boundaries: template.go, extract.go, record.go,
// version.go, cmip6.go, cmip5.go, convention.go.
package drs
