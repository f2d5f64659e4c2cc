package drs

import (
	"regexp"
	"strconv"
)

// DefaultVersion is used when no version token can be recovered from a path.
// It is the lowest-ranking token, so unknown versions never win selection.
const DefaultVersion = "v0"

// versionRe matches a date-coded version tag (v + 8 digits) or the
// single-digit fallback form (v + 1 digit) anywhere in a path.
var versionRe = regexp.MustCompile(`v\d{4}\d{2}\d{2}|v\d{1}`)

// ExtractVersion recovers the version token from a full path, defaulting to
// [DefaultVersion] when absent.
func ExtractVersion(path string) string {
	v, ok := ExtractAttr(path, versionRe, "")
	if !ok {
		return DefaultVersion
	}
	return v
}

// versionRank orders token forms: date-coded above single-digit above
// anything unrecognized. Within a form, tokens compare numerically.
type versionRank uint8

const (
	rankUnknown versionRank = iota
	rankDigit
	rankDate
)

// Version is a parsed version token with a total order: date-coded tokens
// rank above single-digit tokens, which rank above unrecognized strings.
// This replaces the incidental lexicographic ordering of mixed-format
// tokens with an explicit comparator.
type Version struct {
	raw  string
	rank versionRank
	num  int64
}

var (
	dateFormRe  = regexp.MustCompile(`^v\d{8}$`)
	digitFormRe = regexp.MustCompile(`^v\d$`)
)

// ParseVersion classifies a version token.
func ParseVersion(s string) Version {
	switch {
	case dateFormRe.MatchString(s):
		n, _ := strconv.ParseInt(s[1:], 10, 64)
		return Version{raw: s, rank: rankDate, num: n}
	case digitFormRe.MatchString(s):
		n, _ := strconv.ParseInt(s[1:], 10, 64)
		return Version{raw: s, rank: rankDigit, num: n}
	default:
		return Version{raw: s, rank: rankUnknown}
	}
}

// Compare returns -1, 0, or +1 as v sorts below, equal to, or above o.
func (v Version) Compare(o Version) int {
	if v.rank != o.rank {
		if v.rank < o.rank {
			return -1
		}
		return 1
	}
	if v.num != o.num {
		if v.num < o.num {
			return -1
		}
		return 1
	}
	// Unrecognized tokens of the same rank fall back to string order so the
	// comparator stays total and deterministic.
	switch {
	case v.raw < o.raw:
		return -1
	case v.raw > o.raw:
		return 1
	default:
		return 0
	}
}

// CompareVersions compares two raw version tokens.
func CompareVersions(a, b string) int {
	return ParseVersion(a).Compare(ParseVersion(b))
}
