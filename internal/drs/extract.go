package drs

import (
	"regexp"
	"strings"
)

// ExtractAttr searches haystack with re and returns the first match, with any
// leading/trailing characters from stripChars removed (used to strip path
// separators from segment matches like "/day/"). ok is false when the regex
// finds no match, so callers can supply a default.
func ExtractAttr(haystack string, re *regexp.Regexp, stripChars string) (string, bool) {
	m := re.FindString(haystack)
	if m == "" {
		return "", false
	}
	if stripChars != "" {
		m = strings.Trim(m, stripChars)
	}
	return m, true
}
