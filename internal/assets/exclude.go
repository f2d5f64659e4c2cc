package assets

import (
	"regexp"
	"strings"
)

// Excluder filters asset paths against shell-style glob patterns. Unlike
// filepath.Match, "*" crosses path separators, so "*/files/*" excludes any
// path with a "files" directory component at any level.
type Excluder struct {
	res []*regexp.Regexp
}

// NewExcluder compiles the patterns. An empty pattern list excludes nothing.
func NewExcluder(patterns []string) (*Excluder, error) {
	res := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(translateGlob(p))
		if err != nil {
			return nil, err
		}
		res = append(res, re)
	}
	return &Excluder{res: res}, nil
}

// Excluded reports whether path matches any exclusion pattern.
func (e *Excluder) Excluded(path string) bool {
	for _, re := range e.res {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}

// Filter returns the paths that are not excluded, preserving order.
func (e *Excluder) Filter(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if !e.Excluded(p) {
			out = append(out, p)
		}
	}
	return out
}

// translateGlob converts a glob to an anchored regexp: "*" matches any run
// of characters (including separators), "?" any single character.
func translateGlob(pattern string) string {
	var b strings.Builder
	b.WriteString(`^`)
	for _, r := range pattern {
		switch r {
		case '*':
			b.WriteString(`.*`)
		case '?':
			b.WriteString(`.`)
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString(`$`)
	return b.String()
}
