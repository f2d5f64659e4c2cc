package drs

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrNoTemplateMatch is returned by [Match] when a filename fits none of the
// candidate templates. Callers treat it as "file does not conform to the
// convention" and keep whatever fields were bound elsewhere.
var ErrNoTemplateMatch = errors.New("filename matches no known template")

// Template is a filename pattern of underscore-separated named placeholders
// with a literal extension, e.g. "{variable_id}_{table_id}_{grid_label}.nc".
type Template struct {
	pattern string
	fields  []string
	ext     string
}

var placeholderRe = regexp.MustCompile(`\{([^{}_]+(?:_[^{}_]+)*)\}`)

// ParseTemplate compiles a template pattern. Placeholders must be separated
// by single underscores and followed by a literal extension; placeholder
// names must be unique within the template.
func ParseTemplate(pattern string) (Template, error) {
	matches := placeholderRe.FindAllStringSubmatch(pattern, -1)
	if len(matches) == 0 {
		return Template{}, fmt.Errorf("template %q has no placeholders", pattern)
	}

	fields := make([]string, 0, len(matches))
	seen := make(map[string]bool, len(matches))
	for _, m := range matches {
		if seen[m[1]] {
			return Template{}, fmt.Errorf("template %q repeats placeholder %q", pattern, m[1])
		}
		seen[m[1]] = true
		fields = append(fields, m[1])
	}

	// Everything after the last placeholder is the literal extension.
	ext := pattern[strings.LastIndexByte(pattern, '}')+1:]
	if ext == "" || strings.ContainsAny(ext, "{}_") {
		return Template{}, fmt.Errorf("template %q lacks a literal extension", pattern)
	}

	// The pattern must consist of exactly the placeholders joined by "_"
	// plus the extension; any other literal structure is unsupported.
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteByte('_')
		}
		b.WriteString("{" + f + "}")
	}
	b.WriteString(ext)
	if b.String() != pattern {
		return Template{}, fmt.Errorf("template %q is not underscore-delimited", pattern)
	}

	return Template{pattern: pattern, fields: fields, ext: ext}, nil
}

// MustParseTemplate is like [ParseTemplate] but panics on error. Intended for
// package-level template tables.
func MustParseTemplate(pattern string) Template {
	t, err := ParseTemplate(pattern)
	if err != nil {
		panic(err)
	}
	return t
}

// Fields returns the placeholder names in pattern order.
func (t Template) Fields() []string { return append([]string(nil), t.fields...) }

// String returns the original pattern.
func (t Template) String() string { return t.pattern }

// match binds the filename's underscore-delimited segments to the template's
// placeholders. ok is false when the extension or segment count differs.
func (t Template) match(filename string) (map[string]string, bool) {
	stem, ok := strings.CutSuffix(filename, t.ext)
	if !ok {
		return nil, false
	}
	parts := strings.Split(stem, "_")
	if len(parts) != len(t.fields) {
		return nil, false
	}
	out := make(map[string]string, len(parts))
	for i, f := range t.fields {
		out[f] = parts[i]
	}
	return out, true
}

// Match tries templates strictly in order and returns the field binding of
// the first one whose literal structure is consistent with filename.
func Match(filename string, templates []Template) (map[string]string, error) {
	for _, t := range templates {
		if fields, ok := t.match(filename); ok {
			return fields, nil
		}
	}
	return nil, fmt.Errorf("%q: %w", filename, ErrNoTemplateMatch)
}
