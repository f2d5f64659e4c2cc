package drs

import "strconv"

// Kind discriminates the value variants a catalog cell can hold.
type Kind uint8

const (
	KindMissing Kind = iota // Unset sentinel (NaN analog); encodes to "".
	KindString
	KindNumber
)

// Value is a single attribute value: a string, a float, or the explicit
// Missing sentinel. The zero Value is Missing.
type Value struct {
	kind Kind
	str  string
	num  float64
}

// Missing is the unset sentinel used for absent fields.
var Missing = Value{}

// Str returns a string Value.
func Str(s string) Value { return Value{kind: KindString, str: s} }

// Num returns a numeric Value.
func Num(f float64) Value { return Value{kind: KindNumber, num: f} }

// Kind returns the value variant.
func (v Value) Kind() Kind { return v.kind }

// IsMissing reports whether v is the unset sentinel.
func (v Value) IsMissing() bool { return v.kind == KindMissing }

// StringVal returns the string content; empty for non-string values.
func (v Value) StringVal() string {
	if v.kind != KindString {
		return ""
	}
	return v.str
}

// NumberVal returns the numeric content and whether v holds a number.
func (v Value) NumberVal() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// Encode renders v as a CSV cell: "" for Missing, the string content, or the
// float with one decimal (1960 -> "1960.0").
func (v Value) Encode() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', 1, 64)
	default:
		return ""
	}
}

// Record is the per-file attribute mapping produced by a convention parser.
// After parsing it always contains "path" and a defaulted "version"; all
// other fields are convention-dependent and may be absent.
type Record map[string]Value

// Get returns the value for field, or Missing when absent.
func (r Record) Get(field string) Value {
	if v, ok := r[field]; ok {
		return v
	}
	return Missing
}
