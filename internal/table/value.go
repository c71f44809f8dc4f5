package table

import (
	"encoding/json"
	"strconv"
	"time"
)

// Kind identifies the type held by a Value.
type Kind int

const (
	KindMissing Kind = iota
	KindText
	KindNumber
	KindBool
	KindDate
)

// Value is a single table cell. Cells extracted from HTML begin as text (or
// missing, for blank source cells) and may be upgraded to a typed kind by the
// Table coercion methods.
type Value struct {
	Kind   Kind
	Text   string
	Number float64
	Bool   bool
	Date   time.Time
}

// Missing returns the sentinel for a blank source cell.
func Missing() Value {
	return Value{Kind: KindMissing}
}

// Str returns a text value.
func Str(s string) Value {
	return Value{Kind: KindText, Text: s}
}

// Num returns a numeric value.
func Num(f float64) Value {
	return Value{Kind: KindNumber, Number: f}
}

// BoolVal returns a boolean value.
func BoolVal(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

// DateVal returns a date value.
func DateVal(t time.Time) Value {
	return Value{Kind: KindDate, Date: t}
}

// IsMissing reports whether the value is the missing sentinel.
func (v Value) IsMissing() bool {
	return v.Kind == KindMissing
}

// String renders the value for text and CSV output. Missing cells render as
// an empty string.
func (v Value) String() string {
	switch v.Kind {
	case KindText:
		return v.Text
	case KindNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindDate:
		return v.Date.Format("2006-01-02")
	default:
		return ""
	}
}

// MarshalJSON encodes the value by kind; missing cells encode as null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindText:
		return json.Marshal(v.Text)
	case KindNumber:
		return json.Marshal(v.Number)
	case KindBool:
		return json.Marshal(v.Bool)
	case KindDate:
		return json.Marshal(v.Date.Format("2006-01-02"))
	default:
		return []byte("null"), nil
	}
}

// dateLayouts covers the date formats basketball-reference renders across
// game logs ("2018-06-08"), schedules ("Fri, Oct 27, 2017") and box score
// headings ("June 8, 2018").
var dateLayouts = []string{
	"2006-01-02",
	"Mon, Jan 2, 2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

// ParseDate attempts the known source date layouts in order.
// Returns the zero time if none match.
func ParseDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
