package filter

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/NikitaCOEUR/graphsh/internal/derrors"
)

// NullLiteral marks a null element in raw shell or file values. Surrounding
// whitespace is ignored for every value form.
const NullLiteral = "null"

// DateTimeLayouts are the accepted date-time input layouts, tried in order.
// Layouts without a zone are read in the caller's location.
var DateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Input is the user-facing description of one filter: a field name, an
// operator name and a value in at most one of four forms. A nil form was not
// supplied. The host is expected to keep the forms mutually exclusive, but
// Value checks again.
type Input struct {
	Field    string
	Operator string
	Boolean  *bool
	DateTime []*time.Time
	Integer  []*int64
	Text     []*string
}

// FieldLookup resolves a field name for one entity kind
type FieldLookup[F Field] func(name string) (F, error)

// Forms returns the kinds of the supplied value forms
func (in Input) Forms() []Kind {
	var forms []Kind
	if in.Boolean != nil {
		forms = append(forms, KindBoolean)
	}
	if in.DateTime != nil {
		forms = append(forms, KindTemporal)
	}
	if in.Integer != nil {
		forms = append(forms, KindInteger)
	}
	if in.Text != nil {
		forms = append(forms, KindText)
	}
	return forms
}

// Value returns the payload described by the supplied form
func (in Input) Value() (Value, error) {
	forms := in.Forms()
	if len(forms) > 1 {
		names := make([]string, len(forms))
		for i, k := range forms {
			names[i] = k.String()
		}
		return nil, derrors.NewValidationError(in.Field, fmt.Sprintf(
			"values for field '%s' were supplied in %d forms (%s); use exactly one of boolean, date-time, integer or text",
			in.Field, len(forms), strings.Join(names, ", ")), nil)
	}

	switch {
	case in.Boolean != nil:
		return Boolean(*in.Boolean), nil
	case in.DateTime != nil:
		return Temporal(in.DateTime), nil
	case in.Integer != nil:
		return Integer(in.Integer), nil
	case in.Text != nil:
		return Text(in.Text), nil
	}
	return None{}, nil
}

// FromInput resolves the field with lookup, parses the operator and builds a
// validated filter.
func FromInput[F Field](in Input, lookup FieldLookup[F]) (Filter[F], error) {
	field, err := lookup(in.Field)
	if err != nil {
		return Filter[F]{}, err
	}

	op, err := ParseOperator(in.Operator)
	if err != nil {
		return Filter[F]{}, derrors.NewInvalidFilterError(in.Field, in.Operator,
			fmt.Sprintf("%v for field '%s'; supported operators: %s", err, in.Field, operatorList()))
	}

	v, err := in.Value()
	if err != nil {
		return Filter[F]{}, err
	}

	return New(field, op, v)
}

// CustomFromInput builds a validated custom filter. in.Field is the custom
// field name; only the text form is accepted.
func CustomFromInput(in Input) (CustomFilter, error) {
	if in.Boolean != nil || in.DateTime != nil || in.Integer != nil {
		return CustomFilter{}, derrors.NewValidationError(in.Field, fmt.Sprintf(
			"custom filter '%s' only accepts text values", in.Field), nil)
	}

	op, err := ParseOperator(in.Operator)
	if err != nil {
		return CustomFilter{}, derrors.NewInvalidFilterError(in.Field, in.Operator,
			fmt.Sprintf("%v for custom filter '%s'", err, in.Field))
	}

	return NewCustom(in.Field, op, Text(in.Text))
}

// ParseBoolean parses a shell boolean
func ParseBoolean(raw string) (bool, error) {
	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, derrors.NewValidationError("", fmt.Sprintf("cannot parse '%s' as a boolean", raw), err)
	}
	return b, nil
}

// ParseDateTimes parses raw date-times. Values without a zone are read in loc
// (UTC when loc is nil).
func ParseDateTimes(raw []string, loc *time.Location) ([]*time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}

	out := make([]*time.Time, len(raw))
	for i, s := range raw {
		s = strings.TrimSpace(s)
		if s == NullLiteral {
			continue
		}
		t, err := parseDateTime(s, loc)
		if err != nil {
			return nil, err
		}
		out[i] = &t
	}
	return out, nil
}

func parseDateTime(s string, loc *time.Location) (time.Time, error) {
	for _, layout := range DateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, derrors.NewValidationError("", fmt.Sprintf(
		"cannot parse '%s' as a date-time (expected RFC 3339, 2006-01-02T15:04:05 or 2006-01-02)", s), nil)
}

// ParseIntegers parses raw base-10 integers
func ParseIntegers(raw []string) ([]*int64, error) {
	out := make([]*int64, len(raw))
	for i, s := range raw {
		s = strings.TrimSpace(s)
		if s == NullLiteral {
			continue
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, derrors.NewValidationError("", fmt.Sprintf("cannot parse '%s' as an integer", s), err)
		}
		out[i] = &n
	}
	return out, nil
}

// ParseTexts converts raw strings, mapping the null literal to a null element.
// Other values are kept verbatim. Invalid UTF-8 and control characters that a
// GraphQL string cannot carry are rejected.
func ParseTexts(raw []string) ([]*string, error) {
	out := make([]*string, len(raw))
	for i := range raw {
		if strings.TrimSpace(raw[i]) == NullLiteral {
			continue
		}
		s := raw[i]
		if err := checkText(s); err != nil {
			return nil, err
		}
		out[i] = &s
	}
	return out, nil
}

// checkText rejects runes that strconv.Quote, and so the query renderer,
// would escape in a form GraphQL cannot parse
func checkText(s string) error {
	if !utf8.ValidString(s) {
		return derrors.NewValidationError("", fmt.Sprintf("text value %q is not valid UTF-8", s), nil)
	}
	for _, r := range s {
		switch {
		case r == '\t', r == '\n', r == '\r', r == '\b', r == '\f':
		case r < 0x20, r == 0x7f, r > 0xffff && !strconv.IsPrint(r):
			return derrors.NewValidationError("", fmt.Sprintf(
				"text value %q contains the control character %U", s, r), nil)
		}
	}
	return nil
}

func operatorList() string {
	ops := Operators()
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.String()
	}
	return strings.Join(names, ", ")
}
