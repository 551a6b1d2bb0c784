package filter

import (
	"fmt"
	"strings"
	"time"
)

// Field is the constraint satisfied by per-entity field enumerations
type Field interface {
	~string
}

// Filter restricts one field of entity kind F. Filters are immutable and can
// only be obtained from New (or by decoding, which goes through New), so every
// Filter other than the zero value has passed Check.
type Filter[F Field] struct {
	field F
	op    Operator
	value Value
	valid bool
}

// New validates the combination and returns the filter
func New[F Field](field F, op Operator, v Value) (Filter[F], error) {
	if strings.TrimSpace(string(field)) == "" {
		return Filter[F]{}, invalid("", op, "filters need a field")
	}
	if err := Check(string(field), op, v); err != nil {
		return Filter[F]{}, err
	}

	if payloadKind(v) == KindNone {
		v = None{}
	} else {
		v = v.clone()
	}

	return Filter[F]{field: field, op: op, value: v, valid: true}, nil
}

// MustNew is like New but panics on an invalid combination.
// Use it for filters fixed at compile time.
func MustNew[F Field](field F, op Operator, v Value) Filter[F] {
	f, err := New(field, op, v)
	if err != nil {
		panic(err)
	}
	return f
}

// Field returns the filtered field
func (f Filter[F]) Field() F {
	return f.field
}

// Operator returns the filter operator
func (f Filter[F]) Operator() Operator {
	return f.op
}

// Value returns a copy of the payload
func (f Filter[F]) Value() Value {
	if f.value == nil {
		return None{}
	}
	return f.value.clone()
}

// Valid reports whether f was built by New
func (f Filter[F]) Valid() bool {
	return f.valid
}

// ApplyTo implements Applier
func (f Filter[F]) ApplyTo(b Builder) {
	Apply(b, f)
}

// String returns a human-readable form, e.g. "CreatedAt GreaterThan [2024-01-01T00:00:00Z]"
func (f Filter[F]) String() string {
	return describe(string(f.field), f.op, f.value)
}

// CustomFilter is a free-form filter addressed by name rather than by a field
// enumeration, used for UI-extension fields.
type CustomFilter struct {
	name  string
	op    Operator
	texts Text
	valid bool
}

// NewCustom validates the combination and returns the custom filter
func NewCustom(name string, op Operator, texts Text) (CustomFilter, error) {
	if err := CheckCustom(name, op, texts); err != nil {
		return CustomFilter{}, err
	}

	var copied Text
	if len(texts) > 0 {
		copied = texts.clone().(Text)
	}

	return CustomFilter{name: name, op: op, texts: copied, valid: true}, nil
}

// Name returns the custom field name
func (c CustomFilter) Name() string {
	return c.name
}

// Operator returns the filter operator
func (c CustomFilter) Operator() Operator {
	return c.op
}

// Texts returns a copy of the text values
func (c CustomFilter) Texts() Text {
	if len(c.texts) == 0 {
		return nil
	}
	return c.texts.clone().(Text)
}

// Valid reports whether c was built by NewCustom
func (c CustomFilter) Valid() bool {
	return c.valid
}

// ApplyTo implements Applier
func (c CustomFilter) ApplyTo(b Builder) {
	ApplyCustom(b, c)
}

// String returns a human-readable form
func (c CustomFilter) String() string {
	return describe(c.name, c.op, c.texts)
}

func describe(name string, op Operator, v Value) string {
	if payloadKind(v) == KindNone {
		return fmt.Sprintf("%s %s", name, op)
	}

	parts := make([]string, 0, v.Len())
	for _, arg := range v.args() {
		switch a := arg.(type) {
		case nil:
			parts = append(parts, "null")
		case time.Time:
			parts = append(parts, a.Format(time.RFC3339))
		case string:
			parts = append(parts, fmt.Sprintf("%q", a))
		default:
			parts = append(parts, fmt.Sprint(a))
		}
	}

	return fmt.Sprintf("%s %s [%s]", name, op, strings.Join(parts, ", "))
}
