package filter

import "time"

// Kind identifies which payload variant a Value holds
type Kind int

// Payload kinds, in dispatch precedence order.
const (
	KindNone Kind = iota
	KindBoolean
	KindTemporal
	KindInteger
	KindText
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindTemporal:
		return "date-time"
	case KindInteger:
		return "integer"
	case KindText:
		return "text"
	default:
		return "none"
	}
}

// Value is the payload of a filter. It is sealed: the only implementations are
// None, Boolean, Temporal, Integer and Text, so a filter can never carry two
// payloads at once.
type Value interface {
	// Kind returns the variant held
	Kind() Kind
	// Len returns the number of values (1 for Boolean, 0 for None)
	Len() int

	args() []any
	clone() Value
}

// None is the absence of a payload
type None struct{}

// Boolean is a single boolean payload
type Boolean bool

// Temporal is an ordered sequence of nullable timestamps
type Temporal []*time.Time

// Integer is an ordered sequence of nullable integers
type Integer []*int64

// Text is an ordered sequence of nullable strings
type Text []*string

// Kind implements Value
func (None) Kind() Kind { return KindNone }

// Len implements Value
func (None) Len() int { return 0 }

func (None) args() []any    { return nil }
func (n None) clone() Value { return n }

// Kind implements Value
func (Boolean) Kind() Kind { return KindBoolean }

// Len implements Value
func (Boolean) Len() int { return 1 }

func (b Boolean) args() []any  { return []any{bool(b)} }
func (b Boolean) clone() Value { return b }

// Kind implements Value
func (Temporal) Kind() Kind { return KindTemporal }

// Len implements Value
func (t Temporal) Len() int { return len(t) }

func (t Temporal) args() []any {
	out := make([]any, len(t))
	for i, v := range t {
		if v != nil {
			out[i] = *v
		}
	}
	return out
}

func (t Temporal) clone() Value {
	out := make(Temporal, len(t))
	for i, v := range t {
		if v != nil {
			c := *v
			out[i] = &c
		}
	}
	return out
}

// Kind implements Value
func (Integer) Kind() Kind { return KindInteger }

// Len implements Value
func (n Integer) Len() int { return len(n) }

func (n Integer) args() []any {
	out := make([]any, len(n))
	for i, v := range n {
		if v != nil {
			out[i] = *v
		}
	}
	return out
}

func (n Integer) clone() Value {
	out := make(Integer, len(n))
	for i, v := range n {
		if v != nil {
			c := *v
			out[i] = &c
		}
	}
	return out
}

// Kind implements Value
func (Text) Kind() Kind { return KindText }

// Len implements Value
func (s Text) Len() int { return len(s) }

func (s Text) args() []any {
	out := make([]any, len(s))
	for i, v := range s {
		if v != nil {
			out[i] = *v
		}
	}
	return out
}

func (s Text) clone() Value {
	out := make(Text, len(s))
	for i, v := range s {
		if v != nil {
			c := *v
			out[i] = &c
		}
	}
	return out
}

// Times builds a Temporal payload from non-null timestamps
func Times(values ...time.Time) Temporal {
	out := make(Temporal, len(values))
	for i := range values {
		out[i] = &values[i]
	}
	return out
}

// Ints builds an Integer payload from non-null integers
func Ints(values ...int64) Integer {
	out := make(Integer, len(values))
	for i := range values {
		out[i] = &values[i]
	}
	return out
}

// Strings builds a Text payload from non-null strings
func Strings(values ...string) Text {
	out := make(Text, len(values))
	for i := range values {
		out[i] = &values[i]
	}
	return out
}

// payloadKind returns the effective kind of v: nil values and empty sequences
// count as no payload.
func payloadKind(v Value) Kind {
	if v == nil || v.Len() == 0 {
		return KindNone
	}
	return v.Kind()
}

// Args returns the payload values as builder arguments: bool, time.Time,
// int64, string, or nil for a null element.
func Args(v Value) []any {
	if v == nil {
		return nil
	}
	return v.args()
}
