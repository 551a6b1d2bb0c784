package filter

import (
	"encoding/json"
	"fmt"
	"time"
)

// wireFilter is the pipeline transfer shape shared by Filter and CustomFilter
type wireFilter struct {
	Field          string       `json:"field,omitempty"`
	Name           string       `json:"name,omitempty"`
	Operator       Operator     `json:"operator"`
	BooleanValue   *bool        `json:"booleanValue,omitempty"`
	DateTimeValues []*time.Time `json:"dateTimeValues,omitempty"`
	IntegerValues  []*int64     `json:"integerValues,omitempty"`
	TextValues     []*string    `json:"textValues,omitempty"`
}

func (w *wireFilter) setValue(v Value) {
	switch p := v.(type) {
	case Boolean:
		b := bool(p)
		w.BooleanValue = &b
	case Temporal:
		w.DateTimeValues = p
	case Integer:
		w.IntegerValues = p
	case Text:
		w.TextValues = p
	}
}

// checkTexts applies the ParseTexts character rules to decoded text values
func (w wireFilter) checkTexts() error {
	for _, s := range w.TextValues {
		if s == nil {
			continue
		}
		if err := checkText(*s); err != nil {
			return err
		}
	}
	return nil
}

func (w wireFilter) input(field string) Input {
	return Input{
		Field:    field,
		Operator: w.Operator.String(),
		Boolean:  w.BooleanValue,
		DateTime: w.DateTimeValues,
		Integer:  w.IntegerValues,
		Text:     w.TextValues,
	}
}

// MarshalJSON implements json.Marshaler
func (f Filter[F]) MarshalJSON() ([]byte, error) {
	if !f.valid {
		return nil, fmt.Errorf("cannot marshal unvalidated filter")
	}
	w := wireFilter{Field: string(f.field), Operator: f.op}
	w.setValue(f.value)
	return json.Marshal(w)
}

// UnmarshalJSON implements json.Unmarshaler. The decoded filter goes through
// New, so illegal combinations and multiple payloads are rejected. Field
// membership is not checked here; entity lookups do that.
func (f *Filter[F]) UnmarshalJSON(data []byte) error {
	var w wireFilter
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if err := w.checkTexts(); err != nil {
		return err
	}

	v, err := w.input(w.Field).Value()
	if err != nil {
		return err
	}

	decoded, err := New(F(w.Field), w.Operator, v)
	if err != nil {
		return err
	}
	*f = decoded
	return nil
}

// MarshalJSON implements json.Marshaler
func (c CustomFilter) MarshalJSON() ([]byte, error) {
	if !c.valid {
		return nil, fmt.Errorf("cannot marshal unvalidated custom filter")
	}
	w := wireFilter{Name: c.name, Operator: c.op, TextValues: c.texts}
	return json.Marshal(w)
}

// UnmarshalJSON implements json.Unmarshaler
func (c *CustomFilter) UnmarshalJSON(data []byte) error {
	var w wireFilter
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if err := w.checkTexts(); err != nil {
		return err
	}

	decoded, err := CustomFromInput(w.input(w.Name))
	if err != nil {
		return err
	}
	*c = decoded
	return nil
}
