// Package filter implements the typed query-filter engine: operators, the
// value payload sum type, filters over per-entity field enumerations, the
// validator deciding which (operator, payload) combinations are legal, and the
// dispatcher turning a validated filter into query-builder predicates.
package filter

import (
	"fmt"
	"strings"
)

// Operator is a filter comparison operator
type Operator int

// The zero Operator is invalid.
const (
	Equals Operator = iota + 1
	NotEquals
	LessThan
	LessThanOrEqualsTo
	GreaterThan
	GreaterThanOrEqualsTo
	GreaterThanAndLessThan
	GreaterThanOrEqualToAndLessThanOrEqualTo
	Present
	Empty
)

var operatorNames = map[Operator]string{
	Equals:                                   "Equals",
	NotEquals:                                "NotEquals",
	LessThan:                                 "LessThan",
	LessThanOrEqualsTo:                       "LessThanOrEqualsTo",
	GreaterThan:                              "GreaterThan",
	GreaterThanOrEqualsTo:                    "GreaterThanOrEqualsTo",
	GreaterThanAndLessThan:                   "GreaterThanAndLessThan",
	GreaterThanOrEqualToAndLessThanOrEqualTo: "GreaterThanOrEqualToAndLessThanOrEqualTo",
	Present:                                  "Present",
	Empty:                                    "Empty",
}

// Operators returns all valid operators in declaration order
func Operators() []Operator {
	return []Operator{
		Equals,
		NotEquals,
		LessThan,
		LessThanOrEqualsTo,
		GreaterThan,
		GreaterThanOrEqualsTo,
		GreaterThanAndLessThan,
		GreaterThanOrEqualToAndLessThanOrEqualTo,
		Present,
		Empty,
	}
}

// String returns the operator name
func (o Operator) String() string {
	if name, ok := operatorNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Operator(%d)", int(o))
}

// Valid reports whether o is one of the declared operators
func (o Operator) Valid() bool {
	_, ok := operatorNames[o]
	return ok
}

// ParseOperator parses an operator name, ignoring case
func ParseOperator(s string) (Operator, error) {
	name := strings.TrimSpace(s)
	for op, opName := range operatorNames {
		if strings.EqualFold(opName, name) {
			return op, nil
		}
	}
	return 0, fmt.Errorf("unknown operator '%s'", s)
}

// MarshalText implements encoding.TextMarshaler
func (o Operator) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid operator %d", int(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (o *Operator) UnmarshalText(text []byte) error {
	op, err := ParseOperator(string(text))
	if err != nil {
		return err
	}
	*o = op
	return nil
}

// comparison operators take exactly one value
func (o Operator) isComparison() bool {
	switch o {
	case LessThan, LessThanOrEqualsTo, GreaterThan, GreaterThanOrEqualsTo:
		return true
	}
	return false
}

// range operators take a lower and an upper bound
func (o Operator) isRange() bool {
	return o == GreaterThanAndLessThan || o == GreaterThanOrEqualToAndLessThanOrEqualTo
}

func (o Operator) isEquality() bool {
	return o == Equals || o == NotEquals
}

func (o Operator) isPresence() bool {
	return o == Present || o == Empty
}
