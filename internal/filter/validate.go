package filter

import (
	"fmt"
	"strings"

	"github.com/NikitaCOEUR/graphsh/internal/derrors"
)

// Check decides whether op is legal for the payload v on field. It returns nil
// or an *derrors.InvalidFilterError naming the field, the operator and the
// supported alternatives. Check is pure and deterministic.
//
// The first populated payload decides the rules: boolean, date-time, integer,
// text, then no payload at all.
func Check(field string, op Operator, v Value) error {
	if !op.Valid() {
		return invalid(field, op, fmt.Sprintf("unknown operator %s for field '%s'", op, field))
	}

	switch kind := payloadKind(v); kind {
	case KindBoolean:
		if op.isEquality() {
			return nil
		}
		return invalid(field, op, fmt.Sprintf(
			"boolean filters on field '%s' only support the Equals and NotEquals operators, got %s",
			field, op))

	case KindTemporal, KindInteger:
		if arityAllows(op, v.Len()) {
			return nil
		}
		return invalid(field, op, fmt.Sprintf(
			"%s filters on field '%s' support Equals and NotEquals with one or more values, "+
				"LessThan, LessThanOrEqualsTo, GreaterThan and GreaterThanOrEqualsTo with exactly one value, "+
				"GreaterThanAndLessThan and GreaterThanOrEqualToAndLessThanOrEqualTo with exactly two values (lower and upper bound); "+
				"got %s with %d value(s)",
			kind, field, op, v.Len()))

	case KindText:
		if op.isEquality() {
			return nil
		}
		return invalid(field, op, fmt.Sprintf(
			"text filters on field '%s' only support the Equals and NotEquals operators, got %s; "+
				"use Present or Empty without a value to test whether the field is set",
			field, op))

	default:
		if op.isPresence() {
			return nil
		}
		return invalid(field, op, fmt.Sprintf(
			"operator %s on field '%s' needs a value: use Present or Empty, "+
				"or supply a boolean, date-time, integer or text value",
			op, field))
	}
}

// CheckCustom validates a custom filter: Present and Empty take no values,
// Equals and NotEquals take one or more text values.
func CheckCustom(name string, op Operator, texts []*string) error {
	if strings.TrimSpace(name) == "" {
		return invalid(name, op, "custom filters need a non-empty name")
	}
	if !op.Valid() {
		return invalid(name, op, fmt.Sprintf("unknown operator %s for custom filter '%s'", op, name))
	}

	switch {
	case len(texts) == 0 && op.isPresence():
		return nil
	case len(texts) > 0 && op.isEquality():
		return nil
	case len(texts) == 0:
		return invalid(name, op, fmt.Sprintf(
			"custom filter '%s' with operator %s needs text values, or use Present or Empty without values",
			name, op))
	default:
		return invalid(name, op, fmt.Sprintf(
			"custom filter '%s' only supports Equals and NotEquals with text values, got %s",
			name, op))
	}
}

// arityAllows applies the ordered-value arity rules shared by date-time and
// integer payloads.
func arityAllows(op Operator, n int) bool {
	switch {
	case op.isEquality():
		return n > 0
	case op.isComparison():
		return n == 1
	case op.isRange():
		return n == 2
	}
	return false
}

func invalid(field string, op Operator, reason string) error {
	return derrors.NewInvalidFilterError(field, op.String(), reason)
}
