package filter

import "fmt"

// Builder is the predicate capability a query builder exposes to the
// dispatcher. Values are bool, time.Time, int64, string, or nil for null.
//
// Builders accumulate state and are single-writer: do not share one across
// goroutines without external locking.
type Builder interface {
	WhereEquals(field string, values []any)
	WhereNotEquals(field string, values []any)
	WhereLessThan(field string, value any)
	WhereLessThanOrEqualsTo(field string, value any)
	WhereGreaterThan(field string, value any)
	WhereGreaterThanOrEqualsTo(field string, value any)
	// WhereRange restricts field between lower and upper. inclusive selects
	// >= and <= instead of > and <.
	WhereRange(field string, lower, upper any, inclusive bool)
	WherePresent(field string)
	WhereEmpty(field string)
}

// Applier is anything that adds its predicate to a Builder. Filters of every
// entity kind and custom filters satisfy it.
type Applier interface {
	ApplyTo(b Builder)
	String() string
}

// Apply adds the predicate for f to b, making exactly one builder call.
// f must come from New; applying an unvalidated filter panics.
func Apply[F Field](b Builder, f Filter[F]) {
	if !f.valid {
		panic(fmt.Sprintf("filter: Apply called with unvalidated filter %q", f.String()))
	}
	dispatch(b, string(f.field), f.op, f.value)
}

// ApplyCustom adds the predicate for c to b.
// c must come from NewCustom; applying an unvalidated filter panics.
func ApplyCustom(b Builder, c CustomFilter) {
	if !c.valid {
		panic(fmt.Sprintf("filter: ApplyCustom called with unvalidated filter %q", c.String()))
	}
	dispatch(b, c.name, c.op, c.texts)
}

// dispatch routes on the populated payload: boolean, date-time, integer, text,
// then operator only.
func dispatch(b Builder, field string, op Operator, v Value) {
	switch payloadKind(v) {
	case KindBoolean, KindTemporal, KindInteger, KindText:
		args := v.args()
		switch {
		case op == Equals:
			b.WhereEquals(field, args)
		case op == NotEquals:
			b.WhereNotEquals(field, args)
		case op == LessThan:
			b.WhereLessThan(field, args[0])
		case op == LessThanOrEqualsTo:
			b.WhereLessThanOrEqualsTo(field, args[0])
		case op == GreaterThan:
			b.WhereGreaterThan(field, args[0])
		case op == GreaterThanOrEqualsTo:
			b.WhereGreaterThanOrEqualsTo(field, args[0])
		case op.isRange():
			b.WhereRange(field, args[0], args[1], op == GreaterThanOrEqualToAndLessThanOrEqualTo)
		default:
			panic(fmt.Sprintf("filter: no predicate for %s with %s payload on '%s'", op, v.Kind(), field))
		}
	default:
		switch op {
		case Present:
			b.WherePresent(field)
		case Empty:
			b.WhereEmpty(field)
		default:
			panic(fmt.Sprintf("filter: %s on '%s' needs a payload", op, field))
		}
	}
}
