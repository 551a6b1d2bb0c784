// Package query renders validated filters as GraphQL input values. Where
// implements filter.Builder; Document wraps a Where into a printable query
// document for dry runs. Neither sends anything over the network.
package query

import (
	"fmt"
	"strconv"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/vektah/gqlparser/v2/ast"
)

// Operator keys of the remote filter input types
const (
	keyEq     = "eq"
	keyNeq    = "neq"
	keyIn     = "in"
	keyNotIn  = "notIn"
	keyLt     = "lt"
	keyLte    = "lte"
	keyGt     = "gt"
	keyGte    = "gte"
	keyIsNull = "isNull"
	keyAnd    = "and"
)

// Where accumulates predicates for a GraphQL `where` argument.
// It is not safe for concurrent use.
type Where struct {
	predicates []*ast.Value
}

// NewWhere creates an empty predicate list
func NewWhere() *Where {
	return &Where{}
}

// WhereEquals matches one value with eq, several with in
func (w *Where) WhereEquals(field string, values []any) {
	if len(values) == 1 {
		w.add(field, child(keyEq, literal(values[0])))
		return
	}
	w.add(field, child(keyIn, list(values)))
}

// WhereNotEquals excludes one value with neq, several with notIn
func (w *Where) WhereNotEquals(field string, values []any) {
	if len(values) == 1 {
		w.add(field, child(keyNeq, literal(values[0])))
		return
	}
	w.add(field, child(keyNotIn, list(values)))
}

// WhereLessThan adds a lt predicate
func (w *Where) WhereLessThan(field string, value any) {
	w.add(field, child(keyLt, literal(value)))
}

// WhereLessThanOrEqualsTo adds a lte predicate
func (w *Where) WhereLessThanOrEqualsTo(field string, value any) {
	w.add(field, child(keyLte, literal(value)))
}

// WhereGreaterThan adds a gt predicate
func (w *Where) WhereGreaterThan(field string, value any) {
	w.add(field, child(keyGt, literal(value)))
}

// WhereGreaterThanOrEqualsTo adds a gte predicate
func (w *Where) WhereGreaterThanOrEqualsTo(field string, value any) {
	w.add(field, child(keyGte, literal(value)))
}

// WhereRange adds both bounds to a single field predicate
func (w *Where) WhereRange(field string, lower, upper any, inclusive bool) {
	lowerKey, upperKey := keyGt, keyLt
	if inclusive {
		lowerKey, upperKey = keyGte, keyLte
	}
	w.add(field, child(lowerKey, literal(lower)), child(upperKey, literal(upper)))
}

// WherePresent matches entities where field is set
func (w *Where) WherePresent(field string) {
	w.add(field, child(keyIsNull, literal(false)))
}

// WhereEmpty matches entities where field is not set
func (w *Where) WhereEmpty(field string) {
	w.add(field, child(keyIsNull, literal(true)))
}

// Len returns the number of predicates
func (w *Where) Len() int {
	return len(w.predicates)
}

// Value returns the where argument: nil when empty, the single predicate, or
// all predicates combined under "and".
func (w *Where) Value() *ast.Value {
	switch len(w.predicates) {
	case 0:
		return nil
	case 1:
		return w.predicates[0]
	}

	items := make([]any, len(w.predicates))
	for i, p := range w.predicates {
		items[i] = p
	}
	return object(child(keyAnd, list(items)))
}

// String renders the where argument as a GraphQL literal
func (w *Where) String() string {
	v := w.Value()
	if v == nil {
		return "{}"
	}
	return v.String()
}

func (w *Where) add(field string, ops ...*ast.ChildValue) {
	w.predicates = append(w.predicates, object(child(ArgumentName(field), object(ops...))))
}

// ArgumentName converts a field name to its GraphQL input name
// (CreatedAt becomes createdAt).
func ArgumentName(field string) string {
	r, size := utf8.DecodeRuneInString(field)
	if r == utf8.RuneError {
		return field
	}
	return string(unicode.ToLower(r)) + field[size:]
}

func child(name string, v *ast.Value) *ast.ChildValue {
	return &ast.ChildValue{Name: name, Value: v}
}

func object(children ...*ast.ChildValue) *ast.Value {
	return &ast.Value{Kind: ast.ObjectValue, Children: children}
}

func list(values []any) *ast.Value {
	children := make(ast.ChildValueList, len(values))
	for i, v := range values {
		children[i] = &ast.ChildValue{Value: literal(v)}
	}
	return &ast.Value{Kind: ast.ListValue, Children: children}
}

// literal converts a builder argument to a GraphQL value. Date-times are sent
// as RFC 3339 strings.
func literal(v any) *ast.Value {
	switch val := v.(type) {
	case nil:
		return &ast.Value{Kind: ast.NullValue, Raw: "null"}
	case *ast.Value:
		return val
	case bool:
		return &ast.Value{Kind: ast.BooleanValue, Raw: strconv.FormatBool(val)}
	case int64:
		return &ast.Value{Kind: ast.IntValue, Raw: strconv.FormatInt(val, 10)}
	case int:
		return &ast.Value{Kind: ast.IntValue, Raw: strconv.Itoa(val)}
	case time.Time:
		return &ast.Value{Kind: ast.StringValue, Raw: val.Format(time.RFC3339)}
	case string:
		return &ast.Value{Kind: ast.StringValue, Raw: val}
	default:
		return &ast.Value{Kind: ast.StringValue, Raw: fmt.Sprint(val)}
	}
}
