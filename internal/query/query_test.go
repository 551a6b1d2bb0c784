package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/NikitaCOEUR/graphsh/internal/filter"
)

type ticketField string

// childNamed returns the value of the named child of an object value
func childNamed(t *testing.T, v *ast.Value, name string) *ast.Value {
	t.Helper()
	require.NotNil(t, v)
	require.Equal(t, ast.ObjectValue, v.Kind)
	for _, c := range v.Children {
		if c.Name == name {
			return c.Value
		}
	}
	t.Fatalf("no child %q in %s", name, v.String())
	return nil
}

func TestArgumentName(t *testing.T) {
	assert.Equal(t, "createdAt", ArgumentName("CreatedAt"))
	assert.Equal(t, "id", ArgumentName("Id"))
	assert.Equal(t, "region", ArgumentName("region"))
	assert.Equal(t, "", ArgumentName(""))
}

func TestWhere_Predicates(t *testing.T) {
	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		apply func(w *Where)
		field string
		check func(t *testing.T, ops *ast.Value)
	}{
		{
			name:  "single equals",
			apply: func(w *Where) { w.WhereEquals("IsEscalated", []any{true}) },
			field: "isEscalated",
			check: func(t *testing.T, ops *ast.Value) {
				eq := childNamed(t, ops, "eq")
				assert.Equal(t, ast.BooleanValue, eq.Kind)
				assert.Equal(t, "true", eq.Raw)
			},
		},
		{
			name:  "several equals become in",
			apply: func(w *Where) { w.WhereEquals("Priority", []any{int64(1), nil}) },
			field: "priority",
			check: func(t *testing.T, ops *ast.Value) {
				in := childNamed(t, ops, "in")
				require.Equal(t, ast.ListValue, in.Kind)
				require.Len(t, in.Children, 2)
				assert.Equal(t, "1", in.Children[0].Value.Raw)
				assert.Equal(t, ast.NullValue, in.Children[1].Value.Kind)
			},
		},
		{
			name:  "several not equals become notIn",
			apply: func(w *Where) { w.WhereNotEquals("Status", []any{"open", "new"}) },
			field: "status",
			check: func(t *testing.T, ops *ast.Value) {
				notIn := childNamed(t, ops, "notIn")
				require.Len(t, notIn.Children, 2)
				assert.Equal(t, ast.StringValue, notIn.Children[0].Value.Kind)
			},
		},
		{
			name:  "single not equals",
			apply: func(w *Where) { w.WhereNotEquals("Status", []any{"closed"}) },
			field: "status",
			check: func(t *testing.T, ops *ast.Value) {
				assert.Equal(t, "closed", childNamed(t, ops, "neq").Raw)
			},
		},
		{
			name:  "date-time comparison",
			apply: func(w *Where) { w.WhereGreaterThan("CreatedAt", jan) },
			field: "createdAt",
			check: func(t *testing.T, ops *ast.Value) {
				gt := childNamed(t, ops, "gt")
				assert.Equal(t, ast.StringValue, gt.Kind)
				assert.Equal(t, "2024-01-01T00:00:00Z", gt.Raw)
			},
		},
		{
			name:  "lte",
			apply: func(w *Where) { w.WhereLessThanOrEqualsTo("Priority", int64(2)) },
			field: "priority",
			check: func(t *testing.T, ops *ast.Value) {
				assert.Equal(t, "2", childNamed(t, ops, "lte").Raw)
			},
		},
		{
			name:  "exclusive range",
			apply: func(w *Where) { w.WhereRange("Cost", int64(10), int64(20), false) },
			field: "cost",
			check: func(t *testing.T, ops *ast.Value) {
				assert.Equal(t, "10", childNamed(t, ops, "gt").Raw)
				assert.Equal(t, "20", childNamed(t, ops, "lt").Raw)
			},
		},
		{
			name:  "inclusive range",
			apply: func(w *Where) { w.WhereRange("Cost", int64(10), int64(20), true) },
			field: "cost",
			check: func(t *testing.T, ops *ast.Value) {
				assert.Equal(t, "10", childNamed(t, ops, "gte").Raw)
				assert.Equal(t, "20", childNamed(t, ops, "lte").Raw)
			},
		},
		{
			name:  "present",
			apply: func(w *Where) { w.WherePresent("DueAt") },
			field: "dueAt",
			check: func(t *testing.T, ops *ast.Value) {
				assert.Equal(t, "false", childNamed(t, ops, "isNull").Raw)
			},
		},
		{
			name:  "empty",
			apply: func(w *Where) { w.WhereEmpty("DueAt") },
			field: "dueAt",
			check: func(t *testing.T, ops *ast.Value) {
				assert.Equal(t, "true", childNamed(t, ops, "isNull").Raw)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWhere()
			tt.apply(w)
			require.Equal(t, 1, w.Len())
			tt.check(t, childNamed(t, w.Value(), tt.field))
		})
	}
}

func TestWhere_CombinesWithAnd(t *testing.T) {
	w := NewWhere()
	assert.Nil(t, w.Value())
	assert.Equal(t, "{}", w.String())

	w.WherePresent("Subject")
	w.WhereEquals("Priority", []any{int64(1)})

	and := childNamed(t, w.Value(), "and")
	require.Equal(t, ast.ListValue, and.Kind)
	require.Len(t, and.Children, 2)
	childNamed(t, and.Children[0].Value, "subject")
	childNamed(t, and.Children[1].Value, "priority")
}

func TestBuild_FromFilters(t *testing.T) {
	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	status := filter.MustNew(ticketField("Status"), filter.Equals, filter.Strings("open"))
	created := filter.MustNew(ticketField("CreatedAt"), filter.GreaterThanOrEqualToAndLessThanOrEqualTo, filter.Times(jan, feb))
	region, err := filter.NewCustom("region", filter.Present, nil)
	require.NoError(t, err)

	doc := Build("OpenTickets", "tickets", []string{"id", "subject", "assignee.email", "assignee.name"}, status, created, region)
	require.Equal(t, 3, doc.Where.Len())

	src := doc.String()
	assert.Contains(t, src, "OpenTickets")
	assert.Contains(t, src, "tickets")
	assert.Contains(t, src, "where")
	assert.Contains(t, src, "createdAt")
	assert.Contains(t, src, "2024-02-01T00:00:00Z")

	parsed, parseErr := parser.ParseQuery(&ast.Source{Input: src})
	require.Nil(t, parseErr)
	require.Len(t, parsed.Operations, 1)

	op := parsed.Operations[0]
	assert.Equal(t, "OpenTickets", op.Name)
	require.Len(t, op.SelectionSet, 1)

	tickets := op.SelectionSet[0].(*ast.Field)
	assert.Equal(t, "tickets", tickets.Name)
	require.Len(t, tickets.Arguments, 1)
	assert.Equal(t, "where", tickets.Arguments[0].Name)
	require.Len(t, tickets.SelectionSet, 3)

	assignee := tickets.SelectionSet[2].(*ast.Field)
	assert.Equal(t, "assignee", assignee.Name)
	assert.Len(t, assignee.SelectionSet, 2)
}

func TestDocument_NoFilters(t *testing.T) {
	doc := Build("AllAssets", "assets", nil)
	assert.Equal(t, 0, doc.Where.Len())

	field := doc.AST().Operations[0].SelectionSet[0].(*ast.Field)
	assert.Empty(t, field.Arguments)
	require.Len(t, field.SelectionSet, 1)
	assert.Equal(t, "id", field.SelectionSet[0].(*ast.Field).Name)

	parsed, err := parser.ParseQuery(&ast.Source{Input: doc.String()})
	require.Nil(t, err)
	assert.Len(t, parsed.Operations, 1)
}

func TestDocument_TextEscapesReparse(t *testing.T) {
	texts, err := filter.ParseTexts([]string{"tab\there", "line\r\nbreak", "back\bspace\f", "say \"hi\" \\ bye", "nbsp\u00a0zwsp\u200b", "café \U0001F600"})
	require.NoError(t, err)

	subject := filter.MustNew(ticketField("Subject"), filter.Equals, filter.Text(texts))
	src := Build("Escapes", "tickets", nil, subject).String()

	parsed, parseErr := parser.ParseQuery(&ast.Source{Input: src})
	require.Nil(t, parseErr, src)

	where := parsed.Operations[0].SelectionSet[0].(*ast.Field).Arguments[0].Value
	in := childNamed(t, childNamed(t, where, "subject"), "in")
	require.Len(t, in.Children, len(texts))
	for i, c := range in.Children {
		assert.Equal(t, *texts[i], c.Value.Raw)
	}
}
