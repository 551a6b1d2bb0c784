package query

import (
	"bytes"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"

	"github.com/NikitaCOEUR/graphsh/internal/filter"
)

var _ filter.Builder = (*Where)(nil)

// DefaultSelection is selected when a document names no fields
var DefaultSelection = []string{"id"}

// Document is a dry-run query listing one collection under a where argument
type Document struct {
	OperationName string
	Collection    string
	Selection     []string
	Where         *Where
}

// Build applies every filter to a fresh Where and returns the document
func Build(operationName, collection string, selection []string, filters ...filter.Applier) *Document {
	where := NewWhere()
	for _, f := range filters {
		f.ApplyTo(where)
	}
	return &Document{
		OperationName: operationName,
		Collection:    collection,
		Selection:     selection,
		Where:         where,
	}
}

// AST returns the query document
func (d *Document) AST() *ast.QueryDocument {
	field := &ast.Field{
		Alias:        d.Collection,
		Name:         d.Collection,
		SelectionSet: selectionSet(d.Selection),
	}
	if d.Where != nil && d.Where.Len() > 0 {
		field.Arguments = ast.ArgumentList{
			{Name: "where", Value: d.Where.Value()},
		}
	}

	return &ast.QueryDocument{
		Operations: ast.OperationList{
			{
				Operation:    ast.Query,
				Name:         d.OperationName,
				SelectionSet: ast.SelectionSet{field},
			},
		},
	}
}

// String formats the document as GraphQL source
func (d *Document) String() string {
	var buf bytes.Buffer
	formatter.NewFormatter(&buf).FormatQueryDocument(d.AST())
	return strings.TrimSpace(buf.String())
}

// selectionSet turns dotted paths into nested selections:
// "assignee.email" selects email inside assignee.
func selectionSet(paths []string) ast.SelectionSet {
	if len(paths) == 0 {
		paths = DefaultSelection
	}

	var set ast.SelectionSet
	index := make(map[string]*ast.Field)
	for _, path := range paths {
		head, rest, nested := strings.Cut(strings.TrimSpace(path), ".")
		if head == "" {
			continue
		}

		field, seen := index[head]
		if !seen {
			field = &ast.Field{Alias: head, Name: head}
			index[head] = field
			set = append(set, field)
		}
		if nested {
			field.SelectionSet = mergeSelection(field.SelectionSet, selectionSet([]string{rest}))
		}
	}
	return set
}

func mergeSelection(existing, extra ast.SelectionSet) ast.SelectionSet {
	for _, sel := range extra {
		add := sel.(*ast.Field)
		merged := false
		for _, have := range existing {
			if f := have.(*ast.Field); f.Name == add.Name {
				f.SelectionSet = mergeSelection(f.SelectionSet, add.SelectionSet)
				merged = true
				break
			}
		}
		if !merged {
			existing = append(existing, add)
		}
	}
	return existing
}
