// Package schema describes the remote entity kinds that can be filtered and
// the field enumeration of each.
package schema

import (
	"fmt"
	"strings"

	"github.com/NikitaCOEUR/graphsh/internal/derrors"
	"github.com/NikitaCOEUR/graphsh/internal/filter"
)

// FieldInfo describes one filterable field
type FieldInfo[F filter.Field] struct {
	Field       F
	Kind        filter.Kind // value form the remote API stores for this field
	Description string
}

// FieldSummary is the entity-independent view of a FieldInfo
type FieldSummary struct {
	Name        string
	Kind        filter.Kind
	Description string
}

// Descriptor is the entity-independent view of an Entity, used where the
// entity is only known at run time
type Descriptor interface {
	Name() string
	Collection() string
	Aliases() []string
	Fields() []FieldSummary
	// Build turns user input into a validated filter for this entity
	Build(in filter.Input) (filter.Applier, error)
}

// Entity describes one entity kind and its field enumeration F
type Entity[F filter.Field] struct {
	name       string
	collection string
	aliases    []string
	fields     []FieldInfo[F]
}

// NewEntity creates an entity descriptor. collection is the GraphQL query
// field listing entities of this kind.
func NewEntity[F filter.Field](name, collection string, aliases []string, fields ...FieldInfo[F]) *Entity[F] {
	return &Entity[F]{
		name:       name,
		collection: collection,
		aliases:    aliases,
		fields:     fields,
	}
}

// Name returns the entity name
func (e *Entity[F]) Name() string {
	return e.name
}

// Collection returns the GraphQL collection field
func (e *Entity[F]) Collection() string {
	return e.collection
}

// Aliases returns alternative names accepted on the command line
func (e *Entity[F]) Aliases() []string {
	return e.aliases
}

// Fields returns the filterable fields in declaration order
func (e *Entity[F]) Fields() []FieldSummary {
	out := make([]FieldSummary, len(e.fields))
	for i, f := range e.fields {
		out[i] = FieldSummary{Name: string(f.Field), Kind: f.Kind, Description: f.Description}
	}
	return out
}

// Info returns the description of field
func (e *Entity[F]) Info(field F) (FieldInfo[F], bool) {
	for _, f := range e.fields {
		if f.Field == field {
			return f, true
		}
	}
	return FieldInfo[F]{}, false
}

// Lookup resolves a field name, ignoring case
func (e *Entity[F]) Lookup(name string) (F, error) {
	name = strings.TrimSpace(name)
	for _, f := range e.fields {
		if strings.EqualFold(string(f.Field), name) {
			return f.Field, nil
		}
	}

	names := make([]string, len(e.fields))
	for i, f := range e.fields {
		names[i] = string(f.Field)
	}
	var zero F
	return zero, derrors.NewNotFoundError("field", fmt.Sprintf(
		"unknown field '%s' for entity '%s' (available: %s)", name, e.name, strings.Join(names, ", ")))
}

// Filter builds a validated filter from user input
func (e *Entity[F]) Filter(in filter.Input) (filter.Filter[F], error) {
	return filter.FromInput(in, e.Lookup)
}

// Build implements Descriptor
func (e *Entity[F]) Build(in filter.Input) (filter.Applier, error) {
	f, err := e.Filter(in)
	if err != nil {
		return nil, err
	}
	return f, nil
}
