package schema

import (
	"fmt"
	"strings"

	"github.com/NikitaCOEUR/graphsh/internal/derrors"
)

// Registry resolves entity names and aliases to descriptors
type Registry struct {
	entities []Descriptor
	byName   map[string]Descriptor
}

// NewRegistry creates a registry. Later descriptors do not override names
// already taken by earlier ones.
func NewRegistry(entities ...Descriptor) *Registry {
	r := &Registry{byName: make(map[string]Descriptor)}
	for _, e := range entities {
		r.entities = append(r.entities, e)
		for _, name := range append([]string{e.Name()}, e.Aliases()...) {
			key := strings.ToLower(name)
			if _, taken := r.byName[key]; !taken {
				r.byName[key] = e
			}
		}
	}
	return r
}

// Default returns the registry of all built-in entities
func Default() *Registry {
	return NewRegistry(Tickets, Contacts, Companies, Assets)
}

// Get resolves an entity by name or alias, ignoring case
func (r *Registry) Get(name string) (Descriptor, error) {
	if e, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return e, nil
	}
	return nil, derrors.NewNotFoundError("entity", fmt.Sprintf(
		"unknown entity '%s' (available: %s)", name, strings.Join(r.Names(), ", ")))
}

// All returns the registered entities in registration order
func (r *Registry) All() []Descriptor {
	return r.entities
}

// Names returns the primary entity names in registration order
func (r *Registry) Names() []string {
	names := make([]string, len(r.entities))
	for i, e := range r.entities {
		names[i] = e.Name()
	}
	return names
}
