package cli

import (
	"fmt"

	"github.com/NikitaCOEUR/graphsh/internal/view"
)

// FieldsParams contains parameters for the Fields command
type FieldsParams struct {
	CommonParams
	Entity string // empty lists the entities
}

// Fields lists the entity kinds, or the filterable fields of one entity
func Fields(params FieldsParams) error {
	comps, err := initializeComponents(params.CommonParams)
	if err != nil {
		return err
	}

	if params.Entity == "" {
		_, err := fmt.Fprintln(params.out(), view.RenderEntities(view.CollectEntities(comps.config, comps.registry)))
		return err
	}

	entity, err := comps.registry.Get(params.Entity)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(params.out(), view.RenderFields(view.CollectFields(entity)))
	return err
}
