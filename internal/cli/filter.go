package cli

import (
	"fmt"

	"github.com/NikitaCOEUR/graphsh/internal/filter"
	"github.com/NikitaCOEUR/graphsh/internal/query"
	"github.com/NikitaCOEUR/graphsh/internal/schema"
)

// FilterParams contains parameters for the Filter command
type FilterParams struct {
	CommonParams
	ValueParams
	Entity   string
	Field    string
	Operator string
	Document bool     // print a full query document instead of the where literal
	Select   []string // selection for Document, overrides the config
}

// Filter builds one field filter, validates it and prints the resulting
// where argument
func Filter(params FilterParams) error {
	comps, err := initializeComponents(params.CommonParams)
	if err != nil {
		return err
	}
	log := comps.log

	entity, err := comps.entity(params.Entity)
	if err != nil {
		return err
	}

	in, err := params.input(params.Field, params.Operator, comps.location)
	if err != nil {
		return err
	}

	applier, err := entity.Build(in)
	if err != nil {
		log.Debug().Str("entity", entity.Name()).Str("field", params.Field).Err(err).Msg("Filter rejected")
		return err
	}

	log.Debug().Str("entity", entity.Name()).Stringer("filter", applier).Msg("Filter built")

	return printFilters(comps, params.CommonParams, entity, params.Document, params.Select, applier)
}

// CustomParams contains parameters for the Custom command
type CustomParams struct {
	CommonParams
	Entity   string // only needed with Document
	Name     string
	Operator string
	Text     []string
	Document bool
	Select   []string
}

// Custom builds one custom filter, validates it and prints the resulting
// where argument
func Custom(params CustomParams) error {
	comps, err := initializeComponents(params.CommonParams)
	if err != nil {
		return err
	}
	log := comps.log

	in, err := ValueParams{Text: params.Text}.input(params.Name, params.Operator, comps.location)
	if err != nil {
		return err
	}

	c, err := filter.CustomFromInput(in)
	if err != nil {
		log.Debug().Str("name", params.Name).Err(err).Msg("Custom filter rejected")
		return err
	}

	log.Debug().Stringer("filter", c).Msg("Custom filter built")

	var entity schema.Descriptor
	if params.Document {
		if entity, err = comps.entity(params.Entity); err != nil {
			return err
		}
	}

	return printFilters(comps, params.CommonParams, entity, params.Document, params.Select, c)
}

// printFilters writes either the where literal or a dry-run document
func printFilters(comps *components, p CommonParams, entity schema.Descriptor, document bool, sel []string, filters ...filter.Applier) error {
	if !document {
		where := query.NewWhere()
		for _, f := range filters {
			f.ApplyTo(where)
		}
		_, err := fmt.Fprintln(p.out(), where.String())
		return err
	}

	doc := query.Build(comps.config.OperationName, entity.Collection(), comps.selection(entity, sel), filters...)
	_, err := fmt.Fprintln(p.out(), doc.String())
	return err
}
