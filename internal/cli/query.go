package cli

import (
	"fmt"

	"github.com/NikitaCOEUR/graphsh/internal/config"
	"github.com/NikitaCOEUR/graphsh/internal/query"
	"github.com/NikitaCOEUR/graphsh/internal/timing"
	"github.com/NikitaCOEUR/graphsh/internal/view"
)

// QueryParams contains parameters for the Query command
type QueryParams struct {
	CommonParams
	Path          string   // filter file, "-" for stdin
	Entity        string   // overrides the entity of the file
	OperationName string   // overrides operation_name from the config
	Select        []string // overrides the configured selection
}

// Query loads a filter file, validates every filter and prints the dry-run
// query document
func Query(params QueryParams) error {
	timer := timing.NewTimer()

	comps, err := initializeComponents(params.CommonParams)
	if err != nil {
		return err
	}
	log := comps.log

	path := params.Path
	if path == "" {
		path = config.StdinPath
	}

	ff, err := config.LoadFilterFile(path)
	if err != nil {
		return err
	}
	if params.Entity != "" {
		ff.Entity = params.Entity
	}
	timer.Mark("load")

	built := ff.Build(comps.registry, comps.config.DefaultEntity, comps.location)
	if !built.Valid() {
		result := &config.ValidationResult{Valid: false, Errors: built.Errors}
		_, _ = fmt.Fprintln(params.out(), view.RenderReport(&view.Report{Path: path, Result: result}))
		return fmt.Errorf("%s: %d invalid filter(s): %w", path, len(built.Errors), built.Err())
	}

	opName := params.OperationName
	if opName == "" {
		opName = comps.config.OperationName
	}

	doc := query.Build(opName, built.Entity.Collection(), comps.selection(built.Entity, params.Select), built.Filters...)
	timer.Mark("build")

	_, err = fmt.Fprintln(params.out(), doc.String())
	timer.Mark("render")

	log.Debug().
		Str("entity", built.Entity.Name()).
		Int("filters", len(built.Filters)).
		Dur("duration", timer.Elapsed()).
		Msg(timer.Summary())

	return err
}
