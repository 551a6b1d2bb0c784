package cli

import (
	"fmt"

	"github.com/NikitaCOEUR/graphsh/internal/config"
	"github.com/NikitaCOEUR/graphsh/internal/timing"
	"github.com/NikitaCOEUR/graphsh/internal/view"
)

// ValidateParams contains parameters for the ValidateFile command
type ValidateParams struct {
	CommonParams
	Path string // filter file, "-" for stdin
}

// ValidateFile checks a filter file against the JSON Schema and the operator
// rules of every filter, and prints a report
func ValidateFile(params ValidateParams) error {
	timer := timing.NewTimer()

	comps, err := initializeComponents(params.CommonParams)
	if err != nil {
		return err
	}

	path := params.Path
	if path == "" {
		path = config.StdinPath
	}

	comps.log.Debug().Str("path", path).Msg("Validating filter file")

	result, err := config.Validate(path, comps.registry, comps.config)
	if err != nil {
		return err
	}
	timer.Mark("validate")

	comps.log.Debug().
		Bool("valid", result.Valid).
		Int("errors", len(result.Errors)).
		Dur("duration", timer.Elapsed()).
		Msg(timer.Summary())

	if _, err := fmt.Fprintln(params.out(), view.RenderReport(&view.Report{Path: path, Result: result})); err != nil {
		return err
	}

	if !result.Valid {
		return fmt.Errorf("validation failed")
	}
	return nil
}
