package cli

import (
	"fmt"

	"github.com/NikitaCOEUR/graphsh/internal/view"
)

// StatusParams contains parameters for the Status command
type StatusParams struct {
	CommonParams
}

// Status displays the active configuration and the known entities
func Status(params StatusParams) error {
	comps, err := initializeComponents(params.CommonParams)
	if err != nil {
		return fmt.Errorf("failed to collect status data: %w", err)
	}

	data := view.CollectStatus(comps.config, comps.configPath, comps.registry)
	data.LogLevel = comps.log.Level().String()

	_, err = fmt.Fprintln(params.out(), view.RenderStatus(data))
	return err
}
