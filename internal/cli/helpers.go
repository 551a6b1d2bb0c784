// Package cli implements the graphsh commands.
package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/NikitaCOEUR/graphsh/internal/config"
	"github.com/NikitaCOEUR/graphsh/internal/derrors"
	"github.com/NikitaCOEUR/graphsh/internal/filter"
	"github.com/NikitaCOEUR/graphsh/internal/logger"
	"github.com/NikitaCOEUR/graphsh/internal/schema"
)

// CommonParams contains parameters shared by every command
type CommonParams struct {
	ConfigPath string    // explicit config file, empty for the XDG lookup
	LogLevel   string    // overrides log_level from the config when set
	Output     io.Writer // defaults to stdout
	LogOutput  io.Writer // defaults to stderr
}

func (p CommonParams) out() io.Writer {
	if p.Output == nil {
		return os.Stdout
	}
	return p.Output
}

// components holds initialized graphsh components
type components struct {
	config     *config.Config
	configPath string
	registry   *schema.Registry
	location   *time.Location
	log        *logger.Logger
}

// initializeComponents loads the configuration and creates the logger
func initializeComponents(p CommonParams) (*components, error) {
	if p.LogLevel != "" {
		if _, err := logger.ParseLevel(p.LogLevel); err != nil {
			return nil, err
		}
	}

	cfg, path, err := config.LoadDefault(p.ConfigPath)
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if p.LogLevel != "" {
		level = p.LogLevel
	}
	log := logger.New(level, p.LogOutput)

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	log.Debug().Str("config", path).Str("time_zone", loc.String()).Msg("Configuration loaded")

	return &components{
		config:     cfg,
		configPath: path,
		registry:   schema.Default(),
		location:   loc,
		log:        log,
	}, nil
}

// entity resolves the requested entity, falling back to default_entity
func (c *components) entity(name string) (schema.Descriptor, error) {
	if name == "" {
		name = c.config.DefaultEntity
	}
	if name == "" {
		return nil, derrors.NewValidationError("entity",
			"no entity given: use --entity or set default_entity in the config", nil)
	}
	return c.registry.Get(name)
}

// selection returns the explicit selection, or the configured one
func (c *components) selection(entity schema.Descriptor, explicit []string) []string {
	if len(explicit) > 0 {
		return explicit
	}
	return c.config.SelectionFor(entity.Name())
}

// ValueParams holds the raw value forms of a filter as typed on the command
// line. A nil field means the form was not given.
type ValueParams struct {
	Boolean  *string
	DateTime []string
	Integer  []string
	Text     []string
}

// input parses the raw forms into a filter.Input. Date-times without a zone
// are read in loc.
func (v ValueParams) input(field, operator string, loc *time.Location) (filter.Input, error) {
	in := filter.Input{Field: field, Operator: operator}

	if v.Boolean != nil {
		b, err := filter.ParseBoolean(*v.Boolean)
		if err != nil {
			return in, fmt.Errorf("--boolean: %w", err)
		}
		in.Boolean = &b
	}
	if v.DateTime != nil {
		times, err := filter.ParseDateTimes(v.DateTime, loc)
		if err != nil {
			return in, fmt.Errorf("--datetime: %w", err)
		}
		in.DateTime = times
	}
	if v.Integer != nil {
		ints, err := filter.ParseIntegers(v.Integer)
		if err != nil {
			return in, fmt.Errorf("--integer: %w", err)
		}
		in.Integer = ints
	}
	if v.Text != nil {
		texts, err := filter.ParseTexts(v.Text)
		if err != nil {
			return in, fmt.Errorf("--text: %w", err)
		}
		in.Text = texts
	}

	return in, nil
}
