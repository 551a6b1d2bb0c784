// Package config handles loading of graphsh configuration and filter files.
package config

import (
	"bytes"
	stdjson "encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/NikitaCOEUR/graphsh/internal/derrors"
	"github.com/NikitaCOEUR/graphsh/internal/logger"
)

// SupportedConfigNames contains supported configuration file names (in order of preference)
var SupportedConfigNames = []string{
	"config.yml",
	"config.yaml",
	"config.toml",
	"config.json",
}

const (
	// DefaultLogLevel is used when neither flags nor config set a level
	DefaultLogLevel = "warn"
	// DefaultOperationName names dry-run query documents
	DefaultOperationName = "GraphshQuery"
)

// Config represents the graphsh application configuration
type Config struct {
	LogLevel      string              `koanf:"log_level"`
	DefaultEntity string              `koanf:"default_entity"`
	TimeZone      string              `koanf:"time_zone"`
	OperationName string              `koanf:"operation_name"`
	Selection     map[string][]string `koanf:"selection"` // entity name -> selected fields
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		LogLevel:      DefaultLogLevel,
		TimeZone:      "UTC",
		OperationName: DefaultOperationName,
		Selection:     make(map[string][]string),
	}
}

// Location returns the time zone used for date-times without a zone
func (c *Config) Location() (*time.Location, error) {
	if c.TimeZone == "" || strings.EqualFold(c.TimeZone, "UTC") {
		return time.UTC, nil
	}
	if strings.EqualFold(c.TimeZone, "Local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, derrors.NewConfigurationError("", fmt.Sprintf("invalid time_zone '%s'", c.TimeZone), err)
	}
	return loc, nil
}

// SelectionFor returns the configured selection for an entity, or nil
func (c *Config) SelectionFor(entity string) []string {
	for name, fields := range c.Selection {
		if strings.EqualFold(name, entity) {
			return fields
		}
	}
	return nil
}

// parserFor picks the koanf parser from the file extension
func parserFor(path string) (koanf.Parser, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yml", ".yaml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
}

// filterParserFor is parserFor with JSON numbers kept exact, so integer
// filter values beyond 2^53 are not rounded through float64
func filterParserFor(path string) (koanf.Parser, error) {
	parser, err := parserFor(path)
	if j, ok := parser.(*json.JSON); ok {
		return jsonNumbers{j}, nil
	}
	return parser, err
}

// jsonNumbers decodes like the koanf JSON parser but leaves numbers as
// json.Number
type jsonNumbers struct {
	*json.JSON
}

func (jsonNumbers) Unmarshal(b []byte) (map[string]interface{}, error) {
	dec := stdjson.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var out map[string]interface{}
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("invalid character after top-level value")
	}
	return out, nil
}

// Load reads and parses a configuration file on top of the defaults
func Load(path string) (*Config, error) {
	parser, err := parserFor(path)
	if err != nil {
		return nil, derrors.NewConfigurationError(path, "cannot load config", err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, derrors.NewConfigurationError(path, "failed to load config", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, derrors.NewConfigurationError(path, "failed to unmarshal config", err)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.OperationName == "" {
		cfg.OperationName = DefaultOperationName
	}
	if _, err := cfg.Location(); err != nil {
		return nil, derrors.NewConfigurationError(path, "invalid config", err)
	}
	if _, err := logger.ParseLevel(cfg.LogLevel); err != nil {
		return nil, derrors.NewConfigurationError(path, "invalid log_level", err)
	}

	return cfg, nil
}

// GetConfigDir returns the graphsh configuration directory
func GetConfigDir() (string, error) {
	// Try XDG_CONFIG_HOME first
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Join(configHome, "graphsh"), nil
}

// FindConfigFile returns the first supported config file in dir, or ""
func FindConfigFile(dir string) string {
	for _, name := range SupportedConfigNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// LoadDefault loads the user configuration, falling back to the defaults
// when no file exists. An explicit path must exist.
func LoadDefault(explicitPath string) (*Config, string, error) {
	if explicitPath != "" {
		cfg, err := Load(explicitPath)
		return cfg, explicitPath, err
	}

	dir, err := GetConfigDir()
	if err != nil {
		return Default(), "", nil
	}

	path := FindConfigFile(dir)
	if path == "" {
		return Default(), "", nil
	}

	cfg, err := Load(path)
	return cfg, path, err
}
