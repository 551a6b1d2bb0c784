package view

import (
	"github.com/NikitaCOEUR/graphsh/internal/config"
	"github.com/NikitaCOEUR/graphsh/internal/schema"
)

// Status contains all the information to display in status
type Status struct {
	// Header
	Version string

	// Configuration
	ConfigDir     string
	ConfigPath    string // empty when running on defaults
	LogLevel      string
	DefaultEntity string
	TimeZone      string
	OperationName string

	// Entities
	Entities []EntityInfo
}

// EntityInfo summarises one entity kind
type EntityInfo struct {
	Name       string
	Collection string
	Aliases    []string
	FieldCount int
	Selection  []string // configured selection, nil for the default
}

// Report is the outcome of validating one filter file
type Report struct {
	Path   string
	Result *config.ValidationResult
}

// FieldListing is the field table of one entity
type FieldListing struct {
	Entity string
	Fields []schema.FieldSummary
}
