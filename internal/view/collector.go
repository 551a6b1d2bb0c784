// Package view collects and renders the terminal output of graphsh commands.
package view

import (
	"github.com/NikitaCOEUR/graphsh/internal/config"
	"github.com/NikitaCOEUR/graphsh/internal/schema"
	"github.com/NikitaCOEUR/graphsh/pkg/version"
)

// CollectStatus gathers status information from the loaded configuration.
// configPath is the file cfg was loaded from, or empty.
func CollectStatus(cfg *config.Config, configPath string, reg *schema.Registry) *Status {
	data := &Status{
		Version:       version.Version,
		ConfigPath:    configPath,
		LogLevel:      cfg.LogLevel,
		DefaultEntity: cfg.DefaultEntity,
		TimeZone:      cfg.TimeZone,
		OperationName: cfg.OperationName,
		Entities:      CollectEntities(cfg, reg),
	}

	if dir, err := config.GetConfigDir(); err == nil {
		data.ConfigDir = dir
	}

	return data
}

// CollectEntities summarises every registered entity
func CollectEntities(cfg *config.Config, reg *schema.Registry) []EntityInfo {
	entities := make([]EntityInfo, 0, len(reg.All()))
	for _, e := range reg.All() {
		entities = append(entities, EntityInfo{
			Name:       e.Name(),
			Collection: e.Collection(),
			Aliases:    e.Aliases(),
			FieldCount: len(e.Fields()),
			Selection:  cfg.SelectionFor(e.Name()),
		})
	}
	return entities
}

// CollectFields builds the field listing of one entity
func CollectFields(e schema.Descriptor) *FieldListing {
	return &FieldListing{Entity: e.Name(), Fields: e.Fields()}
}
