package config

import (
	"fmt"
	"maps"

	"github.com/kilianp07/naukma-schedule/core/factory"
)

// DefaultOutputPath matches the file name schedules were always written to.
const DefaultOutputPath = "schedule.json"

// OutputConfig selects the exporter. Conf holds exporter specific settings
// such as the MQTT broker or the JSON indent.
type OutputConfig struct {
	Type string         `json:"type"`
	Path string         `json:"path"`
	Conf map[string]any `json:"conf"`
}

// SetDefaults applies sane defaults.
func (c *OutputConfig) SetDefaults() {
	if c.Type == "" {
		c.Type = "json"
	}
	if c.Path == "" && c.Type == "json" {
		c.Path = DefaultOutputPath
	}
}

// Validate checks mandatory fields.
func (c OutputConfig) Validate() error {
	if c.Type == "" {
		return fmt.Errorf("type is required")
	}
	return nil
}

// Module merges Path into Conf for the exporter factory.
func (c OutputConfig) Module() factory.ModuleConfig {
	conf := make(map[string]any, len(c.Conf)+1)
	maps.Copy(conf, c.Conf)
	if c.Path != "" {
		conf["path"] = c.Path
	}
	return factory.ModuleConfig{Type: c.Type, Conf: conf}
}
