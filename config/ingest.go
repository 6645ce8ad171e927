package config

import (
	"fmt"

	"github.com/kilianp07/naukma-schedule/core/factory"
	"github.com/kilianp07/naukma-schedule/core/ingest"
)

// MaxWorkers bounds ingest.workers.
const MaxWorkers = 64

// IngestConfig controls how schedule files are read.
type IngestConfig struct {
	// Reader selects the sheet reader type. Defaults to xlsx.
	Reader string `json:"reader"`
	// Sheet names the worksheet to read. Empty reads the first sheet.
	Sheet string `json:"sheet"`
	// Policy is "skip" or "abort".
	Policy  string `json:"policy"`
	Workers int    `json:"workers"`
}

// SetDefaults applies sane defaults.
func (c *IngestConfig) SetDefaults() {
	if c.Reader == "" {
		c.Reader = ingest.DefaultReader
	}
	if c.Policy == "" {
		c.Policy = ingest.PolicySkip.String()
	}
	if c.Workers == 0 {
		c.Workers = 1
	}
}

// Validate checks the policy and worker bounds.
func (c IngestConfig) Validate() error {
	if _, err := ingest.ParsePolicy(c.Policy); err != nil {
		return err
	}
	if c.Workers < 1 || c.Workers > MaxWorkers {
		return fmt.Errorf("workers must be between 1 and %d, got %d", MaxWorkers, c.Workers)
	}
	return nil
}

// ParsedPolicy returns the validated policy.
func (c IngestConfig) ParsedPolicy() ingest.Policy {
	p, _ := ingest.ParsePolicy(c.Policy)
	return p
}

// ReaderModule describes the sheet reader for ingest.NewReader.
func (c IngestConfig) ReaderModule() factory.ModuleConfig {
	return factory.ModuleConfig{Type: c.Reader, Conf: map[string]any{"sheet": c.Sheet}}
}
