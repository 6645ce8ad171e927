// Package export writes a finished schedule to its output: a JSON, YAML,
// CSV, XLSX or SQLite file, or a retained MQTT message. Exporters are
// created from configuration through a factory registry.
package export

import (
	"context"
	"io"
	"os"

	"github.com/kilianp07/naukma-schedule/core/factory"
	"github.com/kilianp07/naukma-schedule/core/schedule"
)

// DefaultFormat is used when no output type is configured.
const DefaultFormat = "json"

// Stdout as output path writes to standard output.
const Stdout = "-"

// Exporter writes a schedule to its destination.
type Exporter interface {
	Export(ctx context.Context, s *schedule.Schedule) error
}

// ExporterFunc adapts a function to Exporter.
type ExporterFunc func(ctx context.Context, s *schedule.Schedule) error

func (f ExporterFunc) Export(ctx context.Context, s *schedule.Schedule) error { return f(ctx, s) }

var registry = factory.NewRegistry[Exporter]()

// Register adds an exporter factory identified by name.
func Register(name string, f factory.Factory[Exporter]) error {
	return registry.Register(name, f)
}

// New creates the exporter described by cfg. An empty type selects
// DefaultFormat.
func New(cfg factory.ModuleConfig) (Exporter, error) {
	if cfg.Type == "" {
		cfg.Type = DefaultFormat
	}
	return registry.Create(cfg)
}

// Formats lists the registered exporter types.
func Formats() []string { return registry.Names() }

// fileConf is shared by the file based exporters.
type fileConf struct {
	Path string `json:"path"`
}

var stdout io.Writer = os.Stdout

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// create opens path for writing. Stdout and an empty path write to
// standard output.
func create(path string) (io.WriteCloser, error) {
	if path == "" || path == Stdout {
		return nopCloser{stdout}, nil
	}
	return os.Create(path)
}

// writeTo runs write against path and reports the first of the write and
// close errors.
func writeTo(path string, write func(io.Writer) error) (err error) {
	w, err := create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}()
	return write(w)
}
