package ingest

import (
	"context"

	"github.com/kilianp07/naukma-schedule/core/factory"
)

// DefaultReader is the reader type used when none is configured.
const DefaultReader = "xlsx"

// Sheet is the cell grid of one worksheet.
type Sheet struct {
	Name string
	Rows [][]string
}

// SheetReader loads the timetable sheet of a workbook. Implementations
// release the file before returning.
type SheetReader interface {
	ReadSheet(ctx context.Context, path string) (Sheet, error)
}

// ReaderFunc adapts a function to SheetReader.
type ReaderFunc func(ctx context.Context, path string) (Sheet, error)

func (f ReaderFunc) ReadSheet(ctx context.Context, path string) (Sheet, error) { return f(ctx, path) }

var readerRegistry = factory.NewRegistry[SheetReader]()

// RegisterReader adds a reader factory identified by name.
func RegisterReader(name string, f factory.Factory[SheetReader]) error {
	return readerRegistry.Register(name, f)
}

// NewReader creates a SheetReader from its module configuration. An empty
// type selects DefaultReader.
func NewReader(cfg factory.ModuleConfig) (SheetReader, error) {
	if cfg.Type == "" {
		cfg.Type = DefaultReader
	}
	return readerRegistry.Create(cfg)
}
