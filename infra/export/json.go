package export

import (
	"context"
	"encoding/json"
	"io"

	"github.com/kilianp07/naukma-schedule/core/factory"
	"github.com/kilianp07/naukma-schedule/core/schedule"
)

func init() {
	_ = Register("json", func(conf map[string]any) (Exporter, error) {
		var c struct {
			Path   string  `json:"path"`
			Indent *string `json:"indent"`
		}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		e := NewJSONExporter(c.Path)
		if c.Indent != nil {
			e.Indent = *c.Indent
		}
		return e, nil
	})
}

// JSONExporter writes the nested schedule with its Ukrainian keys.
type JSONExporter struct {
	Path string
	// Indent is repeated per nesting level. Empty writes compact JSON.
	Indent string
}

// NewJSONExporter returns a pretty printing exporter.
func NewJSONExporter(path string) *JSONExporter {
	return &JSONExporter{Path: path, Indent: "  "}
}

func (e *JSONExporter) Export(_ context.Context, s *schedule.Schedule) error {
	return writeTo(e.Path, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		if e.Indent != "" {
			enc.SetIndent("", e.Indent)
		}
		return enc.Encode(s)
	})
}
