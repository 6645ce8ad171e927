package export

import (
	"context"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/kilianp07/naukma-schedule/core/factory"
	"github.com/kilianp07/naukma-schedule/core/schedule"
)

func init() {
	_ = Register("yaml", func(conf map[string]any) (Exporter, error) {
		var c fileConf
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return &YAMLExporter{Path: c.Path}, nil
	})
}

// YAMLExporter writes the nested schedule as YAML.
type YAMLExporter struct {
	Path string
}

func (e *YAMLExporter) Export(_ context.Context, s *schedule.Schedule) error {
	return writeTo(e.Path, func(w io.Writer) error {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	})
}
