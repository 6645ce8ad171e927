package export

import (
	"context"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/kilianp07/naukma-schedule/core/factory"
	"github.com/kilianp07/naukma-schedule/core/schedule"
)

func init() {
	_ = Register("csv", func(conf map[string]any) (Exporter, error) {
		var c fileConf
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return &CSVExporter{Path: c.Path}, nil
	})
}

// CSVExporter writes one line per group with a header row.
type CSVExporter struct {
	Path string
}

func (e *CSVExporter) Export(_ context.Context, s *schedule.Schedule) error {
	lessons := s.Lessons()
	return writeTo(e.Path, func(w io.Writer) error {
		return gocsv.Marshal(&lessons, w)
	})
}
