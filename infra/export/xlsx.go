package export

import (
	"context"
	"fmt"

	"github.com/kilianp07/naukma-schedule/core/factory"
	"github.com/kilianp07/naukma-schedule/core/schedule"
	"github.com/kilianp07/naukma-schedule/infra/xlsx"
)

func init() {
	_ = Register("xlsx", func(conf map[string]any) (Exporter, error) {
		var c struct {
			Path  string `json:"path"`
			Sheet string `json:"sheet"`
		}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		if c.Path == "" || c.Path == Stdout {
			return nil, fmt.Errorf("xlsx export needs a file path")
		}
		return &XLSXExporter{Path: c.Path, Sheet: c.Sheet}, nil
	})
}

var lessonHeader = []string{"Факультет", "Спеціальність", "Дисципліна", "День", "Час", "Група", "Тижні", "Аудиторія"}

// XLSXExporter writes the flattened schedule as a single sheet workbook.
type XLSXExporter struct {
	Path  string
	Sheet string
}

func (e *XLSXExporter) Export(_ context.Context, s *schedule.Schedule) error {
	lessons := s.Lessons()
	rows := make([][]string, 0, len(lessons)+1)
	rows = append(rows, lessonHeader)
	for _, l := range lessons {
		rows = append(rows, []string{l.Faculty, l.Speciality, l.Discipline, l.Day, l.Time, l.Group, l.Weeks, l.Auditorium})
	}
	return xlsx.WriteSheet(e.Path, e.Sheet, rows)
}
