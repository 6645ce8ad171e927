// Package xlsx reads schedule worksheets with excelize.
package xlsx

import (
	"context"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/kilianp07/naukma-schedule/core/factory"
	"github.com/kilianp07/naukma-schedule/core/ingest"
	"github.com/kilianp07/naukma-schedule/core/logger"
	"github.com/kilianp07/naukma-schedule/core/model"
)

func init() {
	_ = ingest.RegisterReader(ingest.DefaultReader, func(conf map[string]any) (ingest.SheetReader, error) {
		var c struct {
			Sheet string `json:"sheet"`
		}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewReader(c.Sheet, nil), nil
	})
}

// Reader loads one worksheet of an .xlsx workbook. Each call opens and
// closes its own file, so a Reader is safe for concurrent use.
type Reader struct {
	// Sheet is the worksheet to read. Empty selects the first sheet.
	Sheet  string
	Logger logger.Logger
}

var _ ingest.SheetReader = (*Reader)(nil)

// NewReader returns a Reader for the named sheet.
func NewReader(sheet string, log logger.Logger) *Reader {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Reader{Sheet: sheet, Logger: log}
}

// ReadSheet returns the cell grid of the configured sheet. Open failures are
// IoError, malformed workbooks and missing sheets are XlsxError.
func (r *Reader) ReadSheet(ctx context.Context, path string) (ingest.Sheet, error) {
	if err := ctx.Err(); err != nil {
		return ingest.Sheet{}, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return ingest.Sheet{}, model.NewError(model.KindIO, path, err)
	}
	defer fh.Close()

	f, err := excelize.OpenReader(fh)
	if err != nil {
		return ingest.Sheet{}, model.NewError(model.KindXlsx, path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			r.log().Warnf("close workbook %s: %v", path, err)
		}
	}()

	name := r.Sheet
	if name == "" {
		name = f.GetSheetName(0)
	} else if idx, err := f.GetSheetIndex(name); err != nil || idx < 0 {
		return ingest.Sheet{}, model.NewError(model.KindXlsx, path, fmt.Errorf("sheet %q not found", name))
	}
	if name == "" {
		return ingest.Sheet{}, model.NewError(model.KindXlsx, path, fmt.Errorf("workbook has no sheets"))
	}
	rows, err := f.GetRows(name)
	if err != nil {
		return ingest.Sheet{}, model.NewError(model.KindXlsx, path, fmt.Errorf("read sheet %q: %w", name, err))
	}
	r.log().Debugw("sheet read", map[string]any{"file": path, "sheet": name, "rows": len(rows)})
	return ingest.Sheet{Name: name, Rows: rows}, nil
}

func (r *Reader) log() logger.Logger {
	if r.Logger == nil {
		return logger.NopLogger{}
	}
	return r.Logger
}
