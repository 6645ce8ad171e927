package app

import (
	"context"
	"fmt"

	"github.com/kilianp07/naukma-schedule/config"
	"github.com/kilianp07/naukma-schedule/core/ingest"
	coremetrics "github.com/kilianp07/naukma-schedule/core/metrics"
	"github.com/kilianp07/naukma-schedule/core/schedule"
	"github.com/kilianp07/naukma-schedule/infra/export"
	"github.com/kilianp07/naukma-schedule/infra/logger"
	_ "github.com/kilianp07/naukma-schedule/infra/metrics"
	_ "github.com/kilianp07/naukma-schedule/infra/xlsx"
)

// Service wires the ingestion pipeline to its exporter and metrics sinks.
type Service struct {
	Ingestor *ingest.Ingestor
	Exporter export.Exporter
	sink     coremetrics.IngestSink
	log      logger.Logger
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	if err := logger.SetLevel(cfg.Logging.Level); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	logg := logger.New("service")

	reader, err := ingest.NewReader(cfg.Ingest.ReaderModule())
	if err != nil {
		return nil, fmt.Errorf("sheet reader: %w", err)
	}
	sink, err := coremetrics.NewSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	exp, err := export.New(cfg.Output.Module())
	if err != nil {
		return nil, fmt.Errorf("exporter: %w", err)
	}
	return &Service{
		Ingestor: &ingest.Ingestor{
			Reader:   reader,
			Resolver: schedule.DisciplineResolver{},
			Policy:   cfg.Ingest.ParsedPolicy(),
			Workers:  cfg.Ingest.Workers,
			Logger:   logger.New("ingest"),
			Recorder: sink,
		},
		Exporter: exp,
		sink:     sink,
		log:      logg,
	}, nil
}

// Check ingests files without exporting.
func (s *Service) Check(ctx context.Context, files []string) (*ingest.Result, error) {
	return s.Ingestor.Run(ctx, files)
}

// Run ingests files and exports the schedule of the files that parsed.
func (s *Service) Run(ctx context.Context, files []string) (*ingest.Result, error) {
	res, err := s.Ingestor.Run(ctx, files)
	if err != nil {
		return nil, err
	}
	if err := s.Exporter.Export(ctx, res.Schedule); err != nil {
		return res, fmt.Errorf("export: %w", err)
	}
	st := res.Schedule.Stats()
	s.log.Infow("schedule exported", map[string]any{
		"run_id":      res.RunID,
		"faculties":   st.Faculties,
		"disciplines": st.Disciplines,
		"groups":      st.Groups,
	})
	return res, nil
}

// Close flushes buffered metrics.
func (s *Service) Close() error {
	if f, ok := s.sink.(coremetrics.Flusher); ok {
		return f.Flush()
	}
	return nil
}
