package ingest

import (
	"context"

	"github.com/kilianp07/naukma-schedule/core/logger"
	"github.com/kilianp07/naukma-schedule/core/metrics"
	"github.com/kilianp07/naukma-schedule/core/schedule"
)

// Option configures NewSchedule.
type Option func(*Ingestor)

// WithReader sets the sheet reader.
func WithReader(r SheetReader) Option { return func(in *Ingestor) { in.Reader = r } }

// WithPolicy sets the failure policy.
func WithPolicy(p Policy) Option { return func(in *Ingestor) { in.Policy = p } }

// WithWorkers sets the number of files parsed concurrently.
func WithWorkers(n int) Option { return func(in *Ingestor) { in.Workers = n } }

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option { return func(in *Ingestor) { in.Logger = l } }

// WithRecorder sets the metrics sink.
func WithRecorder(s metrics.IngestSink) Option { return func(in *Ingestor) { in.Recorder = s } }

// NewSchedule ingests paths into a Schedule. Under the default skip policy
// the schedule of every readable file is returned together with the joined
// failures of the others.
func NewSchedule(ctx context.Context, paths []string, resolver schedule.SpecialityResolver, opts ...Option) (*schedule.Schedule, error) {
	in := &Ingestor{Resolver: resolver}
	for _, o := range opts {
		o(in)
	}
	res, err := in.Run(ctx, paths)
	if err != nil {
		return nil, err
	}
	return res.Schedule, res.Err()
}
