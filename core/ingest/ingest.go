// Package ingest drives the parsing of schedule workbooks into one
// schedule.Schedule. Files may be parsed concurrently but are always merged
// one at a time in input order, so a run is deterministic.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/kilianp07/naukma-schedule/core/factory"
	"github.com/kilianp07/naukma-schedule/core/logger"
	"github.com/kilianp07/naukma-schedule/core/metrics"
	"github.com/kilianp07/naukma-schedule/core/model"
	"github.com/kilianp07/naukma-schedule/core/schedule"
)

// Ingestor parses schedule files and merges them into a Schedule.
type Ingestor struct {
	// Reader loads sheets. When nil the DefaultReader factory is used.
	Reader SheetReader
	// Resolver assigns disciplines of `<Faculty>.xlsx` files to
	// specialities. Defaults to schedule.DisciplineResolver.
	Resolver schedule.SpecialityResolver
	Policy   Policy
	// Workers bounds the number of files parsed at once. Values below one
	// mean one.
	Workers  int
	Logger   logger.Logger
	Recorder metrics.IngestSink
}

// FileFailure is a file that could not be ingested.
type FileFailure struct {
	File string
	Err  error
}

func (f FileFailure) Error() string { return fmt.Sprintf("%s: %v", f.File, f.Err) }

func (f FileFailure) Unwrap() error { return f.Err }

// Result is the outcome of one run.
type Result struct {
	RunID    string
	Schedule *schedule.Schedule
	Files    int
	Failures []FileFailure
	Duration time.Duration
}

// Err joins the failures, or returns nil when every file was ingested.
func (r *Result) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}
	errs := make([]error, len(r.Failures))
	for i, f := range r.Failures {
		errs[i] = f
	}
	return errors.Join(errs...)
}

type parsed struct {
	faculty  *schedule.Faculty
	duration time.Duration
	err      error
}

// Run ingests paths. With PolicySkip it only fails on context cancellation
// or setup errors; broken files are listed in Result.Failures. With
// PolicyAbort the first broken file, in input order, ends the run.
func (in *Ingestor) Run(ctx context.Context, paths []string) (*Result, error) {
	start := time.Now()
	reader, err := in.reader()
	if err != nil {
		return nil, err
	}
	log := in.logger()
	res := &Result{RunID: uuid.NewString(), Schedule: schedule.New(), Files: len(paths)}
	log.Infow("ingestion started", map[string]any{"run_id": res.RunID, "files": len(paths), "workers": in.workers(), "policy": in.Policy.String()})

	parseCtx, cancel := context.WithCancel(ctx)
	out := make([]parsed, len(paths))
	ready := make([]chan struct{}, len(paths))
	for i := range ready {
		ready[i] = make(chan struct{})
	}
	var g errgroup.Group
	g.SetLimit(in.workers())
	launched := make(chan struct{})
	go func() {
		defer close(launched)
		for i, p := range paths {
			i, p := i, p
			g.Go(func() error {
				defer close(ready[i])
				if err := parseCtx.Err(); err != nil {
					out[i].err = err
					return nil
				}
				out[i] = in.parse(parseCtx, reader, p)
				return nil
			})
		}
		_ = g.Wait()
	}()
	defer func() {
		cancel()
		<-launched
	}()

	groups := 0
	for i, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("ingestion cancelled before %s: %w", p, err)
		}
		select {
		case <-ready[i]:
		case <-ctx.Done():
			return nil, fmt.Errorf("ingestion cancelled during %s: %w", p, ctx.Err())
		}
		r := out[i]
		if r.err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("ingestion cancelled during %s: %w", p, ctx.Err())
			}
			in.record(log, metrics.FileEvent{File: p, Status: metrics.StatusFailed, Kind: model.KindOf(r.err).String(), Duration: r.duration})
			if in.Policy == PolicyAbort {
				log.Errorf("ingest %s: %v", p, r.err)
				return nil, fmt.Errorf("ingest %s: %w", p, r.err)
			}
			log.Warnf("skipping %s: %v", p, r.err)
			res.Failures = append(res.Failures, FileFailure{File: p, Err: r.err})
			continue
		}
		added := res.Schedule.Merge(r.faculty)
		groups += added
		in.record(log, metrics.FileEvent{File: p, Faculty: r.faculty.Name, Status: metrics.StatusOK, Groups: added, Duration: r.duration})
		log.Debugw("file merged", map[string]any{"file": p, "faculty": r.faculty.Name, "groups": added})
	}

	res.Duration = time.Since(start)
	if rec, ok := in.Recorder.(metrics.RunRecorder); ok {
		ev := metrics.RunEvent{RunID: res.RunID, Files: len(paths), Failed: len(res.Failures), Groups: groups, Duration: res.Duration}
		if err := rec.RecordRun(ev); err != nil {
			log.Warnf("record run: %v", err)
		}
	}
	log.Infow("ingestion finished", map[string]any{"run_id": res.RunID, "failed": len(res.Failures), "groups": groups, "duration": res.Duration.String()})
	return res, nil
}

func (in *Ingestor) parse(ctx context.Context, reader SheetReader, path string) parsed {
	start := time.Now()
	f, err := in.parseFile(ctx, reader, path)
	return parsed{faculty: f, duration: time.Since(start), err: err}
}

func (in *Ingestor) parseFile(ctx context.Context, reader SheetReader, path string) (*schedule.Faculty, error) {
	faculty, speciality, err := ParseFileName(path)
	if err != nil {
		return nil, err
	}
	sheet, err := reader.ReadSheet(ctx, path)
	if err != nil {
		return nil, err
	}
	return schedule.ParseFaculty(faculty, sheet.Rows, schedule.FacultyOptions{
		Speciality: speciality,
		Resolver:   in.Resolver,
		File:       filepath.Base(path),
		Sheet:      sheet.Name,
	})
}

func (in *Ingestor) record(log logger.Logger, ev metrics.FileEvent) {
	if in.Recorder == nil {
		return
	}
	if err := in.Recorder.RecordFile(ev); err != nil {
		log.Warnf("record file %s: %v", ev.File, err)
	}
}

func (in *Ingestor) reader() (SheetReader, error) {
	if in.Reader != nil {
		return in.Reader, nil
	}
	r, err := NewReader(factory.ModuleConfig{Type: DefaultReader})
	if err != nil {
		return nil, fmt.Errorf("sheet reader: %w", err)
	}
	return r, nil
}

func (in *Ingestor) logger() logger.Logger {
	if in.Logger == nil {
		return logger.NopLogger{}
	}
	return in.Logger
}

func (in *Ingestor) workers() int {
	if in.Workers < 1 {
		return 1
	}
	return in.Workers
}
