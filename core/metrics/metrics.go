package metrics

import "time"

// File outcome labels.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// FileEvent describes the ingestion of one schedule file.
type FileEvent struct {
	File     string
	Faculty  string
	Status   string
	// Kind is the error kind name for failed files.
	Kind     string
	Groups   int
	Duration time.Duration
}

// RunEvent summarises one ingestion run.
type RunEvent struct {
	RunID    string
	Files    int
	Failed   int
	Groups   int
	Duration time.Duration
}

// IngestSink records ingestion events for observability purposes.
type IngestSink interface {
	RecordFile(ev FileEvent) error
}

// RunRecorder is implemented by sinks able to record run summaries.
type RunRecorder interface {
	RecordRun(ev RunEvent) error
}

// Flusher is implemented by sinks buffering output until the run ends.
type Flusher interface {
	Flush() error
}

// NopSink implements IngestSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordFile(FileEvent) error { return nil }
func (NopSink) RecordRun(RunEvent) error   { return nil }
func (NopSink) Flush() error               { return nil }
