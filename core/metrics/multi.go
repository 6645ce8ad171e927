package metrics

import "errors"

// MultiSink fans events out to multiple sinks.
type MultiSink struct {
	Sinks []IngestSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...IngestSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordFile forwards the event to all sinks, returning the first error encountered.
func (m *MultiSink) RecordFile(ev FileEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordFile(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordRun forwards run summaries to sinks that accept them.
func (m *MultiSink) RecordRun(ev RunEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(RunRecorder); ok {
			if err := rec.RecordRun(ev); err != nil {
				return err
			}
		}
	}
	return nil
}

// Flush flushes every buffering sink and joins their errors.
func (m *MultiSink) Flush() error {
	var errs []error
	for _, s := range m.Sinks {
		if f, ok := s.(Flusher); ok {
			errs = append(errs, f.Flush())
		}
	}
	return errors.Join(errs...)
}
