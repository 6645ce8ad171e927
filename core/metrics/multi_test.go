package metrics

import (
	"errors"
	"testing"
)

type recordSink struct {
	files   int
	runs    int
	flushes int
	err     error
}

func (r *recordSink) RecordFile(FileEvent) error {
	r.files++
	return r.err
}

func (r *recordSink) RecordRun(RunEvent) error {
	r.runs++
	return nil
}

func (r *recordSink) Flush() error {
	r.flushes++
	return r.err
}

// TestMultiSink ensures events are forwarded to all sinks.
func TestMultiSink(t *testing.T) {
	s1 := &recordSink{}
	s2 := &recordSink{}
	m := NewMultiSink(s1, s2, NopSink{})
	if err := m.RecordFile(FileEvent{File: "a.xlsx", Status: StatusOK}); err != nil {
		t.Fatalf("record file: %v", err)
	}
	if err := m.RecordRun(RunEvent{Files: 1}); err != nil {
		t.Fatalf("record run: %v", err)
	}
	if err := m.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if s1.files != 1 || s2.files != 1 || s1.runs != 1 || s2.flushes != 1 {
		t.Fatalf("events not forwarded: %+v %+v", s1, s2)
	}
}

func TestMultiSinkStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	s1 := &recordSink{err: boom}
	s2 := &recordSink{}
	m := NewMultiSink(s1, s2)
	if err := m.RecordFile(FileEvent{}); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if s2.files != 0 {
		t.Fatalf("second sink should not be reached")
	}
	if err := m.Flush(); !errors.Is(err, boom) {
		t.Fatalf("expected joined flush error, got %v", err)
	}
}
