package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/naukma-schedule/core/metrics"
)

// PromSink records ingestion events in Prometheus metrics. A one-shot run has
// no scrape endpoint, so Flush dumps the registry to a node_exporter textfile.
type PromSink struct {
	gatherer prometheus.Gatherer
	textfile string

	files     *prometheus.CounterVec
	groups    *prometheus.CounterVec
	parse     *prometheus.HistogramVec
	runFiles  prometheus.Gauge
	runFailed prometheus.Gauge
	runTime   prometheus.Gauge
}

// NewPromSink registers ingestion metrics on a fresh registry and flushes
// them to textfile. An empty textfile disables Flush.
func NewPromSink(textfile string) (*PromSink, error) {
	reg := prometheus.NewRegistry()
	return NewPromSinkWithRegistry(textfile, reg, reg)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(textfile string, reg prometheus.Registerer, g prometheus.Gatherer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	files := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "naukma_files_total",
		Help: "Schedule files processed by outcome",
	}, []string{"status", "kind"})
	groups := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "naukma_groups_total",
		Help: "Groups parsed per faculty",
	}, []string{"faculty"})
	parse := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "naukma_file_parse_seconds",
		Help:    "Time spent reading and parsing one schedule file",
		Buckets: prometheus.DefBuckets,
	}, []string{"status"})
	runFiles := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "naukma_run_files",
		Help: "Files given to the last ingestion run",
	})
	runFailed := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "naukma_run_failed_files",
		Help: "Files that failed in the last ingestion run",
	})
	runTime := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "naukma_run_duration_seconds",
		Help: "Wall time of the last ingestion run",
	})

	s := &PromSink{gatherer: g, textfile: textfile}
	var err error
	if s.files, err = register(reg, files); err != nil {
		return nil, err
	}
	if s.groups, err = register(reg, groups); err != nil {
		return nil, err
	}
	if s.parse, err = register(reg, parse); err != nil {
		return nil, err
	}
	if s.runFiles, err = register[prometheus.Gauge](reg, runFiles); err != nil {
		return nil, err
	}
	if s.runFailed, err = register[prometheus.Gauge](reg, runFailed); err != nil {
		return nil, err
	}
	if s.runTime, err = register[prometheus.Gauge](reg, runTime); err != nil {
		return nil, err
	}
	return s, nil
}

// register reuses an already registered collector of the same description.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		var zero C
		return zero, err
	}
	return c, nil
}

// RecordFile counts the file outcome and the groups it contributed.
func (s *PromSink) RecordFile(ev coremetrics.FileEvent) error {
	s.files.WithLabelValues(ev.Status, ev.Kind).Inc()
	s.parse.WithLabelValues(ev.Status).Observe(ev.Duration.Seconds())
	if ev.Faculty != "" && ev.Groups > 0 {
		s.groups.WithLabelValues(ev.Faculty).Add(float64(ev.Groups))
	}
	return nil
}

// RecordRun sets the run summary gauges.
func (s *PromSink) RecordRun(ev coremetrics.RunEvent) error {
	s.runFiles.Set(float64(ev.Files))
	s.runFailed.Set(float64(ev.Failed))
	s.runTime.Set(ev.Duration.Seconds())
	return nil
}

// Flush writes the gathered metrics to the configured textfile.
func (s *PromSink) Flush() error {
	if s.textfile == "" {
		return nil
	}
	return prometheus.WriteToTextfile(s.textfile, s.gatherer)
}
