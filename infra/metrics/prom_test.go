package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/naukma-schedule/core/factory"
	coremetrics "github.com/kilianp07/naukma-schedule/core/metrics"
)

func TestPromSink_RecordFile(t *testing.T) {
	sink, err := NewPromSink("")
	require.NoError(t, err)

	require.NoError(t, sink.RecordFile(coremetrics.FileEvent{
		File: "FI.xlsx", Faculty: "ФІ", Status: coremetrics.StatusOK, Groups: 3, Duration: 20 * time.Millisecond,
	}))
	require.NoError(t, sink.RecordFile(coremetrics.FileEvent{
		File: "bad.xlsx", Status: coremetrics.StatusFailed, Kind: "XlsxError", Duration: time.Millisecond,
	}))

	expected := `
# HELP naukma_files_total Schedule files processed by outcome
# TYPE naukma_files_total counter
naukma_files_total{kind="",status="ok"} 1
naukma_files_total{kind="XlsxError",status="failed"} 1
`
	if err := testutil.CollectAndCompare(sink.files, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}
	assert.Equal(t, 3.0, testutil.ToFloat64(sink.groups.WithLabelValues("ФІ")))
	assert.Equal(t, 2, testutil.CollectAndCount(sink.parse))
}

func TestPromSink_RecordRun(t *testing.T) {
	sink, err := NewPromSink("")
	require.NoError(t, err)
	require.NoError(t, sink.RecordRun(coremetrics.RunEvent{Files: 4, Failed: 1, Duration: 2 * time.Second}))
	assert.Equal(t, 4.0, testutil.ToFloat64(sink.runFiles))
	assert.Equal(t, 1.0, testutil.ToFloat64(sink.runFailed))
	assert.Equal(t, 2.0, testutil.ToFloat64(sink.runTime))
}

func TestPromSink_SharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	a, err := NewPromSinkWithRegistry("", reg, reg)
	require.NoError(t, err)
	b, err := NewPromSinkWithRegistry("", reg, reg)
	require.NoError(t, err)
	require.NoError(t, a.RecordFile(coremetrics.FileEvent{Status: coremetrics.StatusOK}))
	require.NoError(t, b.RecordFile(coremetrics.FileEvent{Status: coremetrics.StatusOK}))
	assert.Equal(t, 2.0, testutil.ToFloat64(a.files.WithLabelValues(coremetrics.StatusOK, "")))
}

func TestPromSink_FlushTextfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "naukma.prom")
	sink, err := NewPromSink(path)
	require.NoError(t, err)
	require.NoError(t, sink.RecordRun(coremetrics.RunEvent{Files: 2}))
	require.NoError(t, sink.Flush())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "naukma_run_files 2")
}

func TestFactory_Prometheus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.prom")
	s, err := coremetrics.NewSink([]factory.ModuleConfig{{Type: "prometheus", Conf: map[string]any{"textfile": path}}})
	require.NoError(t, err)
	ps, ok := s.(*PromSink)
	require.True(t, ok)
	assert.Equal(t, path, ps.textfile)
}
