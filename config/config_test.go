package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/naukma-schedule/core/ingest"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `ingest:
  sheet: "Розклад"
  policy: abort
  workers: 4
output:
  type: mqtt
  conf:
    broker: "tcp://localhost:1883"
    topic: "naukma/schedule"
metrics:
  sinks:
    - type: prometheus
      conf:
        textfile: "/var/lib/node_exporter/naukma.prom"
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"ingest.sheet", cfg.Ingest.Sheet, "Розклад"},
		{"ingest.policy", cfg.Ingest.ParsedPolicy(), ingest.PolicyAbort},
		{"ingest.workers", cfg.Ingest.Workers, 4},
		{"ingest.reader", cfg.Ingest.Reader, "xlsx"},
		{"output.type", cfg.Output.Type, "mqtt"},
		{"output.path", cfg.Output.Path, ""},
		{"output.conf.broker", cfg.Output.Conf["broker"], "tcp://localhost:1883"},
		{"metrics_sink", len(cfg.Metrics.Sinks) == 1 && cfg.Metrics.Sinks[0].Type == "prometheus", true},
		{"logging.level", cfg.Logging.Level, "debug"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s mismatch: %v", c.name, c.got)
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "skip", cfg.Ingest.Policy)
	assert.Equal(t, 1, cfg.Ingest.Workers)
	assert.Equal(t, "json", cfg.Output.Type)
	assert.Equal(t, DefaultOutputPath, cfg.Output.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Metrics.Sinks)
}

func TestLoad_JSONWithEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"ingest":{"workers":2},"output":{"type":"csv","path":"out.csv"}}`), 0o644))
	t.Setenv("NAUKMA_INGEST__WORKERS", "8")
	t.Setenv("NAUKMA_OUTPUT__PATH", "lessons.csv")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Ingest.Workers)
	assert.Equal(t, "lessons.csv", cfg.Output.Path)
	assert.Equal(t, "csv", cfg.Output.Module().Type)
	assert.Equal(t, "lessons.csv", cfg.Output.Module().Conf["path"])
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"policy.yaml":  "ingest:\n  policy: retry\n",
		"workers.yaml": "ingest:\n  workers: 1000\n",
		"level.yaml":   "logging:\n  level: loud\n",
	}
	for name, data := range cases {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
		_, err := Load(path)
		assert.Error(t, err, name)
	}

	_, err := Load(filepath.Join(dir, "config.toml"))
	assert.Error(t, err)
	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestIngestConfig_ReaderModule(t *testing.T) {
	c := IngestConfig{Sheet: "Sheet2"}
	c.SetDefaults()
	m := c.ReaderModule()
	assert.Equal(t, "xlsx", m.Type)
	assert.Equal(t, "Sheet2", m.Conf["sheet"])
}
