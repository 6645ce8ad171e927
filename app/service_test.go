package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/naukma-schedule/config"
	"github.com/kilianp07/naukma-schedule/core/factory"
	"github.com/kilianp07/naukma-schedule/infra/xlsx"
)

func testConfig(t *testing.T, dir string) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.Output.Path = filepath.Join(dir, "schedule.json")
	cfg.Metrics.Sinks = []factory.ModuleConfig{{Type: "prometheus", Conf: map[string]any{"textfile": filepath.Join(dir, "naukma.prom")}}}
	cfg.SetDefaults()
	require.NoError(t, cfg.Validate())
	return cfg
}

func TestService_RunExportsAndFlushesMetrics(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ФІ.xlsx")
	require.NoError(t, xlsx.WriteSheet(path, "", [][]string{
		{"День", "Час", "Дисципліна", "Група", "Тижні", "Аудиторія"},
		{"Середа", "13:30-14:50", "Компiлятори", "Лекція", "1-14", "1-313"},
	}))
	cfg := testConfig(t, dir)

	svc, err := New(cfg)
	require.NoError(t, err)
	res, err := svc.Run(context.Background(), []string{path, filepath.Join(dir, "missing.xlsx")})
	require.NoError(t, err)
	require.Len(t, res.Failures, 1)
	require.NoError(t, svc.Close())

	data, err := os.ReadFile(cfg.Output.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Компiлятори")

	prom, err := os.ReadFile(filepath.Join(dir, "naukma.prom"))
	require.NoError(t, err)
	assert.Contains(t, string(prom), `naukma_files_total{kind="IoError",status="failed"} 1`)
	assert.Contains(t, string(prom), "naukma_run_files 2")
}

func TestService_UnknownExporter(t *testing.T) {
	cfg := testConfig(t, t.TempDir())
	cfg.Output.Type = "pdf"
	_, err := New(cfg)
	assert.Error(t, err)
}
