package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologLoggerMethods(t *testing.T) {
	assert.NoError(t, os.Setenv("APP_ENV", "dev"))
	defer func() { assert.NoError(t, os.Unsetenv("APP_ENV")) }()
	l := NewZerologLogger("test")
	if l == nil {
		t.Fatalf("nil logger")
	}
	l.Debugf("debug %d", 1)
	l.Debugw("debug", map[string]any{"k": 1})
	l.Infof("info %s", "test")
	l.Infow("info", map[string]any{"file": "a.xlsx"})
	l.Warnf("warn")
	l.Errorf("error")
}

func TestZerologLoggerComponentField(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologLoggerTo(&buf, "ingest")
	l.Infow("parsed", map[string]any{"groups": 3})

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "ingest", line["component"])
	assert.Equal(t, "parsed", line["message"])
	assert.EqualValues(t, 3, line["groups"])
}

func TestSetLevel(t *testing.T) {
	prev := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(prev)

	require.NoError(t, SetLevel("warn"))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
	require.NoError(t, SetLevel(""))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
	assert.Error(t, SetLevel("loud"))
}
