package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetOutput_StructuredJSON(t *testing.T) {
	Init()
	var structured, human bytes.Buffer
	SetOutput(&structured, &human)
	defer Init()

	Structured().Info("dataset processed", "dataset", "cctv_day1", "pairs", 42)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(structured.Bytes(), &entry))
	assert.Equal(t, "dataset processed", entry["msg"])
	assert.Equal(t, "cctv_day1", entry["dataset"])
	assert.EqualValues(t, 42, entry["pairs"])
}

func TestForService(t *testing.T) {
	Init()
	var structured, human bytes.Buffer
	SetOutput(&structured, &human)
	defer Init()

	ForService("combiner").Info("run starting")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(structured.Bytes(), &entry))
	assert.Equal(t, "combiner", entry["service"])
}

func TestHumanReadableOutput(t *testing.T) {
	Init()
	var structured, human bytes.Buffer
	SetOutput(&structured, &human)
	defer Init()

	HumanReadable().Error("command failed", "error", "boom")

	assert.Contains(t, human.String(), "command failed")
	assert.Contains(t, human.String(), "boom")
	assert.Empty(t, structured.String())
}

func TestCustomLevelNames(t *testing.T) {
	Init()
	var structured, human bytes.Buffer
	SetOutput(&structured, &human)
	defer Init()

	Trace("very detailed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(structured.Bytes(), &entry))
	assert.Equal(t, "TRACE", entry["level"])
}

func TestNewFileLogger(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logs", "combine.log")

	logger, closeFn, err := NewFileLogger(path, "combiner", slog.LevelInfo)
	require.NoError(t, err)
	require.NotNil(t, logger)

	logger.Info("written to file")
	require.NoError(t, closeFn())

	assert.FileExists(t, path)
}
