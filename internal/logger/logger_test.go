package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"evalreport/backend/internal/logger"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, logger.ParseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, logger.ParseLevel("warning"))
	require.Equal(t, slog.LevelError, logger.ParseLevel("error"))
	require.Equal(t, slog.LevelInfo, logger.ParseLevel("verbose"))
}

func TestInitWriter_JSON(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger.InitWriter(&buf, slog.LevelInfo, "json")
	logger.Debug("hidden")
	logger.Info("report generated", "module", "service", "result", "ok")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "info", entry["level"])
	require.Equal(t, "report generated", entry["msg"])
	require.Equal(t, "evalreport", entry["app"])
	require.Equal(t, "service", entry["module"])
}

func TestInitWriter_Text(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger.InitWriter(&buf, slog.LevelWarn, "text")
	logger.Info("skipped")
	logger.Warn("download failed", "status_code", 404)

	out := buf.String()
	require.NotContains(t, out, "skipped")
	require.Contains(t, out, "level=warn")
	require.Contains(t, out, "status_code=404")
}
