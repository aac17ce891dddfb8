package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		" DEBUG ": slog.LevelDebug,
		"warning": slog.LevelWarn,
		"err":     slog.LevelError,
		"trace":   slog.LevelDebug - 2,
	}
	for raw, want := range cases {
		if got := ParseLevel(raw); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Config{Level: "warn", Format: "json"})
	logger.Info("hidden")
	logger.Warn("upstream rejected request", slog.Int("status", 422))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info entry should be filtered: %s", out)
	}
	if !strings.Contains(out, `"status":422`) {
		t.Fatalf("expected json attribute, got %s", out)
	}
}

func TestOpenDailyCreatesDatedFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	file, logger, err := OpenDaily(dir, Config{Level: "info"}, time.Date(2024, 5, 1, 23, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Info("logging initialized")
	file.Close()

	content, err := os.ReadFile(filepath.Join(dir, "2024-05-01.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), "logging initialized") {
		t.Fatalf("unexpected log content: %s", content)
	}
}
