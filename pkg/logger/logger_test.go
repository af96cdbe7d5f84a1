package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/NastyaGoryachaya/forex-converter/internal/config"
)

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&config.LoggerConfig{Level: "debug", Format: "json"}, &buf)

	log.Debug("converted", slog.String("from", "USD"))

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("log line is not json: %v (%s)", err, buf.String())
	}
	if line["level"] != "DEBUG" {
		t.Fatalf("unexpected level: %v", line["level"])
	}
	if line["service"] != serviceName {
		t.Fatalf("unexpected service: %v", line["service"])
	}
	src, _ := line["source"].(string)
	if !strings.HasPrefix(src, "logger_test.go:") {
		t.Fatalf("source must be shortened, got %q", src)
	}
}

func TestNewWithWriter_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&config.LoggerConfig{Level: "warn", Format: "text"}, &buf)

	log.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info must be filtered out, got %q", buf.String())
	}
	log.Warn("shown")
	if !strings.Contains(buf.String(), "level=WARN") {
		t.Fatalf("expected WARN line, got %q", buf.String())
	}
}

func TestParseLevel_Unknown(t *testing.T) {
	if _, err := parseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
