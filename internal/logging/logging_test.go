package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New("debug", "json", &buf)

	logger.Debug().Str("view", "game-v1").Msg("dispatch view")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if entry["view"] != "game-v1" {
		t.Fatalf("expected view field, got %v", entry)
	}
	if entry["level"] != "debug" {
		t.Fatalf("expected debug level, got %v", entry["level"])
	}
}

func TestNewFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New("warn", "json", &buf)

	logger.Info().Msg("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered, got %q", buf.String())
	}

	logger.Warn().Msg("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("expected warn line, got %q", buf.String())
	}
}

func TestNewConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New("", "console", &buf)

	logger.Info().Msg("listening")
	if !strings.Contains(buf.String(), "listening") {
		t.Fatalf("expected console line, got %q", buf.String())
	}
	if strings.HasPrefix(strings.TrimSpace(buf.String()), "{") {
		t.Fatalf("expected non-JSON console output, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	if lvl, ok := parseLevel(" ERROR "); !ok || lvl != zerolog.ErrorLevel {
		t.Fatalf("expected error level, got %v %v", lvl, ok)
	}
	if lvl, ok := parseLevel("chatty"); ok || lvl != zerolog.InfoLevel {
		t.Fatalf("expected info fallback, got %v %v", lvl, ok)
	}
}
