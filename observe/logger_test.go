package observe

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func decodeEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("log line %q is not JSON: %v", line, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter("warn", &buf)
	ctx := context.Background()

	l.Debug(ctx, "debug msg")
	l.Info(ctx, "info msg")
	l.Warn(ctx, "warn msg")
	l.Error(ctx, "error msg")

	entries := decodeEntries(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0]["level"] != "warn" || entries[1]["level"] != "error" {
		t.Errorf("levels = %v, %v", entries[0]["level"], entries[1]["level"])
	}
}

func TestLogger_RedactsCredentialFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter("info", &buf)

	l.Info(context.Background(), "request sent",
		F("authorization", "Bearer h.c.s"),
		F("private_key", "seed-material"),
		F("path", "/api/v3/brokerage/accounts"),
	)

	entries := decodeEntries(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e["authorization"] != "[REDACTED]" {
		t.Errorf("authorization = %v, want [REDACTED]", e["authorization"])
	}
	if e["private_key"] != "[REDACTED]" {
		t.Errorf("private_key = %v, want [REDACTED]", e["private_key"])
	}
	if e["path"] != "/api/v3/brokerage/accounts" {
		t.Errorf("path = %v, want passthrough", e["path"])
	}
	if strings.Contains(buf.String(), "seed-material") {
		t.Error("raw key material leaked into the log output")
	}
}

func TestLogger_WithAttachesFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter("info", &buf).With(F("component", "executor"))

	l.Info(context.Background(), "hello", F("attempt", 2))

	entries := decodeEntries(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e["component"] != "executor" {
		t.Errorf("component = %v, want executor", e["component"])
	}
	if e["attempt"] != float64(2) {
		t.Errorf("attempt = %v, want 2", e["attempt"])
	}
	if e["msg"] != "hello" {
		t.Errorf("msg = %v, want hello", e["msg"])
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"", LevelInfo},
		{"bogus", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNopLogger(t *testing.T) {
	l := NopLogger()
	// Must not panic and With must return a usable logger.
	l.With(F("k", "v")).Info(context.Background(), "ignored")
}
