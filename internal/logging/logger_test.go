package logging_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"kord/internal/config"
	"kord/internal/logging"
)

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	return string(content)
}

func TestConsoleLineShape(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console.log")
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", Output: logPath})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logging.NewComponentLogger(logger, "server").Info("listening",
		logging.String("bind", "127.0.0.1:7490"),
		logging.String(logging.FieldNotation, "C major"),
		logging.Error(errors.New("boom")),
	)

	content := readLog(t, logPath)
	for _, want := range []string{
		"INFO  server: listening",
		"bind=127.0.0.1:7490",
		`notation="C major"`,
		"error=boom",
	} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected %q in %q", want, content)
		}
	}
	if strings.Contains(content, ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", content)
	}
}

func TestConsoleIncludesCallerForDebug(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "debug.log")
	logger, err := logging.New(logging.Options{Format: "console", Level: "debug", Output: logPath})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("message with caller")
	if content := readLog(t, logPath); !strings.Contains(content, "logger_test.go:") {
		t.Fatalf("expected caller information in debug logs, got %q", content)
	}
}

func TestJSONFormat(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "json.log")
	logger, err := logging.New(logging.Options{Format: "json", Level: "info", Output: logPath})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("resolved", logging.Int(logging.FieldCandidates, 3))

	var entry map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(readLog(t, logPath))), &entry); err != nil {
		t.Fatalf("decode json log: %v", err)
	}
	if entry["level"] != "info" || entry["msg"] != "resolved" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if _, ok := entry["ts"]; !ok {
		t.Fatalf("expected ts key: %v", entry)
	}
	if entry[logging.FieldCandidates] != float64(3) {
		t.Fatalf("unexpected candidates field: %v", entry)
	}
}

func TestComponentOverrides(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "overrides.log")
	logger, err := logging.New(logging.Options{
		Format:             "console",
		Level:              "info",
		Output:             logPath,
		ComponentOverrides: map[string]string{"server": "warn", "midi": "debug"},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logging.NewComponentLogger(logger, "server").Info("hidden request line")
	logging.NewComponentLogger(logger, "server").Warn("visible warning")
	logging.NewComponentLogger(logger, "midi").Debug("visible debug")
	logger.Debug("hidden root debug")

	content := readLog(t, logPath)
	if strings.Contains(content, "hidden") {
		t.Fatalf("override did not filter: %q", content)
	}
	if !strings.Contains(content, "visible warning") || !strings.Contains(content, "visible debug") {
		t.Fatalf("override filtered too much: %q", content)
	}
}

func TestWithContextAddsRequestID(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "ctx.log")
	logger, err := logging.New(logging.Options{Format: "console", Output: logPath})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	ctx := logging.WithRequestID(context.Background(), "req-42")
	if id, ok := logging.RequestIDFromContext(ctx); !ok || id != "req-42" {
		t.Fatalf("unexpected request id: %q %v", id, ok)
	}
	logging.WithContext(ctx, logger).Info("handled")
	if content := readLog(t, logPath); !strings.Contains(content, "request_id=req-42") {
		t.Fatalf("expected request id in %q", content)
	}
	if _, ok := logging.RequestIDFromContext(context.Background()); ok {
		t.Fatal("expected no request id on a bare context")
	}
}

func TestNewFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Output = filepath.Join(t.TempDir(), "logs", "kord.log")
	logger, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("configured")
	if content := readLog(t, cfg.Logging.Output); !strings.Contains(content, "configured") {
		t.Fatalf("unexpected log content: %q", content)
	}
}

func TestRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNopLogger(t *testing.T) {
	logger := logging.NewNop()
	if logger.Enabled(context.Background(), 12) {
		t.Fatal("nop logger should not be enabled")
	}
	logging.NewComponentLogger(nil, "x").Error("discarded")
}
