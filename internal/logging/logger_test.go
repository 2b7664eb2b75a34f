package logging_test

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"moviedb/internal/config"
	"moviedb/internal/logging"
)

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	return string(content)
}

func TestNewFromConfigWritesLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = t.TempDir()
	cfg.Logging.Level = "info"

	logger, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logging.NewComponentLogger(logger, "catalog").Info("catalog loaded", logging.Int("count", 3))

	content := readLog(t, filepath.Join(cfg.Paths.LogDir, logging.LogFileName))
	if !strings.Contains(content, "INFO catalog: catalog loaded count=3") {
		t.Fatalf("unexpected console line: %q", content)
	}
}

func TestConsoleLoggerOmitsSourceForInfo(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console.log")
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("message without caller", logging.String("name", "The Dark Knight"))

	content := readLog(t, logPath)
	if strings.Contains(content, ".go:") {
		t.Fatalf("expected no caller information, got %q", content)
	}
	if !strings.Contains(content, `name="The Dark Knight"`) {
		t.Fatalf("expected quoted value, got %q", content)
	}
}

func TestConsoleLoggerFiltersBelowLevel(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "warn.log")
	logger, err := logging.New(logging.Options{Level: "warn", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("hidden")
	logging.WarnWithContext(logger, "seed line skipped", "seed_line_invalid", logging.Int("line", 4))

	content := readLog(t, logPath)
	if strings.Contains(content, "hidden") {
		t.Fatalf("info line should be filtered: %q", content)
	}
	for _, want := range []string{"WARN seed line skipped", "line=4", "event_type=seed_line_invalid", "error_hint=", "impact="} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected %q in %q", want, content)
		}
	}
}

func TestJSONLoggerWithRunID(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "json.log")
	base, err := logging.New(logging.Options{Format: "json", Level: "info", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger, runID := logging.WithRunID(base, "")
	if runID == "" {
		t.Fatal("expected generated run id")
	}
	logger.With(logging.String(logging.FieldCommand, "list")).Info("command finished")

	var entry map[string]any
	line := strings.TrimSpace(readLog(t, logPath))
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("decode json line %q: %v", line, err)
	}
	if entry["run_id"] != runID || entry["command"] != "list" || entry["level"] != "info" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if _, ok := entry["ts"]; !ok {
		t.Fatalf("expected ts key: %v", entry)
	}
}

func TestRunIDStaysTopLevelInGroups(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "grouped.json")
	consolePath := filepath.Join(dir, "grouped.log")

	jsonBase, err := logging.New(logging.Options{Format: "json", Level: "info", OutputPaths: []string{jsonPath}})
	if err != nil {
		t.Fatalf("New json: %v", err)
	}
	consoleBase, err := logging.New(logging.Options{Format: "console", Level: "info", OutputPaths: []string{consolePath}})
	if err != nil {
		t.Fatalf("New console: %v", err)
	}

	jsonLogger, runID := logging.WithRunID(jsonBase, "run-42")
	jsonLogger.WithGroup("import").Info("movie skipped", logging.Int("line", 7))

	var entry map[string]any
	line := strings.TrimSpace(readLog(t, jsonPath))
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("decode json line %q: %v", line, err)
	}
	if entry["run_id"] != runID {
		t.Fatalf("run_id not at top level: %v", entry)
	}
	group, ok := entry["import"].(map[string]any)
	if !ok || group["line"] != float64(7) {
		t.Fatalf("expected grouped line attr: %v", entry)
	}
	if _, nested := group["run_id"]; nested {
		t.Fatalf("run_id leaked into group: %v", entry)
	}

	consoleLogger, _ := logging.WithRunID(consoleBase, "run-42")
	consoleLogger.WithGroup("import").Info("movie skipped", logging.Int("line", 7))
	content := readLog(t, consolePath)
	if !strings.Contains(content, " run_id=run-42") || strings.Contains(content, "import.run_id") {
		t.Fatalf("unexpected console run_id placement: %q", content)
	}
	if !strings.Contains(content, "import.line=7") {
		t.Fatalf("expected grouped line attr: %q", content)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{"debug": slog.LevelDebug, "WARN": slog.LevelWarn, "error": slog.LevelError, "": slog.LevelInfo, "bogus": slog.LevelInfo}
	for in, want := range cases {
		if got := logging.ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewComponentLogger(nil, "test")
	logger.Error("ignored")
	logging.WarnWithContext(nil, "ignored", "noop")
}
