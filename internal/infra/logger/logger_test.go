package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-json-experiment/json"
)

func TestSetup_DiscardByDefault(t *testing.T) {
	cleanup, err := Setup(Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = cleanup() }()

	if IsReady() == nil {
		t.Fatalf("expected no log file when nothing is configured")
	}
	if Path() != "" {
		t.Fatalf("expected empty path, got %q", Path())
	}
	L().Info("dropped")
}

func TestSetup_DebugToStderrWriter(t *testing.T) {
	var buf bytes.Buffer
	cleanup, err := Setup(Config{Debug: true, Stderr: &buf})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = cleanup() }()

	L().Info("emit.start", "emitter", "names")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var last map[string]any
	if err := json.Unmarshal([]byte(lines[len(lines)-1]), &last); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", buf.String(), err)
	}
	if last["msg"] != "emit.start" || last["emitter"] != "names" {
		t.Fatalf("unexpected record %v", last)
	}
	if _, ok := last["source"]; !ok {
		t.Fatalf("expected source attribute in debug mode, got %v", last)
	}
}

func TestSetup_FileAppendsAndCleansUp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "recordemit.log")

	cleanup, err := Setup(Config{File: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := IsReady(); err != nil {
		t.Fatalf("expected ready logger: %v", err)
	}
	if Path() != path {
		t.Fatalf("expected path %q, got %q", path, Path())
	}
	if InitTime().IsZero() {
		t.Fatalf("expected init time")
	}

	L().Info("emit.written", "path", "output.txt")
	L().Debug("not at info level")

	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if IsReady() == nil {
		t.Fatalf("expected logger reset after cleanup")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	s := string(b)
	if !strings.Contains(s, "emit.written") {
		t.Fatalf("expected info record in log, got %q", s)
	}
	if strings.Contains(s, "not at info level") {
		t.Fatalf("expected debug record filtered, got %q", s)
	}
	if !strings.Contains(s, "Z\"") {
		t.Fatalf("expected UTC timestamps, got %q", s)
	}
}
