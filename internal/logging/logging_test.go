package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func resetForTest(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logs", "grossview.log")
	Configure(path)
	t.Cleanup(func() {
		SetTraceEnabled(false)
		Configure(filepath.Join(t.TempDir(), "discard.log"))
	})
	return path
}

func TestConfigureDoesNotCreateLogFile(t *testing.T) {
	path := resetForTest(t)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file before first write, stat err = %v", err)
	}
}

func TestDisabledTraceWritesNothing(t *testing.T) {
	path := resetForTest(t)
	SetTraceEnabled(false)
	Trace("test.event", map[string]interface{}{"key": "value"})
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file for disabled trace, stat err = %v", err)
	}
}

func TestTraceWritesWhenEnabled(t *testing.T) {
	path := resetForTest(t)
	SetTraceEnabled(true)
	Trace("test.event", map[string]interface{}{"key": "value"})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file after trace write: %v", err)
	}
	if !strings.Contains(string(data), "test.event") {
		t.Fatalf("expected event in log output, got %q", data)
	}
}

func TestConfigureClosesPreviousSinkAndSwitchesTarget(t *testing.T) {
	first := resetForTest(t)
	SetTraceEnabled(true)
	Trace("first.event", nil)
	if sink == nil {
		t.Fatalf("expected an open sink after first write")
	}
	firstInfo, err := os.Stat(first)
	if err != nil {
		t.Fatalf("expected first log file: %v", err)
	}

	second := filepath.Join(t.TempDir(), "second.log")
	Configure(second)
	if sink != nil {
		t.Fatalf("expected old sink closed on reconfigure")
	}

	SetTraceEnabled(true)
	Trace("second.event", nil)
	data, err := os.ReadFile(second)
	if err != nil {
		t.Fatalf("expected second log file after write: %v", err)
	}
	if !strings.Contains(string(data), "second.event") {
		t.Fatalf("expected event in second log, got %q", data)
	}

	afterInfo, err := os.Stat(first)
	if err != nil {
		t.Fatalf("stat first log: %v", err)
	}
	if afterInfo.Size() != firstInfo.Size() {
		t.Fatalf("expected first log untouched after switch, size %d -> %d", firstInfo.Size(), afterInfo.Size())
	}
}
