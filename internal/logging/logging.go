package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

const defaultLogFile = "grossview.log"

var (
	mu     sync.Mutex
	logger *logrus.Logger
	sink   *os.File
	target = defaultLogFile
	level  = logrus.InfoLevel
)

// Configure sets the log destination for subsequent writes. Empty
// values fall back to the default path. The file is only opened on the
// first actual write, so runs that never log leave no file behind.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	if strings.TrimSpace(path) == "" {
		path = defaultLogFile
	}
	closeSinkLocked()
	logger = nil
	target = path
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	if enabled {
		level = logrus.TraceLevel
	} else {
		level = logrus.InfoLevel
	}
	if logger != nil {
		logger.SetLevel(level)
	}
}

// acquire returns the shared logger, opening the log file on first
// use. Callers must hold mu.
func acquire() *logrus.Logger {
	if logger != nil {
		return logger
	}
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(level)
	path := target
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
			path = defaultLogFile
		}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		l.SetOutput(os.Stderr)
	} else {
		sink = f
		l.SetOutput(f)
	}
	logger = l
	return l
}

func closeSinkLocked() {
	if sink == nil {
		return
	}
	sink.Close()
	sink = nil
}

// Error writes errors to the shared log file.
func Error(err error) {
	if err == nil {
		return
	}
	mu.Lock()
	l := acquire()
	mu.Unlock()
	l.WithError(err).Error("error")
}

// Trace appends a structured entry to the shared log when tracing is
// enabled. Disabled tracing never touches the filesystem.
func Trace(event string, payload map[string]interface{}) {
	mu.Lock()
	if level != logrus.TraceLevel {
		mu.Unlock()
		return
	}
	l := acquire()
	mu.Unlock()
	l.WithFields(logrus.Fields(payload)).Trace(event)
}
