package config

import (
	"strings"
	"testing"
)

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	environ := []string{
		"GROSSVIEW_CATALOG=env.yaml",
		"GROSSVIEW_WIDTH=100",
		"GROSSVIEW_TRACE=true",
	}
	cfg, err := LoadArgs([]string{"-catalog", "flag.yaml", "-width", "42"}, environ)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.CatalogPath != "flag.yaml" {
		t.Fatalf("expected flag to win over env, got %q", cfg.App.CatalogPath)
	}
	if cfg.App.Width != 42 {
		t.Fatalf("expected width 42, got %d", cfg.App.Width)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected trace enabled from environment")
	}
}

func TestLoadArgsEnvironmentDefaults(t *testing.T) {
	environ := []string{
		"GROSSVIEW_LISTEN=:8080",
		"GROSSVIEW_FOOTER=true",
		"GROSSVIEW_LOG_FILE=/tmp/grossview-test.log",
	}
	cfg, err := LoadArgs(nil, environ)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.ListenAddr != ":8080" {
		t.Fatalf("expected listen addr from env, got %q", cfg.App.ListenAddr)
	}
	if !cfg.App.ShowFooter {
		t.Fatalf("expected footer enabled from env")
	}
	if cfg.Logging.FilePath != "/tmp/grossview-test.log" {
		t.Fatalf("expected log file from env, got %q", cfg.Logging.FilePath)
	}
}

func TestLoadArgsRejectsNegativeDimensions(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"-height", "-5"}, nil); err == nil {
		t.Fatalf("expected error for negative height")
	}
}

func TestLoadArgsRecordsFlagsAndArgs(t *testing.T) {
	args := []string{"-catalog", "c.yaml", "-verbose"}
	cfg, err := LoadArgs(args, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.Flags["catalog"] != "c.yaml" {
		t.Fatalf("expected catalog flag recorded, got %v", cfg.Flags)
	}
	if cfg.Flags["verbose"] != "true" {
		t.Fatalf("expected verbose flag recorded, got %v", cfg.Flags)
	}
	if len(cfg.Args) != len(args) {
		t.Fatalf("expected argv preserved, got %v", cfg.Args)
	}
}

func TestValidateRejectsUnsupportedCatalogSource(t *testing.T) {
	cfg, err := LoadArgs([]string{"-catalog", "catalog.docx"}, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	err = Validate(cfg)
	if err == nil {
		t.Fatalf("expected validation error for unsupported source")
	}
	if !strings.Contains(err.Error(), "catalog.docx") {
		t.Fatalf("expected offending path in error, got %v", err)
	}
}

func TestValidateAcceptsEmptyCatalogPath(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected empty catalog path to validate, got %v", err)
	}
}
