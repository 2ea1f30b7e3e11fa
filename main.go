package main

import (
	"fmt"
	"os"

	"grossview/viewer/internal/app"
	"grossview/viewer/internal/config"
	"grossview/viewer/internal/logging"
	"grossview/viewer/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	mode := runMode(runtimeCfg.App)
	terminal := probeTerminal()
	if mode == "tui" {
		applyTerminalSize(&runtimeCfg.App, terminal)
	}
	events.App.Start(startupTracePayload(runtimeCfg, mode, terminal))

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runMode names which of the picker's modes this invocation runs:
// "export", "serve", "export+serve", or the interactive "tui".
func runMode(cfg app.Config) string {
	switch {
	case cfg.ExportPath != "" && cfg.ListenAddr != "":
		return "export+serve"
	case cfg.ExportPath != "":
		return "export"
	case cfg.ListenAddr != "":
		return "serve"
	}
	return "tui"
}

// terminalInfo records which standard descriptors are terminals and
// the dimensions of the first one that reported a size.
type terminalInfo struct {
	Source string   `json:"source,omitempty"`
	Width  int      `json:"width,omitempty"`
	Height int      `json:"height,omitempty"`
	TTY    []string `json:"tty"`
}

// probeTerminal checks stdout, stderr, and stdin, in that order.
// Stdout leads because that is where the picker draws.
func probeTerminal() terminalInfo {
	var info terminalInfo
	probes := []struct {
		name string
		file *os.File
	}{
		{"stdout", os.Stdout},
		{"stderr", os.Stderr},
		{"stdin", os.Stdin},
	}
	for _, probe := range probes {
		fd := int(probe.file.Fd())
		if !term.IsTerminal(fd) {
			continue
		}
		info.TTY = append(info.TTY, probe.name)
		if info.Source != "" {
			continue
		}
		if width, height, err := term.GetSize(fd); err == nil {
			info.Source = probe.name
			info.Width = width
			info.Height = height
		}
	}
	return info
}

// applyTerminalSize fills unset picker dimensions from the probed
// terminal so the first frame is sized before the host delivers a
// resize message. Explicit -width/-height values win.
func applyTerminalSize(cfg *app.Config, terminal terminalInfo) {
	if terminal.Source == "" {
		return
	}
	if cfg.Width == 0 {
		cfg.Width = terminal.Width
	}
	if cfg.Height == 0 {
		cfg.Height = terminal.Height
	}
}

// startupTracePayload bundles the run mode, catalog source, and
// terminal context for the app.start trace entry.
func startupTracePayload(cfg config.Config, mode string, terminal terminalInfo) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	payload := map[string]interface{}{
		"mode":     mode,
		"catalog":  catalogSource(cfg.App),
		"argv":     cfg.Args,
		"flags":    flags,
		"trace":    cfg.Logging.Trace,
		"logFile":  cfg.Logging.FilePath,
		"terminal": terminal,
		"width":    cfg.App.Width,
		"height":   cfg.App.Height,
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	}
	return payload
}

func catalogSource(cfg app.Config) string {
	if cfg.CatalogPath == "" {
		return "builtin"
	}
	return cfg.CatalogPath
}
