package app

import (
	"errors"
	"fmt"

	"grossview/viewer/internal/catalog"
	"grossview/viewer/internal/export"
	"grossview/viewer/internal/logging/events"
	"grossview/viewer/internal/serve"
	"grossview/viewer/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	CatalogPath string
	ExportPath  string
	ListenAddr  string
	Width       int
	Height      int
	ShowFooter  bool
	Verbose     bool
}

// Run loads the catalog and executes the requested mode: HTML export,
// HTTP serving, or the interactive picker.
func Run(cfg Config) error {
	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}

	if cfg.ExportPath != "" {
		n, err := export.WriteFile(cfg.ExportPath, cat)
		if err != nil {
			return fmt.Errorf("export viewer page: %w", err)
		}
		events.Export.Written(cfg.ExportPath, n)
		if cfg.ListenAddr == "" {
			return nil
		}
	}

	if cfg.ListenAddr != "" {
		return serve.New(cat).Listen(cfg.ListenAddr)
	}

	model := ui.NewModel(cat, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		cat := catalog.Default()
		events.Catalog.Loaded("builtin", cat.Len())
		return cat, nil
	}
	cat, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	events.Catalog.Loaded(path, cat.Len())
	return cat, nil
}
