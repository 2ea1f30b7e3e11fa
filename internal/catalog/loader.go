package catalog

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	extYAML     = ".yaml"
	extYAMLAlt  = ".yml"
	extWorkbook = ".xlsx"
	extHTML     = ".html"
)

// SupportedSource reports whether the file extension names a loadable
// catalog format.
func SupportedSource(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case extYAML, extYAMLAlt, extWorkbook, extHTML:
		return true
	}
	return false
}

// Load reads a catalog from a source file, dispatching on extension.
// Supported sources are YAML category files, XLSX workbooks, and
// previously exported viewer pages.
func Load(path string) (*Catalog, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case extYAML, extYAMLAlt:
		return loadYAML(path)
	case extWorkbook:
		return loadWorkbook(path)
	case extHTML:
		return loadViewerHTML(path)
	}
	return nil, fmt.Errorf("unsupported catalog source %q", path)
}
