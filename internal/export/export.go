// Package export renders the catalog as a standalone HTML viewer page.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"os"

	"grossview/viewer/internal/catalog"
)

const pageTitle = "Grossing Template Viewer"

var pageTemplate = template.Must(template.New("viewer").Parse(viewerPage))

type pageData struct {
	Title       string
	CatalogJSON template.JS
}

// Render produces the viewer page bytes for a catalog.
func Render(cat *catalog.Catalog) ([]byte, error) {
	encoded, err := json.Marshal(cat.Entries())
	if err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	var buf bytes.Buffer
	err = pageTemplate.Execute(&buf, pageData{
		Title:       pageTitle,
		CatalogJSON: template.JS(encoded),
	})
	if err != nil {
		return nil, fmt.Errorf("render viewer page: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile renders the viewer page and writes it to path, returning
// the number of bytes written.
func WriteFile(path string, cat *catalog.Catalog) (int, error) {
	page, err := Render(cat)
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(path, page, 0o644); err != nil {
		return 0, err
	}
	return len(page), nil
}
