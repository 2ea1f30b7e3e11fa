package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// CatalogDataID is the element id of the JSON catalog block embedded
// in exported viewer pages. Loading shares this constant with the
// exporter so pages round-trip.
const CatalogDataID = "catalog-data"

// loadViewerHTML reads the catalog back out of a previously exported
// viewer page by locating its embedded JSON data block.
func loadViewerHTML(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	raw := strings.TrimSpace(doc.Find("script#" + CatalogDataID).Text())
	if raw == "" {
		return nil, fmt.Errorf("%s contains no embedded catalog data", path)
	}
	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("decode catalog data in %s: %w", path, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%s defines no categories", path)
	}
	return New(entries), nil
}
