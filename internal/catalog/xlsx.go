package catalog

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// loadWorkbook reads a catalog from the first sheet of an XLSX
// workbook. Each row pairs a category with one subcategory; repeated
// category cells accumulate into the same category.
func loadWorkbook(path string) (*Catalog, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("%s has no sheets", path)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	entries := make([]Entry, 0, len(rows))
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		if i == 0 && isHeaderRow(row) {
			continue
		}
		category := strings.TrimSpace(row[0])
		if category == "" {
			continue
		}
		entry := Entry{Category: category}
		if len(row) > 1 {
			if sub := strings.TrimSpace(row[1]); sub != "" {
				entry.Subcategories = []string{sub}
			}
		}
		entries = append(entries, entry)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%s defines no categories", path)
	}
	return New(entries), nil
}

func isHeaderRow(row []string) bool {
	if len(row) < 2 {
		return false
	}
	first := strings.ToLower(strings.TrimSpace(row[0]))
	second := strings.ToLower(strings.TrimSpace(row[1]))
	return strings.Contains(first, "category") && strings.Contains(second, "subcategory")
}
