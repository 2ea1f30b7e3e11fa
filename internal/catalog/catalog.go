// Package catalog holds the immutable category/subcategory data the
// picker, exporter, and server all read from.
package catalog

import "strings"

// Entry pairs a category name with its ordered subcategories. Entries
// are the exchange format for every catalog source, including the JSON
// block embedded in exported viewer pages.
type Entry struct {
	Category      string   `json:"category"`
	Subcategories []string `json:"subcategories"`
}

// Catalog is a read-only category map with a stable iteration order.
// Construct one with New or Default; there are no mutating methods.
type Catalog struct {
	order   []string
	entries map[string][]string
}

// New builds a catalog from entries. Names are trimmed, blank
// categories are skipped, and repeated categories merge their
// subcategories in first-seen order.
func New(entries []Entry) *Catalog {
	c := &Catalog{entries: make(map[string][]string, len(entries))}
	for _, entry := range entries {
		name := strings.TrimSpace(entry.Category)
		if name == "" {
			continue
		}
		if _, seen := c.entries[name]; !seen {
			c.order = append(c.order, name)
			c.entries[name] = nil
		}
		for _, sub := range entry.Subcategories {
			sub = strings.TrimSpace(sub)
			if sub == "" {
				continue
			}
			c.entries[name] = append(c.entries[name], sub)
		}
	}
	return c
}

// Categories returns the category names in catalog order.
func (c *Catalog) Categories() []string {
	return append([]string(nil), c.order...)
}

// Subcategories returns the subcategories for a category, preserving
// catalog order. Unknown categories and categories with no
// subcategories both yield nil.
func (c *Catalog) Subcategories(name string) []string {
	subs := c.entries[name]
	if len(subs) == 0 {
		return nil
	}
	return append([]string(nil), subs...)
}

// Has reports whether the category exists in the catalog.
func (c *Catalog) Has(name string) bool {
	_, ok := c.entries[name]
	return ok
}

// Len returns the number of categories.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Entries returns the catalog contents as a list of entries in catalog
// order, suitable for serialisation.
func (c *Catalog) Entries() []Entry {
	entries := make([]Entry, 0, len(c.order))
	for _, name := range c.order {
		entries = append(entries, Entry{
			Category:      name,
			Subcategories: append([]string(nil), c.entries[name]...),
		})
	}
	return entries
}
