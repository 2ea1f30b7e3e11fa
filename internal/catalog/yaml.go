package catalog

import (
	"fmt"

	"github.com/spf13/viper"
)

type yamlEntry struct {
	Name          string   `mapstructure:"name"`
	Subcategories []string `mapstructure:"subcategories"`
}

// loadYAML reads a catalog from a YAML file shaped as a top-level
// "categories" list of {name, subcategories} mappings.
func loadYAML(path string) (*Catalog, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var raw []yamlEntry
	if err := v.UnmarshalKey("categories", &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%s defines no categories", path)
	}
	entries := make([]Entry, 0, len(raw))
	for _, e := range raw {
		entries = append(entries, Entry{Category: e.Name, Subcategories: e.Subcategories})
	}
	return New(entries), nil
}
