package catalog

// Default returns the built-in catalog used when no source file is
// supplied.
func Default() *Catalog {
	return New([]Entry{
		{
			Category: "GI 1 and 2",
			Subcategories: []string{
				"GI 1 - Subcategory A",
				"GI 1 - Subcategory B",
				"GI 1 - Subcategory C",
				"GI 2 - Subcategory A",
				"GI 2 - Subcategory B",
				"GI 2 - Subcategory C",
			},
		},
		{
			Category: "Gallbladder and Appendix",
			Subcategories: []string{
				"Gallbladder",
				"Appendix",
			},
		},
		{
			Category: "GU",
			Subcategories: []string{
				"TURBT",
				"Ureter",
				"Prostate",
			},
		},
		{
			Category: "Skin and Soft Tissue",
			Subcategories: []string{
				"Skin Excision",
				"Soft Tissue Mass",
			},
		},
	})
}
