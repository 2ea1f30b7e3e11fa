package state

// Selection tracks the user's current category and subcategory choice.
// Both fields start empty, meaning no selection. All mutation funnels
// through the two Select methods so the pairing invariant holds: the
// subcategory can only have been drawn from the category it was set
// under, and never survives a category change.
type Selection struct {
	category    string
	subcategory string
}

// Category returns the selected category name, or "" when none is chosen.
func (s *Selection) Category() string {
	return s.category
}

// Subcategory returns the selected subcategory name, or "" when none is
// chosen.
func (s *Selection) Subcategory() string {
	return s.subcategory
}

// SelectCategory sets the category and resets the subcategory in the same
// step. Any string is accepted, including ""; it never fails.
func (s *Selection) SelectCategory(name string) {
	s.category = name
	s.subcategory = ""
}

// SelectSubcategory sets the subcategory, leaving the category untouched.
// Callers are expected to pass names drawn from the currently rendered
// chip set; no cross-check is performed here.
func (s *Selection) SelectSubcategory(name string) {
	s.subcategory = name
}

// Complete reports whether both fields hold a choice.
func (s *Selection) Complete() bool {
	return s.category != "" && s.subcategory != ""
}
