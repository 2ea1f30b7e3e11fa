// Package ui implements the interactive template picker: a category
// list, a subcategory chip row, and a selection readout, rendered as a
// Bubble Tea model. Picking a category always resets the subcategory,
// so the readout never shows a pair that was not chosen together.
package ui
