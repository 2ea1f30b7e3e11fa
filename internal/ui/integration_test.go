package ui

import (
	"errors"
	"strings"
	"testing"

	"grossview/viewer/internal/catalog"
	tea "github.com/charmbracelet/bubbletea"
)

func newTestHarness() *Harness {
	return NewHarness(NewModel(catalog.Default(), 80, 30, false, false))
}

func pressEnter(h *Harness) { h.Send(tea.KeyMsg{Type: tea.KeyEnter}) }
func pressDown(h *Harness)  { h.Send(tea.KeyMsg{Type: tea.KeyDown}) }
func pressEsc(h *Harness)   { h.Send(tea.KeyMsg{Type: tea.KeyEsc}) }

func TestInitialViewShowsPromptAndEmptyChipRow(t *testing.T) {
	harness := newTestHarness()
	view := harness.View()
	if !strings.Contains(view, emptyStateNoCategory) {
		t.Fatalf("expected chip row hint before a category is chosen, view =\n%s", view)
	}
	if !strings.Contains(view, outputPrompt) {
		t.Fatalf("expected output prompt, view =\n%s", view)
	}
	if strings.Contains(view, chipMarkActive) {
		t.Fatalf("expected no active chip marker, view =\n%s", view)
	}
}

func TestSelectingCategoryShowsAllChipsInactive(t *testing.T) {
	harness := newTestHarness()
	pressEnter(harness)

	model := harness.Model()
	if model.Selection().Category() != "GI 1 and 2" {
		t.Fatalf("expected first category selected, got %q", model.Selection().Category())
	}
	if model.focus != FocusChips {
		t.Fatalf("expected focus to move to chips")
	}

	view := harness.View()
	expected := []string{
		"GI 1 - Subcategory A",
		"GI 1 - Subcategory B",
		"GI 1 - Subcategory C",
		"GI 2 - Subcategory A",
		"GI 2 - Subcategory B",
		"GI 2 - Subcategory C",
	}
	for _, name := range expected {
		if !strings.Contains(view, name) {
			t.Fatalf("expected chip %q in view =\n%s", name, view)
		}
	}
	if strings.Contains(view, chipMarkActive) {
		t.Fatalf("expected no active chip before a subcategory is chosen, view =\n%s", view)
	}
	if !strings.Contains(view, outputPrompt) {
		t.Fatalf("expected output prompt while subcategory unset, view =\n%s", view)
	}
}

func TestActivatingChipUpdatesOutputAndMarker(t *testing.T) {
	harness := newTestHarness()
	pressEnter(harness)
	for i := 0; i < 4; i++ {
		pressDown(harness)
	}
	pressEnter(harness)

	model := harness.Model()
	if model.Selection().Subcategory() != "GI 2 - Subcategory B" {
		t.Fatalf("expected GI 2 - Subcategory B selected, got %q", model.Selection().Subcategory())
	}

	view := harness.View()
	if !strings.Contains(view, "GI 1 and 2 > GI 2 - Subcategory B") {
		t.Fatalf("expected joined output line, view =\n%s", view)
	}
	if got := strings.Count(view, chipMarkActive); got != 1 {
		t.Fatalf("expected exactly one active chip marker, got %d in view =\n%s", got, view)
	}
	if !strings.Contains(view, "["+chipMarkActive+"] GI 2 - Subcategory B") {
		t.Fatalf("expected active marker on GI 2 - Subcategory B, view =\n%s", view)
	}
}

func TestCategoryChangeResetsSubcategory(t *testing.T) {
	harness := newTestHarness()
	pressEnter(harness)
	pressEnter(harness)
	if !harness.Model().Selection().Complete() {
		t.Fatalf("expected a complete selection before switching")
	}

	pressEsc(harness)
	pressDown(harness)
	pressEnter(harness)

	model := harness.Model()
	if model.Selection().Category() != "Gallbladder and Appendix" {
		t.Fatalf("expected second category selected, got %q", model.Selection().Category())
	}
	if model.Selection().Subcategory() != "" {
		t.Fatalf("expected subcategory reset, got %q", model.Selection().Subcategory())
	}

	view := harness.View()
	if !strings.Contains(view, outputPrompt) {
		t.Fatalf("expected output prompt after category change, view =\n%s", view)
	}
	if strings.Contains(view, chipMarkActive) {
		t.Fatalf("expected no active chip after category change, view =\n%s", view)
	}
}

func TestCategoryWithoutSubcategoriesShowsEmptyState(t *testing.T) {
	harness := newTestHarness()
	pressEnter(harness)
	pressEnter(harness)
	harness.Model().applyCategory("Mystery Tray")

	if sub := harness.Model().Selection().Subcategory(); sub != "" {
		t.Fatalf("expected subcategory reset for unknown category, got %q", sub)
	}

	view := harness.View()
	if !strings.Contains(view, emptyStateNoSubcategory) {
		t.Fatalf("expected empty chip row message, view =\n%s", view)
	}
	if !strings.Contains(view, outputPrompt) {
		t.Fatalf("expected output prompt, view =\n%s", view)
	}
	if len(harness.Model().chips.Full) != 0 {
		t.Fatalf("expected zero chips, got %v", harness.Model().chips.Full)
	}
}

func TestViewIsStableAcrossRepeatedRenders(t *testing.T) {
	harness := newTestHarness()
	pressEnter(harness)
	pressDown(harness)
	pressEnter(harness)

	first := harness.View()
	second := harness.View()
	if first != second {
		t.Fatalf("expected repeated renders to match:\nfirst =\n%s\nsecond =\n%s", first, second)
	}
}

func TestFilterNarrowsCategoriesAndEnterClearsIt(t *testing.T) {
	harness := newTestHarness()
	harness.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("gall")})

	model := harness.Model()
	if len(model.categories.Items) != 1 || model.categories.Items[0] != "Gallbladder and Appendix" {
		t.Fatalf("expected filter to isolate Gallbladder and Appendix, got %v", model.categories.Items)
	}

	pressEnter(harness)
	model = harness.Model()
	if model.Selection().Category() != "Gallbladder and Appendix" {
		t.Fatalf("expected filtered category selected, got %q", model.Selection().Category())
	}
	if model.categories.Filter != "" {
		t.Fatalf("expected filter cleared after selection, got %q", model.categories.Filter)
	}
}

func TestTabTogglesFocusBetweenLists(t *testing.T) {
	harness := newTestHarness()
	if harness.Model().focus != FocusCategories {
		t.Fatalf("expected initial focus on categories")
	}
	harness.Send(tea.KeyMsg{Type: tea.KeyTab})
	if harness.Model().focus != FocusChips {
		t.Fatalf("expected focus on chips after tab")
	}
	harness.Send(tea.KeyMsg{Type: tea.KeyTab})
	if harness.Model().focus != FocusCategories {
		t.Fatalf("expected focus back on categories after second tab")
	}
}

func TestPlainRunesFeedFilterInsteadOfQuitting(t *testing.T) {
	model := NewModel(catalog.Default(), 80, 30, false, false)
	cmd := model.handleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd != nil {
		t.Fatalf("expected rune consumed by the filter, got a command")
	}
	if model.categories.Filter != "q" {
		t.Fatalf("expected filter %q, got %q", "q", model.categories.Filter)
	}
}

func TestCtrlCQuits(t *testing.T) {
	model := NewModel(catalog.Default(), 80, 30, false, false)
	cmd := model.handleKeyMsg(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command for ctrl+c")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected QuitMsg, got %T", cmd())
	}
}

func TestCopyWithIncompleteSelectionShowsHint(t *testing.T) {
	model := NewModel(catalog.Default(), 80, 30, false, false)
	if cmd := model.copySelection(); cmd != nil {
		t.Fatalf("expected no clipboard command for incomplete selection")
	}
	if !strings.Contains(model.View(), "Select a category and subcategory first.") {
		t.Fatalf("expected hint in view, got =\n%s", model.View())
	}
}

func TestCopyResultMessages(t *testing.T) {
	model := NewModel(catalog.Default(), 80, 30, false, false)

	model.handleCopyResultMsg(copyResultMsg{text: "GU > TURBT"})
	if !strings.Contains(model.View(), "Copied selection to clipboard.") {
		t.Fatalf("expected copy confirmation in view")
	}

	model.handleCopyResultMsg(copyResultMsg{err: errors.New("no clipboard utility")})
	if model.errMsg != "no clipboard utility" {
		t.Fatalf("expected clipboard error recorded, got %q", model.errMsg)
	}
}
