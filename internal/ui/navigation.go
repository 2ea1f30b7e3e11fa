package ui

import (
	"fmt"

	"grossview/viewer/internal/logging/events"
	uistate "grossview/viewer/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) activeList() *uistate.List {
	if m.focus == FocusChips {
		return m.chips
	}
	return m.categories
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.Type == tea.KeyTab {
		m.toggleFocus()
		return nil
	}
	if m.handleTextInput(keyMsg) {
		return nil
	}
	switch keyMsg.String() {
	case "ctrl+c":
		return tea.Quit
	case "ctrl+y":
		return m.copySelection()
	case "esc":
		return m.handleEscapeKey()
	case "enter":
		return m.handleEnterKey()
	case "up":
		m.moveCursorUp()
	case "down":
		m.moveCursorDown()
	case "pgup":
		m.moveCursorPageUp()
	case "pgdown":
		m.moveCursorPageDown()
	case "home":
		m.moveCursorHome()
	case "end":
		m.moveCursorEnd()
	}
	return nil
}

func (m *Model) toggleFocus() {
	if m.focus == FocusCategories {
		m.focus = FocusChips
	} else {
		m.focus = FocusCategories
	}
	events.Selection.Focus(m.focus.String())
	m.syncViewport(m.activeList())
}

// handleEscapeKey steps back from the chip row to the category list, or
// quits from the top. A non-empty filter is cleared first.
func (m *Model) handleEscapeKey() tea.Cmd {
	active := m.activeList()
	if active.Filter != "" {
		before := active.FilterCursorPos()
		active.SetFilter("", 0)
		m.noteFilterCursorChange(active, before)
		events.Filter.Cleared(m.focus.String())
		m.syncViewport(active)
		return nil
	}
	if m.focus == FocusChips {
		m.focus = FocusCategories
		events.Selection.Focus(m.focus.String())
		m.errMsg = ""
		m.forceClearInfo()
		return nil
	}
	return tea.Quit
}

// handleEnterKey activates the option under the cursor: a category
// selection rebuilds the chip row, a chip activation records the
// subcategory. Both paths leave re-rendering to the next View call,
// which Bubble Tea issues on the same turn.
func (m *Model) handleEnterKey() tea.Cmd {
	active := m.activeList()
	if len(active.Items) == 0 {
		return nil
	}
	if active.Cursor < 0 || active.Cursor >= len(active.Items) {
		return nil
	}
	name := active.Items[active.Cursor]
	before := active.FilterCursorPos()
	active.SetFilter("", 0)
	m.noteFilterCursorChange(active, before)
	if m.focus == FocusCategories {
		m.applyCategory(name)
		return nil
	}
	m.selection.SelectSubcategory(name)
	events.Selection.Subcategory(m.selection.Category(), name)
	if m.verbose {
		m.setInfo(fmt.Sprintf("Selected %s", name))
	}
	return nil
}

// applyCategory funnels every category change through the selection
// controller so the subcategory reset happens in the same step, then
// rebuilds the chip row from scratch.
func (m *Model) applyCategory(name string) {
	m.selection.SelectCategory(name)
	events.Selection.Category(name)
	m.chips = uistate.NewList(m.catalog.Subcategories(name))
	m.chips.MoveCursorHome()
	m.focus = FocusChips
	events.Selection.Focus(m.focus.String())
	m.errMsg = ""
	m.forceClearInfo()
	m.syncViewport(m.chips)
}

func (m *Model) moveCursorUp() {
	if current := m.activeList(); current != nil {
		if n := len(current.Items); n > 0 {
			if current.Cursor > 0 {
				current.Cursor--
			} else {
				current.Cursor = n - 1
			}
			events.Selection.Cursor(m.focus.String(), current.Cursor)
			m.syncViewport(current)
		}
	}
}

func (m *Model) moveCursorDown() {
	if current := m.activeList(); current != nil {
		if n := len(current.Items); n > 0 {
			if current.Cursor < n-1 {
				current.Cursor++
			} else {
				current.Cursor = 0
			}
			events.Selection.Cursor(m.focus.String(), current.Cursor)
			m.syncViewport(current)
		}
	}
}

func (m *Model) moveCursorPageUp() {
	if current := m.activeList(); current != nil {
		if moved := current.MoveCursorPageUp(m.maxVisibleFor(current)); moved {
			events.Selection.Cursor(m.focus.String(), current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorPageDown() {
	if current := m.activeList(); current != nil {
		if moved := current.MoveCursorPageDown(m.maxVisibleFor(current)); moved {
			events.Selection.Cursor(m.focus.String(), current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorHome() {
	if current := m.activeList(); current != nil {
		if moved := current.MoveCursorHome(); moved {
			events.Selection.Cursor(m.focus.String(), current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorEnd() {
	if current := m.activeList(); current != nil {
		if moved := current.MoveCursorEnd(); moved {
			events.Selection.Cursor(m.focus.String(), current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) syncViewport(l *uistate.List) {
	if l == nil {
		return
	}
	l.EnsureCursorVisible(m.maxVisibleFor(l))
}

// maxVisibleFor returns the viewport budget for a list. Only the chip
// row scrolls; the category list is always rendered in full.
func (m *Model) maxVisibleFor(l *uistate.List) int {
	if l == m.chips {
		return m.maxVisibleChips()
	}
	return -1
}
