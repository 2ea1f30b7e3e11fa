package ui

import (
	"fmt"
	"strings"

	uistate "grossview/viewer/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	categorySectionTitle = "Categories"
	chipSectionTitle     = "Subcategories"
	chipMarkActive       = "✓"
	chipMarkInactive     = " "
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// View implements tea.Model. Every call rebuilds the whole frame from
// the catalog and the selection state, so rendering twice with
// unchanged state yields an identical frame.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 32)
	if header := m.menuHeader(); header != "" {
		lines = append(lines, styledLine{text: header, style: styles.Header})
		lines = append(lines, styledLine{})
	}
	lines = append(lines, m.viewCategories()...)
	lines = append(lines, styledLine{})
	lines = append(lines, m.viewChips()...)
	lines = append(lines, styledLine{})
	lines = append(lines, m.viewOutput())
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: "↑/↓ move  enter select  tab focus  ctrl+y copy  esc back  ctrl+c quit", style: styles.Footer})
	}
	// Reserve 2 rows for the bottom bar (error/status + filter prompt).
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	var statusLine styledLine
	if m.errMsg != "" {
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	promptText, _ := m.filterPrompt()
	bottomLines := []styledLine{
		statusLine,
		{text: promptText},
	}
	bottomLines = applyWidth(bottomLines, m.width)
	lines = append(lines, bottomLines...)
	return renderLines(lines)
}

// viewCategories renders the selector options. The option set was fixed
// at startup; only the cursor and the active marker vary per frame.
func (m *Model) viewCategories() []styledLine {
	lines := make([]styledLine, 0, len(m.categories.Items)+1)
	lines = append(lines, m.sectionTitle(categorySectionTitle, m.focus == FocusCategories))
	if len(m.categories.Items) == 0 {
		msg := "(no categories)"
		if m.categories.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", m.categories.Filter)
		}
		lines = append(lines, styledLine{text: msg, style: styles.EmptyState})
		return lines
	}
	for i, name := range m.categories.Items {
		active := name == m.selection.Category()
		lines = append(lines, m.buildItemLine(name, "", i, m.categories, m.focus == FocusCategories, active))
	}
	return lines
}

// viewChips renders the subcategory chip row: a full clear-and-rebuild
// of either an empty-state message or one chip per subcategory in
// catalog order, marked active iff it matches the current selection.
func (m *Model) viewChips() []styledLine {
	lines := make([]styledLine, 0, 8)
	lines = append(lines, m.sectionTitle(chipSectionTitle, m.focus == FocusChips))
	if m.selection.Category() == "" {
		lines = append(lines, styledLine{text: emptyStateNoCategory, style: styles.EmptyState})
		return lines
	}
	if len(m.chips.Full) == 0 {
		lines = append(lines, styledLine{text: emptyStateNoSubcategory, style: styles.EmptyState})
		return lines
	}
	if len(m.chips.Items) == 0 {
		lines = append(lines, styledLine{text: fmt.Sprintf("No matches for %q", m.chips.Filter), style: styles.EmptyState})
		return lines
	}
	m.syncViewport(m.chips)
	start := 0
	displayItems := m.chips.Items
	if maxItems := m.maxVisibleChips(); maxItems > 0 && len(displayItems) > maxItems {
		start = m.chips.ViewportOffset
		if start < 0 {
			start = 0
		}
		if start+maxItems > len(displayItems) {
			start = len(displayItems) - maxItems
			if start < 0 {
				start = 0
			}
			m.chips.ViewportOffset = start
		}
		displayItems = displayItems[start : start+maxItems]
	}
	for i, name := range displayItems {
		idx := start + i
		active := name == m.selection.Subcategory()
		mark := chipMarkInactive
		if active {
			mark = chipMarkActive
		}
		lines = append(lines, m.buildItemLine(name, fmt.Sprintf("[%s] ", mark), idx, m.chips, m.focus == FocusChips, active))
	}
	return lines
}

// viewOutput renders the selection readout: a prompt while either field
// is empty, otherwise the joined pair.
func (m *Model) viewOutput() styledLine {
	if !m.selection.Complete() {
		return styledLine{text: outputPrompt, style: styles.OutputPrompt}
	}
	return styledLine{text: m.outputText(), style: styles.Output}
}

func (m *Model) outputText() string {
	return m.selection.Category() + " > " + m.selection.Subcategory()
}

func (m *Model) sectionTitle(title string, focused bool) styledLine {
	style := styles.SectionTitle
	if focused {
		style = styles.FocusedSection
	}
	return styledLine{text: title, style: style}
}

// buildItemLine constructs a single styledLine for a list option. The
// mark prefix carries the chip active indicator; category options pass
// an empty mark.
func (m *Model) buildItemLine(label, mark string, idx int, l *uistate.List, focused, active bool) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if active {
		lineStyle = styles.ActiveItem
	}
	if focused && idx == l.Cursor {
		indicatorStyle = styles.CursorIndicator
		lineStyle = styles.CursorItem
	}
	fullText := indicator + " " + mark + label
	if m.width > 0 {
		if pad := m.width - lipgloss.Width(fullText); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
}

func (m *Model) menuHeader() string {
	segments := []string{defaultRootTitle}
	if category := strings.TrimSpace(m.selection.Category()); category != "" {
		segments = append(segments, strings.ToLower(category))
	}
	return strings.Join(segments, "→")
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport(m.chips)
	return nil
}

// maxVisibleChips returns the row budget left for chip lines after the
// fixed sections are accounted for.
func (m *Model) maxVisibleChips() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 // bottom bar: error/status + filter prompt
	if header := m.menuHeader(); header != "" {
		used += 2
	}
	used += 1 + len(m.categories.Items) // category section title + options
	used += 2                           // blank + chip section title
	used += 2                           // blank + output line
	if info := m.currentInfo(); info != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		result[i] = styledLine{
			text:          truncateText(line.text, width),
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	if lipgloss.Width(text) <= width {
		return text
	}
	if width == 1 {
		return truncate.String(text, 1)
	}
	return truncate.StringWithTail(text, uint(width-1), "…")
}
