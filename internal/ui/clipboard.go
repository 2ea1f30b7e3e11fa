package ui

import (
	"grossview/viewer/internal/logging/events"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

type copyResultMsg struct {
	text string
	err  error
}

// copySelection copies the current readout text to the system
// clipboard. With an incomplete selection there is nothing to copy and
// the user gets an info hint instead.
func (m *Model) copySelection() tea.Cmd {
	if !m.selection.Complete() {
		m.setInfo("Select a category and subcategory first.")
		return nil
	}
	text := m.outputText()
	return func() tea.Msg {
		return copyResultMsg{text: text, err: clipboard.WriteAll(text)}
	}
}

func (m *Model) handleCopyResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(copyResultMsg)
	if !ok {
		return nil
	}
	if result.err != nil {
		m.errMsg = result.err.Error()
		events.Clipboard.Error(result.err)
		return nil
	}
	events.Clipboard.Copied(result.text)
	m.setInfo("Copied selection to clipboard.")
	return nil
}
