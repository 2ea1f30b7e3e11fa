package events

import "grossview/viewer/internal/logging"

type SelectionTracer struct{}

type FilterTracer struct{}

type ClipboardTracer struct{}

var (
	Selection = SelectionTracer{}
	Filter    = FilterTracer{}
	Clipboard = ClipboardTracer{}
)

func (SelectionTracer) Category(name string) {
	logging.Trace("selection.category", map[string]interface{}{"category": name})
}

func (SelectionTracer) Subcategory(category, name string) {
	logging.Trace("selection.subcategory", map[string]interface{}{
		"category":    category,
		"subcategory": name,
	})
}

func (SelectionTracer) Cursor(focus string, cursor int) {
	logging.Trace("selection.cursor", map[string]interface{}{"focus": focus, "cursor": cursor})
}

func (SelectionTracer) Focus(focus string) {
	logging.Trace("selection.focus", map[string]interface{}{"focus": focus})
}

func (FilterTracer) Cleared(focus string) {
	logging.Trace("filter.clear", map[string]interface{}{"focus": focus})
}

func (FilterTracer) WordBackspace(focus, filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"focus": focus, "filter": filter})
}

func (FilterTracer) Cursor(focus string, pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"focus": focus, "cursor": pos})
}

func (FilterTracer) CursorWord(focus string, pos int) {
	logging.Trace("filter.cursor-word", map[string]interface{}{"focus": focus, "cursor": pos})
}

func (FilterTracer) Append(focus, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"focus": focus, "filter": filter})
}

func (FilterTracer) Backspace(focus, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"focus": focus, "filter": filter})
}

func (ClipboardTracer) Copied(text string) {
	logging.Trace("clipboard.copy", map[string]interface{}{"text": text})
}

func (ClipboardTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("clipboard.error", map[string]interface{}{"error": err.Error()})
}
