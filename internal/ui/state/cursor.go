package state

// clampCursor keeps the cursor inside the visible item range. An empty
// list pins it at zero.
func (l *List) clampCursor() {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if max := len(l.Items) - 1; l.Cursor > max {
		l.Cursor = max
	}
}

// moveCursorTo places the cursor on idx, clamped to the item range,
// and reports whether it actually moved.
func (l *List) moveCursorTo(idx int) bool {
	old := l.Cursor
	l.Cursor = idx
	l.clampCursor()
	return len(l.Items) > 0 && l.Cursor != old
}

// MoveCursorHome moves the cursor to the first option.
func (l *List) MoveCursorHome() bool {
	return l.moveCursorTo(0)
}

// MoveCursorEnd moves the cursor to the last option.
func (l *List) MoveCursorEnd() bool {
	return l.moveCursorTo(len(l.Items) - 1)
}

// MoveCursorPageUp moves the cursor up one viewport worth of options.
func (l *List) MoveCursorPageUp(maxVisible int) bool {
	return l.moveCursorTo(l.Cursor - l.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down one viewport worth of options.
func (l *List) MoveCursorPageDown(maxVisible int) bool {
	return l.moveCursorTo(l.Cursor + l.pageSize(maxVisible))
}

// pageSize is the stride for page movements. A non-positive maxVisible
// means the list is rendered in full, so a page spans the whole list.
func (l *List) pageSize(maxVisible int) int {
	if maxVisible > 0 && maxVisible < len(l.Items) {
		return maxVisible
	}
	return len(l.Items)
}

// EnsureCursorVisible scrolls the viewport window so the cursor row is
// on screen. maxVisible <= 0 disables scrolling and resets the offset.
func (l *List) EnsureCursorVisible(maxVisible int) {
	l.clampCursor()
	if len(l.Items) == 0 || maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	switch {
	case l.Cursor < l.ViewportOffset:
		l.ViewportOffset = l.Cursor
	case l.Cursor >= l.ViewportOffset+maxVisible:
		l.ViewportOffset = l.Cursor - maxVisible + 1
	}
	if last := len(l.Items) - maxVisible; l.ViewportOffset > last {
		l.ViewportOffset = last
	}
	if l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
}
