package state

// List encapsulates one selectable option list: cursor position, filter,
// and viewport. The category selector and the subcategory chip row are
// both Lists.
type List struct {
	Items          []string
	Full           []string
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewList constructs a List over the provided option names.
func NewList(items []string) *List {
	l := &List{
		Cursor:     -1,
		LastCursor: -1,
	}
	l.SetItems(items)
	return l
}

// IndexOf returns the visible index of the named option, or -1.
func (l *List) IndexOf(name string) int {
	if name == "" {
		return -1
	}
	for i, item := range l.Items {
		if item == name {
			return i
		}
	}
	return -1
}

// SetItems replaces the option set, re-applying any active filter.
func (l *List) SetItems(items []string) {
	prevOffset := l.ViewportOffset
	l.Full = cloneItems(items)
	l.applyFilter()
	if len(l.Items) == 0 {
		l.ViewportOffset = 0
		return
	}
	if prevOffset < 0 {
		prevOffset = 0
	}
	if prevOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
		return
	}
	l.ViewportOffset = prevOffset
}

func cloneItems(items []string) []string {
	dup := make([]string, len(items))
	copy(dup, items)
	return dup
}
