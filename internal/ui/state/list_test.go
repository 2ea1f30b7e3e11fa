package state

import (
	"fmt"
	"testing"
)

func newTestList(n int) *List {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("item-%02d", i+1)
	}
	l := NewList(items)
	l.MoveCursorHome()
	return l
}

func TestNewListStartsWithFullItemSet(t *testing.T) {
	l := newTestList(3)
	if len(l.Items) != 3 || len(l.Full) != 3 {
		t.Fatalf("expected 3 items, got %d visible / %d full", len(l.Items), len(l.Full))
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor at 0 after MoveCursorHome, got %d", l.Cursor)
	}
}

func TestMoveCursorHomeEnd(t *testing.T) {
	l := newTestList(5)
	if moved := l.MoveCursorEnd(); !moved {
		t.Fatalf("expected MoveCursorEnd to move the cursor")
	}
	if l.Cursor != 4 {
		t.Fatalf("expected cursor 4, got %d", l.Cursor)
	}
	if moved := l.MoveCursorHome(); !moved {
		t.Fatalf("expected MoveCursorHome to move the cursor")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", l.Cursor)
	}
}

func TestPageMovesClampToBounds(t *testing.T) {
	l := newTestList(10)
	l.MoveCursorPageDown(4)
	if l.Cursor != 4 {
		t.Fatalf("expected cursor 4 after page down, got %d", l.Cursor)
	}
	l.MoveCursorPageDown(4)
	l.MoveCursorPageDown(4)
	if l.Cursor != 9 {
		t.Fatalf("expected cursor clamped to 9, got %d", l.Cursor)
	}
	l.MoveCursorPageUp(4)
	l.MoveCursorPageUp(4)
	l.MoveCursorPageUp(4)
	if l.Cursor != 0 {
		t.Fatalf("expected cursor clamped to 0, got %d", l.Cursor)
	}
}

func TestEnsureCursorVisibleScrollsViewport(t *testing.T) {
	l := newTestList(10)
	l.Cursor = 7
	l.EnsureCursorVisible(4)
	if l.ViewportOffset != 4 {
		t.Fatalf("expected viewport offset 4, got %d", l.ViewportOffset)
	}
	l.Cursor = 1
	l.EnsureCursorVisible(4)
	if l.ViewportOffset != 1 {
		t.Fatalf("expected viewport offset 1, got %d", l.ViewportOffset)
	}
}

func TestSetFilterNarrowsAndRestoresCursor(t *testing.T) {
	l := NewList([]string{"Gallbladder", "Appendix", "Prostate"})
	l.MoveCursorHome()
	l.Cursor = 2

	l.SetFilter("app", 3)
	if len(l.Items) != 1 || l.Items[0] != "Appendix" {
		t.Fatalf("expected filter to keep only Appendix, got %v", l.Items)
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor on the match, got %d", l.Cursor)
	}

	l.SetFilter("", 0)
	if len(l.Items) != 3 {
		t.Fatalf("expected full item set restored, got %v", l.Items)
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor restored to 2, got %d", l.Cursor)
	}
}

func TestFilterItemsFallsBackToSubstring(t *testing.T) {
	items := []string{"GI 1 - Subcategory A", "GI 2 - Subcategory B"}
	got := FilterItems(items, "gi 2")
	if len(got) == 0 {
		t.Fatalf("expected at least one match for %q", "gi 2")
	}
	found := false
	for _, item := range got {
		if item == "GI 2 - Subcategory B" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected GI 2 entry in matches, got %v", got)
	}
}

func TestBestMatchIndexPrefersExactThenPrefix(t *testing.T) {
	items := []string{"Ureter", "TURBT", "Prostate"}
	if idx := BestMatchIndex(items, "turbt"); idx != 1 {
		t.Fatalf("expected exact fold match at 1, got %d", idx)
	}
	if idx := BestMatchIndex(items, "pro"); idx != 2 {
		t.Fatalf("expected prefix match at 2, got %d", idx)
	}
}

func TestInsertAndDeleteFilterText(t *testing.T) {
	l := NewList([]string{"alpha", "beta"})
	if !l.InsertFilterText("be") {
		t.Fatalf("expected insert to report success")
	}
	if l.Filter != "be" || l.FilterCursorPos() != 2 {
		t.Fatalf("unexpected filter state %q cursor %d", l.Filter, l.FilterCursorPos())
	}
	if !l.DeleteFilterRuneBackward() {
		t.Fatalf("expected delete to report success")
	}
	if l.Filter != "b" || l.FilterCursorPos() != 1 {
		t.Fatalf("unexpected filter state %q cursor %d", l.Filter, l.FilterCursorPos())
	}
	if !l.DeleteFilterWordBackward() {
		t.Fatalf("expected word delete to report success")
	}
	if l.Filter != "" {
		t.Fatalf("expected empty filter, got %q", l.Filter)
	}
}
