package ui

import (
	"reflect"
	"time"

	"grossview/viewer/internal/catalog"
	"grossview/viewer/internal/theme"
	uistate "grossview/viewer/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

// Focus identifies which option list receives navigation keys.
type Focus int

const (
	FocusCategories Focus = iota
	FocusChips
)

func (f Focus) String() string {
	if f == FocusChips {
		return "chips"
	}
	return "categories"
}

// Messages shown in place of chips or the selection readout.
const (
	emptyStateNoCategory    = "Select a category to load subcategories."
	emptyStateNoSubcategory = "No subcategories configured for this category."
	outputPrompt            = "Choose a category and subcategory."
)

const defaultRootTitle = "templates"

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the template picker. The
// catalog is read-only; all selection mutation funnels through the
// handlers in navigation.go so the category/subcategory pairing
// invariant holds.
type Model struct {
	catalog    *catalog.Catalog
	selection  *uistate.Selection
	categories *uistate.List
	chips      *uistate.List
	focus      Focus

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state against the provided catalog. The
// category options are computed here, once, and never rebuilt; only the
// chip list changes as the user picks categories.
func NewModel(cat *catalog.Catalog, width, height int, showFooter, verbose bool) *Model {
	categories := uistate.NewList(cat.Categories())
	categories.MoveCursorHome()
	m := &Model{
		catalog:    cat,
		selection:  &uistate.Selection{},
		categories: categories,
		chips:      uistate.NewList(nil),
		focus:      FocusCategories,
		showFooter: showFooter,
		verbose:    verbose,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.filterCursor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(copyResultMsg{}):     m.handleCopyResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Selection exposes the current selection state for inspection.
func (m *Model) Selection() *uistate.Selection {
	return m.selection
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
