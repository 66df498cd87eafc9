package tui

import (
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/nikbrunner/todo/internal/search"
	"github.com/nikbrunner/todo/internal/tui/layout"
)

// Mode is the current input mode of the App.
type Mode int

const (
	ModeNormal Mode = iota
	ModeInput
	ModeEdit
	ModeFilter
	ModeConfirmClear
	ModeHelp
)

// String returns the mode name used in logs.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInput:
		return "input"
	case ModeEdit:
		return "edit"
	case ModeFilter:
		return "filter"
	case ModeConfirmClear:
		return "confirm-clear"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// NewItemInput creates the new-item input.
func NewItemInput(cfg layout.LayoutConfig, placeholder string) textinput.Model {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = cfg.Input.TodoCharLimit
	input.Width = cfg.Input.StandardWidth
	return input
}

// EditState holds the inline edit field and the item it is bound to.
type EditState struct {
	Input textinput.Model
	ID    string // item whose draft the input mirrors

	// Loaded is the field value right after the draft was loaded. The
	// input replaces tabs and newlines, so until the user changes the
	// field the draft itself is left alone.
	Loaded   string
	Pristine bool
}

// NewEditState creates an EditState with an initialized input.
func NewEditState(cfg layout.LayoutConfig) EditState {
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = cfg.Input.TodoCharLimit
	return EditState{Input: input}
}

// Load fills the field with draft. A configured limit never cuts an
// existing draft short.
func (e *EditState) Load(draft string, limit int) {
	if limit > 0 {
		limit = max(limit, utf8.RuneCountInString(draft))
	}
	e.Input.CharLimit = limit
	e.Input.SetValue(draft)
	e.Input.CursorEnd()
	e.Loaded = e.Input.Value()
	e.Pristine = true
}

// Reset unbinds the edit field.
func (e *EditState) Reset() {
	e.Input.Blur()
	e.Input.Reset()
	e.ID = ""
	e.Loaded = ""
	e.Pristine = false
}

// FilterState holds state for fuzzy filtering of the list.
type FilterState struct {
	Input   textinput.Model
	Query   string // active query (persists after closing the input)
	Results []search.SearchResult
}

// NewFilterState creates a FilterState with an initialized input.
func NewFilterState(cfg layout.LayoutConfig) FilterState {
	input := textinput.New()
	input.Prompt = "/ "
	input.Placeholder = "Filter..."
	input.CharLimit = cfg.Input.FilterCharLimit
	input.Width = cfg.Input.FilterWidth
	return FilterState{Input: input}
}

// Active returns true if a filter query narrows the list.
func (f *FilterState) Active() bool {
	return f.Query != ""
}

// Reset clears the filter.
func (f *FilterState) Reset() {
	f.Input.Blur()
	f.Input.Reset()
	f.Query = ""
	f.Results = nil
}

// ClickState remembers the previous left click to detect double-clicks.
type ClickState struct {
	Row  int
	At   time.Time
	Seen bool
}

// doubleClickThreshold is the maximum interval between two clicks
// on the same row that still counts as a double-click.
const doubleClickThreshold = 400 * time.Millisecond

// Register records a click on row at now and reports whether it
// completes a double-click.
func (c *ClickState) Register(row int, now time.Time) bool {
	double := c.Seen && c.Row == row && now.Sub(c.At) <= doubleClickThreshold
	if double {
		*c = ClickState{}
		return true
	}
	*c = ClickState{Row: row, At: now, Seen: true}
	return false
}
