package tui

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/nikbrunner/todo/internal/logging"
	"github.com/nikbrunner/todo/internal/model"
	"github.com/nikbrunner/todo/internal/search"
	"github.com/nikbrunner/todo/internal/tui/layout"
)

// Options holds user-facing settings of the App.
type Options struct {
	Title            string
	Placeholder      string
	ConfirmRemoveAll bool
	ExportDir        string // empty means ~/Downloads
}

// DefaultOptions returns the default heading and placeholder.
func DefaultOptions() Options {
	return Options{
		Title:       "Todo App",
		Placeholder: "What do you want to do?",
	}
}

// App is the main bubbletea model for the todo list.
type App struct {
	list         model.List
	keys         KeyMap
	styles       Styles
	layoutConfig layout.LayoutConfig
	options      Options
	logger       *log.Logger

	mode     Mode
	cursor   int   // index into rows
	rows     []Row // visible rows, filtered or not
	newInput textinput.Model
	edit     EditState
	filter   FilterState
	clicks   ClickState

	// Status line
	status      string
	statusError bool

	// For gg command
	lastKeyWasG bool

	// Side effects, replaceable in tests
	now       func() time.Time
	clipboard func(string) error

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	List         model.List
	Options      *Options             // optional, uses default if nil
	Keys         *KeyMap              // optional, uses default if nil
	Styles       *Styles              // optional, uses default if nil
	LayoutConfig *layout.LayoutConfig // optional, uses default if nil
	Logger       *log.Logger          // optional, discards if nil
	Now          func() time.Time     // optional, uses time.Now if nil
	Clipboard    func(string) error   // optional, uses the system clipboard if nil
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	layoutConfig := layout.DefaultConfig()
	if params.LayoutConfig != nil {
		layoutConfig = *params.LayoutConfig
	}

	options := DefaultOptions()
	if params.Options != nil {
		options = *params.Options
	}

	logger := params.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	now := params.Now
	if now == nil {
		now = time.Now
	}

	copyText := params.Clipboard
	if copyText == nil {
		copyText = clipboard.WriteAll
	}

	list := params.List
	if list.Items == nil {
		list.Items = []model.Todo{}
	}

	app := App{
		list:         list,
		keys:         keys,
		styles:       styles,
		layoutConfig: layoutConfig,
		options:      options,
		logger:       logger,
		mode:         ModeNormal,
		newInput:     NewItemInput(layoutConfig, options.Placeholder),
		edit:         NewEditState(layoutConfig),
		filter:       NewFilterState(layoutConfig),
		now:          now,
		clipboard:    copyText,
		width:        80,
		height:       24,
	}
	app.newInput.SetValue(list.Input)
	app.resizeEditInput()
	app.refreshRows()
	return app
}

// Dispatch runs ev through the reducer. Derived view data is only
// rebuilt when the list actually changed.
func (a *App) Dispatch(ev model.Event) bool {
	next, changed := model.Reduce(a.list, ev)
	a.logger.Debug("dispatch", "event", ev.String(), "changed", changed, "mode", a.mode.String())
	if !changed {
		return false
	}
	a.list = next
	if a.edit.ID != "" && a.list.IndexOf(a.edit.ID) < 0 {
		// The item being edited is gone
		a.leaveEdit()
	}
	a.refreshRows()
	return true
}

// refreshRows rebuilds the visible rows from the list and the active filter.
func (a *App) refreshRows() {
	a.rows = make([]Row, 0, len(a.list.Items))
	if a.filter.Active() {
		a.filter.Results = search.FuzzySearchTodos(a.list.Items, a.filter.Query)
		for _, r := range a.filter.Results {
			a.rows = append(a.rows, Row{Index: r.Index, MatchedIndexes: r.MatchedIndexes})
		}
	} else {
		for i := range a.list.Items {
			a.rows = append(a.rows, Row{Index: i})
		}
	}
	a.clampCursor()
}

func (a *App) clampCursor() {
	if a.cursor >= len(a.rows) {
		a.cursor = len(a.rows) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// resizeEditInput fits the edit field into the text column of a row.
func (a *App) resizeEditInput() {
	l := layout.CalculateListLayout(a.width, a.layoutConfig.List)
	// one cell for the cursor
	a.edit.Input.Width = max(l.TextWidth-1, 1)
}

// selectedID returns the ID of the item under the cursor, or "".
func (a App) selectedID() string {
	if a.cursor < 0 || a.cursor >= len(a.rows) {
		return ""
	}
	return a.list.IDAt(a.rows[a.cursor].Index)
}

// List returns the current view state.
func (a App) List() model.List {
	return a.list
}

// Cursor returns the current cursor position among visible rows.
func (a App) Cursor() int {
	return a.cursor
}

// Rows returns the visible rows.
func (a App) Rows() []Row {
	return a.rows
}

// Mode returns the current input mode.
func (a App) Mode() Mode {
	return a.mode
}

// Status returns the status line text and whether it reports an error.
func (a App) Status() (string, bool) {
	return a.status, a.statusError
}

// EditingID returns the ID of the item whose edit field has focus.
func (a App) EditingID() string {
	return a.edit.ID
}

// WithDimensions returns a copy of the App sized for a terminal.
func (a App) WithDimensions(width, height int) App {
	a.width = width
	a.height = height
	a.resizeEditInput()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resizeEditInput()
		return a, nil

	case yankedMsg:
		a.handleYanked(msg)
		return a, nil

	case exportedMsg:
		a.handleExported(msg)
		return a, nil

	case tea.MouseMsg:
		cmd := a.handleMouse(msg)
		return a, cmd

	case tea.KeyMsg:
		var cmd tea.Cmd
		switch a.mode {
		case ModeInput:
			cmd = a.handleInputKey(msg)
		case ModeEdit:
			cmd = a.handleEditKey(msg)
		case ModeFilter:
			cmd = a.handleFilterKey(msg)
		case ModeConfirmClear:
			cmd = a.handleConfirmClearKey(msg)
		case ModeHelp:
			cmd = a.handleHelpKey(msg)
		default:
			cmd = a.handleNormalKey(msg)
		}
		return a, cmd
	}

	return a, a.updateFocusedInput(msg)
}

// updateFocusedInput forwards non-key messages (cursor blink) to the
// focused text input.
func (a *App) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.mode {
	case ModeInput:
		a.newInput, cmd = a.newInput.Update(msg)
	case ModeEdit:
		a.edit.Input, cmd = a.edit.Input.Update(msg)
	case ModeFilter:
		a.filter.Input, cmd = a.filter.Input.Update(msg)
	}
	return cmd
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}
