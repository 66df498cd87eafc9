package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/todo/internal/model"
	"github.com/nikbrunner/todo/internal/tui/layout"
)

// handleNormalKey handles list navigation and item actions.
func (a *App) handleNormalKey(msg tea.KeyMsg) tea.Cmd {
	// Handle gg sequence
	if key.Matches(msg, a.keys.Top) {
		if a.lastKeyWasG {
			a.cursor = 0
			a.lastKeyWasG = false
			return nil
		}
		a.lastKeyWasG = true
		return nil
	}
	a.lastKeyWasG = false

	switch {
	case key.Matches(msg, a.keys.Quit):
		return tea.Quit

	case key.Matches(msg, a.keys.Cancel):
		if a.filter.Active() {
			a.filter.Reset()
			a.refreshRows()
		}

	case key.Matches(msg, a.keys.Down):
		if a.cursor < len(a.rows)-1 {
			a.cursor++
		}

	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}

	case key.Matches(msg, a.keys.Bottom):
		if len(a.rows) > 0 {
			a.cursor = len(a.rows) - 1
		}

	case key.Matches(msg, a.keys.NewItem):
		return a.focusNewInput()

	case key.Matches(msg, a.keys.Edit):
		return a.activate(a.selectedID())

	case key.Matches(msg, a.keys.Remove):
		a.Dispatch(model.Remove{ID: a.selectedID()})

	case key.Matches(msg, a.keys.RemoveAll):
		a.requestRemoveAll()

	case key.Matches(msg, a.keys.Yank):
		if todo, ok := a.list.Get(a.selectedID()); ok {
			return yankCmd(a.clipboard, todo.Text)
		}

	case key.Matches(msg, a.keys.Export):
		return exportCmd(a.list, a.options)

	case key.Matches(msg, a.keys.Filter):
		a.mode = ModeFilter
		a.filter.Input.SetValue(a.filter.Query)
		return a.filter.Input.Focus()

	case key.Matches(msg, a.keys.Help):
		a.mode = ModeHelp
	}

	return nil
}

// handleInputKey handles keys while the new-item input has focus.
// Every keystroke that changes the text becomes an UpdateInput event.
func (a *App) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.ForceQuit):
		return tea.Quit

	case key.Matches(msg, a.keys.Cancel):
		a.newInput.Blur()
		a.mode = ModeNormal
		return nil

	case key.Matches(msg, a.keys.Submit):
		if a.Dispatch(model.Add{}) {
			// Keep the new item in view
			a.cursor = a.rowOf(a.list.Len() - 1)
		}
		a.newInput.SetValue(a.list.Input)
		return nil
	}

	var cmd tea.Cmd
	a.newInput, cmd = a.newInput.Update(msg)
	if a.newInput.Value() != a.list.Input {
		a.Dispatch(model.UpdateInput{Text: a.newInput.Value()})
	}
	return cmd
}

// handleEditKey handles keys while an item's edit field has focus.
// Every keystroke that changes the text becomes an UpdateEditBuffer event.
func (a *App) handleEditKey(msg tea.KeyMsg) tea.Cmd {
	id := a.edit.ID

	switch {
	case key.Matches(msg, a.keys.ForceQuit):
		return tea.Quit

	case key.Matches(msg, a.keys.Cancel):
		// Leave edit mode; the draft stays with the item
		a.Dispatch(model.ToggleEdit{ID: id})
		a.leaveEdit()
		return nil

	case key.Matches(msg, a.keys.Submit):
		// An empty draft is ignored and the field keeps focus
		if a.Dispatch(model.CommitEdit{ID: id}) {
			a.leaveEdit()
		}
		return nil
	}

	var cmd tea.Cmd
	a.edit.Input, cmd = a.edit.Input.Update(msg)
	value := a.edit.Input.Value()
	if a.edit.Pristine && value == a.edit.Loaded {
		return cmd
	}
	a.edit.Pristine = false
	if value != a.list.EditBuffer(id) {
		a.Dispatch(model.UpdateEditBuffer{ID: id, Text: value})
	}
	return cmd
}

// handleFilterKey handles keys while the filter input has focus.
func (a *App) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.ForceQuit):
		return tea.Quit

	case key.Matches(msg, a.keys.Cancel):
		a.filter.Reset()
		a.mode = ModeNormal
		a.refreshRows()
		return nil

	case key.Matches(msg, a.keys.Submit):
		// Keep the query applied
		a.filter.Input.Blur()
		a.mode = ModeNormal
		return nil
	}

	var cmd tea.Cmd
	a.filter.Input, cmd = a.filter.Input.Update(msg)
	if q := a.filter.Input.Value(); q != a.filter.Query {
		a.filter.Query = q
		a.cursor = 0
		a.refreshRows()
	}
	return cmd
}

// handleConfirmClearKey handles the delete-all confirmation modal.
func (a *App) handleConfirmClearKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter", "y":
		a.mode = ModeNormal
		a.removeAll()
	case "esc", "n", "q":
		a.mode = ModeNormal
	case "ctrl+c":
		return tea.Quit
	}
	return nil
}

// handleHelpKey closes the help overlay.
func (a *App) handleHelpKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "?", "q", "esc":
		a.mode = ModeNormal
	case "ctrl+c":
		return tea.Quit
	}
	return nil
}

// handleMouse handles clicks on the buttons and list rows.
// A double-click on an item's text toggles its edit mode; a click on the
// marker removes the item.
func (a *App) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if a.mode == ModeConfirmClear || a.mode == ModeHelp {
		return nil
	}

	if msg.Y == a.buttonsLine() {
		switch a.buttonAt(msg.X) {
		case buttonAdd:
			a.Dispatch(model.Add{})
			a.newInput.SetValue(a.list.Input)
		case buttonRemoveAll:
			a.requestRemoveAll()
		}
		return nil
	}

	if msg.Y == a.inputLine() {
		return a.focusNewInput()
	}

	row := msg.Y - a.listTop()
	if row < 0 || row >= len(a.rows) {
		return nil
	}

	l := layout.CalculateListLayout(a.width, a.layoutConfig.List)
	switch layout.HitTest(msg.X, l, a.layoutConfig.List) {
	case layout.HitMarker:
		a.clicks = ClickState{}
		a.Dispatch(model.Remove{ID: a.list.IDAt(a.rows[row].Index)})
		return nil

	case layout.HitText:
		a.cursor = row
		if a.clicks.Register(row, a.now()) {
			return a.activate(a.selectedID())
		}
	}
	return nil
}

// activate toggles an item into edit mode and focuses its field. An item
// that is already editing just gets the focus back.
func (a *App) activate(id string) tea.Cmd {
	todo, ok := a.list.Get(id)
	if !ok {
		return nil
	}
	if a.mode == ModeEdit && a.edit.ID == id {
		return nil
	}
	a.blurInputs()
	if !todo.Editing {
		a.Dispatch(model.ToggleEdit{ID: id})
		todo, _ = a.list.Get(id)
	}

	a.mode = ModeEdit
	a.edit.ID = id
	a.edit.Load(todo.Draft, a.layoutConfig.Input.TodoCharLimit)
	return a.edit.Input.Focus()
}

// leaveEdit returns to normal mode after editing.
func (a *App) leaveEdit() {
	a.edit.Reset()
	a.mode = ModeNormal
}

func (a *App) focusNewInput() tea.Cmd {
	a.blurInputs()
	a.mode = ModeInput
	a.newInput.SetValue(a.list.Input)
	a.newInput.CursorEnd()
	return a.newInput.Focus()
}

// blurInputs takes focus away from every text input. An item whose edit
// field loses focus stays in edit mode with its draft.
func (a *App) blurInputs() {
	a.newInput.Blur()
	a.filter.Input.Blur()
	a.edit.Reset()
}

// requestRemoveAll clears the list, asking first when configured to.
func (a *App) requestRemoveAll() {
	if a.options.ConfirmRemoveAll && a.list.Len() > 0 {
		a.blurInputs()
		a.mode = ModeConfirmClear
		return
	}
	a.removeAll()
}

func (a *App) removeAll() {
	a.Dispatch(model.RemoveAll{})
}

// rowOf returns the visible row showing item index i, or the current cursor.
func (a App) rowOf(i int) int {
	for r, row := range a.rows {
		if row.Index == i {
			return r
		}
	}
	return a.cursor
}
