package tui_test

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/todo/internal/model"
	"github.com/nikbrunner/todo/internal/tui"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

// Screen rows for the default styles and an 80 column terminal:
// padding (1), title, input, buttons, pane border.
const (
	inputLine   = 2
	buttonsLine = 3
	listTop     = 5
	textColumn  = 10
	markerX     = 74
)

// clock is a settable time source for double-click detection.
type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func (c *clock) advance(d time.Duration) { c.now = c.now.Add(d) }

func newClickApp(c *clock, texts ...string) tui.App {
	return tui.NewApp(tui.AppParams{
		List: model.Seed(model.NewList(), texts...),
		Now:  c.Now,
	})
}

func click(app tui.App, x, y int) tui.App {
	updated, _ := app.Update(tea.MouseMsg{
		X:      x,
		Y:      y,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	return updated.(tui.App)
}

func TestMouse_DoubleClickTogglesEdit(t *testing.T) {
	c := &clock{now: time.Unix(1700000000, 0)}
	app := newClickApp(c, "Buy milk", "Walk dog")

	app = click(app, textColumn, listTop+1)
	assert.Equal(t, app.Cursor(), 1)
	assert.Equal(t, app.Mode(), tui.ModeNormal, "single click only selects")

	c.advance(150 * time.Millisecond)
	app = click(app, textColumn, listTop+1)

	assert.Equal(t, app.Mode(), tui.ModeEdit)
	assert.Equal(t, app.EditingID(), app.List().IDAt(1))
	assert.Assert(t, app.List().Items[1].Editing)
}

func TestMouse_SlowClicksDoNotEdit(t *testing.T) {
	c := &clock{now: time.Unix(1700000000, 0)}
	app := newClickApp(c, "Buy milk")

	app = click(app, textColumn, listTop)
	c.advance(time.Second)
	app = click(app, textColumn, listTop)

	assert.Equal(t, app.Mode(), tui.ModeNormal)
	assert.Assert(t, !app.List().Items[0].Editing)
}

func TestMouse_ClicksOnDifferentRowsDoNotEdit(t *testing.T) {
	c := &clock{now: time.Unix(1700000000, 0)}
	app := newClickApp(c, "Buy milk", "Walk dog")

	app = click(app, textColumn, listTop)
	c.advance(100 * time.Millisecond)
	app = click(app, textColumn, listTop+1)

	assert.Equal(t, app.Mode(), tui.ModeNormal)
	assert.DeepEqual(t, app.List().Editing(), []string(nil))
}

func TestMouse_MarkerRemovesItem(t *testing.T) {
	c := &clock{}
	app := newClickApp(c, "Buy milk", "Walk dog")

	app = click(app, markerX, listTop)

	assert.DeepEqual(t, app.List().Texts(), []string{"Walk dog"})
}

func TestMouse_ClickBelowListIgnored(t *testing.T) {
	c := &clock{}
	app := newClickApp(c, "Buy milk")

	app = click(app, markerX, listTop+3)

	assert.Check(t, is.Len(app.List().Items, 1))
}

func TestMouse_Buttons(t *testing.T) {
	c := &clock{}
	app := newClickApp(c)

	// Click the input, type, then press the Add button
	app = click(app, 4, inputLine)
	assert.Equal(t, app.Mode(), tui.ModeInput)
	app = typeText(app, "Buy milk")
	app = click(app, 3, buttonsLine)
	assert.DeepEqual(t, app.List().Texts(), []string{"Buy milk"})
	assert.Equal(t, app.List().Input, "")

	// "[ Add Todo ]" spans 2..13, the gap 14..15, delete-all starts at 16
	app = click(app, 20, buttonsLine)
	assert.Check(t, is.Len(app.List().Items, 0))
}

func TestMouse_EditTwoItemsKeepsDrafts(t *testing.T) {
	c := &clock{now: time.Unix(1700000000, 0)}
	app := newClickApp(c, "Buy milk", "Walk dog")
	first, second := app.List().IDAt(0), app.List().IDAt(1)

	app = press(app, "e")
	app = typeText(app, "!")

	// Double-click the second row while the first is still editing
	app = click(app, textColumn, listTop+1)
	c.advance(100 * time.Millisecond)
	app = click(app, textColumn, listTop+1)

	assert.Equal(t, app.EditingID(), second)
	assert.DeepEqual(t, app.List().Editing(), []string{first, second})
	assert.Equal(t, app.List().EditBuffer(first), "Buy milk!")
	assert.Equal(t, app.List().EditBuffer(second), "Walk dog")

	app = press(app, "enter")
	assert.DeepEqual(t, app.List().Texts(), []string{"Buy milk", "Walk dog"})
	assert.DeepEqual(t, app.List().Editing(), []string{first})

	// Going back to the first item resumes its draft
	app = press(app, "k", "e")
	assert.Equal(t, app.EditingID(), first)
	app = press(app, "enter")
	assert.DeepEqual(t, app.List().Texts(), []string{"Buy milk!", "Walk dog"})
}
