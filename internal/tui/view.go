package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nikbrunner/todo/internal/tui/layout"
)

// Labels of the two buttons under the new-item input.
const (
	addLabel       = "[ Add Todo ]"
	removeAllLabel = "[ Delete all Todos! ]"
	buttonGap      = "  "
)

type button int

const (
	buttonNone button = iota
	buttonAdd
	buttonRemoveAll
)

// renderView creates the complete todo screen.
func (a App) renderView() string {
	switch a.mode {
	case ModeConfirmClear:
		return a.renderConfirmClear()
	case ModeHelp:
		return a.renderHelpOverlay()
	}

	content := a.styles.App.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			a.renderHeader(),
			a.renderList(),
			a.renderStatusLine(),
			a.renderHints(a.getContextualHints()),
		),
	)

	// Use Place to ensure exact terminal dimensions and prevent overflow
	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, content)
}

// renderHeader renders the heading, the new-item input, the buttons and,
// when filtering, the filter line.
func (a App) renderHeader() string {
	lines := []string{
		a.styles.Title.Render(a.options.Title),
		a.newInput.View(),
		a.styles.Button.Render(addLabel) + buttonGap + a.styles.Button.Render(removeAllLabel),
	}

	switch {
	case a.mode == ModeFilter:
		lines = append(lines, a.filter.Input.View())
	case a.filter.Active():
		lines = append(lines, a.styles.Empty.Render(
			fmt.Sprintf("/ %s (%d of %d)", a.filter.Query, len(a.rows), a.list.Len())))
	}

	return strings.Join(lines, "\n")
}

// renderList renders the bordered list pane.
func (a App) renderList() string {
	l := layout.CalculateListLayout(a.width, a.layoutConfig.List)

	var content string
	switch {
	case a.list.Len() == 0:
		content = a.styles.Empty.Render("(no todos)")
	case len(a.rows) == 0:
		content = a.styles.Empty.Render("(no matches)")
	default:
		lines := make([]string, len(a.rows))
		for i, row := range a.rows {
			lines[i] = a.renderRow(row, i == a.cursor, l)
		}
		content = strings.Join(lines, "\n")
	}

	return a.styles.Pane.
		Width(l.Width + a.styles.Pane.GetHorizontalPadding()).
		Render(content)
}

// renderRow renders one item: cursor, text or edit field, remove marker.
func (a App) renderRow(row Row, selected bool, l layout.ListLayout) string {
	todo := a.list.Items[row.Index]
	focused := a.mode == ModeEdit && a.edit.ID == todo.ID

	prefix := "  "
	if selected {
		prefix = "> "
	}

	var text string
	switch {
	case focused:
		text = layout.PadRight(a.edit.Input.View(), l.TextWidth)
	case todo.Editing:
		draft, _ := layout.TruncateText(todo.Draft, l.TextWidth, a.layoutConfig.Text)
		text = layout.PadRight(a.styles.Editing.Render(draft), l.TextWidth)
	default:
		text = layout.PadRight(a.highlight(todo.Text, row.MatchedIndexes, l.TextWidth), l.TextWidth)
	}

	marker := a.styles.Marker.Render(a.layoutConfig.List.Marker)
	if selected && !focused && (a.mode == ModeNormal || a.mode == ModeFilter) {
		return a.styles.ItemSelected.Render(prefix+layout.StripANSI(text)) + " " + marker
	}
	return a.styles.Item.Render(prefix) + text + " " + marker
}

// highlight truncates text to width and marks the fuzzy-matched bytes.
func (a App) highlight(text string, matched []int, width int) string {
	truncated, cut := layout.TruncateText(text, width, a.layoutConfig.Text)
	if len(matched) == 0 {
		return a.styles.Item.Render(truncated)
	}

	// Matches past the cut point are hidden behind the ellipsis
	limit := len(truncated)
	if cut {
		limit = max(len(truncated)-len(a.layoutConfig.Text.Ellipsis), 0)
	}
	matchSet := make(map[int]bool, len(matched))
	for _, idx := range matched {
		matchSet[idx] = true
	}

	var b strings.Builder
	for i, r := range truncated {
		if i < limit && matchSet[i] {
			b.WriteString(a.styles.Match.Render(string(r)))
		} else {
			b.WriteString(a.styles.Item.Render(string(r)))
		}
	}
	return b.String()
}

// renderStatusLine renders the last side-effect message or the item count.
func (a App) renderStatusLine() string {
	if a.status != "" {
		if a.statusError {
			return a.styles.StatusError.Render(a.status)
		}
		return a.styles.Status.Render(a.status)
	}

	n := a.list.Len()
	label := "todos"
	if n == 1 {
		label = "todo"
	}
	line := fmt.Sprintf("%d %s", n, label)
	if editing := len(a.list.Editing()); editing > 0 {
		line += fmt.Sprintf(", %d editing", editing)
	}
	return a.styles.Status.Render(line)
}

// renderConfirmClear renders the delete-all confirmation modal.
func (a App) renderConfirmClear() string {
	modalWidth := layout.CalculateModalWidth(a.width, a.layoutConfig.Modal.DefaultWidthPercent, a.layoutConfig.Modal)

	var content strings.Builder
	content.WriteString(a.styles.Title.Render("Delete all Todos!") + "\n\n")
	fmt.Fprintf(&content, "Remove all %d items?\n\n", a.list.Len())
	content.WriteString(a.renderHintsInline(a.getContextualHints().All()))

	modal := a.styles.Modal.Width(modalWidth).Render(content.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, modal)
}

// renderHelpOverlay renders the key binding reference.
func (a App) renderHelpOverlay() string {
	keyCol := lipgloss.NewStyle().Width(a.layoutConfig.Modal.HelpKeyColumnWidth)

	var content strings.Builder
	content.WriteString(a.styles.Title.Render("keys") + "\n")
	for _, b := range a.keys.helpBindings() {
		h := b.Help()
		content.WriteString(keyCol.Render(h.Key) + h.Desc + "\n")
	}
	content.WriteString("\n")
	content.WriteString(a.styles.Title.Render("mouse") + "\n")
	content.WriteString(keyCol.Render("2x click") + "edit item\n")
	content.WriteString(keyCol.Render(a.layoutConfig.List.Marker) + "remove item\n")
	content.WriteString(a.styles.Help.Render("[?/esc] close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top,
		lipgloss.NewStyle().Padding(1, 2).Render(content.String()))
}

// inputLine returns the screen row of the new-item input.
func (a App) inputLine() int {
	return a.styles.App.GetPaddingTop() + 1
}

// buttonsLine returns the screen row of the Add/Delete-all buttons.
func (a App) buttonsLine() int {
	return a.styles.App.GetPaddingTop() + 2
}

// listTop returns the screen row of the first list item.
func (a App) listTop() int {
	return a.styles.App.GetPaddingTop() +
		lipgloss.Height(a.renderHeader()) +
		a.styles.Pane.GetBorderTopSize()
}

// buttonAt maps a column on the buttons line to a button.
func (a App) buttonAt(x int) button {
	start := a.styles.App.GetPaddingLeft()
	addEnd := start + lipgloss.Width(addLabel)
	removeStart := addEnd + len(buttonGap)
	removeEnd := removeStart + lipgloss.Width(removeAllLabel)

	switch {
	case x >= start && x < addEnd:
		return buttonAdd
	case x >= removeStart && x < removeEnd:
		return buttonRemoveAll
	default:
		return buttonNone
	}
}
