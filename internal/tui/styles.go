package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all lipgloss styles for the TUI.
type Styles struct {
	App          lipgloss.Style
	Pane         lipgloss.Style
	Title        lipgloss.Style
	Button       lipgloss.Style
	Item         lipgloss.Style
	ItemSelected lipgloss.Style
	Editing      lipgloss.Style // items in edit mode without focus
	Marker       lipgloss.Style // remove button at the end of a row
	Match        lipgloss.Style // fuzzy-matched runes
	Help         lipgloss.Style
	Empty        lipgloss.Style
	Status       lipgloss.Style
	StatusError  lipgloss.Style
	HintKey      lipgloss.Style // Key portion of hints (e.g., "Enter", "j/k")
	HintDesc     lipgloss.Style // Description portion of hints (e.g., "confirm", "move")
	Modal        lipgloss.Style
}

// DefaultStyles returns the default style configuration.
// Industrial design: grayscale with single desaturated teal accent.
func DefaultStyles() Styles {
	// Industrial color palette
	primary := lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"} // main text
	subtle := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}  // secondary text
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}  // desaturated teal
	border := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#505050"}  // inactive borders
	alert := lipgloss.AdaptiveColor{Light: "#9A4A4A", Dark: "#B07070"}   // errors

	return Styles{
		App: lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2).
			PaddingRight(2),

		Pane: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(border).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Button: lipgloss.NewStyle().
			Foreground(primary),

		Item: lipgloss.NewStyle().
			Foreground(primary),

		ItemSelected: lipgloss.NewStyle().
			Background(accent).
			Foreground(lipgloss.Color("#1A1A1A")),

		Editing: lipgloss.NewStyle().
			Foreground(accent).
			Italic(true),

		Marker: lipgloss.NewStyle().
			Foreground(subtle),

		Match: lipgloss.NewStyle().
			Bold(true).
			Underline(true),

		Help: lipgloss.NewStyle().
			Foreground(subtle).
			Padding(1, 0),

		Empty: lipgloss.NewStyle().
			Foreground(subtle),

		Status: lipgloss.NewStyle().
			Foreground(subtle),

		StatusError: lipgloss.NewStyle().
			Foreground(alert),

		HintKey: lipgloss.NewStyle().
			Foreground(subtle),

		HintDesc: lipgloss.NewStyle().
			Foreground(subtle),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(accent).
			Padding(1, 2),
	}
}
