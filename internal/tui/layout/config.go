package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	List  ListConfig
	Modal ModalConfig
	Input InputConfig
	Text  TextConfig
}

// ListConfig holds dimensions of the todo list pane.
type ListConfig struct {
	// WidthOffset is subtracted from terminal width for the pane content.
	// Accounts for: app padding (2+2) + pane borders (2) + pane padding (2) = 8
	WidthOffset int

	// MinWidth and MaxWidth clamp the pane content width.
	MinWidth int
	MaxWidth int

	// LeftOffset is the column of the first content cell.
	// Accounts for: app padding (2) + pane border (1) + pane padding (1) = 4
	LeftOffset int

	// CursorWidth is the width of the "> " cursor prefix on each row.
	CursorWidth int

	// Marker is the remove button drawn at the end of each row.
	Marker string
}

// ModalConfig holds modal dialog configuration.
type ModalConfig struct {
	// DefaultWidthPercent is the standard modal width as percentage of terminal width.
	DefaultWidthPercent int

	// MinWidth is the minimum modal width in characters.
	MinWidth int

	// MaxWidth is the maximum modal width in characters.
	MaxWidth int

	// HelpKeyColumnWidth: width of the key column in the help overlay.
	HelpKeyColumnWidth int
}

// InputConfig holds text input configuration.
type InputConfig struct {
	// Character limits, 0 means unlimited
	TodoCharLimit   int
	FilterCharLimit int

	// Display widths
	StandardWidth int // new-item input
	FilterWidth   int // filter input (narrower)
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		List: ListConfig{
			WidthOffset: 8,
			MinWidth:    20,
			MaxWidth:    100,
			LeftOffset:  4,
			CursorWidth: 2,
			Marker:      "[x]",
		},
		Modal: ModalConfig{
			DefaultWidthPercent: 40,
			MinWidth:            40,
			MaxWidth:            70,
			HelpKeyColumnWidth:  12,
		},
		Input: InputConfig{
			TodoCharLimit:   0,
			FilterCharLimit: 50,
			StandardWidth:   40,
			FilterWidth:     30,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
	}
}
