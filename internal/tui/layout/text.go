package layout

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// StripANSI removes ANSI escape codes from a string.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// VisibleWidth returns the cell width of a string, excluding ANSI codes
// and counting wide runes as two cells.
func VisibleWidth(s string) int {
	return ansi.StringWidth(s)
}

// TruncateText truncates text to maxWidth cells with ellipsis.
// Returns the truncated text and whether truncation occurred.
func TruncateText(text string, maxWidth int, cfg TextConfig) (string, bool) {
	if maxWidth <= 0 {
		return "", text != ""
	}
	if runewidth.StringWidth(text) <= maxWidth {
		return text, false
	}
	if maxWidth <= runewidth.StringWidth(cfg.Ellipsis) {
		// No room for text + ellipsis
		return runewidth.Truncate(text, maxWidth, ""), true
	}
	return runewidth.Truncate(text, maxWidth, cfg.Ellipsis), true
}

// PadRight fills text with spaces up to width visible cells. ANSI codes
// take no space.
func PadRight(text string, width int) string {
	if gap := width - VisibleWidth(text); gap > 0 {
		return text + strings.Repeat(" ", gap)
	}
	return text
}
