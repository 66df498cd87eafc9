package layout

import "github.com/mattn/go-runewidth"

// ListLayout holds calculated widths of one list row.
type ListLayout struct {
	Width     int // full content width of the pane
	TextWidth int // width available for item text
}

// CalculateListLayout computes the list pane dimensions for a terminal width.
// A row is: cursor prefix, text, one space, remove marker.
func CalculateListLayout(terminalWidth int, cfg ListConfig) ListLayout {
	width := terminalWidth - cfg.WidthOffset
	width = max(width, cfg.MinWidth)
	width = min(width, cfg.MaxWidth)

	textWidth := width - cfg.CursorWidth - 1 - runewidth.StringWidth(cfg.Marker)
	return ListLayout{
		Width:     width,
		TextWidth: max(textWidth, 1),
	}
}

// RowHit describes what a click on a list row landed on.
type RowHit int

const (
	HitNone RowHit = iota
	HitText
	HitMarker
)

// HitTest maps a click at column x, relative to the terminal, onto a row
// of the given layout.
func HitTest(x int, l ListLayout, cfg ListConfig) RowHit {
	start := cfg.LeftOffset
	markerStart := start + cfg.CursorWidth + l.TextWidth + 1
	markerEnd := markerStart + runewidth.StringWidth(cfg.Marker)

	switch {
	case x < start || x >= markerEnd:
		return HitNone
	case x >= markerStart:
		return HitMarker
	default:
		return HitText
	}
}
