package layout

// CalculateModalWidth computes responsive modal width based on percentage of terminal width.
// Uses widthPercent of terminal width, clamped between MinWidth and MaxWidth.
func CalculateModalWidth(terminalWidth, widthPercent int, cfg ModalConfig) int {
	width := terminalWidth * widthPercent / 100
	width = max(width, cfg.MinWidth)
	width = min(width, cfg.MaxWidth)

	// Don't exceed terminal width
	width = min(width, terminalWidth-4)
	return max(width, 1)
}
