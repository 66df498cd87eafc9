package tui

import "strings"

// Hint represents a single keybind hint for display.
type Hint struct {
	Key  string // Display key (e.g., "j/k", "Enter")
	Desc string // Short description (e.g., "move", "edit")
}

// renderHint renders a single hint as "key:desc" with styling.
func (a App) renderHint(h Hint) string {
	return a.styles.HintKey.Render(h.Key) + ":" + a.styles.HintDesc.Render(h.Desc)
}

// renderHints renders hints in horizontal format for bottom bar: "j/k:move e:edit d:remove"
func (a App) renderHints(hints HintSet) string {
	allHints := hints.All()
	if len(allHints) == 0 {
		return ""
	}

	parts := make([]string, len(allHints))
	for i, h := range allHints {
		parts[i] = a.renderHint(h)
	}
	return strings.Join(parts, " ")
}

// renderHintsInline renders hints in inline format for modals: "Enter confirm  Esc cancel"
func (a App) renderHintsInline(hints []Hint) string {
	if len(hints) == 0 {
		return ""
	}

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = a.styles.HintKey.Render(h.Key) + " " + a.styles.HintDesc.Render(h.Desc)
	}
	return strings.Join(parts, "  ")
}

// HintSet is an ordered collection of hints by group.
type HintSet struct {
	Nav    []Hint // Navigation hints (j/k, gg/G)
	Edit   []Hint // Edit hints (a, e, d, D)
	Action []Hint // Action hints (Enter, /, y)
	System []Hint // System hints (?, q, Esc)
}

// All returns all hints flattened in display order: Nav + Action + Edit + System.
func (h HintSet) All() []Hint {
	result := make([]Hint, 0, len(h.Nav)+len(h.Action)+len(h.Edit)+len(h.System))
	result = append(result, h.Nav...)
	result = append(result, h.Action...)
	result = append(result, h.Edit...)
	result = append(result, h.System...)
	return result
}

// getContextualHints returns the appropriate hints for the current mode.
func (a App) getContextualHints() HintSet {
	switch a.mode {
	case ModeNormal:
		return a.getNormalModeHints()
	case ModeInput:
		return HintSet{
			Action: []Hint{{Key: "Enter", Desc: "add todo"}},
			System: []Hint{{Key: "Esc", Desc: "back"}},
		}
	case ModeEdit:
		return HintSet{
			Action: []Hint{{Key: "Enter", Desc: "save"}},
			System: []Hint{{Key: "Esc", Desc: "stop editing"}},
		}
	case ModeFilter:
		return HintSet{
			Action: []Hint{{Key: "Enter", Desc: "apply"}},
			System: []Hint{{Key: "Esc", Desc: "clear"}},
		}
	case ModeConfirmClear:
		return HintSet{
			Action: []Hint{{Key: "Enter/y", Desc: "delete all"}},
			System: []Hint{{Key: "Esc/n", Desc: "cancel"}},
		}
	case ModeHelp:
		// Help overlay covers screen, minimal hints
		return HintSet{
			System: []Hint{{Key: "?/q/Esc", Desc: "close"}},
		}
	default:
		return HintSet{}
	}
}

// getNormalModeHints returns hints for ModeNormal (list browsing).
func (a App) getNormalModeHints() HintSet {
	hints := HintSet{
		Nav: []Hint{
			{Key: "j/k", Desc: "move"},
		},
		Action: []Hint{
			{Key: "/", Desc: "filter"},
		},
		Edit: []Hint{
			{Key: "a", Desc: "add"},
		},
		System: []Hint{
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		},
	}

	if len(a.rows) > 0 {
		hints.Action = append(hints.Action, Hint{Key: "y", Desc: "yank"})
		hints.Edit = append(hints.Edit,
			Hint{Key: "e", Desc: "edit"},
			Hint{Key: "d", Desc: "del"},
		)
	}
	if a.filter.Active() {
		hints.System = append([]Hint{{Key: "Esc", Desc: "clear filter"}}, hints.System...)
	}
	return hints
}
