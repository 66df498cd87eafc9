package tui

// Row is one visible line of the list: an item position plus the runes
// the active filter matched in its text.
type Row struct {
	Index          int // position in model.List.Items
	MatchedIndexes []int
}
