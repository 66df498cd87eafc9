package model

// List is the complete view state of the todo list.
type List struct {
	Input string `json:"input"` // pending text for a new item
	Items []Todo `json:"items"`
}

// NewList creates an empty List with an initialized item slice.
func NewList() List {
	return List{Items: []Todo{}}
}

// Len returns the number of items.
func (l List) Len() int {
	return len(l.Items)
}

// IDAt returns the ID of the item at position i, or "" if i is out of range.
func (l List) IDAt(i int) string {
	if i < 0 || i >= len(l.Items) {
		return ""
	}
	return l.Items[i].ID
}

// IndexOf returns the position of the item with the given ID, or -1.
func (l List) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i := range l.Items {
		if l.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// Get finds an item by ID. The second result reports whether it was found.
func (l List) Get(id string) (Todo, bool) {
	if i := l.IndexOf(id); i >= 0 {
		return l.Items[i], true
	}
	return Todo{}, false
}

// EditBuffer returns the draft text of the item with the given ID.
func (l List) EditBuffer(id string) string {
	t, _ := l.Get(id)
	return t.Draft
}

// Editing returns the IDs of all items currently in edit mode, in list order.
func (l List) Editing() []string {
	var ids []string
	for _, t := range l.Items {
		if t.Editing {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

// Texts returns the display text of every item, in list order.
func (l List) Texts() []string {
	texts := make([]string, len(l.Items))
	for i, t := range l.Items {
		texts[i] = t.Text
	}
	return texts
}

// Seed appends one item per non-empty text, going through the same
// UpdateInput + Add path as interactive input.
func Seed(l List, texts ...string) List {
	for _, text := range texts {
		l, _ = Reduce(l, UpdateInput{Text: text})
		l, _ = Reduce(l, Add{})
	}
	return l
}
