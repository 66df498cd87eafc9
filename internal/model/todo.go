package model

// Todo is a single task entry in the list.
type Todo struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Editing bool   `json:"editing"`
	Draft   string `json:"draft"` // pending text while Editing
}

// NewTodo creates a Todo with a generated UUID.
func NewTodo(text string) Todo {
	return Todo{
		ID:   generateUUID(),
		Text: text,
	}
}
