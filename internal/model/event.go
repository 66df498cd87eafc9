package model

import "fmt"

// Event is an input to Reduce. The set of events is closed.
type Event interface {
	fmt.Stringer
	event()
}

// Add appends the pending input as a new item.
type Add struct{}

// UpdateInput replaces the pending new-item text.
type UpdateInput struct {
	Text string
}

// Remove deletes the item with the given ID.
type Remove struct {
	ID string
}

// RemoveAll deletes every item.
type RemoveAll struct{}

// UpdateEditBuffer replaces the draft of the item with the given ID.
type UpdateEditBuffer struct {
	ID   string
	Text string
}

// CommitEdit replaces an item's text with its draft and leaves edit mode.
type CommitEdit struct {
	ID string
}

// ToggleEdit flips an item in or out of edit mode.
type ToggleEdit struct {
	ID string
}

// Noop changes nothing.
type Noop struct{}

func (Add) event()              {}
func (UpdateInput) event()      {}
func (Remove) event()           {}
func (RemoveAll) event()        {}
func (UpdateEditBuffer) event() {}
func (CommitEdit) event()       {}
func (ToggleEdit) event()       {}
func (Noop) event()             {}

func (Add) String() string                { return "add" }
func (e UpdateInput) String() string      { return fmt.Sprintf("update-input(%q)", e.Text) }
func (e Remove) String() string           { return "remove(" + e.ID + ")" }
func (RemoveAll) String() string          { return "remove-all" }
func (e UpdateEditBuffer) String() string { return fmt.Sprintf("update-edit(%s, %q)", e.ID, e.Text) }
func (e CommitEdit) String() string       { return "commit-edit(" + e.ID + ")" }
func (e ToggleEdit) String() string       { return "toggle-edit(" + e.ID + ")" }
func (Noop) String() string               { return "noop" }
