package model_test

import (
	"testing"

	"github.com/nikbrunner/todo/internal/model"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

// apply runs events in order and returns the final list.
func apply(l model.List, events ...model.Event) model.List {
	for _, ev := range events {
		l, _ = model.Reduce(l, ev)
	}
	return l
}

// texts of the items with their editing flags, for compact comparisons.
type row struct {
	Text    string
	Editing bool
}

func rows(l model.List) []row {
	out := make([]row, len(l.Items))
	for i, t := range l.Items {
		out[i] = row{t.Text, t.Editing}
	}
	return out
}

func TestReduce_AddEmptyInput(t *testing.T) {
	l := model.Seed(model.NewList(), "Buy milk")

	got, changed := model.Reduce(l, model.Add{})

	assert.Assert(t, !changed)
	assert.DeepEqual(t, rows(got), []row{{"Buy milk", false}})
}

func TestReduce_AddAppendsAndClearsInput(t *testing.T) {
	l := apply(model.NewList(),
		model.UpdateInput{Text: "Buy milk"},
		model.Add{},
		model.UpdateInput{Text: "Walk dog"},
		model.Add{},
	)

	assert.DeepEqual(t, rows(l), []row{{"Buy milk", false}, {"Walk dog", false}})
	assert.Equal(t, l.Input, "")
}

func TestReduce_AddAssignsDistinctIDs(t *testing.T) {
	l := model.Seed(model.NewList(), "a", "b", "c")

	seen := map[string]bool{}
	for _, todo := range l.Items {
		assert.Assert(t, todo.ID != "")
		assert.Assert(t, !seen[todo.ID], "duplicate id %s", todo.ID)
		seen[todo.ID] = true
	}
}

func TestReduce_UpdateInput(t *testing.T) {
	l, changed := model.Reduce(model.NewList(), model.UpdateInput{Text: "B"})
	assert.Assert(t, changed)
	assert.Equal(t, l.Input, "B")

	_, changed = model.Reduce(l, model.UpdateInput{Text: "B"})
	assert.Assert(t, !changed, "same text should not report a change")
}

func TestReduce_RemoveOutOfRange(t *testing.T) {
	l := model.Seed(model.NewList(), "Buy milk", "Walk dog")

	got, changed := model.Reduce(l, model.Remove{ID: l.IDAt(2)})

	assert.Assert(t, !changed)
	assert.DeepEqual(t, rows(got), rows(l))
}

func TestReduce_RemoveShiftsRemaining(t *testing.T) {
	l := model.Seed(model.NewList(), "Buy milk", "Walk dog")
	walkID := l.IDAt(1)

	got, changed := model.Reduce(l, model.Remove{ID: l.IDAt(0)})

	assert.Assert(t, changed)
	assert.DeepEqual(t, rows(got), []row{{"Walk dog", false}})
	assert.Equal(t, got.IDAt(0), walkID)
}

func TestReduce_RemoveDoesNotMutateInput(t *testing.T) {
	l := model.Seed(model.NewList(), "a", "b", "c")
	before := rows(l)

	_, _ = model.Reduce(l, model.Remove{ID: l.IDAt(0)})

	assert.DeepEqual(t, rows(l), before)
}

func TestReduce_RemoveAll(t *testing.T) {
	tests := []struct {
		name        string
		texts       []string
		wantChanged bool
	}{
		{"populated list", []string{"a", "b"}, true},
		{"empty list", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := model.Seed(model.NewList(), tt.texts...)

			got, changed := model.Reduce(l, model.RemoveAll{})

			assert.Equal(t, changed, tt.wantChanged)
			assert.Check(t, is.Len(got.Items, 0))
		})
	}
}

func TestReduce_ToggleEdit(t *testing.T) {
	l := model.Seed(model.NewList(), "Buy milk")
	id := l.IDAt(0)

	l, changed := model.Reduce(l, model.ToggleEdit{ID: id})
	assert.Assert(t, changed)
	assert.Assert(t, l.Items[0].Editing)
	assert.Equal(t, l.EditBuffer(id), "Buy milk")

	l = apply(l, model.UpdateEditBuffer{ID: id, Text: "Buy oat"})
	l, changed = model.Reduce(l, model.ToggleEdit{ID: id})
	assert.Assert(t, changed)
	assert.Assert(t, !l.Items[0].Editing)
	assert.Equal(t, l.EditBuffer(id), "Buy oat", "toggling off keeps the draft")
}

func TestReduce_ToggleEditUnknownID(t *testing.T) {
	l := model.Seed(model.NewList(), "Buy milk")

	_, changed := model.Reduce(l, model.ToggleEdit{ID: "missing"})

	assert.Assert(t, !changed)
}

func TestReduce_CommitEditEmptyDraft(t *testing.T) {
	l := model.Seed(model.NewList(), "Buy milk")
	id := l.IDAt(0)
	l = apply(l,
		model.ToggleEdit{ID: id},
		model.UpdateEditBuffer{ID: id, Text: ""},
	)

	got, changed := model.Reduce(l, model.CommitEdit{ID: id})

	assert.Assert(t, !changed)
	assert.DeepEqual(t, rows(got), []row{{"Buy milk", true}})
}

func TestReduce_CommitEdit(t *testing.T) {
	l := model.Seed(model.NewList(), "Buy milk")
	id := l.IDAt(0)
	l = apply(l,
		model.ToggleEdit{ID: id},
		model.UpdateEditBuffer{ID: id, Text: "Buy oat milk"},
	)

	got, changed := model.Reduce(l, model.CommitEdit{ID: id})

	assert.Assert(t, changed)
	assert.DeepEqual(t, rows(got), []row{{"Buy oat milk", false}})
	assert.Equal(t, got.EditBuffer(id), "")
}

func TestReduce_IndependentDrafts(t *testing.T) {
	l := model.Seed(model.NewList(), "Buy milk", "Walk dog")
	first, second := l.IDAt(0), l.IDAt(1)

	l = apply(l,
		model.ToggleEdit{ID: first},
		model.UpdateEditBuffer{ID: first, Text: "Buy oat milk"},
		model.ToggleEdit{ID: second},
		model.CommitEdit{ID: first},
	)

	assert.DeepEqual(t, rows(l), []row{{"Buy oat milk", false}, {"Walk dog", true}})
	assert.Equal(t, l.EditBuffer(second), "Walk dog")
	assert.DeepEqual(t, l.Editing(), []string{second})
}

func TestReduce_Noop(t *testing.T) {
	l := model.Seed(model.NewList(), "a")

	got, changed := model.Reduce(l, model.Noop{})

	assert.Assert(t, !changed)
	assert.DeepEqual(t, got, l)
}

func TestList_IDAt(t *testing.T) {
	l := model.Seed(model.NewList(), "a", "b")

	assert.Equal(t, l.IDAt(-1), "")
	assert.Equal(t, l.IDAt(2), "")
	assert.Equal(t, l.IndexOf(l.IDAt(1)), 1)
	assert.Equal(t, l.IndexOf(""), -1)
}

func TestSeed_SkipsEmptyTexts(t *testing.T) {
	l := model.Seed(model.NewList(), "a", "", "b")

	assert.DeepEqual(t, l.Texts(), []string{"a", "b"})
}
