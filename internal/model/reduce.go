package model

import "slices"

// Reduce applies ev to l and returns the resulting list together with
// whether anything changed. l itself is never modified.
//
// Invalid events (empty input, unknown ID, empty draft) are no-ops.
func Reduce(l List, ev Event) (List, bool) {
	switch ev := ev.(type) {
	case Add:
		if l.Input == "" {
			return l, false
		}
		l.Items = append(slices.Clip(l.Items), NewTodo(l.Input))
		l.Input = ""
		return l, true

	case UpdateInput:
		if l.Input == ev.Text {
			return l, false
		}
		l.Input = ev.Text
		return l, true

	case Remove:
		i := l.IndexOf(ev.ID)
		if i < 0 {
			return l, false
		}
		l.Items = slices.Delete(slices.Clone(l.Items), i, i+1)
		return l, true

	case RemoveAll:
		if len(l.Items) == 0 {
			return l, false
		}
		l.Items = []Todo{}
		return l, true

	case UpdateEditBuffer:
		return l.update(ev.ID, func(t *Todo) bool {
			if t.Draft == ev.Text {
				return false
			}
			t.Draft = ev.Text
			return true
		})

	case CommitEdit:
		return l.update(ev.ID, func(t *Todo) bool {
			if t.Draft == "" {
				return false
			}
			t.Text = t.Draft
			t.Editing = false
			t.Draft = ""
			return true
		})

	case ToggleEdit:
		return l.update(ev.ID, func(t *Todo) bool {
			t.Editing = !t.Editing
			if t.Editing {
				t.Draft = t.Text
			}
			return true
		})
	}

	return l, false
}

// update runs fn against a copy of the item with the given ID. The item
// slice is only cloned when fn reports a change.
func (l List) update(id string, fn func(*Todo) bool) (List, bool) {
	i := l.IndexOf(id)
	if i < 0 {
		return l, false
	}
	t := l.Items[i]
	if !fn(&t) {
		return l, false
	}
	l.Items = slices.Clone(l.Items)
	l.Items[i] = t
	return l, true
}
