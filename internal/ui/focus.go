package ui

import "menucontainer/internal/panel"

// FocusManager tracks which panel receives key input.
type FocusManager struct {
	Current  panel.ID   // the currently focused panel
	Order    []panel.ID // focus rotation order
	OnChange func(from, to panel.ID)
}

// Next advances focus to the next panel in order.
// Returns the new current focus.
func (f *FocusManager) Next() panel.ID {
	if len(f.Order) == 0 {
		return f.Current
	}
	idx := f.index()
	return f.set(f.Order[(idx+1)%len(f.Order)])
}

// Prev moves focus to the previous panel in order.
func (f *FocusManager) Prev() panel.ID {
	if len(f.Order) == 0 {
		return f.Current
	}
	idx := f.index() - 1
	if idx < 0 {
		idx = len(f.Order) - 1
	}
	return f.set(f.Order[idx])
}

// SetFocus sets focus to id.
// Returns true if id exists in order.
func (f *FocusManager) SetFocus(id panel.ID) bool {
	for _, o := range f.Order {
		if o == id {
			f.set(id)
			return true
		}
	}
	return false
}

func (f *FocusManager) index() int {
	for i, id := range f.Order {
		if id == f.Current {
			return i
		}
	}
	return -1
}

func (f *FocusManager) set(id panel.ID) panel.ID {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
	return id
}
