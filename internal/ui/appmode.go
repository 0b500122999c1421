package ui

// AppMode represents whether a side panel is open; keybind hints are filtered by it.
type AppMode int

const (
	ModeBrowse AppMode = iota // panels closed, central content has focus
	ModePanel                 // a side panel is open
)

func (m AppMode) String() string {
	switch m {
	case ModeBrowse:
		return "Browse"
	case ModePanel:
		return "Panel"
	default:
		return "Unknown"
	}
}
