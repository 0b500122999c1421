package drawer

import (
	"errors"
	"fmt"
	"slices"

	"menucontainer/internal/panel"
)

// Provider produces the content for a panel when wiring is applied.
type Provider func() (panel.Content, error)

// Wiring maps panels to content providers. Panels without an entry are left empty.
type Wiring map[panel.ID]Provider

// Validate reports misconfigured entries without running any provider.
func (w Wiring) Validate() error {
	for _, id := range sortedIDs(w) {
		if !id.Valid() {
			return &WiringError{Panel: id, Err: ErrUnknownPanel}
		}
		if w[id] == nil {
			return &WiringError{Panel: id, Err: errors.New("nil provider")}
		}
	}
	return nil
}

// resolve runs every provider in panel.All order.
func (w Wiring) resolve() (map[panel.ID]panel.Content, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	out := make(map[panel.ID]panel.Content, len(w))
	for _, id := range panel.All {
		p, ok := w[id]
		if !ok {
			continue
		}
		c, err := p()
		if err != nil {
			return nil, &WiringError{Panel: id, Err: err}
		}
		if c == nil {
			return nil, &WiringError{Panel: id, Err: ErrNilContent}
		}
		out[id] = c
	}
	return out, nil
}

// Static returns a Provider for already-built content.
func Static(c panel.Content) Provider {
	return func() (panel.Content, error) {
		if c == nil {
			return nil, fmt.Errorf("static provider: %w", ErrNilContent)
		}
		return c, nil
	}
}

func sortedIDs(w Wiring) []panel.ID {
	ids := make([]panel.ID, 0, len(w))
	for id := range w {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
