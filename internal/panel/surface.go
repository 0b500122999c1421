package panel

import "github.com/google/uuid"

// Surface is an embeddable region holding at most one piece of content.
// A Surface exclusively owns its content while embedded.
type Surface struct {
	id      ID
	host    Host
	content Content
	embedID uuid.UUID
	visible bool
	offset  float64
}

// NewSurface creates an empty, visible surface for the given panel.
// A nil host is replaced with NopHost.
func NewSurface(id ID, host Host) *Surface {
	if host == nil {
		host = NopHost{}
	}
	return &Surface{id: id, host: host, visible: true}
}

// ID returns the panel this surface backs.
func (s *Surface) ID() ID { return s.id }

// Embed attaches c, detaching and discarding any previous content first.
// Visibility is unaffected.
func (s *Surface) Embed(c Content) {
	if s.content != nil {
		s.Clear()
	}
	s.content = c
	s.embedID = uuid.New()
	s.host.Attach(c)
}

// Clear detaches and discards the current content. Safe to call when empty.
func (s *Surface) Clear() {
	if s.content == nil {
		return
	}
	old := s.content
	s.content = nil
	s.embedID = uuid.Nil
	s.host.Detach(old)
	if d, ok := old.(Discarder); ok {
		d.Discard()
	}
}

// Content returns the embedded content, or nil.
func (s *Surface) Content() Content { return s.content }

// EmbedID identifies the current embedding; uuid.Nil when empty.
func (s *Surface) EmbedID() uuid.UUID { return s.embedID }

// IsFilled reports whether content is attached.
func (s *Surface) IsFilled() bool { return s.content != nil }

// SetVisible shows or hides the surface. No animation.
func (s *Surface) SetVisible(visible bool) {
	s.visible = visible
	s.host.SetVisible(visible)
}

// Visible reports whether the surface is shown.
func (s *Surface) Visible() bool { return s.visible }

// SetOffset records and applies the horizontal offset.
func (s *Surface) SetOffset(offset float64) {
	s.offset = offset
	s.host.SetHorizontalOffset(offset)
}

// Offset returns the last applied horizontal offset.
func (s *Surface) Offset() float64 { return s.offset }

// SetShadowOpacity forwards to the host when it can draw a shadow.
func (s *Surface) SetShadowOpacity(opacity float64) {
	if sh, ok := s.host.(ShadowHost); ok {
		sh.SetShadowOpacity(opacity)
	}
}
