package panel

// Host is the host-framework side of a Surface: the region content is attached to.
type Host interface {
	Attach(c Content)
	Detach(c Content)
	SetVisible(visible bool)
	SetHorizontalOffset(offset float64)
}

// ShadowHost is implemented by hosts that can draw a drop shadow.
type ShadowHost interface {
	SetShadowOpacity(opacity float64)
}

// NopHost is a Host with no host-side representation.
type NopHost struct{}

func (NopHost) Attach(Content)              {}
func (NopHost) Detach(Content)              {}
func (NopHost) SetVisible(bool)             {}
func (NopHost) SetHorizontalOffset(float64) {}
