package drawer

import (
	"fmt"
	"time"
)

// Default settings.
const (
	DefaultSidePanelWidth    = 300.0
	DefaultAnimationDuration = 250 * time.Millisecond
	DefaultShadowOpacity     = 0.5
	DefaultOverlayAlpha      = 0.05
)

// Settings are the numeric configuration of a Container.
type Settings struct {
	SidePanelWidth    float64
	AnimationDuration time.Duration
	ShadowOpacity     float64
	OverlayAlpha      float64
}

// DefaultSettings returns the stock configuration.
func DefaultSettings() Settings {
	return Settings{
		SidePanelWidth:    DefaultSidePanelWidth,
		AnimationDuration: DefaultAnimationDuration,
		ShadowOpacity:     DefaultShadowOpacity,
		OverlayAlpha:      DefaultOverlayAlpha,
	}
}

// Validate checks the settings are usable.
func (s Settings) Validate() error {
	if s.SidePanelWidth <= 0 {
		return fmt.Errorf("side panel width must be positive, got %v", s.SidePanelWidth)
	}
	if s.AnimationDuration < 0 {
		return fmt.Errorf("animation duration must not be negative, got %v", s.AnimationDuration)
	}
	if s.ShadowOpacity < 0 || s.ShadowOpacity > 1 {
		return fmt.Errorf("shadow opacity must be within [0, 1], got %v", s.ShadowOpacity)
	}
	if s.OverlayAlpha < 0 || s.OverlayAlpha > 1 {
		return fmt.Errorf("overlay alpha must be within [0, 1], got %v", s.OverlayAlpha)
	}
	return nil
}
