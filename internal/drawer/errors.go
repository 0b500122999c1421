package drawer

import (
	"errors"
	"fmt"

	"menucontainer/internal/panel"
)

// Usage errors. Operations returning them are no-ops.
var (
	ErrEmptyPanel   = errors.New("side panel has no content")
	ErrBusy         = errors.New("panels are sliding")
	ErrUnknownPanel = errors.New("unknown panel")
	ErrNilContent   = errors.New("nil content")
)

// WiringError is a construction-time misconfiguration of the content wiring.
// It is not recoverable: the container must not be used.
type WiringError struct {
	Panel panel.ID
	Err   error
}

func (e *WiringError) Error() string {
	return fmt.Sprintf("wiring %s panel: %v", e.Panel, e.Err)
}

func (e *WiringError) Unwrap() error { return e.Err }
