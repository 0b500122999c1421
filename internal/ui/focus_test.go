package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"menucontainer/internal/panel"
)

func TestFocusManager(t *testing.T) {
	var changes [][2]panel.ID
	f := &FocusManager{
		Current:  panel.Central,
		Order:    []panel.ID{panel.Left, panel.Central},
		OnChange: func(from, to panel.ID) { changes = append(changes, [2]panel.ID{from, to}) },
	}

	assert.Equal(t, panel.Left, f.Next())
	assert.Equal(t, panel.Central, f.Next())
	assert.Equal(t, panel.Left, f.Prev())
	assert.False(t, f.SetFocus(panel.Right))
	assert.True(t, f.SetFocus(panel.Left))

	assert.Equal(t, [][2]panel.ID{
		{panel.Central, panel.Left},
		{panel.Left, panel.Central},
		{panel.Central, panel.Left},
	}, changes, "SetFocus on the current panel is not a change")
}

func TestFocusManager_EmptyOrder(t *testing.T) {
	f := &FocusManager{Current: panel.Central}
	assert.Equal(t, panel.Central, f.Next())
	assert.Equal(t, panel.Central, f.Prev())
}
