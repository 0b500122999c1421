package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"menucontainer/internal/gesture"
)

func press(x int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: 1, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
}

func newTestDrag() (*DragTracker, *fakeClock) {
	clock := newFakeClock()
	d := NewDragTracker(DrawerLayout{CellsPerUnit: 0.1, SideWidth: 300})
	d.Now = clock.Now
	return d, clock
}

func TestDragTracker_Drag(t *testing.T) {
	d, clock := newTestDrag()

	samples, tap := d.HandleMouse(press(10))
	assert.Empty(t, samples)
	assert.False(t, tap)
	assert.Equal(t, DragStatePressed, d.State())

	clock.Add(100 * time.Millisecond)
	samples, _ = d.HandleMouse(motion(15))
	require.Len(t, samples, 2)
	assert.Equal(t, gesture.Begin, samples[0].Phase)
	assert.InDelta(t, 500.0, samples[0].VelocityX, 1e-9, "5 cells = 50 units in 0.1s")
	assert.Equal(t, gesture.Change, samples[1].Phase)
	assert.InDelta(t, 50.0, samples[1].TranslationX, 1e-9)
	assert.Equal(t, DragStateDragging, d.State())

	clock.Add(100 * time.Millisecond)
	samples, _ = d.HandleMouse(motion(25))
	require.Len(t, samples, 1)
	assert.InDelta(t, 150.0, samples[0].TranslationX, 1e-9)

	samples, tap = d.HandleMouse(release(25))
	assert.False(t, tap)
	require.Len(t, samples, 1)
	assert.Equal(t, gesture.End, samples[0].Phase)
	assert.InDelta(t, 150.0, samples[0].TranslationX, 1e-9)
	assert.Equal(t, DragStateIdle, d.State())
}

func TestDragTracker_LeftwardVelocityIsNegative(t *testing.T) {
	d, clock := newTestDrag()
	d.HandleMouse(press(40))
	clock.Add(50 * time.Millisecond)
	samples, _ := d.HandleMouse(motion(35))
	require.NotEmpty(t, samples)
	assert.Less(t, samples[0].VelocityX, 0.0)
}

func TestDragTracker_Tap(t *testing.T) {
	d, _ := newTestDrag()
	d.HandleMouse(press(10))
	samples, _ := d.HandleMouse(motion(10))
	assert.Empty(t, samples, "motion without movement is not a drag")

	samples, tap := d.HandleMouse(release(10))
	assert.Empty(t, samples)
	assert.True(t, tap)
}

func TestDragTracker_IgnoresOtherButtonsAndStrayEvents(t *testing.T) {
	d, _ := newTestDrag()

	samples, tap := d.HandleMouse(tea.MouseMsg{X: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	assert.Empty(t, samples)
	assert.False(t, tap)

	samples, _ = d.HandleMouse(motion(20))
	assert.Empty(t, samples, "motion without a press")

	_, tap = d.HandleMouse(release(20))
	assert.False(t, tap, "release without a press")
}

func TestDragTracker_Cancel(t *testing.T) {
	d, clock := newTestDrag()
	assert.Nil(t, d.Cancel())

	d.HandleMouse(press(10))
	clock.Add(10 * time.Millisecond)
	d.HandleMouse(motion(12))
	samples := d.Cancel()
	require.Len(t, samples, 1)
	assert.Equal(t, gesture.Cancel, samples[0].Phase)
	assert.Equal(t, DragStateIdle, d.State())
}
