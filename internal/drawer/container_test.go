package drawer

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"menucontainer/internal/gesture"
	"menucontainer/internal/panel"
)

// manualAnimator queues animations until the test settles them.
type manualAnimator struct {
	pending []pendingAnimation
}

type pendingAnimation struct {
	d    time.Duration
	step func(float64)
	done func()
}

func (a *manualAnimator) Animate(d time.Duration, step func(float64), done func()) {
	a.pending = append(a.pending, pendingAnimation{d: d, step: step, done: done})
}

// stepAll advances every queued animation to p without completing it.
func (a *manualAnimator) stepAll(p float64) {
	for _, an := range a.pending {
		an.step(p)
	}
}

// settle completes queued animations, including ones queued by completions.
func (a *manualAnimator) settle() {
	for len(a.pending) > 0 {
		an := a.pending[0]
		a.pending = a.pending[1:]
		an.step(1)
		an.done()
	}
}

type fakeOverlay struct {
	attached bool
	alpha    float64
	attaches int
}

func (o *fakeOverlay) AttachOverlay()            { o.attached = true; o.attaches++ }
func (o *fakeOverlay) SetOverlayAlpha(a float64) { o.alpha = a }
func (o *fakeOverlay) DetachOverlay()            { o.attached = false }

type fakeHost struct {
	visible bool
	offsets []float64
	shadow  float64
}

func (h *fakeHost) Attach(panel.Content)            {}
func (h *fakeHost) Detach(panel.Content)            {}
func (h *fakeHost) SetVisible(v bool)               { h.visible = v }
func (h *fakeHost) SetHorizontalOffset(o float64)   { h.offsets = append(h.offsets, o) }
func (h *fakeHost) SetShadowOpacity(opacity float64) { h.shadow = opacity }

type styledContent struct {
	name  string
	style panel.StatusStyle
}

func (s styledContent) StatusStyle() panel.StatusStyle { return s.style }

type harness struct {
	c        *Container
	anim     *manualAnimator
	overlay  *fakeOverlay
	left     *fakeHost
	right    *fakeHost
	central  *fakeHost
	logs     []string
	changes  [][2]State
	recorder *tracetest.SpanRecorder
}

func newHarness(t *testing.T, opts ...Option) *harness {
	t.Helper()
	h := &harness{
		anim:     &manualAnimator{},
		overlay:  &fakeOverlay{},
		left:     &fakeHost{},
		right:    &fakeHost{},
		central:  &fakeHost{},
		recorder: tracetest.NewSpanRecorder(),
	}
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(h.recorder))
	base := []Option{
		WithAnimator(h.anim),
		WithTracer(tp.Tracer("test")),
		WithLogger(func(format string, args ...any) {
			h.logs = append(h.logs, fmt.Sprintf(format, args...))
		}),
		WithStateChange(func(from, to State) {
			h.changes = append(h.changes, [2]State{from, to})
		}),
	}
	c, err := New(Hosts{Left: h.left, Right: h.right, Central: h.central, Overlay: h.overlay},
		append(base, opts...)...)
	require.NoError(t, err)
	h.c = c
	return h
}

func (h *harness) fill(t *testing.T, ids ...panel.ID) {
	t.Helper()
	for _, id := range ids {
		require.NoError(t, h.c.Assign(styledContent{name: id.String()}, id))
	}
}

func TestNew_Defaults(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, Closed, h.c.State())
	assert.Equal(t, SideNone, h.c.ActiveSide())
	assert.Equal(t, DefaultSettings(), h.c.Settings())
	assert.False(t, h.left.visible)
	assert.False(t, h.right.visible)
	assert.Equal(t, DefaultShadowOpacity, h.central.shadow)
}

func TestNew_RejectsInvalidSettings(t *testing.T) {
	s := DefaultSettings()
	s.SidePanelWidth = 0
	_, err := New(Hosts{}, WithSettings(s))
	assert.Error(t, err)
}

func TestAssignRemove_RoundTrip(t *testing.T) {
	h := newHarness(t)
	h.fill(t, panel.Left)
	assert.True(t, h.c.IsFilled(panel.Left))

	h.c.RemoveLeft()
	assert.False(t, h.c.IsFilled(panel.Left))

	h.fill(t, panel.Left, panel.Right)
	h.c.RemoveBoth()
	assert.False(t, h.c.IsFilled(panel.Left))
	assert.False(t, h.c.IsFilled(panel.Right))
}

func TestAssign_UsageErrors(t *testing.T) {
	h := newHarness(t)
	assert.ErrorIs(t, h.c.Assign("x", panel.ID(9)), ErrUnknownPanel)
	assert.ErrorIs(t, h.c.Assign(nil, panel.Left), ErrNilContent)
	assert.Len(t, h.logs, 2)
}

func TestToggle_EmptyPanelIsNoop(t *testing.T) {
	h := newHarness(t)
	err := h.c.ToggleLeft(true, func() { t.Error("completion must not run") })
	assert.ErrorIs(t, err, ErrEmptyPanel)
	assert.Equal(t, Closed, h.c.State())
	assert.Empty(t, h.central.offsets)
	assert.Empty(t, h.anim.pending)
	require.Len(t, h.logs, 1)
	assert.Contains(t, h.logs[0], "left panel is empty")

	assert.ErrorIs(t, h.c.SetRightVisible(true), ErrEmptyPanel)
	assert.Equal(t, Closed, h.c.State())
}

func TestToggle_NotAnimatedSettlesSynchronously(t *testing.T) {
	h := newHarness(t)
	h.fill(t, panel.Central, panel.Left)

	var done bool
	require.NoError(t, h.c.Toggle(SideLeft, true, false, func() { done = true }))
	assert.True(t, done)
	assert.Equal(t, Open, h.c.State())
	assert.Equal(t, DefaultSidePanelWidth, h.c.Offset())
	assert.True(t, h.c.IsLeftVisible())
	assert.True(t, h.left.visible)
	assert.False(t, h.right.visible)
	assert.Equal(t, [][2]State{{Closed, Sliding}, {Sliding, Open}}, h.changes)

	// overlay fade-in is animated independently of the move
	assert.True(t, h.overlay.attached)
	h.anim.settle()
	assert.Equal(t, DefaultOverlayAlpha, h.overlay.alpha)
}

func TestToggle_AnimatedCompletesAfterTransition(t *testing.T) {
	h := newHarness(t)
	h.fill(t, panel.Central, panel.Right)

	var done bool
	require.NoError(t, h.c.ToggleRight(true, func() { done = true }))
	assert.Equal(t, Sliding, h.c.State())
	assert.False(t, done)

	h.anim.stepAll(0.5)
	assert.Equal(t, -DefaultSidePanelWidth/2, h.c.Offset())

	h.anim.settle()
	assert.True(t, done)
	assert.Equal(t, Open, h.c.State())
	assert.Equal(t, -DefaultSidePanelWidth, h.c.Offset())
	assert.True(t, h.c.IsRightVisible())
}

func TestToggle_RejectedWhileSliding(t *testing.T) {
	h := newHarness(t)
	h.fill(t, panel.Left, panel.Right)
	require.NoError(t, h.c.ToggleLeft(true, nil))

	err := h.c.ToggleRight(true, nil)
	assert.ErrorIs(t, err, ErrBusy)
	assert.Equal(t, SideLeft, h.c.ActiveSide())

	h.anim.settle()
	assert.True(t, h.c.IsLeftVisible())
}

func TestToggleRight_ReadsRightVisibility(t *testing.T) {
	h := newHarness(t)
	h.fill(t, panel.Left, panel.Right)

	require.NoError(t, h.c.ToggleRight(false, nil))
	assert.True(t, h.c.IsRightVisible())
	require.NoError(t, h.c.ToggleRight(false, nil))
	assert.False(t, h.c.IsRightVisible())
	assert.Equal(t, Closed, h.c.State())
	assert.Equal(t, 0.0, h.c.Offset())
}

func TestToggle_OpeningOtherSideRetargets(t *testing.T) {
	h := newHarness(t)
	h.fill(t, panel.Left, panel.Right)
	require.NoError(t, h.c.SetLeftVisible(true))
	h.anim.settle()

	require.NoError(t, h.c.SetRightVisible(true))
	assert.True(t, h.c.IsRightVisible())
	assert.False(t, h.c.IsLeftVisible())
	assert.Equal(t, -DefaultSidePanelWidth, h.c.Offset())
	assert.True(t, h.overlay.attached)
	assert.Equal(t, 1, h.overlay.attaches)
}

func TestGesture_EndToEnd(t *testing.T) {
	h := newHarness(t)
	h.fill(t, panel.Central, panel.Left, panel.Right)

	h.c.Handle(gesture.Sample{Phase: gesture.Begin, VelocityX: 10})
	assert.Equal(t, SideLeft, h.c.ActiveSide())
	assert.True(t, h.left.visible)
	assert.False(t, h.right.visible)
	assert.Equal(t, Sliding, h.c.State())

	prev := h.c.Offset()
	for tr := 0.0; tr <= 400; tr += 25 {
		h.c.Handle(gesture.Sample{Phase: gesture.Change, TranslationX: tr, VelocityX: 10})
		off := h.c.Offset()
		assert.GreaterOrEqual(t, off, prev)
		assert.LessOrEqual(t, off, DefaultSidePanelWidth)
		prev = off
	}
	assert.Equal(t, DefaultSidePanelWidth, prev)

	h.c.Handle(gesture.Sample{Phase: gesture.Change, TranslationX: 200, VelocityX: -5})
	assert.Equal(t, 200.0, h.c.Offset())

	h.c.Handle(gesture.Sample{Phase: gesture.End, TranslationX: 200})
	h.anim.settle()
	assert.Equal(t, Open, h.c.State())
	assert.Equal(t, DefaultSidePanelWidth, h.c.Offset())
	assert.True(t, h.overlay.attached)
	assert.Equal(t, DefaultOverlayAlpha, h.overlay.alpha)
}

func TestGesture_StationarySampleDoesNotMove(t *testing.T) {
	h := newHarness(t)
	h.fill(t, panel.Left)

	h.c.Handle(gesture.Sample{Phase: gesture.Begin, VelocityX: 1})
	h.c.Handle(gesture.Sample{Phase: gesture.Change, TranslationX: 60, VelocityX: 4})
	h.c.Handle(gesture.Sample{Phase: gesture.Change, TranslationX: 90, VelocityX: 0})
	assert.Equal(t, 60.0, h.c.Offset())
}

func TestGesture_SnapBackBelowThreshold(t *testing.T) {
	h := newHarness(t)
	h.fill(t, panel.Left)

	h.c.Handle(gesture.Sample{Phase: gesture.Begin, VelocityX: 3})
	h.c.Handle(gesture.Sample{Phase: gesture.Change, TranslationX: 149, VelocityX: 3})
	h.c.Handle(gesture.Sample{Phase: gesture.End})
	h.anim.settle()

	assert.Equal(t, Closed, h.c.State())
	assert.Equal(t, 0.0, h.c.Offset())
	assert.False(t, h.overlay.attached)
}

func TestGesture_CloseOpenRightPanel(t *testing.T) {
	h := newHarness(t)
	h.fill(t, panel.Right)
	require.NoError(t, h.c.SetRightVisible(true))
	h.anim.settle()

	h.c.Handle(gesture.Sample{Phase: gesture.Begin, VelocityX: 8})
	assert.Equal(t, SideRight, h.c.ActiveSide())
	h.c.Handle(gesture.Sample{Phase: gesture.Change, TranslationX: 100, VelocityX: 8})
	assert.Equal(t, -200.0, h.c.Offset())
	h.c.Handle(gesture.Sample{Phase: gesture.Change, TranslationX: 150, VelocityX: 8})
	h.c.Handle(gesture.Sample{Phase: gesture.End})
	h.anim.settle()

	assert.Equal(t, Closed, h.c.State())
	assert.Equal(t, 0.0, h.c.Offset())
	assert.False(t, h.overlay.attached)
	assert.Equal(t, 0.0, h.overlay.alpha)
}

func TestGesture_IgnoredDuringAnimation(t *testing.T) {
	h := newHarness(t)
	h.fill(t, panel.Left, panel.Right)
	require.NoError(t, h.c.ToggleLeft(true, nil))

	h.c.Handle(gesture.Sample{Phase: gesture.Begin, VelocityX: -10})
	h.c.Handle(gesture.Sample{Phase: gesture.Change, TranslationX: -200, VelocityX: -10})
	h.c.Handle(gesture.Sample{Phase: gesture.End})
	assert.Equal(t, SideLeft, h.c.ActiveSide())

	h.anim.settle()
	assert.True(t, h.c.IsLeftVisible())
}

func TestTap_ClosesOpenPanel(t *testing.T) {
	h := newHarness(t)
	h.fill(t, panel.Left)
	h.c.Tap()
	assert.Equal(t, Closed, h.c.State())

	require.NoError(t, h.c.SetLeftVisible(true))
	h.c.Tap()
	assert.Equal(t, Sliding, h.c.State())
	h.anim.settle()
	assert.Equal(t, Closed, h.c.State())
	assert.False(t, h.overlay.attached)
}

func TestRemove_ActiveOpenSideCloses(t *testing.T) {
	h := newHarness(t)
	h.fill(t, panel.Left)
	require.NoError(t, h.c.SetLeftVisible(true))

	h.c.RemoveLeft()
	assert.Equal(t, Closed, h.c.State())
	assert.Equal(t, SideNone, h.c.ActiveSide())
	assert.Equal(t, 0.0, h.c.Offset())
	assert.False(t, h.c.OverlayAttached())
}

func TestRemove_DuringAnimationStillCompletes(t *testing.T) {
	h := newHarness(t)
	h.fill(t, panel.Left)
	var doneState []State
	require.NoError(t, h.c.ToggleLeft(true, func() { doneState = append(doneState, h.c.State()) }))
	h.anim.stepAll(0.5)

	h.c.RemoveLeft()
	assert.Equal(t, []State{Closed}, doneState, "completion runs once the panel is closed")
	ended := h.recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "drawer.toggle", ended[0].Name())

	h.anim.settle()
	assert.Len(t, doneState, 1, "completion runs once")
	assert.Equal(t, Closed, h.c.State())
	assert.Equal(t, 0.0, h.c.Offset())
}

func TestToggle_CloseWhileClosedKeepsState(t *testing.T) {
	h := newHarness(t)
	h.fill(t, panel.Left)
	require.NoError(t, h.c.SetLeftVisible(true))
	require.NoError(t, h.c.SetLeftVisible(false))
	h.anim.settle()
	require.Equal(t, SideLeft, h.c.ActiveSide())
	h.changes = nil

	var done bool
	require.NoError(t, h.c.Toggle(SideLeft, false, true, func() { done = true }))
	assert.True(t, done, "completion runs synchronously")
	assert.Empty(t, h.changes)
	assert.Empty(t, h.anim.pending)
	assert.Equal(t, Closed, h.c.State())
}

func TestOverlay_NeverAttachedWhileClosed(t *testing.T) {
	h := newHarness(t)
	h.fill(t, panel.Left, panel.Right)

	check := func() {
		if h.c.State() == Closed {
			assert.False(t, h.c.OverlayAttached())
		}
		if h.c.State() == Open {
			assert.True(t, h.c.OverlayAttached())
		}
	}
	require.NoError(t, h.c.ToggleLeft(true, nil))
	check()
	h.anim.settle()
	check()
	h.c.Tap()
	check()
	h.anim.settle()
	check()
	assert.False(t, h.overlay.attached, "host layer detached after fade-out")
}

func TestOverlay_ReopenDuringFadeOutKeepsLayer(t *testing.T) {
	h := newHarness(t)
	h.fill(t, panel.Left)
	require.NoError(t, h.c.SetLeftVisible(true))
	require.NoError(t, h.c.SetLeftVisible(false))
	require.NoError(t, h.c.SetLeftVisible(true))
	h.anim.settle()

	assert.True(t, h.overlay.attached)
	assert.Equal(t, DefaultOverlayAlpha, h.overlay.alpha)
}

func TestStatusStyle_OpenSideTakesPrecedence(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.c.Assign(styledContent{style: panel.StatusLight}, panel.Central))
	require.NoError(t, h.c.Assign(styledContent{style: panel.StatusDark}, panel.Left))

	assert.Equal(t, panel.StatusLight, h.c.StatusStyle())
	require.NoError(t, h.c.SetLeftVisible(true))
	assert.Equal(t, panel.StatusDark, h.c.StatusStyle())
}

func TestApplySettings(t *testing.T) {
	h := newHarness(t)
	h.fill(t, panel.Left)

	s := DefaultSettings()
	s.SidePanelWidth = 40
	s.ShadowOpacity = 0.2
	require.NoError(t, h.c.ApplySettings(s))
	assert.Equal(t, 0.2, h.central.shadow)

	require.NoError(t, h.c.SetLeftVisible(true))
	assert.Equal(t, 40.0, h.c.Offset())
	assert.ErrorIs(t, h.c.ApplySettings(DefaultSettings()), ErrBusy)

	assert.Error(t, h.c.SetShadowOpacity(2))
	assert.NoError(t, h.c.SetShadowOpacity(0.9))
	assert.Equal(t, 0.9, h.central.shadow)
}

func TestTracing_GestureAndToggleSpans(t *testing.T) {
	h := newHarness(t, WithContext(context.Background()))
	h.fill(t, panel.Left)

	h.c.Handle(gesture.Sample{Phase: gesture.Begin, VelocityX: 10})
	h.c.Handle(gesture.Sample{Phase: gesture.Change, TranslationX: 220, VelocityX: 10})
	h.c.Handle(gesture.Sample{Phase: gesture.End})
	assert.Empty(t, h.recorder.Ended(), "gesture span ends when the panel settles")
	h.anim.settle()

	require.NoError(t, h.c.ToggleLeft(false, nil))

	ended := h.recorder.Ended()
	require.Len(t, ended, 2)
	assert.Equal(t, "drawer.gesture", ended[0].Name())
	assert.Equal(t, "drawer.toggle", ended[1].Name())

	attrs := map[string]string{}
	for _, kv := range ended[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, "left", attrs["drawer.side"])
	assert.Equal(t, "Open", attrs["drawer.state"])
	assert.Equal(t, h.c.Surface(panel.Left).EmbedID().String(), attrs["drawer.embed_id"])
}

func TestWiring_AppliedAtConstruction(t *testing.T) {
	h := newHarness(t, WithWiring(Wiring{
		panel.Central: Static("home"),
		panel.Left:    Static("menu"),
	}))
	assert.True(t, h.c.IsFilled(panel.Central))
	assert.True(t, h.c.IsFilled(panel.Left))
	assert.False(t, h.c.IsFilled(panel.Right), "missing wiring is ignored")
}

func TestWiring_PreconditionViolations(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name  string
		w     Wiring
		panel panel.ID
	}{
		{"unknown panel", Wiring{panel.ID(5): Static("x")}, panel.ID(5)},
		{"nil provider", Wiring{panel.Right: nil}, panel.Right},
		{"provider error", Wiring{panel.Left: func() (panel.Content, error) { return nil, boom }}, panel.Left},
		{"nil content", Wiring{panel.Central: func() (panel.Content, error) { return nil, nil }}, panel.Central},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(Hosts{}, WithWiring(tt.w))
			var werr *WiringError
			require.ErrorAs(t, err, &werr)
			assert.Equal(t, tt.panel, werr.Panel)
		})
	}
}
