package drawer

import (
	"context"
	"fmt"
	"log"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"menucontainer/internal/gesture"
	"menucontainer/internal/panel"
)

// Hosts are the host-side regions a Container drives.
// Nil hosts are replaced with no-op implementations.
type Hosts struct {
	Left    panel.Host
	Right   panel.Host
	Central panel.Host
	Overlay OverlayHost
}

// Option configures a Container.
type Option func(*options)

type options struct {
	ctx      context.Context
	settings Settings
	animator Animator
	tracer   trace.Tracer
	logf     func(format string, args ...any)
	onChange func(from, to State)
	wiring   Wiring
}

// WithSettings replaces the default settings.
func WithSettings(s Settings) Option {
	return func(o *options) { o.settings = s }
}

// WithAnimator sets the animator used for timed transitions. Default: Immediate.
func WithAnimator(a Animator) Option {
	return func(o *options) { o.animator = a }
}

// WithTracer records gesture and toggle spans with t.
func WithTracer(t trace.Tracer) Option {
	return func(o *options) { o.tracer = t }
}

// WithContext sets the parent context for recorded spans.
func WithContext(ctx context.Context) Option {
	return func(o *options) { o.ctx = ctx }
}

// WithLogger sets the diagnostic channel for usage errors. Default: log.Printf.
func WithLogger(logf func(format string, args ...any)) Option {
	return func(o *options) { o.logf = logf }
}

// WithStateChange registers a callback invoked after every state transition.
func WithStateChange(fn func(from, to State)) Option {
	return func(o *options) { o.onChange = fn }
}

// WithWiring assigns content to panels once construction succeeds.
func WithWiring(w Wiring) Option {
	return func(o *options) { o.wiring = w }
}

// Container holds the three panel surfaces and the state machine, routes
// gesture samples, and exposes the imperative open/close and content API.
type Container struct {
	ctx      context.Context
	left     *panel.Surface
	right    *panel.Surface
	central  *panel.Surface
	overlay  OverlayHost
	machine  *Machine
	tracker  *gesture.Tracker
	settings Settings
	animator Animator
	tracer   trace.Tracer
	logf     func(format string, args ...any)
	onChange func(from, to State)

	alpha       float64
	epoch       int // bumped to drop in-flight moves
	fadeGen     int // bumped to drop superseded fades
	gestureSpan trace.Span
	inflight    func() // completion of the animated move in progress
}

// New builds a Container. Invalid settings and misconfigured wiring are
// construction errors; a *WiringError means the container must not be used.
func New(hosts Hosts, opts ...Option) (*Container, error) {
	o := options{
		ctx:      context.Background(),
		settings: DefaultSettings(),
		animator: Immediate{},
		tracer:   noop.NewTracerProvider().Tracer("menucontainer/drawer"),
		logf:     log.Printf,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.settings.Validate(); err != nil {
		return nil, fmt.Errorf("drawer settings: %w", err)
	}
	content, err := o.wiring.resolve()
	if err != nil {
		return nil, err
	}
	if hosts.Overlay == nil {
		hosts.Overlay = nopOverlayHost{}
	}

	c := &Container{
		ctx:      o.ctx,
		left:     panel.NewSurface(panel.Left, hosts.Left),
		right:    panel.NewSurface(panel.Right, hosts.Right),
		central:  panel.NewSurface(panel.Central, hosts.Central),
		overlay:  hosts.Overlay,
		machine:  NewMachine(o.settings.SidePanelWidth, o.settings.OverlayAlpha),
		tracker:  gesture.NewTracker(o.settings.SidePanelWidth),
		settings: o.settings,
		animator: o.animator,
		tracer:   o.tracer,
		logf:     o.logf,
		onChange: o.onChange,
	}
	c.left.SetVisible(false)
	c.right.SetVisible(false)
	c.central.SetShadowOpacity(o.settings.ShadowOpacity)

	for _, id := range panel.All {
		if ct, ok := content[id]; ok {
			c.surface(id).Embed(ct)
		}
	}
	return c, nil
}

// State returns the current panel state.
func (c *Container) State() State { return c.machine.State() }

// ActiveSide returns the side panel participating in the gesture or open state.
func (c *Container) ActiveSide() Side { return c.machine.Active() }

// Offset returns the central surface's horizontal offset.
func (c *Container) Offset() float64 { return c.central.Offset() }

// OverlayAttached reports whether the dimming layer is attached.
func (c *Container) OverlayAttached() bool { return c.machine.OverlayAttached() }

// OverlayAlpha returns the dimming layer's current alpha.
func (c *Container) OverlayAlpha() float64 { return c.alpha }

// Settings returns the active settings.
func (c *Container) Settings() Settings { return c.settings }

// Surface returns the surface backing id, or nil for an unknown panel.
func (c *Container) Surface(id panel.ID) *panel.Surface {
	if !id.Valid() {
		return nil
	}
	return c.surface(id)
}

// IsFilled reports whether panel id holds content.
func (c *Container) IsFilled(id panel.ID) bool {
	s := c.Surface(id)
	return s != nil && s.IsFilled()
}

// Assign embeds content into panel id, replacing what was there.
func (c *Container) Assign(content panel.Content, id panel.ID) error {
	if !id.Valid() {
		c.logf("drawer.Assign: panel %d: %v", int(id), ErrUnknownPanel)
		return fmt.Errorf("assign panel %d: %w", int(id), ErrUnknownPanel)
	}
	if content == nil {
		c.logf("drawer.Assign: %s panel: %v", id, ErrNilContent)
		return fmt.Errorf("assign %s panel: %w", id, ErrNilContent)
	}
	c.surface(id).Embed(content)
	return nil
}

// RemoveLeft clears the left panel, closing it first when it is open.
func (c *Container) RemoveLeft() { c.remove(SideLeft) }

// RemoveRight clears the right panel, closing it first when it is open.
func (c *Container) RemoveRight() { c.remove(SideRight) }

// RemoveBoth clears both side panels.
func (c *Container) RemoveBoth() {
	c.remove(SideLeft)
	c.remove(SideRight)
}

// IsLeftVisible reports whether the left panel is open.
func (c *Container) IsLeftVisible() bool { return c.machine.IsVisible(SideLeft) }

// IsRightVisible reports whether the right panel is open.
func (c *Container) IsRightVisible() bool { return c.machine.IsVisible(SideRight) }

// SetLeftVisible opens or closes the left panel without animation.
func (c *Container) SetLeftVisible(visible bool) error {
	return c.toggle("drawer.SetLeftVisible", SideLeft, visible, false, nil)
}

// SetRightVisible opens or closes the right panel without animation.
func (c *Container) SetRightVisible(visible bool) error {
	return c.toggle("drawer.SetRightVisible", SideRight, visible, false, nil)
}

// ToggleLeft flips the left panel's visibility. done runs once the panel settles.
func (c *Container) ToggleLeft(animated bool, done func()) error {
	return c.toggle("drawer.ToggleLeft", SideLeft, !c.IsLeftVisible(), animated, done)
}

// ToggleRight flips the right panel's visibility. done runs once the panel settles.
func (c *Container) ToggleRight(animated bool, done func()) error {
	return c.toggle("drawer.ToggleRight", SideRight, !c.IsRightVisible(), animated, done)
}

// Toggle opens or closes side. done runs once the panel settles; synchronously
// when animated is false.
func (c *Container) Toggle(side Side, open, animated bool, done func()) error {
	return c.toggle("drawer.Toggle", side, open, animated, done)
}

// Tap closes the open side panel; it does nothing otherwise.
func (c *Container) Tap() {
	from := c.machine.State()
	fx := c.machine.Tap()
	if fx == nil {
		return
	}
	_, span := c.tracer.Start(c.ctx, "drawer.toggle", trace.WithAttributes(
		attribute.String("drawer.side", c.machine.Active().String()),
		attribute.Bool("drawer.open", false),
		attribute.String("drawer.source", "tap"),
	))
	c.notify(from)
	c.run(c.epoch, fx, func() { c.endSpan(span) })
}

// Handle feeds one drag sample into the container.
func (c *Container) Handle(s gesture.Sample) {
	step := c.tracker.Track(s)
	switch step.Phase {
	case gesture.Begin:
		from := c.machine.State()
		fx, ok := c.machine.Begin(step.Velocity, c.left.IsFilled(), c.right.IsFilled())
		if !ok {
			c.logf("drawer.Handle: ignoring drag while %s", from)
			return
		}
		attrs := []attribute.KeyValue{
			attribute.String("drawer.side", c.machine.Active().String()),
			attribute.Bool("drawer.was_open", from == Open),
			attribute.Float64("drawer.velocity", step.Velocity),
		}
		if id, ok := c.machine.Active().Panel(); ok {
			attrs = append(attrs, attribute.String("drawer.embed_id", c.surface(id).EmbedID().String()))
		}
		_, c.gestureSpan = c.tracer.Start(c.ctx, "drawer.gesture", trace.WithAttributes(attrs...))
		c.notify(from)
		c.run(c.epoch, fx, nil)
	case gesture.Change:
		c.run(c.epoch, c.machine.Slide(step.Translation, step.Velocity, step.Stationary), nil)
	default:
		if c.machine.Session() == nil {
			return
		}
		from := c.machine.State()
		fx := c.machine.End(step.Translation)
		span := c.gestureSpan
		c.gestureSpan = nil
		if span != nil {
			span.SetAttributes(attribute.Float64("drawer.translation", step.Translation))
		}
		c.notify(from)
		c.run(c.epoch, fx, func() { c.endSpan(span) })
	}
}

// StatusStyle returns the status style preferred by the most prominent content.
func (c *Container) StatusStyle() panel.StatusStyle {
	return panel.StyleOf(c.Prominent())
}

// Prominent returns the content of the most visually prominent visible surface:
// the open side panel, otherwise the central panel.
func (c *Container) Prominent() panel.Content {
	if c.machine.State() == Open {
		if id, ok := c.machine.Active().Panel(); ok {
			return c.surface(id).Content()
		}
	}
	return c.central.Content()
}

// SetShadowOpacity changes the central surface's shadow.
func (c *Container) SetShadowOpacity(opacity float64) error {
	s := c.settings
	s.ShadowOpacity = opacity
	if err := s.Validate(); err != nil {
		return err
	}
	c.settings = s
	c.central.SetShadowOpacity(opacity)
	return nil
}

// ApplySettings swaps the settings in place. Geometry can only change while Closed.
func (c *Container) ApplySettings(s Settings) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("drawer settings: %w", err)
	}
	if c.machine.State() != Closed {
		c.logf("drawer.ApplySettings: %v", ErrBusy)
		return fmt.Errorf("apply settings: %w", ErrBusy)
	}
	c.settings = s
	c.machine.SetWidth(s.SidePanelWidth)
	c.machine.SetOverlayAlpha(s.OverlayAlpha)
	c.tracker.SetWidth(s.SidePanelWidth)
	c.central.SetShadowOpacity(s.ShadowOpacity)
	return nil
}

func (c *Container) toggle(op string, side Side, open, animated bool, done func()) error {
	id, ok := side.Panel()
	if !ok {
		c.logf("%s: %v", op, ErrUnknownPanel)
		return fmt.Errorf("toggle %s: %w", side, ErrUnknownPanel)
	}
	if !c.surface(id).IsFilled() {
		c.logf("%s: %s panel is empty", op, side)
		return fmt.Errorf("toggle %s: %w", side, ErrEmptyPanel)
	}
	from := c.machine.State()
	fx, err := c.machine.Toggle(side, open, animated)
	if err != nil {
		c.logf("%s: %v", op, err)
		return fmt.Errorf("toggle %s: %w", side, err)
	}
	_, span := c.tracer.Start(c.ctx, "drawer.toggle", trace.WithAttributes(
		attribute.String("drawer.side", side.String()),
		attribute.Bool("drawer.open", open),
		attribute.Bool("drawer.animated", animated),
		attribute.String("drawer.embed_id", c.surface(id).EmbedID().String()),
	))
	c.notify(from)
	c.run(c.epoch, fx, func() {
		c.endSpan(span)
		if done != nil {
			done()
		}
	})
	return nil
}

func (c *Container) remove(side Side) {
	id, _ := side.Panel()
	from := c.machine.State()
	fx := c.machine.Release(side)
	var preempted func()
	if from == Sliding && fx != nil {
		c.epoch++
		preempted, c.inflight = c.inflight, nil
		if c.gestureSpan != nil {
			c.gestureSpan.SetStatus(codes.Error, "panel content removed")
			c.gestureSpan.End()
			c.gestureSpan = nil
		}
	}
	c.notify(from)
	c.run(c.epoch, fx, nil)
	c.surface(id).Clear()
	// a started completion still runs, after the panel has settled Closed
	if preempted != nil {
		preempted()
	}
}

// run executes effects in order. Effects following an animated MoveCentral run
// from the animation's completion. done runs after the last effect.
func (c *Container) run(epoch int, fx []Effect, done func()) {
	if epoch != c.epoch {
		return
	}
	for i, e := range fx {
		switch e := e.(type) {
		case MoveCentral:
			if !e.Animated {
				c.central.SetOffset(e.Offset)
				continue
			}
			rest := fx[i+1:]
			from := c.central.Offset()
			c.inflight = done
			c.animate(func(p float64) {
				if epoch == c.epoch {
					c.central.SetOffset(lerp(from, e.Offset, p))
				}
			}, func() {
				if epoch != c.epoch {
					return
				}
				c.inflight = nil
				c.central.SetOffset(e.Offset)
				c.run(epoch, rest, done)
			})
			return
		case ShowSide:
			c.left.SetVisible(e.Side == SideLeft)
			c.right.SetVisible(e.Side == SideRight)
		case AttachOverlay:
			c.fadeGen++
			c.alpha = 0
			c.overlay.AttachOverlay()
			c.overlay.SetOverlayAlpha(0)
		case FadeOverlay:
			c.fade(e)
		case Settle:
			from := c.machine.State()
			more := c.machine.Settle(e.Open)
			c.notify(from)
			c.run(epoch, more, nil)
		}
	}
	if done != nil {
		done()
	}
}

func (c *Container) fade(e FadeOverlay) {
	c.fadeGen++
	gen := c.fadeGen
	from := c.alpha
	c.animate(func(p float64) {
		if gen == c.fadeGen {
			c.alpha = lerp(from, e.Alpha, p)
			c.overlay.SetOverlayAlpha(c.alpha)
		}
	}, func() {
		if gen != c.fadeGen {
			return
		}
		c.alpha = e.Alpha
		c.overlay.SetOverlayAlpha(e.Alpha)
		if e.Detach {
			c.overlay.DetachOverlay()
		}
	})
}

func (c *Container) animate(step func(float64), done func()) {
	d := c.settings.AnimationDuration
	if d <= 0 {
		step(1)
		done()
		return
	}
	c.animator.Animate(d, step, done)
}

func (c *Container) notify(from State) {
	to := c.machine.State()
	if from == to || c.onChange == nil {
		return
	}
	c.onChange(from, to)
}

func (c *Container) endSpan(span trace.Span) {
	if span == nil {
		return
	}
	span.SetAttributes(attribute.String("drawer.state", c.machine.State().String()))
	span.End()
}

func (c *Container) surface(id panel.ID) *panel.Surface {
	switch id {
	case panel.Left:
		return c.left
	case panel.Right:
		return c.right
	default:
		return c.central
	}
}
