package telemetry

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Span is a completed span kept for display.
type Span struct {
	Name       string
	StartTime  time.Time
	Duration   time.Duration
	Attributes map[string]string
	Failed     bool
}

// Recorder keeps the most recent completed spans in memory.
type Recorder struct {
	mu      sync.RWMutex
	spans   []Span // ring buffer, oldest first
	max     int
	version uint64
}

// Ensure Recorder can be registered with a TracerProvider.
var _ sdktrace.SpanProcessor = (*Recorder)(nil)

// NewRecorder creates a recorder keeping up to size spans (default 10).
func NewRecorder(size int) *Recorder {
	if size <= 0 {
		size = 10
	}
	return &Recorder{max: size, spans: make([]Span, 0, size)}
}

// Recent returns the recorded spans, newest first.
func (r *Recorder) Recent() []Span {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Span, len(r.spans))
	for i, s := range r.spans {
		out[len(r.spans)-1-i] = s
	}
	return out
}

// Version increases every time a span is recorded.
func (r *Recorder) Version() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}

// OnStart implements sdktrace.SpanProcessor.
func (r *Recorder) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

// OnEnd implements sdktrace.SpanProcessor.
func (r *Recorder) OnEnd(s sdktrace.ReadOnlySpan) {
	attrs := make(map[string]string, len(s.Attributes()))
	for _, kv := range s.Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	span := Span{
		Name:       s.Name(),
		StartTime:  s.StartTime(),
		Duration:   s.EndTime().Sub(s.StartTime()),
		Attributes: attrs,
		Failed:     s.Status().Code == codes.Error,
	}

	r.mu.Lock()
	if len(r.spans) == r.max {
		r.spans = append(r.spans[:0], r.spans[1:]...)
	}
	r.spans = append(r.spans, span)
	r.version++
	r.mu.Unlock()
}

// Shutdown implements sdktrace.SpanProcessor.
func (r *Recorder) Shutdown(context.Context) error { return nil }

// ForceFlush implements sdktrace.SpanProcessor.
func (r *Recorder) ForceFlush(context.Context) error { return nil }
