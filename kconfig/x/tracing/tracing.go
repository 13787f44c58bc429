// Copyright © 2026 The kconf authors

// Package tracing annotates engine and resolver operations with
// OpenTelemetry spans.  Hosts that already run a tracer provider install an
// annotator on the engine to see each Set call and each sourced file as a
// span.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbuildtools/kconf/kconfig"
)

const defaultTracerName = "kconf"

var _ kconfig.Tracer = &Annotator{}

// Annotator implements kconfig.Tracer by opening a span per operation,
// nesting spans for operations begun while another is in flight (a select
// cascade inside a Set, a sourced file inside its includer).
type Annotator struct {
	name string
	ctx  context.Context
}

type Option func(*Annotator)

// WithTracerName overrides the tracer name spans are created under.
func WithTracerName(name string) Option {
	return func(a *Annotator) {
		a.name = name
	}
}

// NewOpenTelemetryAnnotator returns an annotator appending spans to
// parentContext.  The engine is single-threaded per its contract, so span
// nesting tracks call nesting directly.
func NewOpenTelemetryAnnotator(parentContext context.Context, opts ...Option) *Annotator {
	a := &Annotator{
		name: defaultTracerName,
		ctx:  parentContext,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Begin implements kconfig.Tracer.
func (a *Annotator) Begin(op, name string) func() {
	oldContext := a.ctx
	var span trace.Span
	a.ctx, span = a.tracer().Start(a.ctx, op, trace.WithAttributes(
		attribute.String("kconfig.target", name),
	))
	return func() {
		span.End()
		a.ctx = oldContext
	}
}

func (a *Annotator) tracer() trace.Tracer {
	return otel.GetTracerProvider().Tracer(a.name)
}
