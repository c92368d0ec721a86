// Package tracing installs the process-wide OpenTelemetry tracer provider.
// Finished spans are written to the structured log at debug level.
package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

// Options configure the tracer provider.
type Options struct {
	// SampleRatio is the fraction of root spans recorded. Zero or less disables tracing.
	SampleRatio float64
}

// logProcessor is a span processor that logs every ended span.
type logProcessor struct {
	log *zap.Logger
}

func (p logProcessor) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

func (p logProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	fields := []zap.Field{
		zap.String("span", s.Name()),
		zap.String("traceID", s.SpanContext().TraceID().String()),
		zap.String("spanID", s.SpanContext().SpanID().String()),
		zap.Duration("duration", s.EndTime().Sub(s.StartTime())),
		zap.String("status", s.Status().Code.String()),
	}
	if parent := s.Parent(); parent.IsValid() {
		fields = append(fields, zap.String("parentSpanID", parent.SpanID().String()))
	}
	for _, attr := range s.Attributes() {
		fields = append(fields, zap.String(string(attr.Key), attr.Value.Emit()))
	}

	p.log.Debug("span ended", fields...)
}

func (p logProcessor) Shutdown(context.Context) error { return nil }

func (p logProcessor) ForceFlush(context.Context) error { return nil }

// NewProvider builds a tracer provider that samples opts.SampleRatio of the
// root spans and logs them through log.
func NewProvider(log *zap.Logger, opts Options) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(opts.SampleRatio))),
		sdktrace.WithSpanProcessor(logProcessor{log: log.Named("trace")}),
	)
}

// Setup installs the provider globally and returns its shutdown function. With
// tracing disabled the global no-op provider is left in place.
func Setup(log *zap.Logger, opts Options) func(ctx context.Context) error {
	if opts.SampleRatio <= 0 {
		return func(context.Context) error { return nil }
	}

	provider := NewProvider(log, opts)
	otel.SetTracerProvider(provider)

	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		return provider.Shutdown(ctx) //nolint: wrapcheck
	}
}
