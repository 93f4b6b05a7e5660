package tracing

import (
	"context"
	"reminderTracker/internal/logger"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

// NewProvider создаёт TracerProvider, который пишет завершённые спаны в лог.
// sampleRatio вне (0, 1] приводится к границам.
func NewProvider(serviceName string, sampleRatio float64) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", serviceName),
		)),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(sampleRatio))),
		sdktrace.WithSyncer(LogExporter{}),
	)
}

// Propagator разбирает и проставляет заголовки traceparent/tracestate
func Propagator() propagation.TextMapPropagator {
	return propagation.TraceContext{}
}

// LogExporter отправляет спаны в zap на уровне Debug
type LogExporter struct{}

func (LogExporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	for _, span := range spans {
		sc := span.SpanContext()
		fields := []zap.Field{
			zap.String("span", span.Name()),
			zap.String("trace_id", sc.TraceID().String()),
			zap.String("span_id", sc.SpanID().String()),
			zap.Duration("ms", span.EndTime().Sub(span.StartTime())),
			zap.String("status", span.Status().Code.String()),
		}
		if parent := span.Parent(); parent.IsValid() {
			fields = append(fields, zap.String("parent_span_id", parent.SpanID().String()))
		}
		for _, attr := range span.Attributes() {
			fields = append(fields, zap.String(string(attr.Key), attr.Value.Emit()))
		}
		logger.Logger.Debug("TRACE: Спан завершён", fields...)
	}
	return nil
}

func (LogExporter) Shutdown(ctx context.Context) error {
	return nil
}
