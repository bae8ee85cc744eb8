package telemetry

import "go.opentelemetry.io/otel/trace"

// WrapSpan exposes an OTelSpan around an arbitrary OpenTelemetry span for testing.
func WrapSpan(span trace.Span) *OTelSpan {
	return &OTelSpan{span: span}
}
