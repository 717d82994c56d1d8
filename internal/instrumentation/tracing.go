// Package instrumentation holds the OpenTelemetry tracing conventions for
// the gtasks client: the tracer name, the span attribute keys, and small
// helpers for recording call outcomes. The client only creates spans; it
// never installs providers or exporters, that wiring belongs to the caller.
package instrumentation

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the tracer name for the gtasks package.
const TracerName = "github.com/teemow/gtasks"

// Span attribute keys for Tasks API calls.
const (
	// SpanAttrOperation is the API operation, e.g. "tasks.list".
	SpanAttrOperation = "gtasks.operation"

	// SpanAttrTaskListID is the task list identifier.
	SpanAttrTaskListID = "gtasks.tasklist_id"

	// SpanAttrTaskID is the task identifier.
	SpanAttrTaskID = "gtasks.task_id"

	// SpanAttrHTTPMethod is the HTTP request method.
	SpanAttrHTTPMethod = "http.request.method"

	// SpanAttrHTTPStatus is the HTTP response status code.
	SpanAttrHTTPStatus = "http.response.status_code"
)

// CallAttributes builds the span attributes for one API call. Empty
// identifiers are left out so spans carry no blank attributes.
func CallAttributes(operation, method, taskListID, taskID string) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, 4)
	attrs = append(attrs,
		attribute.String(SpanAttrOperation, operation),
		attribute.String(SpanAttrHTTPMethod, method),
	)
	if taskListID != "" {
		attrs = append(attrs, attribute.String(SpanAttrTaskListID, taskListID))
	}
	if taskID != "" {
		attrs = append(attrs, attribute.String(SpanAttrTaskID, taskID))
	}
	return attrs
}

// RecordStatus records the HTTP status code on the span.
func RecordStatus(span trace.Span, statusCode int) {
	span.SetAttributes(attribute.Int(SpanAttrHTTPStatus, statusCode))
}

// EndSpan finishes the span, recording err as the span status when the
// call failed.
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
