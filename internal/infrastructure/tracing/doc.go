/*
Package tracing provides lightweight request tracing.

Every request gets a span. Trace and parent span IDs arriving in the
X-Trace-ID / X-Span-ID headers are continued; otherwise a new trace starts.
The IDs are echoed back in the response headers and finished spans are
logged at debug level by a background collector.

# Usage

	tracer := tracing.New("fileserver", logger.Logger)
	defer tracer.Close()

	router.Use(tracing.HTTPMiddleware(tracer))

	// inside a handler
	traceID := tracing.GetTraceID(c.Request.Context())
*/
package tracing
