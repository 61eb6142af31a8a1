package tracing

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/GriffinCanCode/AgentOS/fileserver/internal/shared/id"
)

func TestStartSpanNewTrace(t *testing.T) {
	tracer := New("test", zap.NewNop())
	defer tracer.Close()

	span, ctx := tracer.StartSpan(context.Background(), "op")

	assert.True(t, strings.HasPrefix(string(span.TraceID), "trc_"))
	assert.True(t, strings.HasPrefix(string(span.SpanID), "spn_"))
	assert.Empty(t, span.ParentID)
	assert.Equal(t, span.TraceID, GetTraceID(ctx))
	assert.Equal(t, span.SpanID, GetSpanID(ctx))
}

func TestStartSpanChild(t *testing.T) {
	tracer := New("test", zap.NewNop())
	defer tracer.Close()

	parent, ctx := tracer.StartSpan(context.Background(), "parent")
	child, _ := tracer.StartSpan(ctx, "child")

	assert.Equal(t, parent.TraceID, child.TraceID)
	assert.Equal(t, parent.SpanID, child.ParentID)
}

func TestCollectorLogsSpans(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	tracer := New("test", zap.New(core))
	defer tracer.Close()

	span, _ := tracer.StartSpan(context.Background(), "failing")
	span.SetError(errors.New("boom"))
	span.Finish()
	tracer.Submit(span)

	require.Eventually(t, func() bool { return logs.Len() == 1 }, time.Second, 5*time.Millisecond)
	entry := logs.All()[0]
	assert.Equal(t, "span completed with error", entry.Message)
	assert.Equal(t, "failing", entry.ContextMap()["operation"])
}

func TestSubmitAfterClose(t *testing.T) {
	tracer := New("test", zap.NewNop())
	tracer.Close()
	tracer.Close()

	span, _ := tracer.StartSpan(context.Background(), "late")
	tracer.Submit(span)
}

func TestHTTPMiddlewarePropagatesHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tracer := New("test", zap.NewNop())
	defer tracer.Close()

	var seen id.TraceID
	router := gin.New()
	router.Use(HTTPMiddleware(tracer))
	router.GET("/list", func(c *gin.Context) {
		seen = GetTraceID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	t.Run("continues incoming trace", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/list", nil)
		req.Header.Set(TraceHeader, "trc_incoming")
		req.Header.Set(SpanHeader, "spn_parent")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, id.TraceID("trc_incoming"), seen)
		assert.Equal(t, "trc_incoming", w.Header().Get(TraceHeader))
		assert.NotEqual(t, "spn_parent", w.Header().Get(SpanHeader))
	})

	t.Run("starts new trace", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/list", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, string(seen), w.Header().Get(TraceHeader))
	})
}
