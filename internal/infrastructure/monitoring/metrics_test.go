package monitoring

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetricsIsolatedRegistries(t *testing.T) {
	// A second instance must not panic on registration
	m1 := NewMetrics()
	m2 := NewMetrics()

	m1.ObserveOperation("list", "", time.Millisecond, nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(m1.OperationsTotal.WithLabelValues("list", "success")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m2.OperationsTotal.WithLabelValues("list", "success")))
}

func TestObserveOperation(t *testing.T) {
	m := NewMetrics()

	m.ObserveOperation("read_file", "", time.Millisecond, nil)
	m.ObserveOperation("read_file", "read", time.Millisecond, errors.New("boom"))
	m.ObserveOperation("delete", "", time.Millisecond, errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.OperationsTotal.WithLabelValues("read_file", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OperationsTotal.WithLabelValues("read_file", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OperationErrors.WithLabelValues("read_file", "read")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OperationErrors.WithLabelValues("delete", "unknown")))

	snap := m.Snapshot()
	assert.Equal(t, int64(3), snap.TotalOperations)
	assert.Equal(t, int64(2), snap.FailedOps)
}

func TestRecordHTTPRequest(t *testing.T) {
	m := NewMetrics()

	m.RecordHTTPRequest("GET", "/list", "200", time.Millisecond, 0, 10)
	m.RecordHTTPRequest("GET", "/read-file/:fileName", "500", time.Millisecond, 0, 10)
	m.RecordHTTPRequest("PUT", "/update-file/:fileName", "400", time.Millisecond, 20, 10)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/list", "200")))

	snap := m.Snapshot()
	assert.Equal(t, int64(3), snap.TotalRequests)
	assert.Equal(t, int64(2), snap.TotalErrors)
	assert.GreaterOrEqual(t, snap.UptimeSeconds, 0.0)
}

func TestMiddlewareUsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewMetrics()

	router := gin.New()
	router.Use(Middleware(m))
	router.GET("/read-file/:fileName", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": "x"})
	})

	for _, name := range []string{"a.txt", "b.txt"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/read-file/"+name, nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	require.Equal(t, http.StatusNotFound, w.Code)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/read-file/:fileName", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "unmatched", "404")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := NewMetrics()
	m.ObserveSearchResults(3)
	m.ObserveOperation("search", "", time.Millisecond, nil)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "fileserver_fs_operations_total")
	assert.Contains(t, string(body), "fileserver_search_results_count 1")
	assert.Contains(t, string(body), "fileserver_uptime_seconds")
}
