package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/AgentOS/fileserver/internal/providers/filesystem"
)

// Filesystem is the set of operations the handlers expose over HTTP.
// *filesystem.Provider implements it.
type Filesystem interface {
	Root() string
	Resolve(p string) string
	Join(p string) string

	List(ctx context.Context, dir string) ([]string, error)
	CreateDirectory(ctx context.Context, dir string) error
	CreateFile(ctx context.Context, path, data string) error
	ReadFile(ctx context.Context, path string) (string, error)
	UpdateFile(ctx context.Context, path, data string) error
	Delete(ctx context.Context, path string) error
	Search(ctx context.Context, term string) ([]string, error)
}

// Handlers contains all HTTP request handlers
type Handlers struct {
	fs      Filesystem
	metrics *HandlerMetrics
	logger  *zap.Logger
}

// NewHandlers creates a new handlers instance. metrics and logger may be nil.
func NewHandlers(fs Filesystem, metrics *HandlerMetrics, logger *zap.Logger) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handlers{
		fs:      fs,
		metrics: metrics,
		logger:  logger,
	}
}

// Root handles the service banner
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "fileserver",
		"version": "1.0.0",
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	resp := gin.H{
		"status": "healthy",
		"root":   h.fs.Root(),
	}
	if snapshot := h.metrics.Snapshot(); snapshot != nil {
		resp["metrics"] = snapshot
	}
	c.JSON(http.StatusOK, resp)
}

// fileRequest is the body of create-file and update-file
type fileRequest struct {
	Data string `json:"data"`
}

// bindData reads the optional {"data": ...} body. An empty body means "".
func bindData(c *gin.Context) (string, error) {
	body, err := c.GetRawData()
	if err != nil {
		return "", err
	}
	if len(body) == 0 {
		return "", nil
	}

	var req fileRequest
	if err := binding.JSON.BindBody(body, &req); err != nil {
		return "", err
	}
	return req.Data, nil
}

// fail answers 500 with the operation error and logs it
func (h *Handlers) fail(c *gin.Context, op string, err error) {
	h.logger.Warn("Filesystem operation failed",
		zap.String("operation", op),
		zap.String("kind", filesystem.KindOf(err).String()),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
