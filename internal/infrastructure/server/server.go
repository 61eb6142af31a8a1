package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzhttp"
	"go.uber.org/zap"
	"golang.org/x/net/netutil"
	"golang.org/x/sync/errgroup"

	api "github.com/GriffinCanCode/AgentOS/fileserver/internal/api/http"
	"github.com/GriffinCanCode/AgentOS/fileserver/internal/api/middleware"
	"github.com/GriffinCanCode/AgentOS/fileserver/internal/infrastructure/config"
	"github.com/GriffinCanCode/AgentOS/fileserver/internal/infrastructure/logging"
	"github.com/GriffinCanCode/AgentOS/fileserver/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/AgentOS/fileserver/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/AgentOS/fileserver/internal/providers/filesystem"
)

const defaultShutdownTimeout = 10 * time.Second

// Server wraps the HTTP server and dependencies
type Server struct {
	router  *gin.Engine
	handler http.Handler
	fs      *filesystem.Provider
	logger  *logging.Logger
	config  *config.Config
	metrics *monitoring.Metrics
	tracer  *tracing.Tracer
}

// NewServer creates a new server instance. A nil logger is built from
// cfg.Logging.
func NewServer(cfg *config.Config, logger *logging.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.FromLevel(cfg.Logging.Level, cfg.Logging.Development)
	}

	// Initialize metrics first (needed by the filesystem provider)
	metrics := monitoring.NewMetrics()

	tracer := tracing.New("fileserver", logger.Logger)

	fs, err := filesystem.NewProvider(cfg.Storage.Root, metrics)
	if err != nil {
		tracer.Close()
		return nil, fmt.Errorf("failed to initialize filesystem: %w", err)
	}

	logger.Info("Initializing file server",
		zap.String("addr", cfg.Addr()),
		zap.String("root", fs.Root()),
	)

	// Create router
	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Match on the escaped path so %2F inside a parameter stays in that
	// parameter, then hand handlers the unescaped value.
	router.UseRawPath = true
	router.UnescapePathValues = true

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(tracing.HTTPMiddleware(tracer))
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.RequestLogger(logger.Logger))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		limits := middleware.DefaultRateLimitConfig()
		limits.RequestsPerSecond = cfg.RateLimit.RequestsPerSecond
		limits.Burst = cfg.RateLimit.Burst
		router.Use(middleware.RateLimit(limits))
	}

	// Register routes
	handlers := api.NewHandlers(fs, api.NewHandlerMetrics(metrics), logger.Logger)
	handlers.Register(router)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	var handler http.Handler = router
	if cfg.Compression.Enabled {
		handler = gzhttp.GzipHandler(router)
	}

	logger.Info("Server initialized successfully")

	return &Server{
		router:  router,
		handler: handler,
		fs:      fs,
		logger:  logger,
		config:  cfg,
		metrics: metrics,
		tracer:  tracer,
	}, nil
}

// Handler returns the fully wrapped HTTP handler
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Root returns the directory requests are resolved against
func (s *Server) Root() string {
	return s.fs.Root()
}

// Run listens on the configured address and serves until ctx is cancelled
func (s *Server) Run(ctx context.Context) error {
	addr := s.config.Addr()
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully within the configured timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	if n := s.config.Server.MaxConnections; n > 0 {
		ln = netutil.LimitListener(ln, n)
	}

	httpServer := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("Starting HTTP server", zap.String("addr", ln.Addr().String()))
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		s.logger.Info("Shutting down server...")

		timeout := s.config.Server.ShutdownTimeout
		if timeout <= 0 {
			timeout = defaultShutdownTimeout
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down http server: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// Close releases background resources
func (s *Server) Close() error {
	s.tracer.Close()

	// Sync logger before exit
	_ = s.logger.Sync()

	return nil
}
