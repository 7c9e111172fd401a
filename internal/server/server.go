package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	apimiddleware "github.com/codeacademypro/contactapi/internal/api/middleware"
	"github.com/codeacademypro/contactapi/internal/logging"
	"github.com/codeacademypro/contactapi/internal/middleware"
	"github.com/codeacademypro/contactapi/internal/server/routes"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Drainer is implemented by services that run work past the response,
// such as the contact service's notifications.
type Drainer interface {
	Wait()
}

// Server represents the HTTP server
type Server struct {
	cfg     Config
	router  *gin.Engine
	drainer Drainer
	logger  *logging.Logger
}

// NewServer creates a new server instance with the full middleware chain and
// route table installed.
func NewServer(cfg Config, h *routes.Handlers, drainer Drainer) *Server {
	if cfg.Production {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	// Request logging goes through our own logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	logger := logging.GetGlobalLogger()

	// Create a new engine without default middleware
	router := gin.New()
	router.Use(otelgin.Middleware(cfg.ServiceName))
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestLogger(logger))
	router.Use(apimiddleware.SecurityHeaders(cfg.Production))
	router.Use(apimiddleware.CORS(cfg.AllowedOrigins))

	routes.Setup(router, h)

	return &Server{
		cfg:     cfg,
		router:  router,
		drainer: drainer,
		logger:  logger,
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves HTTP until ctx is cancelled, then shuts down gracefully and
// waits for background notifications to finish.
func (s *Server) Start(ctx context.Context) error {
	port := s.cfg.Port
	if port == "" {
		port = "3000"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logBanner(port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	shutdownErr := srv.Shutdown(shutdownCtx)
	if shutdownErr != nil {
		s.logger.Error("Server forced to shutdown: %v", shutdownErr)
	}

	if s.drainer != nil {
		s.logger.Info("Waiting for pending notifications...")
		s.drainer.Wait()
	}

	s.logger.Info("Server stopped")
	return shutdownErr
}

func (s *Server) logBanner(port string) {
	s.logger.Info("Servidor ejecutándose en puerto %s", port)
	s.logger.Info("API disponible en: http://localhost:%s", port)
	s.logger.Info("Endpoint de contacto: http://localhost:%s/api/contacto", port)
	s.logger.Info("Ver contactos: http://localhost:%s/api/contactos", port)
}
