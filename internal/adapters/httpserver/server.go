// Package httpserver is the gin transport in front of the classification
// pipeline. It owns schema validation, error-to-status mapping and request
// tracing; all decision logic lives behind the Pipeline interface.
package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/supportdesk/email-classifier/internal/config"
)

const traceIDKey = "trace_id"

// Server serves the classification API over HTTP
type Server struct {
	engine          *gin.Engine
	srv             *http.Server
	pipeline        Pipeline
	logger          *zap.Logger
	shutdownTimeout time.Duration
}

// NewServer creates a new HTTP server
func NewServer(pipeline Pipeline, logger *zap.Logger, serverCfg config.ServerConfig) *Server {
	if serverCfg.Mode != "" {
		gin.SetMode(serverCfg.Mode)
	}

	s := &Server{
		pipeline:        pipeline,
		logger:          logger,
		shutdownTimeout: serverCfg.ShutdownTimeout,
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), s.requestLogger())

	engine.POST("/process-email", s.handleProcessEmail)
	engine.GET("/healthz", s.handleHealthz)

	s.engine = engine
	s.srv = &http.Server{
		Addr:    serverCfg.ListenAddress,
		Handler: engine,
	}

	return s
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Start begins serving in the background
func (s *Server) Start() error {
	go func() {
		s.logger.Info("HTTP server listening", zap.String("address", s.srv.Addr))
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("HTTP server stopped unexpectedly", zap.Error(err))
		}
	}()
	return nil
}

// Stop drains in-flight requests and shuts the server down
func (s *Server) Stop() error {
	timeout := s.shutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.srv.Shutdown(ctx)
}

// requestLogger tags every request with a trace ID and logs it on completion
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := uuid.NewString()
		c.Set(traceIDKey, traceID)

		start := time.Now()
		c.Next()

		s.logger.Info("Request handled",
			zap.String("trace_id", traceID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)))
	}
}
