// Package server exposes the formatter over HTTP.
//
//	POST /format  {"text": "...", "max_chars": 0}
//	GET  /healthz
//
// Validation failures (unbalanced markers) are expected and answered with
// 200 and an "error" field; unexpected failures answer 500.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-hclog"

	"github.com/gaurav-prasanna/postfmt/core"
	"github.com/gaurav-prasanna/postfmt/core/pipeline"
	"github.com/gaurav-prasanna/postfmt/core/render"
)

const shutdownTimeout = 5 * time.Second

// Server serves the formatting endpoint.
type Server struct {
	formatter *pipeline.Formatter
	maxChars  int
	logger    hclog.Logger
}

// New creates a Server. maxChars is the default split limit applied when a
// request does not set max_chars.
func New(formatter *pipeline.Formatter, maxChars int, logger hclog.Logger) *Server {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Server{formatter: formatter, maxChars: maxChars, logger: logger}
}

type formatRequest struct {
	Text     string `json:"text"`
	MaxChars *int   `json:"max_chars"`
}

// Router returns an http.Handler with registered routes.
func (s *Server) Router() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(s.recovery(), s.requestLogger())

	router.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.POST("/format", s.handleFormat)
	return router
}

func (s *Server) handleFormat(c *gin.Context) {
	var req formatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Text == "" {
		c.JSON(http.StatusOK, gin.H{"text": ""})
		return
	}

	maxChars := s.maxChars
	if req.MaxChars != nil {
		maxChars = *req.MaxChars
	}
	if maxChars < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "max_chars must not be negative"})
		return
	}

	res := s.formatter.FormatResult(req.Text, maxChars)
	switch {
	case res.Err == nil:
		c.JSON(http.StatusOK, render.Body(res))
	case errors.Is(res.Err, core.ErrUnbalancedMarkers):
		c.JSON(http.StatusOK, render.Body(res))
	default:
		s.logger.Error("format request failed", "error", res.Err)
		c.JSON(http.StatusInternalServerError, render.Body(res))
	}
}

// recovery answers 500 with the generic message if a handler panics.
func (s *Server) recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		s.logger.Error("handler panicked", "path", c.Request.URL.Path, "panic", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": core.ErrInternal.UserMessage()})
	})
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr, "policy", s.formatter.Policy())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down", "addr", addr)
		return srv.Shutdown(shutdownCtx)
	}
}
