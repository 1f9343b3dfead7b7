package server

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/hkaya/timelineheat/pkg/logger"
)

// Server previews a generated heatmap over HTTP. It only serves the
// already-rendered file; it never regenerates anything.
type Server struct {
	htmlPath string
	logger   logger.Logger
	srv      *http.Server
}

func New(addr, htmlPath, env string, appLogger logger.Logger) *Server {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	// Add logging middleware
	router.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		appLogger.Info("Request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"ip", c.ClientIP(),
		)
	})

	s := &Server{
		htmlPath: htmlPath,
		logger:   appLogger,
	}

	router.GET("/", s.serveHeatmap)

	api := router.Group("/api")
	{
		api.GET("/health", s.health)
		api.GET("/stats", s.stats)
	}

	s.srv = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

func (s *Server) serveHeatmap(c *gin.Context) {
	if _, err := os.Stat(s.htmlPath); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse("Heatmap not generated yet", CodeNotFound))
		return
	}
	c.File(s.htmlPath)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, SuccessResponse(HealthStatus{Status: "ok", File: s.htmlPath}))
}

func (s *Server) stats(c *gin.Context) {
	info, err := os.Stat(s.htmlPath)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse("Heatmap not generated yet", CodeNotFound))
		return
	}

	c.JSON(http.StatusOK, SuccessResponse(FileStats{
		File:      s.htmlPath,
		SizeBytes: info.Size(),
		ModTime:   info.ModTime().Format(time.RFC3339),
	}))
}

// ListenAndServe blocks until the server fails or is shut down.
func (s *Server) ListenAndServe() error {
	return s.srv.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}
