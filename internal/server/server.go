package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/commitcoach/CommitCoach/internal/domain/ports"
	"github.com/commitcoach/CommitCoach/internal/version"
	"github.com/gin-gonic/gin"
)

// Server expone el pipeline de análisis por HTTP: POST /analyze recibe
// diff + message (+ repo_name) y devuelve el CommitAnalysis como JSON.
type Server struct {
	engine     *gin.Engine
	httpServer *http.Server
	analysis   ports.AnalysisService
}

func New(analysis ports.AnalysisService) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), gin.Logger())

	s := &Server{
		engine:   engine,
		analysis: analysis,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.engine.GET("/", handleIndex())
	s.engine.GET("/health", handleHealth())
	s.engine.POST("/analyze", handleAnalyze(s.analysis))
}

// Handler expone el router para tests con httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
	}

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("error en el servidor HTTP: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("error al apagar el servidor HTTP: %w", err)
	}
	return nil
}

func handleIndex() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "CommitCoach API",
			"version": version.FullVersion(),
			"health":  "/health",
			"analyze": "/analyze",
		})
	}
}

func handleHealth() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
