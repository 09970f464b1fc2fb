package server

import (
	"errors"
	"log/slog"
	"net/http"

	domainErrors "github.com/commitcoach/CommitCoach/internal/domain/errors"
	"github.com/commitcoach/CommitCoach/internal/domain/models"
	"github.com/commitcoach/CommitCoach/internal/domain/ports"
	"github.com/gin-gonic/gin"
)

type analyzeRequest struct {
	Diff     string `json:"diff" binding:"required"`
	Message  string `json:"message" binding:"required"`
	RepoName string `json:"repo_name"`
}

func handleAnalyze(analysis ports.AnalysisService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req analyzeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: diff and message are required"})
			return
		}

		result, err := analysis.Analyze(c.Request.Context(), models.AnalysisRequest{
			Diff:     req.Diff,
			Message:  req.Message,
			RepoName: req.RepoName,
		})
		if err != nil {
			var parseErr *domainErrors.AdviceParseError
			if errors.As(err, &parseErr) {
				// El advisor devolvió basura: es la única falla que se
				// reporta tal cual al operador, no se reintenta acá.
				slog.Error("advisor devolvió una respuesta no parseable", "raw", parseErr.Raw)
				c.JSON(http.StatusBadGateway, gin.H{"error": "advisory returned unparseable output"})
				return
			}
			slog.Error("falló el análisis del commit", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
