package ports

import (
	"context"

	"github.com/commitcoach/CommitCoach/internal/domain/models"
)

type AnalysisService interface {
	// Analyze corre el pipeline completo: consejo externo, normalización,
	// inspección del diff y reglas deterministas.
	Analyze(ctx context.Context, req models.AnalysisRequest) (models.CommitAnalysis, error)
}
