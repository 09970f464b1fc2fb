package ports

import (
	"context"

	"github.com/commitcoach/CommitCoach/internal/domain/models"
)

// CommitAdvisor es la opinión externa (un modelo de IA) sobre el commit.
// Devuelve el payload crudo tal como lo mandó el modelo: puede venir con
// campos faltantes, mal tipados o fuera de rango. Nada de lo que devuelva
// pasa al resto del pipeline sin normalizar.
type CommitAdvisor interface {
	Advise(ctx context.Context, req models.AnalysisRequest) (map[string]any, error)
}
