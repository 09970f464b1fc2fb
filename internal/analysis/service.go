package analysis

import (
	"context"
	"fmt"

	"github.com/commitcoach/CommitCoach/internal/domain/models"
	"github.com/commitcoach/CommitCoach/internal/domain/ports"
	"github.com/commitcoach/CommitCoach/internal/logger"
)

var _ ports.AnalysisService = (*Service)(nil)

// Service orquesta el pipeline de análisis. Todas las piezas son puras y sin
// estado compartido: el servicio se puede invocar concurrentemente sin
// coordinación.
type Service struct {
	advisor   ports.CommitAdvisor
	inspector *Inspector
	engine    *Engine
	policy    Policy
}

func NewService(advisor ports.CommitAdvisor, policy Policy) *Service {
	return &Service{
		advisor:   advisor,
		inspector: NewInspector(policy),
		engine:    NewEngine(policy),
		policy:    policy,
	}
}

func (s *Service) Analyze(ctx context.Context, req models.AnalysisRequest) (models.CommitAnalysis, error) {
	raw, err := s.advisor.Advise(ctx, req)
	if err != nil {
		// Un AdviceParseError sube tal cual: es la única condición fatal.
		return models.CommitAnalysis{}, fmt.Errorf("error consultando al advisor: %w", err)
	}

	baseline := Normalize(raw)
	facts := s.inspector.Inspect(req.Diff)
	conventional := IsConventional(req.Message, s.policy.ConventionalTypes)

	logger.Debug(ctx, "hechos del diff calculados",
		"archivos", len(facts.FilesTouched),
		"lineas_cambiadas", facts.ChangedLineCount,
		"solo_tests", facts.OnlyTests,
		"mensaje_convencional", conventional,
	)

	return s.engine.Score(baseline, facts, conventional), nil
}
