package analysis

import "github.com/commitcoach/CommitCoach/internal/domain/models"

// Rule es un registro predicado→efecto. Las reglas son independientes y
// aditivas: el orden solo importa para el orden de inserción de flags y
// razones, no para la aritmética.
type Rule struct {
	Name       string
	Applies    func(facts models.DiffFacts, isConventional bool) bool
	ScoreDelta int
	Flag       string
	RiskDelta  int
	RiskReason string
}

// Engine aplica las reglas de negocio de CommitCoach encima del resultado
// normalizado del advisor.
type Engine struct {
	policy Policy
	rules  []Rule
}

func NewEngine(policy Policy) *Engine {
	return &Engine{
		policy: policy,
		rules:  buildRules(policy),
	}
}

// buildRules arma la tabla en orden fijo. Los tres tiers de tamaño son
// mutuamente excluyentes (los predicados codifican los rangos), igual que el
// par convencional / no convencional.
func buildRules(p Policy) []Rule {
	return []Rule{
		{
			Name: "very-large-diff",
			Applies: func(f models.DiffFacts, _ bool) bool {
				return f.ChangedLineCount > p.VeryLargeDiffLines
			},
			ScoreDelta: -p.VeryLargeDiffPenalty,
			Flag:       "Very large diff",
			RiskDelta:  2,
			RiskReason: "Very large diff",
		},
		{
			Name: "large-diff",
			Applies: func(f models.DiffFacts, _ bool) bool {
				return f.ChangedLineCount > p.LargeDiffLines && f.ChangedLineCount <= p.VeryLargeDiffLines
			},
			ScoreDelta: -p.LargeDiffPenalty,
			Flag:       "Commit bigger than recommended",
			RiskDelta:  1,
			RiskReason: "Large diff",
		},
		{
			Name: "medium-diff",
			Applies: func(f models.DiffFacts, _ bool) bool {
				return f.ChangedLineCount > p.MediumDiffLines && f.ChangedLineCount <= p.LargeDiffLines
			},
			ScoreDelta: -p.MediumDiffPenalty,
			Flag:       "Commit slightly bigger than recommended",
			RiskDelta:  1,
			RiskReason: "Medium-sized diff",
		},
		{
			Name: "missing-tests",
			Applies: func(f models.DiffFacts, _ bool) bool {
				return !f.OnlyTests && f.ChangedLineCount > p.TestlessDiffLines && !f.HasTestFiles
			},
			ScoreDelta: -p.MissingTestsPenalty,
			Flag:       "Missing tests",
			RiskDelta:  2,
			RiskReason: "Significant change without tests",
		},
		{
			// Un cambio solo de tests es bajo riesgo, no suma al acumulador.
			Name: "test-only",
			Applies: func(f models.DiffFacts, _ bool) bool {
				return f.OnlyTests
			},
			ScoreDelta: p.TestOnlyBonus,
			Flag:       "Test-only change",
		},
		{
			Name: "mixed-concerns",
			Applies: func(f models.DiffFacts, _ bool) bool {
				return f.MixedConcerns
			},
			ScoreDelta: -p.MixedConcernsPenalty,
			Flag:       "Mixed concerns (logic + styles)",
			RiskDelta:  1,
			RiskReason: "Mixed concerns (logic + styles)",
		},
		{
			Name: "debug-statements",
			Applies: func(f models.DiffFacts, _ bool) bool {
				return f.HasDebugStatements
			},
			ScoreDelta: -p.DebugPenalty,
			Flag:       "Debug prints present",
			RiskDelta:  1,
			RiskReason: "Debug prints present",
		},
		{
			Name: "conventional-message",
			Applies: func(_ models.DiffFacts, conventional bool) bool {
				return conventional
			},
			ScoreDelta: p.ConventionalBonus,
			Flag:       "Commit message follows Conventional Commits",
		},
		{
			Name: "non-conventional-message",
			Applies: func(_ models.DiffFacts, conventional bool) bool {
				return !conventional
			},
			ScoreDelta: -p.NonConventionalPenalty,
			Flag:       "Commit message could follow Conventional Commits",
			RiskDelta:  1,
			RiskReason: "Commit message not following Conventional Commits",
		},
	}
}

// Score aplica las reglas sobre el baseline normalizado. Los flags tienen
// semántica de set (se agregan si no están); las razones de riesgo se
// acumulan sin deduplicar, arrancando de las que trajo el advisor. El
// acumulador de riesgo siempre empieza en cero: el riskLevel sembrado por el
// advisor se descarta acá.
func (e *Engine) Score(baseline models.CommitAnalysis, facts models.DiffFacts, isConventional bool) models.CommitAnalysis {
	score := baseline.CommitScore.Value
	flags := append([]string{}, baseline.Flags...)
	riskReasons := append([]string{}, baseline.RiskReasons...)
	risk := 0

	for _, rule := range e.rules {
		if !rule.Applies(facts, isConventional) {
			continue
		}
		score += rule.ScoreDelta
		if rule.Flag != "" {
			flags = appendFlag(flags, rule.Flag)
		}
		risk += rule.RiskDelta
		if rule.RiskReason != "" {
			riskReasons = append(riskReasons, rule.RiskReason)
		}
	}

	score = clampScore(score)

	result := baseline
	result.CommitScore = models.CommitScore{
		Value: score,
		Label: models.LabelForScore(score),
	}
	result.Flags = flags
	result.RiskLevel = e.riskLevelFor(risk)
	result.RiskReasons = riskReasons
	return result
}

func (e *Engine) riskLevelFor(risk int) models.RiskLevel {
	switch {
	case risk >= e.policy.HighRiskAt:
		return models.RiskHigh
	case risk >= e.policy.MediumRiskAt:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

func appendFlag(flags []string, flag string) []string {
	for _, f := range flags {
		if f == flag {
			return flags
		}
	}
	return append(flags, flag)
}
