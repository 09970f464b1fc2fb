package models

type ScoreLabel string

const (
	LabelGreen  ScoreLabel = "Green"
	LabelYellow ScoreLabel = "Yellow"
	LabelRed    ScoreLabel = "Red"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

type (
	// AnalysisRequest agrupa la entrada de un análisis: el diff en formato
	// unified, el mensaje de commit y el nombre del repo (opcional).
	AnalysisRequest struct {
		Diff     string
		Message  string
		RepoName string
	}

	CommitScore struct {
		Value int        `json:"value"`
		Label ScoreLabel `json:"label"`
	}

	// CommitAnalysis es el resultado final del pipeline. Siempre cumple el
	// esquema: score en [0,100], label derivado del score, flags sin duplicados.
	CommitAnalysis struct {
		CommitScore      CommitScore `json:"commitScore"`
		Flags            []string    `json:"flags"`
		Suggestions      []string    `json:"suggestions"`
		SuggestedMessage string      `json:"suggestedMessage"`
		RiskLevel        RiskLevel   `json:"riskLevel"`
		RiskReasons      []string    `json:"riskReasons"`
	}

	// DiffFacts contiene los hechos estructurales extraídos de un diff.
	// Se recalcula por request y nunca se muta después.
	DiffFacts struct {
		FilesTouched       []string
		ChangedLineCount   int
		HasTestFiles       bool
		OnlyTests          bool
		MixedConcerns      bool
		HasDebugStatements bool
	}
)

// LabelForScore deriva el label del score. Es la única fuente del label:
// nunca se confía en el que venga de afuera.
func LabelForScore(value int) ScoreLabel {
	switch {
	case value >= 80:
		return LabelGreen
	case value >= 50:
		return LabelYellow
	default:
		return LabelRed
	}
}
