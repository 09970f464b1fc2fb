package ui

import (
	"strings"
	"testing"

	"github.com/commitcoach/CommitCoach/internal/domain/models"
	"github.com/commitcoach/CommitCoach/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderReport(t *testing.T) {
	trans, err := i18n.NewTranslations("en")
	require.NoError(t, err)

	t.Run("debería incluir score, riesgo, flags y sugerencias", func(t *testing.T) {
		var buf strings.Builder
		result := models.CommitAnalysis{
			CommitScore:      models.CommitScore{Value: 40, Label: models.LabelRed},
			Flags:            []string{"Very large diff", "Missing tests"},
			Suggestions:      []string{"Split the commit"},
			SuggestedMessage: "feat(core): split into focused commits",
			RiskLevel:        models.RiskHigh,
			RiskReasons:      []string{"Very large diff"},
		}

		RenderReport(&buf, result, "demo-repo", "update", trans)
		out := buf.String()

		assert.Contains(t, out, "demo-repo")
		assert.Contains(t, out, "update")
		assert.Contains(t, out, "40 (Red)")
		assert.Contains(t, out, "High")
		assert.Contains(t, out, "Very large diff")
		assert.Contains(t, out, "Missing tests")
		assert.Contains(t, out, "Split the commit")
		assert.Contains(t, out, "feat(core): split into focused commits")
	})

	t.Run("debería mostrar placeholders con resultado vacío", func(t *testing.T) {
		var buf strings.Builder
		result := models.CommitAnalysis{
			CommitScore: models.CommitScore{Value: 85, Label: models.LabelGreen},
			RiskLevel:   models.RiskLow,
		}

		RenderReport(&buf, result, "demo", "feat: x", trans)
		out := buf.String()

		assert.Contains(t, out, "(no flags)")
		assert.Contains(t, out, "(no suggestions)")
		assert.Contains(t, out, "(no specific suggestion)")
		assert.Contains(t, out, "(no specific reasons)")
	})
}
