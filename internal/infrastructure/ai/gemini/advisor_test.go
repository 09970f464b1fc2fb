package gemini

import (
	"context"
	"testing"

	"github.com/commitcoach/CommitCoach/internal/config"
	domainErrors "github.com/commitcoach/CommitCoach/internal/domain/errors"
	"github.com/commitcoach/CommitCoach/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdvisor(t *testing.T) {
	t.Run("debería fallar sin API key", func(t *testing.T) {
		ctx := context.Background()
		cfg := &config.Config{Language: "es", Model: "gemini-1.5-flash"}

		trans, err := i18n.NewTranslations("es")
		require.NoError(t, err)

		advisor, err := NewAdvisor(ctx, cfg, trans)

		assert.Nil(t, advisor)
		var notConfigured *domainErrors.AdvisorNotConfiguredError
		assert.ErrorAs(t, err, &notConfigured)
	})
}

func TestParseAdvice(t *testing.T) {
	t.Run("debería parsear JSON limpio", func(t *testing.T) {
		raw, err := ParseAdvice(`{"commitScore": {"value": 70, "label": "Yellow"}, "flags": ["a"]}`)
		require.NoError(t, err)

		score := raw["commitScore"].(map[string]any)
		assert.Equal(t, float64(70), score["value"])
	})

	t.Run("debería sacar fences de markdown con etiqueta json", func(t *testing.T) {
		raw, err := ParseAdvice("```json\n{\"flags\": [\"x\"]}\n```")
		require.NoError(t, err)
		assert.Contains(t, raw, "flags")
	})

	t.Run("debería sacar fences de markdown sin etiqueta", func(t *testing.T) {
		raw, err := ParseAdvice("```\n{\"suggestions\": []}\n```")
		require.NoError(t, err)
		assert.Contains(t, raw, "suggestions")
	})

	t.Run("debería devolver AdviceParseError con el texto original", func(t *testing.T) {
		original := "I am sorry, I cannot produce JSON today."
		raw, err := ParseAdvice(original)

		assert.Nil(t, raw)
		var parseErr *domainErrors.AdviceParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, original, parseErr.Raw)
	})

	t.Run("debería fallar con JSON que no es objeto", func(t *testing.T) {
		_, err := ParseAdvice(`[1, 2, 3]`)

		var parseErr *domainErrors.AdviceParseError
		assert.ErrorAs(t, err, &parseErr)
	})
}
