package analysis

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/commitcoach/CommitCoach/internal/domain/models"
)

const defaultScore = 50

// Normalize convierte el payload crudo del advisor en un CommitAnalysis
// válido. El payload se trata como adversarial: cualquier campo puede faltar,
// venir mal tipado o fuera de rango, y cada uno degrada a un default seguro
// de forma independiente. Nunca falla.
func Normalize(raw any) models.CommitAnalysis {
	data, ok := raw.(map[string]any)
	if !ok {
		data = map[string]any{}
	}

	value := normalizeScoreValue(data["commitScore"])

	return models.CommitAnalysis{
		CommitScore: models.CommitScore{
			Value: value,
			Label: models.LabelForScore(value),
		},
		Flags:            normalizeStringList(data["flags"]),
		Suggestions:      normalizeStringList(data["suggestions"]),
		SuggestedMessage: normalizeSuggestedMessage(data["suggestedMessage"]),
		RiskLevel:        normalizeRiskLevel(data["riskLevel"]),
		RiskReasons:      normalizeStringList(data["riskReasons"]),
	}
}

func normalizeScoreValue(raw any) int {
	score, ok := raw.(map[string]any)
	if !ok {
		return defaultScore
	}

	value, ok := coerceInt(score["value"])
	if !ok {
		value = defaultScore
	}
	return clampScore(value)
}

func clampScore(value int) int {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}

// coerceInt intenta la conversión entera de los tipos con los que puede
// llegar un número por JSON (float64, json.Number decodificado, string).
func coerceInt(raw any) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case float32:
		return int(v), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// normalizeStringList acepta ausencia (lista vacía), un string suelto (lo
// envuelve) o una lista cuyos elementos se stringifican sin descartar
// ninguno. Cualquier otra forma da lista vacía.
func normalizeStringList(raw any) []string {
	switch v := raw.(type) {
	case nil:
		return []string{}
	case string:
		return []string{v}
	case []string:
		result := make([]string, len(v))
		copy(result, v)
		return result
	case []any:
		result := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				result = append(result, s)
			} else {
				result = append(result, fmt.Sprintf("%v", item))
			}
		}
		return result
	default:
		return []string{}
	}
}

func normalizeSuggestedMessage(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// normalizeRiskLevel solo acepta los valores exactos; todo lo demás (incluso
// variantes de mayúsculas) cae en Medium. Es solo una semilla: el motor de
// reglas lo pisa con el acumulador.
func normalizeRiskLevel(raw any) models.RiskLevel {
	if s, ok := raw.(string); ok {
		switch models.RiskLevel(s) {
		case models.RiskLow, models.RiskMedium, models.RiskHigh:
			return models.RiskLevel(s)
		}
	}
	return models.RiskMedium
}
