package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/commitcoach/CommitCoach/internal/config"
	domainErrors "github.com/commitcoach/CommitCoach/internal/domain/errors"
	"github.com/commitcoach/CommitCoach/internal/domain/models"
	"github.com/commitcoach/CommitCoach/internal/domain/ports"
	"github.com/commitcoach/CommitCoach/internal/i18n"
	"github.com/commitcoach/CommitCoach/internal/infrastructure/ai"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var _ ports.CommitAdvisor = (*Advisor)(nil)

// Advisor consulta a Gemini por una evaluación del commit. La respuesta se
// parsea a un map crudo: la validación de forma es problema del normalizador.
type Advisor struct {
	client *genai.Client
	model  *genai.GenerativeModel
	config *config.Config
	trans  *i18n.Translations
}

func NewAdvisor(ctx context.Context, cfg *config.Config, trans *i18n.Translations) (*Advisor, error) {
	if cfg.GeminiAPIKey == "" {
		msg := trans.GetMessage("error_missing_api_key", 0, nil)
		return nil, domainErrors.NewAdvisorNotConfiguredError(msg)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(0)

	return &Advisor{
		client: client,
		model:  model,
		config: cfg,
		trans:  trans,
	}, nil
}

func (a *Advisor) Advise(ctx context.Context, req models.AnalysisRequest) (map[string]any, error) {
	prompt := ai.GetAdvisoryPrompt(a.config.Language, req.RepoName, req.Message, req.Diff)

	resp, err := a.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		msg := a.trans.GetMessage("error_generating_content", 0, map[string]interface{}{
			"Error": err.Error(),
		})
		return nil, fmt.Errorf("%s", msg)
	}

	return ParseAdvice(formatResponse(resp))
}

// ParseAdvice convierte el texto del modelo en el payload crudo. Si no es
// JSON válido devuelve un AdviceParseError con el texto original adentro,
// para que el caller pueda mostrarlo o loguearlo.
func ParseAdvice(responseText string) (map[string]any, error) {
	cleaned := stripCodeFences(responseText)

	var parsed map[string]any
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, domainErrors.NewAdviceParseError(responseText, err)
	}
	return parsed, nil
}

// stripCodeFences saca los bloques de código markdown que Gemini a veces
// agrega alrededor del JSON (```json ... ```).
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}

func formatResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	var formattedContent strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if text, ok := part.(genai.Text); ok {
					formattedContent.WriteString(string(text))
				}
			}
		}
	}
	return formattedContent.String()
}
