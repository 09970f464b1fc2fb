package ai

import (
	"fmt"
	"strings"
)

// Templates del advisor. El modelo tiene que devolver SOLO un JSON con el
// esquema de CommitCoach; igual todo lo que venga se normaliza después.
const (
	advisoryPromptEN = `You are CommitCoach, a code review assistant that evaluates a single commit.

Instructions:
1. Read the repository name, the commit message and the diff below.
2. Evaluate clarity of the message, focus of the change and overall quality.
3. Respond ONLY with a valid JSON object, no markdown, no extra text.
4. Use exactly this schema:
{
  "commitScore": { "value": <integer 0-100>, "label": "Green|Yellow|Red" },
  "flags": [<short strings describing concerns>],
  "suggestions": [<short actionable suggestions>],
  "suggestedMessage": "<a better commit message, Conventional Commits style>",
  "riskLevel": "Low|Medium|High",
  "riskReasons": [<short strings>]
}

Repository: %s

Commit message:
%s

Diff:
%s
`

	advisoryPromptES = `Sos CommitCoach, un asistente de code review que evalúa un commit puntual.

Instrucciones:
1. Leé el nombre del repo, el mensaje de commit y el diff de abajo.
2. Evaluá la claridad del mensaje, el foco del cambio y la calidad general.
3. Respondé SOLO con un objeto JSON válido, sin markdown ni texto extra.
4. Usá exactamente este esquema:
{
  "commitScore": { "value": <entero 0-100>, "label": "Green|Yellow|Red" },
  "flags": [<strings cortos con preocupaciones>],
  "suggestions": [<sugerencias cortas y accionables>],
  "suggestedMessage": "<un mejor mensaje de commit, estilo Conventional Commits>",
  "riskLevel": "Low|Medium|High",
  "riskReasons": [<strings cortos>]
}

Repositorio: %s

Mensaje de commit:
%s

Diff:
%s
`
)

// GetAdvisoryPrompt arma el prompt completo para el locale dado.
func GetAdvisoryPrompt(locale, repoName, message, diff string) string {
	template := advisoryPromptEN
	if strings.HasPrefix(locale, "es") {
		template = advisoryPromptES
	}
	return fmt.Sprintf(template, repoName, message, diff)
}
