package ui

import (
	"fmt"
	"io"

	"github.com/commitcoach/CommitCoach/internal/domain/models"
	"github.com/commitcoach/CommitCoach/internal/i18n"
	"github.com/fatih/color"
)

var (
	// Colores para los distintos tipos de mensaje
	Bold    = color.New(color.Bold)
	Green   = color.New(color.FgGreen, color.Bold)
	Yellow  = color.New(color.FgYellow, color.Bold)
	Red     = color.New(color.FgRed, color.Bold)
	Cyan    = color.New(color.FgCyan, color.Bold)
	Dim     = color.New(color.FgHiBlack)

	separator = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"
)

func labelColorAndEmoji(label models.ScoreLabel) (*color.Color, string) {
	switch label {
	case models.LabelGreen:
		return Green, "🟢"
	case models.LabelYellow:
		return Yellow, "🟡"
	case models.LabelRed:
		return Red, "🔴"
	default:
		return Cyan, "⚪"
	}
}

func riskIcon(level models.RiskLevel) string {
	switch level {
	case models.RiskHigh:
		return "🚨"
	case models.RiskMedium:
		return "⚠️"
	case models.RiskLow:
		return "✅"
	default:
		return "⚪"
	}
}

// RenderReport imprime el reporte formateado de un análisis, al estilo del
// reporte de terminal de CommitCoach.
func RenderReport(w io.Writer, result models.CommitAnalysis, repoName, message string, t *i18n.Translations) {
	labelColor, emoji := labelColorAndEmoji(result.CommitScore.Label)

	fmt.Fprintln(w, Bold.Sprint(separator))
	fmt.Fprintln(w, Bold.Sprint(t.GetMessage("report.title", 0, nil)))
	fmt.Fprintln(w, Bold.Sprint(separator))
	fmt.Fprintf(w, "%s %s\n", Bold.Sprint(t.GetMessage("report.repo", 0, nil)), repoName)
	fmt.Fprintf(w, "%s %s\n", Bold.Sprint(t.GetMessage("report.message", 0, nil)), message)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s %s %s\n",
		Bold.Sprint(t.GetMessage("report.score", 0, nil)),
		labelColor.Sprintf("%d (%s)", result.CommitScore.Value, result.CommitScore.Label),
		emoji,
	)
	fmt.Fprintf(w, "%s %s %s\n",
		Bold.Sprint(t.GetMessage("report.risk", 0, nil)),
		string(result.RiskLevel),
		riskIcon(result.RiskLevel),
	)
	if len(result.RiskReasons) > 0 {
		for _, reason := range result.RiskReasons {
			fmt.Fprintf(w, "  - %s\n", reason)
		}
	} else {
		fmt.Fprintf(w, "  %s\n", Dim.Sprint(t.GetMessage("report.no_risk_reasons", 0, nil)))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, Bold.Sprint(t.GetMessage("report.flags", 0, nil)))
	if len(result.Flags) == 0 {
		fmt.Fprintf(w, "  %s\n", Dim.Sprint(t.GetMessage("report.no_flags", 0, nil)))
	} else {
		for _, f := range result.Flags {
			fmt.Fprintf(w, "  - %s\n", f)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, Bold.Sprint(t.GetMessage("report.suggestions", 0, nil)))
	if len(result.Suggestions) == 0 {
		fmt.Fprintf(w, "  %s\n", Dim.Sprint(t.GetMessage("report.no_suggestions", 0, nil)))
	} else {
		for _, s := range result.Suggestions {
			fmt.Fprintf(w, "  - %s\n", s)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, Bold.Sprint(t.GetMessage("report.suggested_message", 0, nil)))
	if result.SuggestedMessage != "" {
		fmt.Fprintf(w, "  %s\n", Cyan.Sprint(result.SuggestedMessage))
	} else {
		fmt.Fprintf(w, "  %s\n", Dim.Sprint(t.GetMessage("report.no_suggested_message", 0, nil)))
	}
	fmt.Fprintln(w, Bold.Sprint(separator))
}
