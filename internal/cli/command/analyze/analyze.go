package analyze

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/commitcoach/CommitCoach/internal/config"
	domainErrors "github.com/commitcoach/CommitCoach/internal/domain/errors"
	"github.com/commitcoach/CommitCoach/internal/domain/models"
	"github.com/commitcoach/CommitCoach/internal/domain/ports"
	"github.com/commitcoach/CommitCoach/internal/i18n"
	"github.com/commitcoach/CommitCoach/internal/ui"
	"github.com/urfave/cli/v3"
)

type AnalyzeCommandFactory struct {
	analysisService ports.AnalysisService
	analysisErr     error
	gitService      ports.GitService
}

// NewAnalyzeCommandFactory recibe el servicio de análisis (o el error de su
// inicialización, para reportarlo recién cuando alguien intente usarlo).
func NewAnalyzeCommandFactory(analysisService ports.AnalysisService, analysisErr error, gitService ports.GitService) *AnalyzeCommandFactory {
	return &AnalyzeCommandFactory{
		analysisService: analysisService,
		analysisErr:     analysisErr,
		gitService:      gitService,
	}
}

func (f *AnalyzeCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:        "analyze",
		Aliases:     []string{"a"},
		Usage:       t.GetMessage("analyze_command_usage", 0, nil),
		Description: t.GetMessage("analyze_command_description", 0, nil),
		Flags:       f.createFlags(t),
		Action:      f.createAction(cfg, t),
	}
}

func (f *AnalyzeCommandFactory) createFlags(t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "message",
			Aliases: []string{"m"},
			Usage:   t.GetMessage("analyze_message_flag_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "staged",
			Usage: t.GetMessage("analyze_staged_flag_usage", 0, nil),
		},
		&cli.StringFlag{
			Name:  "diff-file",
			Usage: t.GetMessage("analyze_diff_file_flag_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: t.GetMessage("analyze_json_flag_usage", 0, nil),
		},
	}
}

func (f *AnalyzeCommandFactory) createAction(cfg *config.Config, t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		if f.analysisService == nil {
			msg := t.GetMessage("error_ai_not_configured", 0, map[string]interface{}{
				"Error": f.analysisErr,
			})
			return fmt.Errorf("%s", msg)
		}

		diff, repoName, err := f.resolveDiff(command, t)
		if err != nil {
			return err
		}

		if strings.TrimSpace(diff) == "" {
			fmt.Println(t.GetMessage("no_changes_to_analyze", 0, nil))
			return nil
		}

		message := command.String("message")
		if message == "" {
			message = t.GetMessage("default_commit_message", 0, nil)
		}

		jsonOutput := command.Bool("json")

		var spin *ui.Spinner
		if !jsonOutput {
			spin = ui.NewSpinner(t.GetMessage("analyzing_commit", 0, nil))
			spin.Start()
		}

		result, err := f.analysisService.Analyze(ctx, models.AnalysisRequest{
			Diff:     diff,
			Message:  message,
			RepoName: repoName,
		})
		if spin != nil {
			spin.Stop()
		}
		if err != nil {
			var parseErr *domainErrors.AdviceParseError
			if errors.As(err, &parseErr) {
				return fmt.Errorf("%s", t.GetMessage("error_advice_unparseable", 0, nil))
			}
			msg := t.GetMessage("analysis_error", 0, map[string]interface{}{"Error": err})
			return fmt.Errorf("%s", msg)
		}

		if jsonOutput {
			data, err := json.Marshal(result)
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		ui.RenderReport(os.Stdout, result, repoName, message, t)
		return nil
	}
}

// resolveDiff obtiene el diff según los flags: desde un archivo, desde el
// staging area o desde el working tree.
func (f *AnalyzeCommandFactory) resolveDiff(command *cli.Command, t *i18n.Translations) (diff, repoName string, err error) {
	if diffFile := command.String("diff-file"); diffFile != "" {
		data, err := os.ReadFile(diffFile)
		if err != nil {
			msg := t.GetMessage("error_reading_diff_file", 0, map[string]interface{}{"Error": err})
			return "", "", fmt.Errorf("%s", msg)
		}
		cwd, _ := os.Getwd()
		return string(data), filepath.Base(cwd), nil
	}

	if command.Bool("staged") {
		if !f.gitService.HasStagedChanges() {
			return "", "", nil
		}
		diff, err = f.gitService.StagedDiff()
	} else {
		diff, err = f.gitService.WorkingTreeDiff()
	}
	if err != nil {
		return "", "", err
	}

	repoName, err = f.gitService.RepoName()
	if err != nil {
		// Sin repo no hay nombre, pero el análisis puede seguir igual.
		repoName = ""
		err = nil
	}
	return diff, repoName, nil
}
