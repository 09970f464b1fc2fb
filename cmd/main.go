package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/commitcoach/CommitCoach/internal/analysis"
	"github.com/commitcoach/CommitCoach/internal/cli/command/analyze"
	configcmd "github.com/commitcoach/CommitCoach/internal/cli/command/config"
	"github.com/commitcoach/CommitCoach/internal/cli/command/serve"
	"github.com/commitcoach/CommitCoach/internal/cli/registry"
	cfg "github.com/commitcoach/CommitCoach/internal/config"
	"github.com/commitcoach/CommitCoach/internal/domain/ports"
	"github.com/commitcoach/CommitCoach/internal/i18n"
	"github.com/commitcoach/CommitCoach/internal/infrastructure/ai/gemini"
	"github.com/commitcoach/CommitCoach/internal/infrastructure/git"
	"github.com/commitcoach/CommitCoach/internal/logger"
	"github.com/commitcoach/CommitCoach/internal/version"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Error iniciando la cli: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func initializeApp() (*cli.Command, error) {
	// El .env es opcional; si existe puede traer GEMINI_API_KEY.
	_ = godotenv.Load()

	logger.Initialize(os.Getenv("COMMITCOACH_DEBUG") != "", os.Getenv("COMMITCOACH_VERBOSE") != "")

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("no se pudo obtener el directorio del usuario: %w", err)
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language)
	if err != nil {
		return nil, fmt.Errorf("error al cargar las traducciones: %w", err)
	}

	ctx := context.Background()

	var analysisService ports.AnalysisService
	advisor, advisorErr := gemini.NewAdvisor(ctx, cfgApp, translations)
	if advisorErr != nil {
		log.Printf("Warning: el advisor de IA no está disponible: %v", advisorErr)
	} else {
		analysisService = analysis.NewService(advisor, analysis.DefaultPolicy())
	}

	gitService := git.NewGitService()

	registerCommand := registry.NewRegistry(cfgApp, translations)

	if err := registerCommand.Register("analyze", analyze.NewAnalyzeCommandFactory(analysisService, advisorErr, gitService)); err != nil {
		return nil, fmt.Errorf("error al registrar el comando 'analyze': %w", err)
	}

	if err := registerCommand.Register("config", configcmd.NewConfigCommandFactory()); err != nil {
		return nil, fmt.Errorf("error al registrar el comando 'config': %w", err)
	}

	if err := registerCommand.Register("serve", serve.NewServeCommandFactory(analysisService, advisorErr)); err != nil {
		return nil, fmt.Errorf("error al registrar el comando 'serve': %w", err)
	}

	commands := registerCommand.CreateCommands()

	helpCommand := &cli.Command{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   translations.GetMessage("help_command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
	}
	commands = append(commands, helpCommand)

	return &cli.Command{
		Name:                  "commitcoach",
		Usage:                 translations.GetMessage("app_usage", 0, nil),
		Version:               version.Version,
		Description:           translations.GetMessage("app_description", 0, nil),
		Commands:              commands,
		EnableShellCompletion: true,
	}, nil
}
