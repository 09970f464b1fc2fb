package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/commitcoach/CommitCoach/internal/analysis"
	cfg "github.com/commitcoach/CommitCoach/internal/config"
	"github.com/commitcoach/CommitCoach/internal/i18n"
	"github.com/commitcoach/CommitCoach/internal/infrastructure/ai/gemini"
	"github.com/commitcoach/CommitCoach/internal/logger"
	"github.com/commitcoach/CommitCoach/internal/server"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	logger.Initialize(os.Getenv("COMMITCOACH_DEBUG") != "", true)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("no se pudo obtener el directorio del usuario: %w", err)
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return fmt.Errorf("error al cargar la configuración: %w", err)
	}

	translations, err := i18n.NewTranslations(cfgApp.Language)
	if err != nil {
		return fmt.Errorf("error al cargar las traducciones: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	advisor, err := gemini.NewAdvisor(ctx, cfgApp, translations)
	if err != nil {
		return err
	}

	analysisService := analysis.NewService(advisor, analysis.DefaultPolicy())
	srv := server.New(analysisService)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start(cfgApp.ServerAddr)
	}()

	logger.Info(ctx, "API de CommitCoach escuchando", "addr", cfgApp.ServerAddr)

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
