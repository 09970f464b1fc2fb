package serve

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/commitcoach/CommitCoach/internal/config"
	"github.com/commitcoach/CommitCoach/internal/domain/ports"
	"github.com/commitcoach/CommitCoach/internal/i18n"
	"github.com/commitcoach/CommitCoach/internal/server"
	"github.com/urfave/cli/v3"
)

type ServeCommandFactory struct {
	analysisService ports.AnalysisService
	analysisErr     error
}

func NewServeCommandFactory(analysisService ports.AnalysisService, analysisErr error) *ServeCommandFactory {
	return &ServeCommandFactory{
		analysisService: analysisService,
		analysisErr:     analysisErr,
	}
}

func (f *ServeCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: t.GetMessage("serve_command_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Aliases: []string{"a"},
				Usage:   t.GetMessage("serve_addr_flag_usage", 0, nil),
				Value:   cfg.ServerAddr,
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			if f.analysisService == nil {
				msg := t.GetMessage("error_ai_not_configured", 0, map[string]interface{}{
					"Error": f.analysisErr,
				})
				return fmt.Errorf("%s", msg)
			}

			addr := command.String("addr")
			srv := server.New(f.analysisService)

			// Apagado prolijo ante SIGINT/SIGTERM.
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errChan := make(chan error, 1)
			go func() {
				errChan <- srv.Start(addr)
			}()

			fmt.Println(t.GetMessage("server_started", 0, map[string]interface{}{"Addr": addr}))

			select {
			case err := <-errChan:
				return err
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			}
		},
	}
}
