package config

import (
	"context"
	"fmt"

	"github.com/commitcoach/CommitCoach/internal/config"
	"github.com/commitcoach/CommitCoach/internal/i18n"
	"github.com/urfave/cli/v3"
)

func newSetModelCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "set-model",
		Usage: t.GetMessage("config_set_model_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "model",
				Usage:    t.GetMessage("flags.model", 0, nil),
				Required: true,
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			cfg.Model = command.String("model")
			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			fmt.Printf("%s\n", t.GetMessage("model_configured", 0, map[string]interface{}{"Model": cfg.Model}))
			return nil
		},
	}
}
