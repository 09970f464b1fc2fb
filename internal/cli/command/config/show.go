package config

import (
	"context"
	"fmt"

	"github.com/commitcoach/CommitCoach/internal/config"
	"github.com/commitcoach/CommitCoach/internal/i18n"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newShowCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config_show_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			fmt.Println(t.GetMessage("current_config", 0, nil))
			fmt.Printf("━━━━━━━━━━━━━━━━━━━━━━━\n")

			fmt.Printf("%s\n", t.GetMessage("language_label", 0, map[string]interface{}{"Lang": cfg.Language}))
			fmt.Printf("%s\n", t.GetMessage("model_label", 0, map[string]interface{}{"Model": cfg.Model}))
			fmt.Printf("%s\n", t.GetMessage("server_label", 0, map[string]interface{}{"Addr": cfg.ServerAddr}))

			if cfg.GeminiAPIKey == "" {
				fmt.Println(t.GetMessage("api.key_not_set", 0, nil))
			} else {
				fmt.Println(t.GetMessage("api.key_set", 0, nil))
			}

			return nil
		},
	}
}
