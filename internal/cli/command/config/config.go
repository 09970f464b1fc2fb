package config

import (
	"github.com/commitcoach/CommitCoach/internal/config"
	"github.com/commitcoach/CommitCoach/internal/i18n"
	"github.com/urfave/cli/v3"
)

type ConfigCommandFactory struct{}

func NewConfigCommandFactory() *ConfigCommandFactory {
	return &ConfigCommandFactory{}
}

func (c *ConfigCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: t.GetMessage("config_command_usage", 0, nil),
		Commands: []*cli.Command{
			c.newShowCommand(t, cfg),
			newSetAPIKeyCommand(t, cfg),
			newSetLangCommand(t, cfg),
			newSetModelCommand(t, cfg),
		},
	}
}
