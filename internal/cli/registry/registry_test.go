package registry

import (
	"testing"

	"github.com/commitcoach/CommitCoach/internal/config"
	"github.com/commitcoach/CommitCoach/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

type mockCommandFactory struct {
	name string
}

func (m *mockCommandFactory) CreateCommand(_ *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{Name: m.name}
}

func TestRegistry(t *testing.T) {
	newRegistry := func(t *testing.T) *Registry {
		translations, err := i18n.NewTranslations("en")
		require.NoError(t, err)
		return NewRegistry(&config.Config{}, translations)
	}

	t.Run("should register new factory successfully", func(t *testing.T) {
		registry := newRegistry(t)

		err := registry.Register("analyze", &mockCommandFactory{name: "analyze"})

		assert.NoError(t, err)
		assert.Len(t, registry.factories, 1)
	})

	t.Run("should reject duplicate registration", func(t *testing.T) {
		registry := newRegistry(t)

		require.NoError(t, registry.Register("analyze", &mockCommandFactory{name: "analyze"}))
		err := registry.Register("analyze", &mockCommandFactory{name: "analyze"})

		assert.Error(t, err)
	})

	t.Run("should create commands in registration order", func(t *testing.T) {
		registry := newRegistry(t)

		require.NoError(t, registry.Register("analyze", &mockCommandFactory{name: "analyze"}))
		require.NoError(t, registry.Register("config", &mockCommandFactory{name: "config"}))
		require.NoError(t, registry.Register("serve", &mockCommandFactory{name: "serve"}))

		commands := registry.CreateCommands()
		require.Len(t, commands, 3)
		assert.Equal(t, "analyze", commands[0].Name)
		assert.Equal(t, "config", commands[1].Name)
		assert.Equal(t, "serve", commands[2].Name)
	})
}
