package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("debería crear configuración por defecto si no existe", func(t *testing.T) {
		tmpDir := t.TempDir()

		cfg, err := LoadConfig(tmpDir)
		require.NoError(t, err)

		assert.Equal(t, "en", cfg.Language)
		assert.Equal(t, "gemini-1.5-flash", cfg.Model)
		assert.Equal(t, ":8080", cfg.ServerAddr)
		assert.FileExists(t, filepath.Join(tmpDir, ".commit-coach", "config.json"))
	})

	t.Run("debería cargar una configuración existente", func(t *testing.T) {
		tmpDir := t.TempDir()
		configDir := filepath.Join(tmpDir, ".commit-coach")
		require.NoError(t, os.MkdirAll(configDir, 0755))

		existing := &Config{
			GeminiAPIKey: "clave-de-prueba",
			Language:     "es",
			Model:        "gemini-1.5-pro",
			ServerAddr:   ":9090",
		}
		data, err := json.MarshalIndent(existing, "", "  ")
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.json"), data, 0644))

		cfg, err := LoadConfig(tmpDir)
		require.NoError(t, err)
		assert.Equal(t, "es", cfg.Language)
		assert.Equal(t, "clave-de-prueba", cfg.GeminiAPIKey)
		assert.Equal(t, ":9090", cfg.ServerAddr)
	})

	t.Run("debería pisar la API key con la variable de entorno", func(t *testing.T) {
		tmpDir := t.TempDir()
		t.Setenv(EnvGeminiAPIKey, "clave-de-entorno")

		cfg, err := LoadConfig(tmpDir)
		require.NoError(t, err)
		assert.Equal(t, "clave-de-entorno", cfg.GeminiAPIKey)
	})

	t.Run("debería manejar JSON malformado", func(t *testing.T) {
		tmpDir := t.TempDir()
		configDir := filepath.Join(tmpDir, ".commit-coach")
		require.NoError(t, os.MkdirAll(configDir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.json"), []byte("{malformed json"), 0644))

		_, err := LoadConfig(tmpDir)
		assert.Error(t, err)
	})

	t.Run("debería rechazar configuración inválida", func(t *testing.T) {
		tmpDir := t.TempDir()
		configDir := filepath.Join(tmpDir, ".commit-coach")
		require.NoError(t, os.MkdirAll(configDir, 0755))

		invalid := &Config{Language: "", Model: "", ServerAddr: ""}
		data, _ := json.MarshalIndent(invalid, "", "  ")
		require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.json"), data, 0644))

		_, err := LoadConfig(tmpDir)
		assert.Error(t, err)
	})
}

func TestSaveConfig(t *testing.T) {
	t.Run("debería guardar y recargar los mismos valores", func(t *testing.T) {
		tmpDir := t.TempDir()

		cfg, err := LoadConfig(tmpDir)
		require.NoError(t, err)

		cfg.Language = "es"
		cfg.GeminiAPIKey = "otra-clave"
		require.NoError(t, SaveConfig(cfg))

		reloaded, err := LoadConfig(tmpDir)
		require.NoError(t, err)
		assert.Equal(t, "es", reloaded.Language)
		assert.Equal(t, "otra-clave", reloaded.GeminiAPIKey)
	})

	t.Run("debería fallar al guardar configuración inválida", func(t *testing.T) {
		err := SaveConfig(&Config{Language: "", Model: "x", ServerAddr: ":8080"})
		assert.Error(t, err)
	})

	t.Run("debería fallar sin ruta de archivo", func(t *testing.T) {
		err := SaveConfig(&Config{Language: "en", Model: "x", ServerAddr: ":8080"})
		assert.Error(t, err)
	})
}
