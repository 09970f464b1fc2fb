package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTranslations(t *testing.T) {
	t.Run("debería cargar los mensajes en inglés por defecto", func(t *testing.T) {
		trans, err := NewTranslations("en")
		require.NoError(t, err)

		msg := trans.GetMessage("no_changes_to_analyze", 0, nil)
		assert.Equal(t, "No changes to analyze (empty diff).", msg)
	})

	t.Run("debería cargar los mensajes en español", func(t *testing.T) {
		trans, err := NewTranslations("es")
		require.NoError(t, err)

		msg := trans.GetMessage("no_changes_to_analyze", 0, nil)
		assert.Equal(t, "No hay cambios para analizar (diff vacío).", msg)
	})

	t.Run("debería interpolar datos de template", func(t *testing.T) {
		trans, err := NewTranslations("en")
		require.NoError(t, err)

		msg := trans.GetMessage("language_label", 0, map[string]interface{}{"Lang": "es"})
		assert.Equal(t, "Language: es", msg)
	})

	t.Run("debería indicar traducción faltante", func(t *testing.T) {
		trans, err := NewTranslations("en")
		require.NoError(t, err)

		msg := trans.GetMessage("clave_inexistente", 0, nil)
		assert.Contains(t, msg, "Translation missing")
	})
}

func TestSetLanguage(t *testing.T) {
	t.Run("debería cambiar de idioma en caliente", func(t *testing.T) {
		trans, err := NewTranslations("en")
		require.NoError(t, err)

		require.NoError(t, trans.SetLanguage("es"))
		msg := trans.GetMessage("analyzing_commit", 0, nil)
		assert.Equal(t, "Analizando commit...", msg)
	})

	t.Run("debería rechazar un idioma no soportado", func(t *testing.T) {
		trans, err := NewTranslations("en")
		require.NoError(t, err)

		assert.Error(t, trans.SetLanguage("fr"))
	})
}
