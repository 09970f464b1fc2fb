package analysis

import (
	"strings"

	"github.com/commitcoach/CommitCoach/internal/domain/models"
)

// Inspector extrae hechos estructurales de un diff en formato unified.
// Es una función total: un diff malformado produce hechos en cero, nunca
// un error.
type Inspector struct {
	policy Policy
}

func NewInspector(policy Policy) *Inspector {
	return &Inspector{policy: policy}
}

func (in *Inspector) Inspect(diff string) models.DiffFacts {
	files := extractFiles(diff)

	return models.DiffFacts{
		FilesTouched:       files,
		ChangedLineCount:   countChangedLines(diff),
		HasTestFiles:       in.hasTestFiles(files),
		OnlyTests:          in.onlyTests(files),
		MixedConcerns:      in.mixedConcerns(files),
		HasDebugStatements: in.hasDebugStatements(diff),
	}
}

// extractFiles busca cabeceras "diff --git a/ruta b/ruta" y devuelve la ruta
// nueva (la de "b/"), en orden de aparición y con duplicados preservados.
func extractFiles(diff string) []string {
	files := make([]string, 0)
	for _, line := range strings.Split(diff, "\n") {
		if !strings.HasPrefix(line, "diff --git ") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 4 {
			continue
		}
		path := parts[3]
		path = strings.TrimPrefix(path, "b/")
		files = append(files, path)
	}
	return files
}

// countChangedLines cuenta líneas que empiezan con '+' o '-', excluyendo las
// cabeceras de archivo '+++' y '---'. Los hunks binarios no se reconocen y
// pueden contarse de más: limitación conocida.
func countChangedLines(diff string) int {
	count := 0
	for _, line := range strings.Split(diff, "\n") {
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "+++") || strings.HasPrefix(line, "---") {
			continue
		}
		if strings.HasPrefix(line, "+") || strings.HasPrefix(line, "-") {
			count++
		}
	}
	return count
}

func (in *Inspector) isTestPath(path string) bool {
	lower := strings.ToLower(path)
	if strings.HasPrefix(lower, "tests/") || strings.Contains(lower, "/tests/") {
		return true
	}
	for _, suffix := range in.policy.TestFileSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}

func (in *Inspector) hasTestFiles(files []string) bool {
	for _, f := range files {
		if in.isTestPath(f) {
			return true
		}
	}
	return false
}

func (in *Inspector) onlyTests(files []string) bool {
	if len(files) == 0 {
		return false
	}
	for _, f := range files {
		if !in.isTestPath(f) {
			return false
		}
	}
	return true
}

// mixedConcerns detecta mezcla fuerte de áreas: lógica de backend junto con
// estilos/markup en el mismo commit.
func (in *Inspector) mixedConcerns(files []string) bool {
	hasBackend := false
	hasStyles := false
	for _, f := range files {
		if hasAnySuffix(f, in.policy.BackendExts) {
			hasBackend = true
		}
		if hasAnySuffix(f, in.policy.StyleExts) {
			hasStyles = true
		}
	}
	return hasBackend && hasStyles
}

// hasDebugStatements mira solo las líneas agregadas (con el '+' y los
// espacios iniciales ya sacados) buscando llamadas de debug conocidas.
func (in *Inspector) hasDebugStatements(diff string) bool {
	for _, line := range strings.Split(diff, "\n") {
		if !strings.HasPrefix(line, "+") || strings.HasPrefix(line, "+++") {
			continue
		}
		stripped := strings.TrimLeft(line[1:], " \t")
		for _, pattern := range in.policy.DebugPatterns {
			if strings.Contains(stripped, pattern) {
				return true
			}
		}
	}
	return false
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}
