package analysis

// Policy agrupa los umbrales y heurísticas del motor de reglas. Los valores
// son decisiones de producto, no invariantes: se construye una vez al
// arrancar y se pasa explícitamente, nada lee estado global.
type Policy struct {
	// Tamaño del diff (en líneas cambiadas).
	VeryLargeDiffLines int
	LargeDiffLines     int
	MediumDiffLines    int
	// Mínimo de líneas a partir del cual un cambio sin tests penaliza.
	TestlessDiffLines int

	VeryLargeDiffPenalty   int
	LargeDiffPenalty       int
	MediumDiffPenalty      int
	MissingTestsPenalty    int
	TestOnlyBonus          int
	MixedConcernsPenalty   int
	DebugPenalty           int
	ConventionalBonus      int
	NonConventionalPenalty int

	// Acumulador de riesgo: >= HighRiskAt es High, >= MediumRiskAt es Medium.
	HighRiskAt   int
	MediumRiskAt int

	// Heurísticas del inspector de diffs.
	TestFileSuffixes []string
	BackendExts      []string
	StyleExts        []string
	DebugPatterns    []string

	// Tipos aceptados de Conventional Commits (en minúsculas, match exacto).
	ConventionalTypes []string
}

// DefaultPolicy devuelve la política estándar de CommitCoach.
func DefaultPolicy() Policy {
	return Policy{
		VeryLargeDiffLines: 800,
		LargeDiffLines:     400,
		MediumDiffLines:    200,
		TestlessDiffLines:  80,

		VeryLargeDiffPenalty:   15,
		LargeDiffPenalty:       8,
		MediumDiffPenalty:      4,
		MissingTestsPenalty:    10,
		TestOnlyBonus:          5,
		MixedConcernsPenalty:   5,
		DebugPenalty:           3,
		ConventionalBonus:      5,
		NonConventionalPenalty: 5,

		HighRiskAt:   3,
		MediumRiskAt: 1,

		TestFileSuffixes: []string{"_test.py", "test.py"},
		BackendExts:      []string{".py", ".cs", ".java", ".go", ".rb", ".ts", ".tsx"},
		StyleExts:        []string{".css", ".scss", ".sass", ".html", ".vue"},
		DebugPatterns: []string{
			"print(",
			"console.log(",
			"debugger",
			"System.out.println(",
			"fmt.Println(",
		},

		ConventionalTypes: []string{"feat", "fix", "refactor", "chore", "docs", "test", "style", "perf"},
	}
}
