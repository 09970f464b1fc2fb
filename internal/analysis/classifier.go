package analysis

import "strings"

// IsConventional clasifica un mensaje contra Conventional Commits:
// type(scope?): description. El match es exacto en minúsculas, sin fuzzy.
func IsConventional(message string, types []string) bool {
	message = strings.TrimSpace(message)
	if !strings.Contains(message, ":") {
		return false
	}
	head := strings.TrimSpace(strings.SplitN(message, ":", 2)[0])
	for _, typ := range types {
		if head == typ || strings.HasPrefix(head, typ+"(") {
			return true
		}
	}
	return false
}
