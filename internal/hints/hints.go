// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForUnknownRole lists the roles that are available.
func ForUnknownRole(available []string) string {
	if len(available) == 0 {
		return format("only the default role is available")
	}
	return format("available roles: " + strings.Join(available, ", "))
}

// ForUnknownScheme explains which URIs become links.
func ForUnknownScheme() string {
	return format("only http and https URIs are linked; wrap others in ``double backquotes``")
}

// ForFootnoteSymbols suggests numbered footnotes.
func ForFootnoteSymbols() string {
	return format("at most 10 [*]_ references per text; use [#]_ for more")
}

// ForUnresolvedReference points at the config section holding references.
func ForUnresolvedReference(section string) string {
	return format("add it under references." + section + " in the config, or pass --lenient")
}

// ForConfigNotFound suggests --config and the user config location.
func ForConfigNotFound(userConfigDir string) string {
	hint := "use --config /path/to/file.yaml"
	if userConfigDir != "" {
		hint += " or create a file in " + userConfigDir
	}
	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
