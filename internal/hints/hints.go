// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"path/filepath"
	"strings"
)

// ConfigEnv names the environment variable holding a default config path.
const ConfigEnv = "SPRINTREPORT_CONFIG"

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and, when unset, the SPRINTREPORT_CONFIG variable;
// names the user config path that was searched.
func ForConfigNotFound(searchedPaths []string) string {
	hints := []string{"use --config /path/to/file.yaml"}

	userDir := filepath.Join(".config", "go-sprintreport")
	for _, p := range searchedPaths {
		if strings.Contains(p, userDir) {
			hints[0] += " or create " + p
			break
		}
	}

	if os.Getenv(ConfigEnv) == "" {
		hints = append(hints, "set "+ConfigEnv+" to use a config by default")
	}

	return formatHints(hints)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", ") + "; or pass a path to a .yaml style file")
}

// ForContentNotFound returns hints for content record not found errors.
func ForContentNotFound(available []string) string {
	if len(available) == 0 {
		return format("pass a path to a content .yaml file")
	}
	return format("built-in records: " + strings.Join(available, ", ") + "; or pass a path to a content .yaml file")
}

// ForMissingField returns a hint naming the content key to add.
func ForMissingField(field string) string {
	if field == "" {
		return ""
	}
	return format("add " + field + " to the content file")
}

// ForUnknownStatus returns hints listing the accepted status values.
func ForUnknownStatus(accepted []string) string {
	if len(accepted) == 0 {
		return ""
	}
	return format("accepted values: " + strings.Join(accepted, ", "))
}

// ForInvalidReportDate returns hints for unparseable report dates.
func ForInvalidReportDate() string {
	return formatHints([]string{
		`write reportDate like "December 8, 2025" or "2025-12-08"`,
		"or pass --date auto",
	})
}

// ForInvalidDimensions returns hints for evaluation framework errors.
func ForInvalidDimensions() string {
	return format("list Legitimacy, Desirability, Acceptability, Feasibility, Viability in order with weights summing to 100%")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
