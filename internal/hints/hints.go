// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path"
	"strings"
)

// ForMissingInput returns hints for an \input target that could not be read.
// References without an extension usually rely on LaTeX appending .tex.
func ForMissingInput(ref string, texFallback bool) string {
	var hints []string

	if ref != "" && path.Ext(strings.ReplaceAll(ref, `\`, "/")) == "" && !texFallback {
		hints = append(hints, "LaTeX adds .tex to \\input{"+ref+"}; use --tex-fallback to do the same")
	}
	hints = append(hints, "paths are resolved from the directory of the main document")

	return formatHints(hints)
}

// ForCycle returns a hint for cyclic \input chains.
func ForCycle() string {
	return format("remove the \\input that points back to a file already being included")
}

// ForMaxDepth returns a hint for exceeded inclusion depth.
func ForMaxDepth() string {
	return format("raise --max-depth (0 = unlimited) or check for runaway \\input nesting")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/texflat/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/texflat") || strings.Contains(p, `texflat\`) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForOverwrite returns a hint when the output would replace the main document.
func ForOverwrite() string {
	return format("choose an output directory other than the project root")
}

// ForInvalidPattern returns a hint for unusable --copy patterns.
func ForInvalidPattern() string {
	return format("patterns match file names in the project root, e.g. '*.sty' or '*.{cls,bst}'")
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
