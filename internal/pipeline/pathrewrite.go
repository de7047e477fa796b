package pipeline

import (
	"path"
	"strings"
)

// FlattenGraphicsPaths reduces the path argument of every \includegraphics
// directive to its final component, so "figures/plot" becomes "plot".
// The macro name and option group are kept verbatim.
//
// This is a pure text substitution. It does not consult the filesystem and
// rewrites references whether or not a matching file exists.
func FlattenGraphicsPaths(text string) string {
	directives := ScanGraphics(text)
	if len(directives) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))

	last := 0
	for _, d := range directives {
		b.WriteString(text[last:d.ArgStart])
		b.WriteString(BaseName(d.Arg))
		last = d.ArgEnd
	}
	b.WriteString(text[last:])

	return b.String()
}

// GraphicsReferences returns the distinct \includegraphics arguments in text,
// in order of first appearance.
func GraphicsReferences(text string) []string {
	var refs []string
	seen := make(map[string]bool)
	for _, d := range ScanGraphics(text) {
		if seen[d.Arg] {
			continue
		}
		seen[d.Arg] = true
		refs = append(refs, d.Arg)
	}
	return refs
}

// BaseName returns the last slash-separated component of a LaTeX path.
// An empty reference stays empty.
func BaseName(ref string) string {
	if ref == "" {
		return ""
	}
	return path.Base(strings.ReplaceAll(ref, `\`, "/"))
}
