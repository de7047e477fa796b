package pipeline

import "strings"

// DirectiveKind identifies which LaTeX macro a Directive came from.
type DirectiveKind int

const (
	DirectiveInput    DirectiveKind = iota // \input{path}
	DirectiveGraphics                      // \includegraphics[opts]{path}
)

// Macro names recognized by the scanner.
const (
	inputMacro    = `\input`
	graphicsMacro = `\includegraphics`
)

// String returns the macro name of the kind.
func (k DirectiveKind) String() string {
	switch k {
	case DirectiveInput:
		return inputMacro
	case DirectiveGraphics:
		return graphicsMacro
	default:
		return "unknown"
	}
}

// Directive is one occurrence of a recognized macro in a text buffer.
// Offsets are byte offsets into the scanned text; End and ArgEnd are exclusive.
type Directive struct {
	Kind    DirectiveKind
	Options string // bracketed option group including brackets, "" if absent
	Arg     string // text between the argument braces

	Start, End       int
	ArgStart, ArgEnd int
}

// ScanInputs returns every \input{...} directive in text, left to right.
func ScanInputs(text string) []Directive {
	return scan(text, inputMacro, DirectiveInput, false)
}

// ScanGraphics returns every \includegraphics[...]{...} directive in text,
// left to right.
func ScanGraphics(text string) []Directive {
	return scan(text, graphicsMacro, DirectiveGraphics, true)
}

// scan finds macro occurrences followed by an optional bracketed group (when
// withOptions is set) and a brace-delimited argument. The argument may hold
// balanced nested braces but never a line break; anything else is not a
// directive and is left alone.
func scan(text, macro string, kind DirectiveKind, withOptions bool) []Directive {
	var found []Directive

	i := 0
	for i < len(text) {
		idx := strings.Index(text[i:], macro)
		if idx < 0 {
			break
		}
		start := i + idx
		pos := start + len(macro)

		var options string
		if withOptions && pos < len(text) && text[pos] == '[' {
			closeIdx, ok := closingBracket(text, pos)
			if !ok {
				i = pos
				continue
			}
			options = text[pos : closeIdx+1]
			pos = closeIdx + 1
		}

		if pos >= len(text) || text[pos] != '{' {
			i = pos
			continue
		}

		closeIdx, ok := closingBrace(text, pos)
		if !ok {
			i = pos + 1
			continue
		}

		found = append(found, Directive{
			Kind:     kind,
			Options:  options,
			Arg:      text[pos+1 : closeIdx],
			Start:    start,
			End:      closeIdx + 1,
			ArgStart: pos + 1,
			ArgEnd:   closeIdx,
		})
		i = closeIdx + 1
	}

	return found
}

// closingBrace returns the index of the brace closing the one at open.
// Backslash-escaped braces do not count. Fails on a newline or end of text.
func closingBrace(text string, open int) (int, bool) {
	depth := 0
	for j := open; j < len(text); j++ {
		switch text[j] {
		case '\\':
			if j+1 < len(text) && text[j+1] != '\n' {
				j++
			}
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return j, true
			}
		case '\n':
			return 0, false
		}
	}
	return 0, false
}

// closingBracket returns the index of the first ']' after open on the same line.
func closingBracket(text string, open int) (int, bool) {
	for j := open + 1; j < len(text); j++ {
		switch text[j] {
		case ']':
			return j, true
		case '\n':
			return 0, false
		}
	}
	return 0, false
}
