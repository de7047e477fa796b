package pipeline

import (
	"errors"
	"fmt"
	"path"
	"slices"
	"strings"
)

// Sentinel errors for inlining.
var (
	ErrCyclicInclusion  = errors.New("cyclic inclusion")
	ErrMaxDepthExceeded = errors.New("maximum inclusion depth exceeded")
)

// LoadError reports an \input target that could not be loaded.
type LoadError struct {
	Ref   string   // argument as written in the document
	Chain []string // files being inlined when the directive was found
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("inlining %q: %v", e.Ref, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// LoadFunc returns the text of the file an \input argument names.
// The argument is passed exactly as written in the document.
type LoadFunc func(ref string) (string, error)

// InlineOptions tunes Inline.
type InlineOptions struct {
	// Origin names the document being inlined. It starts every inclusion
	// chain, so a file that inputs the main document is reported as a cycle.
	Origin string

	// MaxDepth bounds the nesting of \input directives. Zero means unlimited.
	MaxDepth int
}

// InlineResult is the outcome of Inline.
type InlineResult struct {
	Text     string
	Passes   int      // scan-and-splice passes that replaced at least one directive
	Included []string // every \input argument loaded, in load order
}

// piece is a slice of the buffer with the chain of files that produced it.
type piece struct {
	text  string
	chain []string
}

// Inline replaces every \input{...} directive in doc with the text load
// returns for it, rescanning the whole buffer until no directive remains.
//
// Each pass joins the pieces, scans the joined text, and interleaves the
// segments between directives with the loaded contents, preserving textual
// order. A directive that only forms once a file is spliced next to its
// neighbours is found on the next pass. It belongs to the inclusion chain
// of the piece holding its first byte.
// A file that appears on its own inclusion chain fails with
// ErrCyclicInclusion; a file included twice by siblings is fine.
func Inline(doc string, load LoadFunc, opts InlineOptions) (InlineResult, error) {
	var rootChain []string
	if opts.Origin != "" {
		rootChain = []string{chainKey(opts.Origin)}
	}
	base := len(rootChain)

	pieces := []piece{{text: doc, chain: rootChain}}
	var result InlineResult

	for {
		var b strings.Builder
		starts := make([]int, len(pieces))
		for i, p := range pieces {
			starts[i] = b.Len()
			b.WriteString(p.text)
		}
		buf := b.String()

		refs := ScanInputs(buf)
		if len(refs) == 0 {
			result.Text = buf
			return result, nil
		}

		// pieceAt returns the index of the piece holding byte off.
		// Pieces are never empty, so starts is strictly increasing.
		pieceAt := func(off int) int {
			i, found := slices.BinarySearch(starts, off)
			if !found {
				i--
			}
			return i
		}

		next := make([]piece, 0, len(pieces)+2*len(refs))

		// keep copies buf[from:to] into next, split along piece boundaries
		// so every byte keeps the chain it came from.
		keep := func(from, to int) {
			if from >= to {
				return
			}
			for i := pieceAt(from); i < len(pieces) && starts[i] < to; i++ {
				lo := max(from, starts[i])
				hi := min(to, starts[i]+len(pieces[i].text))
				if lo < hi {
					next = append(next, piece{text: buf[lo:hi], chain: pieces[i].chain})
				}
			}
		}

		last := 0
		for _, ref := range refs {
			keep(last, ref.Start)
			last = ref.End

			chain := pieces[pieceAt(ref.Start)].chain
			if opts.MaxDepth > 0 && len(chain)-base >= opts.MaxDepth {
				return InlineResult{}, fmt.Errorf("%w: %d levels at %q",
					ErrMaxDepthExceeded, opts.MaxDepth, ref.Arg)
			}

			key := chainKey(ref.Arg)
			if slices.Contains(chain, key) {
				return InlineResult{}, fmt.Errorf("%w: %s",
					ErrCyclicInclusion, strings.Join(append(slices.Clone(chain), key), " -> "))
			}

			content, err := load(ref.Arg)
			if err != nil {
				return InlineResult{}, &LoadError{Ref: ref.Arg, Chain: slices.Clone(chain), Err: err}
			}
			result.Included = append(result.Included, ref.Arg)

			if content != "" {
				next = append(next, piece{text: content, chain: append(slices.Clone(chain), key)})
			}
		}
		keep(last, len(buf))

		pieces = next
		result.Passes++
	}
}

// chainKey normalizes a reference so equivalent spellings compare equal.
func chainKey(ref string) string {
	return path.Clean(strings.ReplaceAll(ref, `\`, "/"))
}
