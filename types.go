package texflat

import (
	"fmt"
	"log/slog"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// BibPattern matches the bibliography files copied next to every flattened document.
const BibPattern = "*.bib"

// Input describes one flattening run.
type Input struct {
	Path      string // main LaTeX document; its directory is the project root
	OutputDir string // destination directory, created if missing (parent must exist)
}

// Validate checks that both paths are set.
func (in Input) Validate() error {
	if in.Path == "" {
		return ErrEmptyInputPath
	}
	if in.OutputDir == "" {
		return ErrEmptyOutputDir
	}
	return nil
}

// Result reports what a run produced.
type Result struct {
	OutputPath    string   // flattened document
	Passes        int      // inlining passes that spliced at least one file
	Included      []string // \input arguments loaded, in load order
	CopiedAssets  []string // destination paths of copied graphics
	MissingAssets []string // \includegraphics references with no file on disk
	CopiedSupport []string // destination paths of copied .bib and extra files
}

// Option configures a Flattener.
type Option func(*Flattener)

// flattenConfig holds internal configuration for Flattener.
type flattenConfig struct {
	texFallback     bool
	maxDepth        int
	cacheSize       int
	supportPatterns []string
}

// WithFs sets the filesystem the Flattener reads and writes.
// Defaults to the OS filesystem.
func WithFs(fsys afero.Fs) Option {
	if fsys == nil {
		panic("texflat: WithFs filesystem must not be nil")
	}
	return func(f *Flattener) {
		f.fs = fsys
	}
}

// WithLogger sets the logger for progress and warnings. Defaults to discarding.
func WithLogger(log *slog.Logger) Option {
	return func(f *Flattener) {
		if log != nil {
			f.log = log
		}
	}
}

// WithTexFallback retries a missing \input{name} as name.tex.
func WithTexFallback(enabled bool) Option {
	return func(f *Flattener) {
		f.cfg.texFallback = enabled
	}
}

// WithMaxDepth bounds \input nesting. Zero means unlimited.
func WithMaxDepth(depth int) Option {
	if depth < 0 {
		panic("texflat: WithMaxDepth depth must not be negative")
	}
	return func(f *Flattener) {
		f.cfg.maxDepth = depth
	}
}

// WithCacheSize sets how many \input files are kept in memory. Zero disables caching.
func WithCacheSize(size int) Option {
	if size < 0 {
		panic("texflat: WithCacheSize size must not be negative")
	}
	return func(f *Flattener) {
		f.cfg.cacheSize = size
	}
}

// WithCopyPatterns adds glob patterns for project root files copied alongside
// the .bib files, such as "*.sty" or "*.cls".
func WithCopyPatterns(patterns ...string) Option {
	return func(f *Flattener) {
		f.cfg.supportPatterns = append(f.cfg.supportPatterns, patterns...)
	}
}

// ValidatePattern reports whether pattern is usable with WithCopyPatterns.
// Patterns match file names only, so path separators are rejected.
func ValidatePattern(pattern string) error {
	if pattern == "" || !doublestar.ValidatePattern(pattern) {
		return fmt.Errorf("%w: %q", ErrInvalidPattern, pattern)
	}
	for _, r := range pattern {
		if r == '/' || r == '\\' {
			return fmt.Errorf("%w: %q (must not contain a path separator)", ErrInvalidPattern, pattern)
		}
	}
	return nil
}
