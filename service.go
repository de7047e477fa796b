package texflat

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/alnah/go-texflat/internal/fileutil"
	"github.com/alnah/go-texflat/internal/pipeline"
)

// Flattener turns a multi-file LaTeX project into one document plus a flat
// directory of assets.
type Flattener struct {
	fs  afero.Fs
	log *slog.Logger
	cfg flattenConfig
}

// New creates a Flattener working on the OS filesystem.
// Use options to customize behavior (e.g., WithTexFallback).
func New(opts ...Option) *Flattener {
	f := &Flattener{
		fs:  afero.NewOsFs(),
		log: slog.New(slog.DiscardHandler),
		cfg: flattenConfig{
			cacheSize:       pipeline.DefaultCacheSize,
			supportPatterns: []string{BibPattern},
		},
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Flatten runs the whole pipeline for one document:
//
//  1. inline every \input directive, recursively
//  2. create the output directory
//  3. copy referenced graphics and flatten their paths in the text
//  4. copy .bib files (and any extra patterns) from the project root
//  5. write the document under its original base name
//
// Inlining errors abort the run before anything is written.
// Dangling \includegraphics references are reported in Result, not as errors.
func (f *Flattener) Flatten(ctx context.Context, in Input) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	for _, pattern := range f.cfg.supportPatterns {
		if err := ValidatePattern(pattern); err != nil {
			return nil, err
		}
	}

	root := filepath.Dir(in.Path)
	name := filepath.Base(in.Path)
	outputPath := filepath.Join(in.OutputDir, name)
	if samePath(outputPath, in.Path) {
		return nil, fmt.Errorf("%w: %s", ErrOutputOverwritesInput, outputPath)
	}

	doc, err := fileutil.ReadText(f.fs, in.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputNotFound, err)
	}

	load, err := pipeline.CachedLoader(f.loader(root), f.cfg.cacheSize)
	if err != nil {
		return nil, err
	}

	inlined, err := pipeline.Inline(doc, load, pipeline.InlineOptions{
		Origin:   name,
		MaxDepth: f.cfg.maxDepth,
	})
	if err != nil {
		return nil, err
	}
	f.log.Debug("inlined document", "path", in.Path, "passes", inlined.Passes, "files", len(inlined.Included))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := fileutil.EnsureDir(f.fs, in.OutputDir); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOutputDir, err)
	}

	result := &Result{
		OutputPath: outputPath,
		Passes:     inlined.Passes,
		Included:   inlined.Included,
	}

	copier := newAssetCopier(f.fs, f.log, in.OutputDir)

	if err := f.relocateGraphics(ctx, copier, root, inlined.Text, result); err != nil {
		return nil, err
	}
	if err := f.copySupportFiles(ctx, copier, root, result); err != nil {
		return nil, err
	}

	flat := pipeline.FlattenGraphicsPaths(inlined.Text)
	if err := fileutil.WriteText(f.fs, outputPath, flat); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	f.log.Info("flattened document written", "path", outputPath,
		"assets", len(result.CopiedAssets), "missing", len(result.MissingAssets),
		"support", len(result.CopiedSupport))

	return result, nil
}

// loader resolves \input arguments against the project root.
func (f *Flattener) loader(root string) pipeline.LoadFunc {
	return func(ref string) (string, error) {
		path := resolveRef(root, ref)

		content, err := fileutil.ReadText(f.fs, path)
		if err != nil && f.cfg.texFallback && filepath.Ext(path) != ".tex" {
			if fallback, fbErr := fileutil.ReadText(f.fs, path+".tex"); fbErr == nil {
				f.log.Debug("resolved input with .tex fallback", "ref", ref)
				path, content, err = path+".tex", fallback, nil
			}
		}
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrInputNotFound, err)
		}

		f.log.Debug("loaded input", "ref", ref, "path", path, "bytes", len(content))
		return content, nil
	}
}

// resolveRef returns the file a document reference names. Absolute
// references are used as written; relative ones start at root.
func resolveRef(root, ref string) string {
	p := filepath.FromSlash(ref)
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(root, p)
}

// samePath reports whether a and b name the same location.
func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
