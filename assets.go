package texflat

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"

	"github.com/alnah/go-texflat/internal/fileutil"
	"github.com/alnah/go-texflat/internal/pipeline"
)

// assetCopier copies files into the flat output directory and remembers
// which source produced each destination name during a run.
type assetCopier struct {
	fs     afero.Fs
	log    *slog.Logger
	outDir string
	owners map[string]string // destination -> source
}

func newAssetCopier(fsys afero.Fs, log *slog.Logger, outDir string) *assetCopier {
	return &assetCopier{
		fs:     fsys,
		log:    log,
		outDir: outDir,
		owners: make(map[string]string),
	}
}

// copy places src in the output directory under its base name, overwriting
// whatever is there. Copying a file onto itself is a no-op.
func (c *assetCopier) copy(src string) (string, error) {
	dst := filepath.Join(c.outDir, filepath.Base(src))

	if prev, ok := c.owners[dst]; ok && prev != src {
		c.log.Warn("asset name collision, later file wins", "name", filepath.Base(src), "previous", prev, "source", src)
	}
	c.owners[dst] = src

	if samePath(src, dst) {
		return dst, nil
	}
	if err := fileutil.CopyFile(c.fs, src, dst); err != nil {
		return "", fmt.Errorf("%w: %w", ErrAssetCopy, err)
	}
	c.log.Debug("copied asset", "source", src, "destination", dst)
	return dst, nil
}

// relocateGraphics copies every file matched by an \includegraphics reference
// in text into the output directory. References with no match are recorded
// in result.MissingAssets.
func (f *Flattener) relocateGraphics(ctx context.Context, c *assetCopier, root, text string, result *Result) error {
	for _, ref := range pipeline.GraphicsReferences(text) {
		if err := ctx.Err(); err != nil {
			return err
		}

		matches, err := resolveGraphic(f.fs, root, ref)
		if err != nil {
			return fmt.Errorf("resolving graphics %q: %w", ref, err)
		}
		if len(matches) == 0 {
			f.log.Warn("graphics reference has no matching file", "ref", ref)
			result.MissingAssets = append(result.MissingAssets, ref)
			continue
		}

		for _, src := range matches {
			dst, err := c.copy(src)
			if err != nil {
				return err
			}
			result.CopiedAssets = append(result.CopiedAssets, dst)
		}
	}
	return nil
}

// resolveGraphic lists the files a graphics reference may denote: every
// "<ref>.<ext>" plus "<ref>" itself, searched only in the directory the
// reference names. Relative references start at root.
func resolveGraphic(fsys afero.Fs, root, ref string) ([]string, error) {
	if ref == "" {
		return nil, nil
	}

	rel := filepath.FromSlash(strings.ReplaceAll(ref, `\`, "/"))
	dir := filepath.Dir(resolveRef(root, rel))
	base := fileutil.QuoteMeta(filepath.Base(rel))

	withExt, err := fileutil.Glob(fsys, dir, base+".*")
	if err != nil {
		return nil, err
	}
	exact, err := fileutil.Glob(fsys, dir, base)
	if err != nil {
		return nil, err
	}

	matches := append(withExt, exact...)
	slices.Sort(matches)
	return slices.Compact(matches), nil
}

// copySupportFiles copies project root files matching the configured
// patterns (always including *.bib) into the output directory.
// Subdirectories are not searched.
func (f *Flattener) copySupportFiles(ctx context.Context, c *assetCopier, root string, result *Result) error {
	seen := make(map[string]bool)
	for _, pattern := range f.cfg.supportPatterns {
		matches, err := fileutil.Glob(f.fs, root, pattern)
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err)
		}

		for _, src := range matches {
			if err := ctx.Err(); err != nil {
				return err
			}
			if seen[src] {
				continue
			}
			seen[src] = true

			dst, err := c.copy(src)
			if err != nil {
				return err
			}
			result.CopiedSupport = append(result.CopiedSupport, dst)
		}
	}
	return nil
}
