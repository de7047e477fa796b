// Package fileutil provides the filesystem operations the flattener relies on.
//
// Every function takes an afero.Fs so callers can run against the real disk
// (afero.NewOsFs) or an in-memory tree (afero.NewMemMapFs) in tests.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// Sentinel errors for file utility operations.
var (
	ErrNotRegularFile = errors.New("not a regular file")
	ErrNotDirectory   = errors.New("not a directory")
	ErrEmptyPattern   = errors.New("glob pattern cannot be empty")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// ReadText reads the whole file at path as text.
// Fails if path does not exist or is not a regular file.
func ReadText(fsys afero.Fs, path string) (string, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		return "", err
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s", ErrNotRegularFile, path)
	}

	f, err := fsys.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// WriteText creates path if absent, truncates it otherwise, and writes content.
func WriteText(fsys afero.Fs, path, content string) error {
	f, err := fsys.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePermissions)
	if err != nil {
		return err
	}

	if _, err := f.Write([]byte(content)); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// EnsureDir creates path unless it already exists.
// Creation is not recursive: the parent directory must exist.
func EnsureDir(fsys afero.Fs, path string) error {
	info, err := fsys.Stat(path)
	switch {
	case err == nil:
		if !info.IsDir() {
			return fmt.Errorf("%w: %s", ErrNotDirectory, path)
		}
		return nil
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}

	// afero.MemMapFs creates missing parents on Mkdir, so check explicitly.
	parent := filepath.Dir(filepath.Clean(path))
	if parentInfo, err := fsys.Stat(parent); err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	} else if !parentInfo.IsDir() {
		return fmt.Errorf("creating %s: %w: %s", path, ErrNotDirectory, parent)
	}

	if err := fsys.Mkdir(path, dirPermissions); err != nil && !errors.Is(err, fs.ErrExist) {
		return err
	}
	return nil
}

// CopyFile copies src to dst byte for byte, overwriting dst if present.
func CopyFile(fsys afero.Fs, src, dst string) error {
	in, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := fsys.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePermissions)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("copying %s to %s: %w", src, dst, err)
	}
	return out.Close()
}

// Glob returns the paths of regular files directly inside dir whose name
// matches pattern. The search is not recursive. A missing dir yields no
// matches rather than an error. Results are sorted.
func Glob(fsys afero.Fs, dir, pattern string) ([]string, error) {
	if pattern == "" {
		return nil, ErrEmptyPattern
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: %q", doublestar.ErrBadPattern, pattern)
	}

	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var matches []string
	for _, entry := range entries {
		if !entry.Mode().IsRegular() {
			continue
		}
		ok, err := doublestar.Match(pattern, entry.Name())
		if err != nil {
			return nil, err
		}
		if ok {
			matches = append(matches, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(matches)
	return matches, nil
}

// QuoteMeta escapes glob metacharacters so s matches itself literally.
func QuoteMeta(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '{', '}', '\\':
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(fsys afero.Fs, path string) bool {
	info, err := fsys.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "texflat" -> false (name)
//   - "./texflat.yaml" -> true (relative path)
//   - "/etc/texflat.yaml" -> true (absolute)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
