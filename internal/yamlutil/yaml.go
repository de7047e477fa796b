// Package yamlutil wraps YAML parsing to isolate the external dependency.
// Files are read through afero so config loading can be tested in memory.
package yamlutil

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

// UnmarshalStrict rejects unknown fields in the input.
func UnmarshalStrict(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %s", describe(err))
	}
	return nil
}

// ReadFileStrict reads path from fsys and decodes it with UnmarshalStrict.
// Files larger than MaxInputSize are rejected before being read whole.
// Errors from fsys are returned wrapped so callers can test for fs.ErrNotExist.
func ReadFileStrict(fsys afero.Fs, path string, v any) error {
	f, err := fsys.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, int64(MaxInputSize)+1))
	if err != nil {
		return fmt.Errorf("yamlutil: reading %s: %w", path, err)
	}
	return UnmarshalStrict(data, v)
}

// Marshal encodes v as block-style YAML.
func Marshal(v any) ([]byte, error) {
	result, err := yaml.MarshalWithOptions(v, yaml.Indent(2), yaml.IndentSequence(true))
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return result, nil
}

// describe renders a decode error with its line and column, without colors
// or the source excerpt, so it fits on one line of CLI output.
func describe(err error) string {
	return yaml.FormatError(err, false, false)
}
