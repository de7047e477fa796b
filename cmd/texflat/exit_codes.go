package main

import (
	"errors"
	"os"

	texflat "github.com/alnah/go-texflat"
	"github.com/alnah/go-texflat/internal/config"
)

// Exit codes for texflat CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess   = 0 // Document flattened
	ExitGeneral   = 1 // General/unexpected error
	ExitUsage     = 2 // Invalid arguments, flags, or config
	ExitIO        = 3 // Missing input, unwritable output
	ExitInclusion = 4 // Cyclic or too deep \input graph
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Inclusion graph errors (exit 4)
	if errors.Is(err, texflat.ErrCyclicInclusion) ||
		errors.Is(err, texflat.ErrMaxDepthExceeded) {
		return ExitInclusion
	}

	// I/O errors (exit 3)
	if errors.Is(err, texflat.ErrInputNotFound) ||
		errors.Is(err, texflat.ErrOutputDir) ||
		errors.Is(err, texflat.ErrAssetCopy) ||
		errors.Is(err, texflat.ErrWriteOutput) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, config.ErrInvalidPattern) ||
		errors.Is(err, texflat.ErrEmptyInputPath) ||
		errors.Is(err, texflat.ErrEmptyOutputDir) ||
		errors.Is(err, texflat.ErrInvalidPattern) ||
		errors.Is(err, texflat.ErrOutputOverwritesInput) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNoOutput) ||
		errors.Is(err, ErrTooManyArgs) {
		return ExitUsage
	}

	return ExitGeneral
}
