package texflat

import (
	"errors"

	"github.com/alnah/go-texflat/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyInputPath        = errors.New("input path cannot be empty")
	ErrEmptyOutputDir        = errors.New("output directory cannot be empty")
	ErrInputNotFound         = errors.New("input file not found")
	ErrOutputDir             = errors.New("cannot prepare output directory")
	ErrOutputOverwritesInput = errors.New("output file would overwrite the input document")
	ErrAssetCopy             = errors.New("failed to copy asset")
	ErrWriteOutput           = errors.New("failed to write output file")

	// Inclusion graph errors.
	ErrCyclicInclusion  = pipeline.ErrCyclicInclusion
	ErrMaxDepthExceeded = pipeline.ErrMaxDepthExceeded

	// Option validation errors.
	ErrInvalidPattern = errors.New("invalid copy pattern")
)

// LoadError is returned when an \input target cannot be read. It wraps
// ErrInputNotFound and names the reference and the chain of files being
// inlined when it was found.
type LoadError = pipeline.LoadError
