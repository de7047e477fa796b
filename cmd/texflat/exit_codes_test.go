package main

// Notes:
// - exitCodeFor: we test all sentinel errors from texflat and config packages,
//   plus wrapped errors to verify errors.Is() chain works correctly.
// - Exit code constants: we verify Unix conventions (0=success, 1=general, 2=usage)
//   and custom codes are below 126.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	texflat "github.com/alnah/go-texflat"
	"github.com/alnah/go-texflat/internal/config"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// Inclusion errors (exit 4)
		{"cyclic inclusion", texflat.ErrCyclicInclusion, ExitInclusion},
		{"max depth", texflat.ErrMaxDepthExceeded, ExitInclusion},
		{"wrapped cycle", fmt.Errorf("flatten: %w", texflat.ErrCyclicInclusion), ExitInclusion},

		// I/O errors (exit 3)
		{"input not found", texflat.ErrInputNotFound, ExitIO},
		{"output dir", texflat.ErrOutputDir, ExitIO},
		{"asset copy", texflat.ErrAssetCopy, ExitIO},
		{"write output", texflat.ErrWriteOutput, ExitIO},
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"load error", &texflat.LoadError{Ref: "x", Err: fmt.Errorf("%w: gone", texflat.ErrInputNotFound)}, ExitIO},

		// Usage/config/validation errors (exit 2)
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid value", config.ErrInvalidValue, ExitUsage},
		{"invalid config pattern", config.ErrInvalidPattern, ExitUsage},
		{"empty input path", texflat.ErrEmptyInputPath, ExitUsage},
		{"empty output dir", texflat.ErrEmptyOutputDir, ExitUsage},
		{"invalid pattern", texflat.ErrInvalidPattern, ExitUsage},
		{"overwrite input", texflat.ErrOutputOverwritesInput, ExitUsage},
		{"no input", ErrNoInput, ExitUsage},
		{"no output", ErrNoOutput, ExitUsage},
		{"too many args", ErrTooManyArgs, ExitUsage},
		{"wrapped config", fmt.Errorf("loading config: %w", config.ErrConfigParse), ExitUsage},

		// General errors (exit 1)
		{"unknown error", errors.New("boom"), ExitGeneral},
		{"canceled", context.Canceled, ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExitCodeConstants - Unix conventions
// ---------------------------------------------------------------------------

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess = %d, want 0", ExitSuccess)
	}
	if ExitGeneral != 1 {
		t.Errorf("ExitGeneral = %d, want 1", ExitGeneral)
	}
	if ExitUsage != 2 {
		t.Errorf("ExitUsage = %d, want 2", ExitUsage)
	}

	codes := []int{ExitSuccess, ExitGeneral, ExitUsage, ExitIO, ExitInclusion}
	seen := make(map[int]bool)
	for _, c := range codes {
		if c >= 126 {
			t.Errorf("exit code %d collides with shell-reserved range", c)
		}
		if seen[c] {
			t.Errorf("exit code %d is not unique", c)
		}
		seen[c] = true
	}
}
