package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ---------------------------------------------------------------------------
// TestParseFlags - Flag parsing and explicit-set tracking
// ---------------------------------------------------------------------------

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		wantPos  []string
		wantSet  []string
		validate func(t *testing.T, f *cliFlags)
	}{
		{
			name:    "positional only",
			args:    []string{"main.tex", "out"},
			wantPos: []string{"main.tex", "out"},
			validate: func(t *testing.T, f *cliFlags) {
				if f.common.quiet || f.common.verbose || f.inline.texFallback {
					t.Errorf("flags = %+v, want zero values", f)
				}
			},
		},
		{
			name:    "short flags",
			args:    []string{"-q", "-c", "paper", "main.tex"},
			wantPos: []string{"main.tex"},
			wantSet: []string{"config", "quiet"},
			validate: func(t *testing.T, f *cliFlags) {
				if !f.common.quiet || f.common.config != "paper" {
					t.Errorf("common = %+v, want quiet with config paper", f.common)
				}
			},
		},
		{
			name:    "inline flags",
			args:    []string{"--tex-fallback", "--max-depth", "0", "--cache-size=16", "main.tex"},
			wantPos: []string{"main.tex"},
			wantSet: []string{"cache-size", "max-depth", "tex-fallback"},
			validate: func(t *testing.T, f *cliFlags) {
				want := inlineFlags{texFallback: true, maxDepth: 0, cacheSize: 16}
				if f.inline != want {
					t.Errorf("inline = %+v, want %+v", f.inline, want)
				}
			},
		},
		{
			name:    "repeatable copy keeps commas",
			args:    []string{"--copy", "*.sty", "--copy", "*.{cls,bst}", "main.tex"},
			wantPos: []string{"main.tex"},
			wantSet: []string{"copy"},
			validate: func(t *testing.T, f *cliFlags) {
				if diff := cmp.Diff([]string{"*.sty", "*.{cls,bst}"}, f.copyPatterns); diff != "" {
					t.Errorf("copyPatterns mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name:    "flags after positionals",
			args:    []string{"main.tex", "out", "-v"},
			wantPos: []string{"main.tex", "out"},
			wantSet: []string{"verbose"},
			validate: func(t *testing.T, f *cliFlags) {
				if !f.common.verbose {
					t.Error("verbose = false, want true")
				}
			},
		},
		{
			name:    "help and version",
			args:    []string{"-h", "--version"},
			wantSet: []string{"help", "version"},
			validate: func(t *testing.T, f *cliFlags) {
				if !f.help || !f.version {
					t.Errorf("help = %v, version = %v, want both true", f.help, f.version)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, pos, err := parseFlags(tt.args)
			if err != nil {
				t.Fatalf("parseFlags() error = %v", err)
			}
			if diff := cmp.Diff(tt.wantPos, pos, cmpEmptyAsNil); diff != "" {
				t.Errorf("positional mismatch (-want +got):\n%s", diff)
			}

			var set []string
			for _, name := range []string{"cache-size", "config", "copy", "help", "max-depth", "quiet", "tex-fallback", "verbose", "version"} {
				if f.set[name] {
					set = append(set, name)
				}
			}
			if diff := cmp.Diff(tt.wantSet, set); diff != "" {
				t.Errorf("set flags mismatch (-want +got):\n%s", diff)
			}

			tt.validate(t, f)
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{
		{"--unknown"},
		{"--max-depth", "deep"},
		{"--config"},
	} {
		if _, _, err := parseFlags(args); err == nil {
			t.Errorf("parseFlags(%q) error = nil, want error", args)
		}
	}
}

// cmpEmptyAsNil treats nil and empty slices as equal.
var cmpEmptyAsNil = cmp.Comparer(func(a, b []string) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	return cmp.Equal(a, b)
})
