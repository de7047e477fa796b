package main

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	texflat "github.com/alnah/go-texflat"
	"github.com/alnah/go-texflat/internal/config"
)

// ---------------------------------------------------------------------------
// TestMergeFlags - CLI wins over config
// ---------------------------------------------------------------------------

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	t.Run("only explicit flags apply", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{Inline: config.InlineConfig{TexFallback: true, MaxDepth: 4, CacheSize: 32}}
		f := &cliFlags{set: map[string]bool{}}

		mergeFlags(f, cfg)

		want := config.InlineConfig{TexFallback: true, MaxDepth: 4, CacheSize: 32}
		if cfg.Inline != want {
			t.Errorf("Inline = %+v, want %+v", cfg.Inline, want)
		}
	})

	t.Run("zero values override when set", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{Inline: config.InlineConfig{TexFallback: true, MaxDepth: 4, CacheSize: 32}}
		f := &cliFlags{set: map[string]bool{"tex-fallback": true, "max-depth": true, "cache-size": true}}

		mergeFlags(f, cfg)

		if cfg.Inline != (config.InlineConfig{}) {
			t.Errorf("Inline = %+v, want zero values", cfg.Inline)
		}
	})

	t.Run("copy patterns extend config", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{Assets: config.AssetsConfig{ExtraPatterns: []string{"*.cls"}}}
		f := &cliFlags{set: map[string]bool{}, copyPatterns: []string{"*.sty"}}

		mergeFlags(f, cfg)

		if diff := cmp.Diff([]string{"*.cls", "*.sty"}, cfg.Assets.ExtraPatterns); diff != "" {
			t.Errorf("ExtraPatterns mismatch (-want +got):\n%s", diff)
		}
	})
}

// ---------------------------------------------------------------------------
// TestResolveInput - Positional arguments
// ---------------------------------------------------------------------------

func TestResolveInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		defaultDir string
		want       texflat.Input
		wantErr    error
	}{
		{
			name: "input and output",
			args: []string{"p/main.tex", "out"},
			want: texflat.Input{Path: "p/main.tex", OutputDir: "out"},
		},
		{
			name:       "default dir fills output",
			args:       []string{"p/main.tex"},
			defaultDir: "dist",
			want:       texflat.Input{Path: "p/main.tex", OutputDir: "dist"},
		},
		{
			name:       "argument beats default dir",
			args:       []string{"p/main.tex", "out"},
			defaultDir: "dist",
			want:       texflat.Input{Path: "p/main.tex", OutputDir: "out"},
		},
		{name: "no args", args: nil, wantErr: ErrNoInput},
		{name: "no output", args: []string{"p/main.tex"}, wantErr: ErrNoOutput},
		{name: "too many", args: []string{"a", "b", "c"}, wantErr: ErrTooManyArgs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := &config.Config{Output: config.OutputConfig{DefaultDir: tt.defaultDir}}
			got, err := resolveInput(tt.args, cfg)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("resolveInput() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveInput() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("resolveInput() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestHintFor - Error to hint mapping
// ---------------------------------------------------------------------------

func TestHintFor(t *testing.T) {
	t.Parallel()

	loadErr := &texflat.LoadError{Ref: "intro", Err: fmt.Errorf("%w: gone", texflat.ErrInputNotFound)}

	tests := []struct {
		name        string
		err         error
		texFallback bool
		cfgName     string
		want        string
	}{
		{name: "missing input", err: fmt.Errorf("flatten: %w", loadErr), want: "--tex-fallback"},
		{name: "missing input with fallback", err: loadErr, texFallback: true, want: "main document"},
		{name: "cycle", err: texflat.ErrCyclicInclusion, want: "points back"},
		{name: "max depth", err: texflat.ErrMaxDepthExceeded, want: "--max-depth"},
		{name: "output dir", err: texflat.ErrOutputDir, want: "parent directory"},
		{name: "overwrite", err: texflat.ErrOutputOverwritesInput, want: "output directory"},
		{name: "library pattern", err: texflat.ErrInvalidPattern, want: "*.sty"},
		{name: "config pattern", err: config.ErrInvalidPattern, want: "*.sty"},
		{name: "config not found", err: config.ErrConfigNotFound, cfgName: "paper", want: "--config"},
		{name: "config not found without name", err: config.ErrConfigNotFound, want: ""},
		{name: "unrelated", err: errors.New("boom"), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := hintFor(tt.err, tt.texFallback, tt.cfgName)
			if tt.want == "" {
				if got != "" {
					t.Errorf("hintFor() = %q, want empty", got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("hintFor() = %q, want containing %q", got, tt.want)
			}
		})
	}

	if got := hintFor(loadErr, true, ""); strings.Contains(got, "--tex-fallback") {
		t.Errorf("hintFor() = %q, should not suggest --tex-fallback when enabled", got)
	}
}
