package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-texflat/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // TEXFLAT_CONFIG: config file name or path
	OutputDir  string // TEXFLAT_OUTPUT_DIR: default output directory

	MaxDepth    *int  // TEXFLAT_MAX_DEPTH: nil when unset or invalid
	TexFallback *bool // TEXFLAT_TEX_FALLBACK: nil when unset or invalid
}

// knownEnvVars lists valid TEXFLAT_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"TEXFLAT_CONFIG":       true,
	"TEXFLAT_OUTPUT_DIR":   true,
	"TEXFLAT_MAX_DEPTH":    true,
	"TEXFLAT_TEX_FALLBACK": true,
}

// loadEnvConfig reads configuration from environment variables.
// Unparsable numbers and booleans are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("TEXFLAT_CONFIG"),
		OutputDir:  os.Getenv("TEXFLAT_OUTPUT_DIR"),
	}

	if depth := os.Getenv("TEXFLAT_MAX_DEPTH"); depth != "" {
		if d, err := strconv.Atoi(depth); err == nil && d >= 0 {
			cfg.MaxDepth = &d
		}
	}

	if fallback := os.Getenv("TEXFLAT_TEX_FALLBACK"); fallback != "" {
		if b, err := strconv.ParseBool(fallback); err == nil {
			cfg.TexFallback = &b
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized TEXFLAT_* variables.
// Helps catch typos like TEXFLAT_MAXDEPTH instead of TEXFLAT_MAX_DEPTH.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "TEXFLAT_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Set variables replace config file values: flags > env > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.MaxDepth != nil {
		cfg.Inline.MaxDepth = *env.MaxDepth
	}
	if env.TexFallback != nil {
		cfg.Inline.TexFallback = *env.TexFallback
	}
}
