package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"

	"github.com/alnah/go-texflat/internal/fileutil"
	"github.com/alnah/go-texflat/internal/pipeline"
	"github.com/alnah/go-texflat/internal/yamlutil"
)

// AppName names the directory searched under the user config dir.
const AppName = "texflat"

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
	ErrInvalidPattern  = errors.New("invalid file pattern")
)

// Limits for config values.
const (
	MaxInclusionDepth = 256  // \input nesting
	MaxCacheSize      = 4096 // cached \input files
	MaxExtraPatterns  = 32
	MaxPatternLength  = 100
	MaxPathLength     = 4096
)

// Config holds the settings for a flattening run.
type Config struct {
	Inline InlineConfig `yaml:"inline"`
	Assets AssetsConfig `yaml:"assets"`
	Output OutputConfig `yaml:"output"`
}

// InlineConfig controls \input resolution.
type InlineConfig struct {
	TexFallback bool `yaml:"texFallback"` // \input{intro} also tries intro.tex
	MaxDepth    int  `yaml:"maxDepth"`    // 0 = unlimited
	CacheSize   int  `yaml:"cacheSize"`   // 0 = no cache
}

// AssetsConfig lists extra files copied from the project root.
type AssetsConfig struct {
	ExtraPatterns []string `yaml:"extraPatterns"` // e.g. "*.sty", "*.cls", "*.bst"
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // used when no output directory is given
}

// Validate bounds every field.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if c.Inline.MaxDepth < 0 || c.Inline.MaxDepth > MaxInclusionDepth {
		return fmt.Errorf("%w: inline.maxDepth must be between 0 and %d, got %d",
			ErrInvalidValue, MaxInclusionDepth, c.Inline.MaxDepth)
	}
	if c.Inline.CacheSize < 0 || c.Inline.CacheSize > MaxCacheSize {
		return fmt.Errorf("%w: inline.cacheSize must be between 0 and %d, got %d",
			ErrInvalidValue, MaxCacheSize, c.Inline.CacheSize)
	}

	if len(c.Assets.ExtraPatterns) > MaxExtraPatterns {
		return fmt.Errorf("%w: assets.extraPatterns has %d entries, max %d",
			ErrInvalidValue, len(c.Assets.ExtraPatterns), MaxExtraPatterns)
	}
	for i, pattern := range c.Assets.ExtraPatterns {
		field := fmt.Sprintf("assets.extraPatterns[%d]", i)
		if err := validateFieldLength(field, pattern, MaxPatternLength); err != nil {
			return err
		}
		if pattern == "" || strings.ContainsAny(pattern, `/\`) || !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("%w: %s: %q is not a file name pattern", ErrInvalidPattern, field, pattern)
		}
	}

	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultCacheSize is the library's loader cache size, used when no config
// says otherwise.
const DefaultCacheSize = pipeline.DefaultCacheSize

// DefaultConfig returns the settings used without a config file:
// no fallback, unlimited depth, no extra patterns.
func DefaultConfig() *Config {
	return &Config{
		Inline: InlineConfig{CacheSize: DefaultCacheSize},
	}
}

// UserConfigDir locates the per-user config root. Replaced in tests.
var UserConfigDir = os.UserConfigDir

// LoadConfig loads configuration from a file path or config name on the OS filesystem.
// See LoadConfigFs.
func LoadConfig(nameOrPath string) (*Config, error) {
	return LoadConfigFs(afero.NewOsFs(), nameOrPath)
}

// LoadConfigFs loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
// Fields absent from the file keep their DefaultConfig values.
func LoadConfigFs(fsys afero.Fs, nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(fsys, nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	cfg := DefaultConfig()
	if err := yamlutil.ReadFileStrict(fsys, configPath, cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists where a config name is looked up, in order:
// current directory, then the user config directory, .yaml before .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if dir, err := UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, AppName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first search path holding a regular file.
func resolveConfigPath(fsys afero.Fs, name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(fsys, p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
