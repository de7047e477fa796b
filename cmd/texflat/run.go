package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	texflat "github.com/alnah/go-texflat"
	"github.com/alnah/go-texflat/internal/config"
	"github.com/alnah/go-texflat/internal/hints"
	"github.com/alnah/go-texflat/internal/yamlutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput     = errors.New("no input document specified")
	ErrNoOutput    = errors.New("no output directory specified")
	ErrTooManyArgs = errors.New("too many arguments")
)

// runMain runs the CLI and returns the process exit code.
func runMain(ctx context.Context, args []string, deps *Dependencies) int {
	flags, positional, err := parseFlags(args)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\nRun 'texflat --help' for usage.\n", err)
		return ExitUsage
	}

	if flags.help {
		printUsage(deps.Stdout)
		return ExitSuccess
	}
	if flags.version {
		fmt.Fprintf(deps.Stdout, "texflat %s\n", Version)
		return ExitSuccess
	}

	if !flags.common.quiet {
		warnUnknownEnvVars(deps.Stderr)
	}

	env := loadEnvConfig()
	cfg, err := resolveConfig(flags, env, deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v%s\n", err, hintFor(err, false, configName(flags, env)))
		return exitCodeFor(err)
	}

	if flags.printConfig {
		data, err := yamlutil.Marshal(cfg)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return ExitGeneral
		}
		_, _ = deps.Stdout.Write(data)
		return ExitSuccess
	}

	in, err := resolveInput(positional, cfg)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\nRun 'texflat --help' for usage.\n", err)
		return exitCodeFor(err)
	}

	start := deps.Now()
	result, err := newFlattener(cfg, flags.common.verbose, deps).Flatten(ctx, in)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "FAILED %s: %v%s\n", in.Path, err, hintFor(err, cfg.Inline.TexFallback, ""))
		return exitCodeFor(err)
	}

	printResult(in, result, deps.Now().Sub(start), flags.common, deps)
	return ExitSuccess
}

// configName returns the config requested by flag or environment.
func configName(flags *cliFlags, env *envConfig) string {
	if flags.common.config != "" {
		return flags.common.config
	}
	return env.ConfigPath
}

// resolveConfig layers defaults, config file, environment and flags,
// then validates the result.
func resolveConfig(flags *cliFlags, env *envConfig, deps *Dependencies) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if name := configName(flags, env); name != "" {
		loaded, err := config.LoadConfigFs(deps.Fs, name)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(env, cfg)
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFlags applies explicitly set CLI flags to config (CLI wins).
// --copy patterns are added to those from the config file.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.set["tex-fallback"] {
		cfg.Inline.TexFallback = flags.inline.texFallback
	}
	if flags.set["max-depth"] {
		cfg.Inline.MaxDepth = flags.inline.maxDepth
	}
	if flags.set["cache-size"] {
		cfg.Inline.CacheSize = flags.inline.cacheSize
	}
	cfg.Assets.ExtraPatterns = append(cfg.Assets.ExtraPatterns, flags.copyPatterns...)
}

// resolveInput maps positional arguments to a flattening input.
// The output directory falls back to output.defaultDir.
func resolveInput(args []string, cfg *config.Config) (texflat.Input, error) {
	switch {
	case len(args) == 0:
		return texflat.Input{}, ErrNoInput
	case len(args) > 2:
		return texflat.Input{}, fmt.Errorf("%w: got %d, want at most 2", ErrTooManyArgs, len(args))
	}

	in := texflat.Input{Path: args[0], OutputDir: cfg.Output.DefaultDir}
	if len(args) == 2 {
		in.OutputDir = args[1]
	}
	if in.OutputDir == "" {
		return texflat.Input{}, ErrNoOutput
	}
	return in, nil
}

// newFlattener builds a Flattener from the effective config.
// Verbose mode logs debug records to stderr.
func newFlattener(cfg *config.Config, verbose bool, deps *Dependencies) *texflat.Flattener {
	opts := []texflat.Option{
		texflat.WithFs(deps.Fs),
		texflat.WithTexFallback(cfg.Inline.TexFallback),
		texflat.WithMaxDepth(cfg.Inline.MaxDepth),
		texflat.WithCacheSize(cfg.Inline.CacheSize),
		texflat.WithCopyPatterns(cfg.Assets.ExtraPatterns...),
	}
	if verbose {
		handler := slog.NewTextHandler(deps.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, texflat.WithLogger(slog.New(handler)))
	}
	return texflat.New(opts...)
}

// printResult reports a successful run. Dangling graphics references are
// warnings unless quiet.
func printResult(in texflat.Input, r *texflat.Result, elapsed time.Duration, common commonFlags, deps *Dependencies) {
	if common.quiet {
		return
	}

	for _, ref := range r.MissingAssets {
		fmt.Fprintf(deps.Stderr, "warning: no file found for \\includegraphics{%s}\n", ref)
	}

	if !common.verbose {
		fmt.Fprintf(deps.Stdout, "Created %s\n", r.OutputPath)
		return
	}

	fmt.Fprintf(deps.Stdout, "%s -> %s (%v)\n", in.Path, r.OutputPath, elapsed.Round(time.Millisecond))
	printSummary(deps.Stdout, r)
}

func printSummary(w io.Writer, r *texflat.Result) {
	fmt.Fprintf(w, "  inlined:  %d files in %d passes\n", len(r.Included), r.Passes)
	fmt.Fprintf(w, "  graphics: %d copied, %d missing\n", len(r.CopiedAssets), len(r.MissingAssets))
	fmt.Fprintf(w, "  support:  %d copied\n", len(r.CopiedSupport))
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error, texFallback bool, cfgName string) string {
	var loadErr *texflat.LoadError
	switch {
	case errors.As(err, &loadErr):
		return hints.ForMissingInput(loadErr.Ref, texFallback)
	case errors.Is(err, texflat.ErrCyclicInclusion):
		return hints.ForCycle()
	case errors.Is(err, texflat.ErrMaxDepthExceeded):
		return hints.ForMaxDepth()
	case errors.Is(err, texflat.ErrOutputDir):
		return hints.ForOutputDirectory()
	case errors.Is(err, texflat.ErrOutputOverwritesInput):
		return hints.ForOverwrite()
	case errors.Is(err, texflat.ErrInvalidPattern), errors.Is(err, config.ErrInvalidPattern):
		return hints.ForInvalidPattern()
	case errors.Is(err, config.ErrConfigNotFound) && cfgName != "":
		return hints.ForConfigNotFound(config.SearchPaths(cfgName))
	}
	return ""
}
