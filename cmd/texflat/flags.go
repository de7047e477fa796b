package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds output and config flags.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// inlineFlags holds \input resolution flags.
type inlineFlags struct {
	texFallback bool
	maxDepth    int
	cacheSize   int
}

// cliFlags holds every texflat flag.
type cliFlags struct {
	common       commonFlags
	inline       inlineFlags
	copyPatterns []string
	printConfig  bool
	help         bool
	version      bool

	// set records flags given explicitly on the command line, so that
	// zero values (--max-depth 0, --tex-fallback=false) still override config.
	set map[string]bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug log and summary")
}

// addInlineFlags adds \input resolution flags to a FlagSet.
func addInlineFlags(fs *flag.FlagSet, f *inlineFlags) {
	fs.BoolVar(&f.texFallback, "tex-fallback", false, "retry \\input{name} as name.tex")
	fs.IntVar(&f.maxDepth, "max-depth", 0, "max \\input nesting (0 = unlimited)")
	fs.IntVar(&f.cacheSize, "cache-size", 0, "\\input files kept in memory (0 = no cache)")
}

// parseFlags parses texflat flags and returns positional args.
// Usage and parse errors are reported by the caller.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("texflat", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &cliFlags{set: make(map[string]bool)}

	// Flag groups
	addCommonFlags(fs, &f.common)
	addInlineFlags(fs, &f.inline)

	fs.StringArrayVar(&f.copyPatterns, "copy", nil, "extra root file pattern to copy (repeatable)")
	fs.BoolVar(&f.printConfig, "print-config", false, "print the effective config as YAML and exit")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")
	fs.BoolVar(&f.version, "version", false, "show version")

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })

	return f, fs.Args(), nil
}
