package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: texflat [flags] <main.tex> [output-dir]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flatten a LaTeX project: inline every \\input, copy referenced graphics")
	fmt.Fprintln(w, "and .bib files into output-dir, and strip directories from")
	fmt.Fprintln(w, "\\includegraphics paths.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  main.tex      Main document; its directory is the project root")
	fmt.Fprintln(w, "  output-dir    Destination (optional if config has output.defaultDir")
	fmt.Fprintln(w, "                or TEXFLAT_OUTPUT_DIR is set)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Inlining:")
	fmt.Fprintln(w, "      --tex-fallback        Retry \\input{name} as name.tex")
	fmt.Fprintln(w, "      --max-depth <n>       Max \\input nesting (0 = unlimited)")
	fmt.Fprintln(w, "      --cache-size <n>      Files kept in memory (0 = no cache)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Assets:")
	fmt.Fprintln(w, "      --copy <pattern>      Also copy root files matching pattern")
	fmt.Fprintln(w, "                            (repeatable, e.g. --copy '*.sty')")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --print-config        Print the effective config and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug log and summary")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w, "      --version             Show version")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  TEXFLAT_CONFIG, TEXFLAT_OUTPUT_DIR, TEXFLAT_MAX_DEPTH, TEXFLAT_TEX_FALLBACK")
	fmt.Fprintln(w, "  (read from .env in the working directory when present)")
}
