// Package texflat flattens a multi-file LaTeX project into a single document
// plus a flat directory of the assets it references.
//
// # Quick Start
//
// Create a flattener and run it on the main document:
//
//	flat := texflat.New()
//
//	result, err := flat.Flatten(ctx, texflat.Input{
//	    Path:      "paper/main.tex",
//	    OutputDir: "submission",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("wrote", result.OutputPath)
//
// # Flattening Pipeline
//
// The run follows these stages:
//
//  1. \input{path} directives are replaced by the file they name, relative to
//     the directory of the main document, until none remain
//  2. every file matching an \includegraphics reference ("figures/plot"
//     matches figures/plot.png, figures/plot.pdf, ...) is copied to the
//     output directory
//  3. \includegraphics paths are reduced to their base name
//  4. every .bib file in the project root is copied to the output directory
//  5. the document is written to the output directory under its original name
//
// A missing \input target is fatal. A missing graphics file is not: the
// reference is still flattened and reported in Result.MissingAssets.
// An \input chain that loops back on itself fails with ErrCyclicInclusion.
//
// # Configuration
//
// Use functional options to customize the flattener:
//
//	flat := texflat.New(
//	    texflat.WithTexFallback(true),           // \input{intro} also tries intro.tex
//	    texflat.WithMaxDepth(8),                 // bound \input nesting
//	    texflat.WithCopyPatterns("*.sty", "*.cls"),
//	    texflat.WithLogger(slog.Default()),
//	)
//
// # Testing
//
// All filesystem access goes through afero, so tests can run against an
// in-memory tree:
//
//	fsys := afero.NewMemMapFs()
//	flat := texflat.New(texflat.WithFs(fsys))
package texflat
