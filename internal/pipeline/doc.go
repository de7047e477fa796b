// Package pipeline implements the text stages of LaTeX flattening.
//
// This package is pure text processing:
//   - Directive scanning for \input and \includegraphics (balanced braces,
//     single-line arguments)
//   - Recursive inlining of \input directives through an injected loader
//   - Flattening of \includegraphics paths to their base names
//
// Filesystem work (loading inputs, locating and copying assets) is handled
// by the root texflat package.
package pipeline
