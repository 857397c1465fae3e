// Package littleeye summarises the structure of nested values.
//
// It classifies a value as a scalar, sequence, mapping, numeric array or
// opaque value, detects regularity across each container's children and
// renders the result as a short tree:
//
//	dict with 21 elements
//	└─ keys: sequential range 23 to 43
//	└─ values: arrays of variable shape 1-d, from (3,) to (128,) dtype float64
//
// AnalyzeStructure returns the structured summary; Summary renders it.
package littleeye

import (
	"fmt"
	"io"

	"littleeye/diagnostic"
	"littleeye/internal/analyze"
	"littleeye/node"
	"littleeye/options"
	"littleeye/render"
)

// AnalyzeStructure returns the structured summary of value. The recursion
// depth defaults to 3.
func AnalyzeStructure(value any, opts ...options.Option) *node.Node {
	n, _ := Analyze(value, opts...)
	return n
}

// Analyze is AnalyzeStructure that also reports the children that had to be
// degraded to opaque values and any cyclic references met.
func Analyze(value any, opts ...options.Option) (*node.Node, diagnostic.Diagnostics) {
	analyzer := analyze.NewAnalyzer(options.New(opts...))
	n := analyzer.Analyze(value)
	return n, analyzer.Diagnostics()
}

// Summary analyses value and renders the summary text.
func Summary(value any, opts ...options.Option) string {
	return render.New(options.New(opts...)).Render(AnalyzeStructure(value, opts...))
}

// Fprint writes the summary of value to w, followed by a newline.
func Fprint(w io.Writer, value any, opts ...options.Option) error {
	if _, err := fmt.Fprintln(w, Summary(value, opts...)); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	return nil
}
