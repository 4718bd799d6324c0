package report

import (
	"fmt"
	"io"
)

// TextWriter outputs the two rank blocks as plain text, pages sorted by
// name, one "page: rank" line each.
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{baseWriter{output: output}}
}

func (w *TextWriter) Write(result *Result) error {
	pages := result.Pages()

	if _, err := fmt.Fprintf(w.output, "PageRank Results from Sampling (n = %d)\n", result.Samples); err != nil {
		return err
	}
	for _, page := range pages {
		if _, err := fmt.Fprintf(w.output, "  %s: %.4f\n", page, result.Sampled[page]); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w.output, "PageRank Results from Iteration\n"); err != nil {
		return err
	}
	for _, page := range pages {
		if _, err := fmt.Fprintf(w.output, "  %s: %.4f\n", page, result.Iterated[page]); err != nil {
			return err
		}
	}

	return nil
}
