/*
The report package renders the two rank estimates of a run side by side.
Formats: plain text (default), JSON and Markdown. The estimators themselves
never print; everything user-visible goes through a Writer.
*/
package report

import (
	"io"
	"slices"

	"github.com/pagelab/corpusrank/pkg/models"
)

// Result gathers everything a writer needs about a completed run.
type Result struct {
	// Corpus is the directory that was ranked.
	Corpus string

	// Damping is the damping factor both estimators used.
	Damping float64

	// Samples is the step budget of the sampling estimator.
	Samples int

	// Iterations is the number of sweeps the iterative estimator needed.
	Iterations int

	// Sampled is the rank estimated by the random surfer simulation.
	Sampled models.Distribution

	// Iterated is the rank computed by fixed point iteration.
	Iterated models.Distribution
}

// Pages() returns the ranked pages in sorted order. Both estimates cover the
// same corpus, so either one determines the page set.
func (r *Result) Pages() []models.Page {
	pages := make([]models.Page, 0, len(r.Iterated))
	for page := range r.Iterated {
		pages = append(pages, page)
	}
	slices.Sort(pages)
	return pages
}

// Agreement() returns the L1 distance between the two estimates. Small
// values mean the random surfer simulation confirmed the fixed point.
func (r *Result) Agreement() float64 {
	return models.Distance(r.Sampled, r.Iterated)
}

// Writer renders a Result to some destination in one format.
type Writer interface {
	Write(result *Result) error
}

// baseWriter provides the output destination shared by all writers.
type baseWriter struct {
	output io.Writer
}
