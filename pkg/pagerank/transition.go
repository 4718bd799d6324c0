/*
The pagerank package estimates the relative importance of the pages in a
link graph with two independent methods that should approximately agree:

Sample:
simulates a long random surfer walk over the transition model and estimates
the rank of each page as its visit frequency.

Iterate:
solves the pagerank fixed point equations by relaxation, without randomness.

Both consume a read-only models.LinkGraph and return a models.Distribution
whose values sum to 1.0.
*/
package pagerank

import (
	"fmt"

	"github.com/pagelab/corpusrank/pkg/models"
)

// validateDamping returns ErrInvalidDamping unless damping lies in the open
// interval (0,1).
func validateDamping(damping float64) error {
	if damping <= 0 || damping >= 1 {
		return fmt.Errorf("damping factor %v: %w", damping, models.ErrInvalidDamping)
	}
	return nil
}

/*
TransitionModel() returns the probability distribution over which page a
random surfer visits next, given its current page.

With probability damping, the surfer follows one of the links of the current
page chosen uniformly; with probability 1-damping it jumps to a page of the
corpus chosen uniformly. A dangling page (no outgoing links) would trap the
surfer, so it is treated as linking to every page of the corpus: the whole
distribution becomes uniform and no rank mass is lost.

The returned distribution always sums to 1.0 within floating point tolerance.
*/
func TransitionModel(graph models.LinkGraph, page models.Page, damping float64) (models.Distribution, error) {
	if len(graph) == 0 {
		return nil, models.ErrEmptyGraph
	}

	if err := validateDamping(damping); err != nil {
		return nil, err
	}

	links, exists := graph[page]
	if !exists {
		return nil, fmt.Errorf("transition model of %q: %w", page, models.ErrPageNotFound)
	}

	pageCount := float64(graph.NumPages())
	distribution := make(models.Distribution, graph.NumPages())

	// dangling page, the surfer jumps to a uniformly random page
	if links == nil || links.Cardinality() == 0 {
		for p := range graph {
			distribution[p] = 1.0 / pageCount
		}
		return distribution, nil
	}

	randomJump := (1 - damping) / pageCount
	followLink := damping / float64(links.Cardinality())

	for p := range graph {
		distribution[p] = randomJump
		if links.Contains(p) {
			distribution[p] += followLink
		}
	}

	return distribution, nil
}
