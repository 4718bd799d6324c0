package pagerank

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/pagelab/corpusrank/pkg/models"
)

// DefaultSamples is the number of surfer steps used when the caller has no
// reason to pick another budget.
const DefaultSamples = 10000

/*
Sample() estimates the pagerank of every page by simulating a Markov chain
of n steps over the transition model: starting from a uniformly random page,
it repeatedly draws the next page from TransitionModel() of the current one
and counts the visits. The estimated rank of a page is its visit count
divided by n, so the result sums to 1.0 by construction.

The estimate is random but converges to the stationary distribution of the
chain as n grows; it should approximately agree with Iterate() for a large
enough n.
*/
func Sample(graph models.LinkGraph, damping float64, n int) (models.Distribution, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return sample(graph, damping, n, rng)
}

// sample implements the internal logic of Sample. It accepts a random number
// generator for reproducibility in tests.
func sample(graph models.LinkGraph, damping float64, n int, rng *rand.Rand) (models.Distribution, error) {
	if len(graph) == 0 {
		return nil, models.ErrEmptyGraph
	}

	if n <= 0 {
		return nil, fmt.Errorf("sample count %d: %w", n, models.ErrInvalidSampleCount)
	}

	if err := validateDamping(damping); err != nil {
		return nil, err
	}

	pages := graph.Pages()
	visits := make(map[models.Page]int, len(pages))

	// the starting page is chosen uniformly and not counted as a visit
	current := pages[rng.Intn(len(pages))]

	for i := 0; i < n; i++ {
		distribution, err := TransitionModel(graph, current, damping)
		if err != nil {
			return nil, err
		}

		current = draw(pages, distribution, rng)
		visits[current]++
	}

	rank := make(models.Distribution, len(pages))
	for _, page := range pages {
		rank[page] = float64(visits[page]) / float64(n)
	}

	return rank, nil
}

// draw picks a page from the distribution with a single uniform variate.
// Pages are scanned in sorted order so that a seeded rng replays the exact
// same walk.
func draw(pages []models.Page, distribution models.Distribution, rng *rand.Rand) models.Page {
	r := rng.Float64()

	cumulative := 0.0
	for _, page := range pages {
		cumulative += distribution[page]
		if r < cumulative {
			return page
		}
	}

	// r fell into the float rounding gap behind the last page
	return pages[len(pages)-1]
}
