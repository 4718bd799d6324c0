package pagerank

import (
	"fmt"
	"math"

	"github.com/pagelab/corpusrank/pkg/models"
)

// Default convergence parameters. Pagerank theory does not prescribe either
// value; 0.001 matches the tolerance commonly used in the literature and 100
// sweeps is far more than a corpus-sized graph needs, so hitting the cap
// signals a modeling bug rather than slow convergence.
const (
	DefaultTolerance     = 0.001
	DefaultMaxIterations = 100
)

// IterateConfig carries the convergence parameters of the iterative
// estimator. Non-positive fields fall back to the package defaults.
type IterateConfig struct {
	// convergence is reached when the largest absolute rank change of a
	// sweep is at most Tolerance
	Tolerance float64

	// number of sweeps after which ErrNotConverged is returned
	MaxIterations int
}

// DefaultIterateConfig() returns an IterateConfig with default parameters.
func DefaultIterateConfig() IterateConfig {
	return IterateConfig{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// IterateInfo describes how a call to IterateWithInfo() terminated.
type IterateInfo struct {
	Converged  bool
	Iterations int
	FinalDelta float64
}

// Iterate() computes the pagerank of every page with the default convergence
// parameters. See IterateWithInfo.
func Iterate(graph models.LinkGraph, damping float64) (models.Distribution, error) {
	rank, _, err := IterateWithInfo(graph, damping, DefaultIterateConfig())
	return rank, err
}

// IterateWithConfig() computes the pagerank of every page with the given
// convergence parameters. See IterateWithInfo.
func IterateWithConfig(graph models.LinkGraph, damping float64, config IterateConfig) (models.Distribution, error) {
	rank, _, err := IterateWithInfo(graph, damping, config)
	return rank, err
}

/*
IterateWithInfo() computes the pagerank fixed point by relaxation.

Every page starts with rank 1/N. Each sweep recomputes every rank from the
previous sweep's snapshot as

	rank'(p) = (1-damping)/N + damping * sum over i linking to p of rank(i)/|L(i)|

where a dangling page i is treated as linking to every page with weight 1/N,
the same redistribution as in TransitionModel; without it rank mass would
leak out of the system on every sweep. Old and new values are never mixed
within a sweep: the new mapping is fully built before it replaces the old
one.

The iteration stops when the largest absolute per-page change is at most
config.Tolerance. The result is deterministic and sums to 1.0 within
tolerance at every sweep. If convergence is not reached within
config.MaxIterations sweeps, ErrNotConverged is returned together with an
IterateInfo describing the final state.
*/
func IterateWithInfo(graph models.LinkGraph, damping float64, config IterateConfig) (models.Distribution, IterateInfo, error) {
	var info IterateInfo

	if len(graph) == 0 {
		return nil, info, models.ErrEmptyGraph
	}

	if err := validateDamping(damping); err != nil {
		return nil, info, err
	}

	if config.Tolerance <= 0 {
		config.Tolerance = DefaultTolerance
	}
	if config.MaxIterations <= 0 {
		config.MaxIterations = DefaultMaxIterations
	}

	pages := graph.Pages()
	pageCount := float64(len(pages))
	baseRank := (1 - damping) / pageCount

	rank := make(models.Distribution, len(pages))
	for _, page := range pages {
		rank[page] = 1.0 / pageCount
	}

	for i := 1; i <= config.MaxIterations; i++ {
		// the rank mass dangling pages spread over the whole corpus
		danglingMass := 0.0
		for _, page := range pages {
			if graph.IsDangling(page) {
				danglingMass += rank[page] / pageCount
			}
		}

		next := make(models.Distribution, len(pages))
		for _, page := range pages {
			next[page] = baseRank + damping*danglingMass
		}

		for _, page := range pages {
			links := graph[page]
			if links == nil || links.Cardinality() == 0 {
				continue
			}

			share := rank[page] / float64(links.Cardinality())
			for to := range links.Iter() {
				next[to] += damping * share
			}
		}

		maxDelta := 0.0
		for _, page := range pages {
			if delta := math.Abs(next[page] - rank[page]); delta > maxDelta {
				maxDelta = delta
			}
		}

		rank = next
		info.Iterations = i
		info.FinalDelta = maxDelta

		if maxDelta <= config.Tolerance {
			info.Converged = true
			return rank, info, nil
		}
	}

	return nil, info, fmt.Errorf("after %d iterations (delta %v): %w",
		info.Iterations, info.FinalDelta, models.ErrNotConverged)
}
