/*
The config package carries the run parameters of the estimators. A Config is
request-scoped: it is resolved once per invocation from defaults, an
optional YAML file, CORPUSRANK_* environment variables and command line
flags, then passed explicitly into every call. Nothing here is process-wide
state, so runs with different settings can coexist.
*/
package config

import (
	"fmt"

	"github.com/pagelab/corpusrank/pkg/models"
)

// Default run parameters. Damping and sample count are the values commonly
// used for the random surfer model; tolerance and iteration cap match the
// defaults of the iterative estimator.
const (
	DefaultDamping       = 0.85
	DefaultSamples       = 10000
	DefaultTolerance     = 0.001
	DefaultMaxIterations = 100
)

// Config holds the parameters of a single ranking run.
type Config struct {
	// probability that the random surfer follows a link instead of
	// jumping to a random page; must be inside (0,1)
	Damping float64 `yaml:"damping"`

	// number of surfer steps of the sampling estimator
	Samples int `yaml:"samples"`

	// convergence tolerance of the iterative estimator
	Tolerance float64 `yaml:"tolerance"`

	// sweep cap of the iterative estimator
	MaxIterations int `yaml:"max_iterations"`
}

// Default() returns a Config with default parameters.
func Default() Config {
	return Config{
		Damping:       DefaultDamping,
		Samples:       DefaultSamples,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// Validate() returns the appropriate error if one of the parameters is
// outside its domain.
func (c Config) Validate() error {
	if c.Damping <= 0 || c.Damping >= 1 {
		return fmt.Errorf("damping factor %v: %w", c.Damping, models.ErrInvalidDamping)
	}

	if c.Samples <= 0 {
		return fmt.Errorf("sample count %d: %w", c.Samples, models.ErrInvalidSampleCount)
	}

	if c.Tolerance <= 0 {
		return fmt.Errorf("tolerance must be positive, got %v", c.Tolerance)
	}

	if c.MaxIterations <= 0 {
		return fmt.Errorf("max iterations must be positive, got %d", c.MaxIterations)
	}

	return nil
}

// Merge() overlays the non-zero fields of other on top of c and returns the
// result. It lets a partial YAML file override only the fields it names.
func (c Config) Merge(other Config) Config {
	if other.Damping != 0 {
		c.Damping = other.Damping
	}
	if other.Samples != 0 {
		c.Samples = other.Samples
	}
	if other.Tolerance != 0 {
		c.Tolerance = other.Tolerance
	}
	if other.MaxIterations != 0 {
		c.MaxIterations = other.MaxIterations
	}
	return c
}
