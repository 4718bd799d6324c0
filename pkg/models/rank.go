package models

import "math"

// Distribution associates each page with a non-negative value. Probability
// distributions and rank results share this shape; both must sum to one.
type Distribution map[Page]float64

// Sum() returns the total mass of the distribution. A valid distribution
// sums to 1.0 within floating point tolerance.
func (d Distribution) Sum() float64 {
	sum := 0.0
	for _, v := range d {
		sum += v
	}
	return sum
}

// Distance() computes the L1 distance between two distributions that are
// supposed to have the same keys. If d is nil or empty, it returns 0.0.
func Distance(d1, d2 Distribution) float64 {
	distance := 0.0
	for key := range d1 {
		distance += math.Abs(d1[key] - d2[key])
	}
	return distance
}
