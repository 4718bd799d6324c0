package models

import (
	"math"
	"testing"
)

const float64Tolerance = 1e-12

func TestDistributionSum(t *testing.T) {
	testCases := []struct {
		name         string
		distribution Distribution
		expectedSum  float64
	}{
		{
			name:         "nil distribution",
			distribution: nil,
			expectedSum:  0.0,
		},
		{
			name:         "uniform distribution",
			distribution: Distribution{"1.html": 0.25, "2.html": 0.25, "3.html": 0.25, "4.html": 0.25},
			expectedSum:  1.0,
		},
		{
			name:         "partial mass",
			distribution: Distribution{"1.html": 0.1, "2.html": 0.3},
			expectedSum:  0.4,
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			if sum := test.distribution.Sum(); math.Abs(sum-test.expectedSum) > float64Tolerance {
				t.Errorf("Sum(): expected %v, got %v", test.expectedSum, sum)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	testCases := []struct {
		name             string
		d1, d2           Distribution
		expectedDistance float64
	}{
		{
			name:             "nil distributions",
			d1:               nil,
			d2:               nil,
			expectedDistance: 0.0,
		},
		{
			name:             "identical distributions",
			d1:               Distribution{"1.html": 0.5, "2.html": 0.5},
			d2:               Distribution{"1.html": 0.5, "2.html": 0.5},
			expectedDistance: 0.0,
		},
		{
			name:             "different distributions",
			d1:               Distribution{"1.html": 0.9, "2.html": 0.1},
			d2:               Distribution{"1.html": 0.5, "2.html": 0.5},
			expectedDistance: 0.8,
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			if distance := Distance(test.d1, test.d2); math.Abs(distance-test.expectedDistance) > float64Tolerance {
				t.Errorf("Distance(): expected %v, got %v", test.expectedDistance, distance)
			}
		})
	}
}
