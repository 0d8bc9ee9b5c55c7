package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"
)

func TestComputeTargets_NormalizedAndBounded(t *testing.T) {
	rng := newXorshiftRand(42)
	var qs quantumState
	qs.init()

	for _, shape := range []Smp{0, 0.25, 0.49, 0.5, 0.75, 1} {
		for _, chaos := range []Smp{0, 0.5, 1} {
			for i := 0; i < 50; i++ {
				qs.computeTargets(shape, chaos, rng)
				assert.InDelta(t, 1.0, floats.Sum(qs.targets[:]), 1e-5,
					"shape=%v chaos=%v", shape, chaos)
				for b, w := range qs.targets {
					assert.GreaterOrEqual(t, w, 0.0, "line %d", b)
					assert.LessOrEqual(t, w, 1.0, "line %d", b)
				}
			}
		}
	}
}

func TestComputeTargets_UniformRegimeFlattens(t *testing.T) {
	var qs quantumState
	qs.init()
	// skew the targets first
	qs.targets = [NumBuffers]Smp{0.9, 0.02, 0.02, 0.02, 0.02, 0.02}

	// shape 0 blends fully to flat in a single call
	qs.computeTargets(0, 0, constRand(0.5))
	for b, w := range qs.targets {
		assert.InDelta(t, 1.0/NumBuffers, w, 1e-12, "line %d", b)
	}
}

func TestComputeTargets_PeakedRegimeConcentrates(t *testing.T) {
	var qs quantumState
	qs.init()

	// fully peaked, no chaos: the center stays put and its line
	// dominates the distribution
	qs.computeTargets(1, 0, constRand(0.5))
	center := int(qs.peakCenter)
	for b, w := range qs.targets {
		if b != center {
			assert.Less(t, w, qs.targets[center], "line %d", b)
		}
	}
	assert.Greater(t, qs.targets[center], 0.8)
}

func TestComputeTargets_PeakCenterStaysInRange(t *testing.T) {
	rng := newXorshiftRand(7)
	var qs quantumState
	qs.init()
	for i := 0; i < 2000; i++ {
		qs.computeTargets(1, 1, rng)
		assert.GreaterOrEqual(t, qs.peakCenter, 0.0)
		assert.LessOrEqual(t, qs.peakCenter, Smp(NumBuffers-1))
	}
}

func TestSmooth_ConvergesToTargets(t *testing.T) {
	var qs quantumState
	qs.init()
	qs.targets = [NumBuffers]Smp{0.5, 0.2, 0.1, 0.1, 0.05, 0.05}

	for i := 0; i < 5000; i++ {
		qs.smooth()
	}
	for b := range qs.weights {
		assert.InDelta(t, qs.targets[b], qs.weights[b], 1e-3, "line %d", b)
	}
}

func TestCollapse_SetsDominantWeights(t *testing.T) {
	var qs quantumState
	qs.init()

	dominant := qs.collapse(constRand(0.4))
	assert.Equal(t, 2, dominant)
	for b, w := range qs.targets {
		if b == dominant {
			assert.Equal(t, Smp(collapseFactor), w)
		} else {
			assert.InDelta(t, 0.06, w, 1e-12, "line %d", b)
		}
	}
}

func TestCollapse_RepeatedTriggersRerandomize(t *testing.T) {
	var qs quantumState
	qs.init()

	first := qs.collapse(&fixedRand{vals: []float64{0.0, 0.99}})
	second := qs.collapse(&fixedRand{vals: []float64{0.99}})
	assert.Equal(t, 0, first)
	assert.Equal(t, NumBuffers-1, second)
	assert.Equal(t, Smp(collapseFactor), qs.targets[second])
}

func TestNormalize_ZeroSumFallsBackToFlat(t *testing.T) {
	w := []Smp{0, 0, 0, 0, 0, 0}
	normalize(w)
	for _, v := range w {
		assert.Equal(t, 1.0/NumBuffers, v)
	}
}
