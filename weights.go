package main

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	// defaultFeedbackLevel is the static per-line feedback scaling.
	defaultFeedbackLevel = 0.3

	// collapseFactor is the target weight given to the dominant line
	// when the distribution collapses.
	collapseFactor = 0.7
)

// quantumState is the evolving probability distribution over the six
// delay lines plus its coupling state. Current weights chase targets
// through a velocity-smoothed filter, so their sum can transiently
// stray from 1; targets are always renormalized to sum exactly 1.
type quantumState struct {
	weights  [NumBuffers]Smp // current mixing weights
	targets  [NumBuffers]Smp
	velocity [NumBuffers]Smp
	feedback [NumBuffers]Smp // per-line feedback level, static
	entangle [NumBuffers]Smp // slow EMA of per-line output energy

	// peakCenter is the drifting center of the peaked regime. It
	// persists across ticks and random-walks under chaos.
	peakCenter Smp
}

func (qs *quantumState) init() {
	for i := range qs.weights {
		qs.weights[i] = 1.0 / NumBuffers
		qs.targets[i] = 1.0 / NumBuffers
		qs.velocity[i] = 0
		qs.feedback[i] = defaultFeedbackLevel
		qs.entangle[i] = 0
	}
	qs.peakCenter = NumBuffers / 2.0
}

// computeTargets derives a new target distribution from the shape and
// chaos controls, then advances the current weights one smoothing
// step. Below shape 0.5 the targets blend toward a flat distribution;
// above it they peak around the drifting center.
func (qs *quantumState) computeTargets(shape, chaos Smp, rng RandStream) {
	var w [NumBuffers]Smp

	if shape < 0.5 {
		uniformity := (0.5 - shape) * 2
		for i := range w {
			w[i] = (1-uniformity)*qs.targets[i] + uniformity/NumBuffers
		}
	} else {
		peakedness := (shape - 0.5) * 2
		qs.peakCenter += (rng.NextUniform() - 0.5) * chaos * 0.5
		qs.peakCenter = clamp(qs.peakCenter, 0, NumBuffers-1)
		for i := range w {
			distance := math.Abs(Smp(i) - qs.peakCenter)
			w[i] = math.Exp(-distance * peakedness * 2)
		}
		floats.Scale(1/floats.Sum(w[:]), w[:])
	}

	for i := range w {
		w[i] = clamp(w[i]+(rng.NextUniform()-0.5)*chaos*0.1, 0, 1)
	}
	normalize(w[:])
	qs.targets = w

	qs.smooth()
}

// smooth advances the current weights toward the targets through a
// critically-damped velocity filter. Runs on control ticks only.
func (qs *quantumState) smooth() {
	for i := range qs.weights {
		err := qs.targets[i] - qs.weights[i]
		qs.velocity[i] = qs.velocity[i]*0.9 + err*0.1
		qs.weights[i] += qs.velocity[i] * 0.05
	}
}

// collapse snaps the target distribution toward one randomly chosen
// dominant line and returns its index. Repeated collapses simply
// re-randomize the dominant line.
func (qs *quantumState) collapse(rng RandStream) int {
	dominant := int(rng.NextUniform() * NumBuffers)
	for i := range qs.targets {
		if i == dominant {
			qs.targets[i] = collapseFactor
		} else {
			qs.targets[i] = (1 - collapseFactor) / (NumBuffers - 1)
		}
	}
	return dominant
}

// normalize scales w to sum 1, falling back to a flat distribution if
// everything clamped to zero.
func normalize(w []Smp) {
	sum := floats.Sum(w)
	if sum > 0 {
		floats.Scale(1/sum, w)
		return
	}
	for i := range w {
		w[i] = 1.0 / Smp(len(w))
	}
}
