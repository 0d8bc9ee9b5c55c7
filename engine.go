package main

import (
	"math"
	"sync"
)

const (
	// controlInterval is the number of processed samples between
	// control ticks. Counter-based, so the effective update rate
	// scales with the sample rate.
	controlInterval = 64

	triggerLow  = 0.1
	triggerHigh = 2.0

	// lightDecayRate gives the collapse indicator a ~200ms time
	// constant independent of sample rate.
	lightDecayRate = 5.0

	// voltageCeil bounds the wet accumulator and normalizes the
	// entanglement energy tracker.
	voltageCeil = 10.0
)

// Engine is one instance of the quantum superposition delay: six delay
// lines mixed under an evolving probability distribution, with
// cross-line feedback coupling and a trigger-driven collapse.
//
// All DSP state is owned by the instance. Process must be called once
// per sample frame from a single goroutine; it allocates nothing. The
// mutex exists only so state save/restore and indicator reads can run
// concurrently with the audio thread without observing torn state.
type Engine struct {
	mu sync.Mutex

	sampleRate Smp
	params     ParamSource
	rng        RandStream

	bank  delayBank
	state quantumState
	ctrl  controls

	trigger        SchmittTrigger
	collapseLight  Smp
	controlCounter int
}

// NewEngine creates an engine at the given sample rate. params may not
// be nil; a nil rng is seeded from OS entropy.
func NewEngine(sampleRate Smp, params ParamSource, rng RandStream) *Engine {
	if sampleRate <= 0 {
		sampleRate = 48000
	}
	if rng == nil {
		rng = newEntropyRand()
	}
	e := &Engine{
		sampleRate: sampleRate,
		params:     params,
		rng:        rng,
		trigger:    NewSchmittTrigger(triggerLow, triggerHigh),
	}
	e.state.init()
	e.bank.init()
	e.ctrl = defaultControls()
	return e
}

// Process runs one sample frame through the engine and returns the
// output voltage.
func (e *Engine) Process(in Inputs) Smp {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.controlCounter++
	if e.controlCounter >= controlInterval {
		e.controlCounter = 0
		e.ctrl.update(e.params, in)
		e.state.computeTargets(e.ctrl.shape, e.ctrl.chaos, e.rng)
		e.bank.updateGeometry(e.ctrl.baseDelay, e.ctrl.spread, e.ctrl.chaos, e.sampleRate, e.rng)
	}

	// Decay before detection so the indicator reads exactly 1.0 on the
	// sample a collapse fires.
	e.collapseLight -= e.collapseLight / e.sampleRate * lightDecayRate
	if e.trigger.Process(in.Trigger) {
		e.state.collapse(e.rng)
		e.collapseLight = 1
	}

	e.bank.write(in.Audio)

	var wet Smp
	for b := 0; b < NumBuffers; b++ {
		delayed := e.bank.read(b)
		wet += delayed * e.state.weights[b]

		feedback := delayed * e.ctrl.feedback * e.state.feedback[b]

		// Entanglement: each line's feedback leaks into the other
		// five, scaled by the source line's coupling coefficient.
		// Lines are processed in order 0..5; the lookahead offset
		// keeps same-sample reads unaffected.
		spill := feedback * e.state.entangle[b] * 0.1
		for other := 0; other < NumBuffers; other++ {
			if other != b {
				e.bank.addAhead(other, spill)
			}
		}
		e.bank.addSelf(b, feedback)

		energy := math.Abs(delayed) / voltageCeil
		e.state.entangle[b] = e.state.entangle[b]*0.99 + energy*0.01
	}

	wet = clamp(wet, -voltageCeil, voltageCeil)
	out := in.Audio*(1-e.ctrl.mix) + wet*e.ctrl.mix

	e.bank.advance()
	return out
}

// CollapseLight returns the collapse indicator intensity in [0,1].
func (e *Engine) CollapseLight() Smp {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.collapseLight
}

// BufferLight returns line b's activity intensity (its current mixing
// weight), clamped to [0,1].
func (e *Engine) BufferLight(b int) Smp {
	if b < 0 || b >= NumBuffers {
		return 0
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return clamp(e.state.weights[b], 0, 1)
}
