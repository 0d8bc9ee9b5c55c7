package main

// dcBlocker is a one-pole high-pass filter that removes DC offset.
// alpha controls the cutoff; typical small value like 0.995.
type dcBlocker struct {
	alpha   Smp
	prevIn  Smp
	prevOut Smp
}

// newDCBlocker returns a blocker with a very low cutoff for the given
// sample rate (~0.16 Hz @ 48kHz). Heavy cross-line feedback can
// accumulate offset, so the front end offers this on the output path.
func newDCBlocker(sampleRate Smp) *dcBlocker {
	return &dcBlocker{alpha: 1.0 - 1.0/sampleRate}
}

func (dc *dcBlocker) process(x Smp) Smp {
	y := x - dc.prevIn + dc.alpha*dc.prevOut
	dc.prevIn = x
	dc.prevOut = y
	return y
}
