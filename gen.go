package main

// impulseTrain generates a test signal with an impulse of the given
// amplitude at the start of each period and zeros elsewhere. A period
// of zero or less yields a single impulse at frame 0.
func impulseTrain(nframes, periodFrames int, amplitude Smp) []Smp {
	out := make([]Smp, nframes)
	if periodFrames <= 0 {
		periodFrames = nframes + 1
	}
	for i := 0; i < nframes; i += periodFrames {
		out[i] = amplitude
	}
	return out
}

// whiteNoise generates deterministic xorshift32 white noise scaled to
// [-amplitude, amplitude].
func whiteNoise(nframes int, seed uint32, amplitude Smp) []Smp {
	rng := newXorshiftRand(seed)
	out := make([]Smp, nframes)
	for i := range out {
		out[i] = (rng.NextUniform()*2 - 1) * amplitude
	}
	return out
}
