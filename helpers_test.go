package main

// fixedRand cycles through a predefined sequence of values so tests
// can pin down every stochastic decision.
type fixedRand struct {
	vals []float64
	i    int
}

func (r *fixedRand) NextUniform() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func constRand(v float64) *fixedRand {
	return &fixedRand{vals: []float64{v}}
}
