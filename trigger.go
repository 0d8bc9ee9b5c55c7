package main

// SchmittTrigger detects rising edges with hysteresis. Process fires
// once when the signal rises above the high threshold and will not
// fire again until the signal has fallen back below the low threshold.
// A new trigger starts in the fired state, so a signal that is already
// high at startup does not fire until it first drops below low.
type SchmittTrigger struct {
	low   Smp
	high  Smp
	state bool
}

func NewSchmittTrigger(low, high Smp) SchmittTrigger {
	return SchmittTrigger{low: low, high: high, state: true}
}

func (t *SchmittTrigger) Process(v Smp) bool {
	if t.state {
		if v <= t.low {
			t.state = false
		}
		return false
	}
	if v >= t.high {
		t.state = true
		return true
	}
	return false
}
