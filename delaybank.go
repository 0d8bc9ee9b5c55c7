package main

import "math"

const (
	// minDelaySamples is the shortest configurable delay (~0.2ms).
	minDelaySamples = 10.0

	// entangleLookahead is how far past the write cursor entanglement
	// spill is injected. The offset pre-seeds a near-future sample
	// instead of the immediate one; this asymmetry is part of the
	// sound and must not be "fixed".
	entangleLookahead = 10
)

// delayBank is six parallel ring buffers sharing one write cursor.
// Each line keeps its own fractional delay length and an integer read
// cursor that trails the write cursor by floor(delay). Read cursors
// advance in lockstep with the write cursor and are re-derived from
// the delay lengths on every control tick.
type delayBank struct {
	bufs     [NumBuffers][BufferSize]Smp
	writeIdx int
	readIdx  [NumBuffers]int
	delay    [NumBuffers]Smp // delay length in samples, fractional
}

func (db *delayBank) init() {
	for b := range db.delay {
		db.delay[b] = 1000 + Smp(b)*1500
	}
	db.recomputeReadCursors()
}

// write stores the incoming sample into every line at the write
// cursor. Cursor advance is a separate step (advance) so feedback and
// entanglement can still be added to the current position.
func (db *delayBank) write(s Smp) {
	for b := range db.bufs {
		db.bufs[b][db.writeIdx] = s
	}
}

// read returns line b's delayed sample, linearly interpolated between
// the read cursor and the next cell using the fractional part of the
// line's delay length.
func (db *delayBank) read(b int) Smp {
	r0 := db.readIdx[b]
	r1 := r0 + 1
	if r1 == BufferSize {
		r1 = 0
	}
	frac := db.delay[b] - math.Floor(db.delay[b])
	return db.bufs[b][r0]*(1-frac) + db.bufs[b][r1]*frac
}

// addSelf adds v at line b's current write position (self-feedback;
// audible one full delay period later).
func (db *delayBank) addSelf(b int, v Smp) {
	db.bufs[b][db.writeIdx] += v
}

// addAhead adds v a fixed lookahead past the write cursor of line b.
func (db *delayBank) addAhead(b int, v Smp) {
	db.bufs[b][(db.writeIdx+entangleLookahead)%BufferSize] += v
}

// advance moves the shared write cursor and every read cursor by one;
// called exactly once per processed sample, after all writes.
func (db *delayBank) advance() {
	db.writeIdx++
	if db.writeIdx == BufferSize {
		db.writeIdx = 0
	}
	for b := range db.readIdx {
		db.readIdx[b]++
		if db.readIdx[b] == BufferSize {
			db.readIdx[b] = 0
		}
	}
}

// updateGeometry recomputes each line's delay length from the control
// settings and re-derives its read cursor. Line delays fan out
// linearly from minDelaySamples across the spread range, with
// chaos-scaled jitter on top.
func (db *delayBank) updateGeometry(base, spread, chaos, sampleRate Smp, rng RandStream) {
	maxDelay := clamp(base*2.0*sampleRate, minDelaySamples, BufferSize-1)
	for b := range db.bufs {
		t := Smp(b) / (NumBuffers - 1)
		d := minDelaySamples + t*spread*(maxDelay-minDelaySamples)
		d += (rng.NextUniform() - 0.5) * sampleRate * 0.005 * chaos
		db.delay[b] = clamp(d, 1, BufferSize-1)
	}
	db.recomputeReadCursors()
}

func (db *delayBank) recomputeReadCursors() {
	for b := range db.bufs {
		di := int(db.delay[b])
		db.readIdx[b] = (db.writeIdx - di + BufferSize) % BufferSize
	}
}
