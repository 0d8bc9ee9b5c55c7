package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateGeometry_IdempotentWithoutChaos(t *testing.T) {
	var db delayBank
	db.init()
	rng := newXorshiftRand(7)

	db.updateGeometry(0.25, 0.5, 0, 48000, rng)
	delays, reads := db.delay, db.readIdx

	db.updateGeometry(0.25, 0.5, 0, 48000, rng)
	assert.Equal(t, delays, db.delay)
	assert.Equal(t, reads, db.readIdx)
}

func TestUpdateGeometry_BoundsAndCursors(t *testing.T) {
	var db delayBank
	db.init()
	rng := newXorshiftRand(3)

	for _, base := range []Smp{0, 0.1, 0.5, 1} {
		for _, spread := range []Smp{0, 0.5, 1} {
			db.updateGeometry(base, spread, 1, 48000, rng)
			for b := 0; b < NumBuffers; b++ {
				require.GreaterOrEqual(t, db.delay[b], 1.0)
				require.LessOrEqual(t, db.delay[b], Smp(BufferSize-1))
				require.GreaterOrEqual(t, db.readIdx[b], 0)
				require.Less(t, db.readIdx[b], BufferSize)
			}
			// push the write cursor to odd positions between updates
			for i := 0; i < 777; i++ {
				db.write(0)
				db.advance()
			}
		}
	}
}

func TestRead_LinearInterpolation(t *testing.T) {
	var db delayBank
	db.init()

	// fill with a ramp so cell k holds value k
	for k := 0; k < 100; k++ {
		db.write(Smp(k))
		db.advance()
	}

	db.delay[0] = 10.5
	db.recomputeReadCursors()
	assert.Equal(t, 90, db.readIdx[0])
	assert.InDelta(t, 90.5, db.read(0), 1e-12)

	db.delay[0] = 10
	db.recomputeReadCursors()
	assert.InDelta(t, 90.0, db.read(0), 1e-12)
}

func TestReadCursor_WrapsAroundRing(t *testing.T) {
	var db delayBank
	db.init()

	// write cursor near the start, delay longer than the cursor
	for k := 0; k < 5; k++ {
		db.write(0)
		db.advance()
	}
	db.delay[0] = 100
	db.recomputeReadCursors()
	assert.Equal(t, (5-100+BufferSize)%BufferSize, db.readIdx[0])
	assert.GreaterOrEqual(t, db.readIdx[0], 0)
	assert.Less(t, db.readIdx[0], BufferSize)
}

func TestAdvance_KeepsDelayDistanceConstant(t *testing.T) {
	var db delayBank
	db.init()
	db.delay[2] = 500
	db.recomputeReadCursors()

	for i := 0; i < BufferSize+100; i++ {
		dist := (db.writeIdx - db.readIdx[2] + BufferSize) % BufferSize
		require.Equal(t, 500, dist)
		db.write(0)
		db.advance()
	}
}

func TestAddAhead_LandsAtLookaheadOffset(t *testing.T) {
	var db delayBank
	db.init()

	db.addAhead(1, 0.25)
	assert.Equal(t, Smp(0.25), db.bufs[1][(db.writeIdx+entangleLookahead)%BufferSize])
	assert.Equal(t, Smp(0), db.bufs[1][db.writeIdx])

	db.addSelf(1, 0.5)
	assert.Equal(t, Smp(0.5), db.bufs[1][db.writeIdx])
}
