package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchmittTrigger_OscillationBelowHighNeverFires(t *testing.T) {
	trig := NewSchmittTrigger(0.1, 2.0)
	fired := 0
	for i := 0; i < 100; i++ {
		if trig.Process(1.5) {
			fired++
		}
		if trig.Process(1.9) {
			fired++
		}
	}
	assert.Equal(t, 0, fired)
}

func TestSchmittTrigger_StartupHighDoesNotFire(t *testing.T) {
	trig := NewSchmittTrigger(0.1, 2.0)

	for i := 0; i < 10; i++ {
		assert.False(t, trig.Process(5.0), "signal high since startup must not fire")
	}
	assert.False(t, trig.Process(0.0), "dropping below low only arms")
	assert.True(t, trig.Process(5.0), "first real rising edge fires")
}

func TestSchmittTrigger_FiresOncePerRisingEdge(t *testing.T) {
	trig := NewSchmittTrigger(0.1, 2.0)
	trig.Process(0.0)

	assert.True(t, trig.Process(5.0))
	assert.False(t, trig.Process(5.0), "held high must not refire")
	assert.False(t, trig.Process(3.0), "staying above low keeps it armed")
	assert.False(t, trig.Process(1.0), "still above the low threshold")
	assert.False(t, trig.Process(0.05), "falling below low only rearms")
	assert.True(t, trig.Process(2.5), "second rising edge fires again")
}

func TestSchmittTrigger_ExactThresholds(t *testing.T) {
	trig := NewSchmittTrigger(0.1, 2.0)
	assert.False(t, trig.Process(0.1), "exactly at low arms without firing")
	assert.True(t, trig.Process(2.0))
	assert.False(t, trig.Process(0.1))
	assert.True(t, trig.Process(2.0))
}
