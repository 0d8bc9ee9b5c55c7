package main

// Smp is the sample type used throughout the engine.
type Smp = float64

const (
	// NumBuffers is the number of parallel delay lines. The whole
	// engine is built around this fixed count; it is not configurable.
	NumBuffers = 6

	// MaxDelaySamples is the total delay memory shared by all lines
	// (2 seconds at 48kHz).
	MaxDelaySamples = 96000

	// BufferSize is the ring capacity of a single delay line.
	BufferSize = MaxDelaySamples / NumBuffers
)

func clamp(value float64, lo float64, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
