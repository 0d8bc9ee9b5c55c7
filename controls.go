package main

// ParamID identifies one of the engine's knobs.
type ParamID int

const (
	ParamDelayTime ParamID = iota
	ParamSpread
	ParamProbability
	ParamFeedback
	ParamMix
	ParamChaos
	numParams
)

// ParamSource exposes the host's knob storage. Values are expected in
// each parameter's declared range; the engine clamps them anyway.
type ParamSource interface {
	Value(id ParamID) Smp
}

// Params is a fixed knob bank, the simplest ParamSource.
type Params [numParams]Smp

func (p Params) Value(id ParamID) Smp { return p[id] }

// DefaultParams returns the knob defaults: delay 0.25, spread 0.5,
// shape 0.5, feedback 0.3, mix 0.5, chaos 0.1.
func DefaultParams() Params {
	return Params{0.25, 0.5, 0.5, 0.3, 0.5, 0.1}
}

// Inputs carries the per-sample voltages from the host. Audio is
// nominally ±10; the CVs are 0-10 and normalized by /10 before being
// added to their knobs.
type Inputs struct {
	Audio      Smp
	ShapeCV    Smp
	SpreadCV   Smp
	FeedbackCV Smp
	Trigger    Smp
}

// controls is the knob+CV snapshot taken on each control tick and held
// constant between ticks.
type controls struct {
	baseDelay Smp // [0,1]
	spread    Smp // [0,1]
	shape     Smp // [0,1]
	feedback  Smp // [0,0.95]
	mix       Smp // [0,1]
	chaos     Smp // [0,1]
}

func defaultControls() controls {
	return controls{
		baseDelay: 0.25,
		spread:    0.5,
		shape:     0.5,
		feedback:  0.3,
		mix:       0.5,
		chaos:     0.1,
	}
}

// update re-reads the knobs and folds in the normalized CVs, clamping
// everything to its declared range.
func (c *controls) update(params ParamSource, in Inputs) {
	c.baseDelay = clamp(params.Value(ParamDelayTime), 0, 1)
	c.spread = clamp(params.Value(ParamSpread)+in.SpreadCV/10, 0, 1)
	c.shape = clamp(params.Value(ParamProbability)+in.ShapeCV/10, 0, 1)
	c.feedback = clamp(params.Value(ParamFeedback)+in.FeedbackCV/10, 0, 0.95)
	c.mix = clamp(params.Value(ParamMix), 0, 1)
	c.chaos = clamp(params.Value(ParamChaos), 0, 1)
}
