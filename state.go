package main

import "encoding/json"

// Only the current probability weights carry across sessions; delay
// memory, entanglement and velocities are rebuilt on the fly.
const stateWeightsKey = "probWeights"

// SaveState returns a JSON snapshot of the persisted engine state.
// Safe to call while another goroutine is inside Process.
func (e *Engine) SaveState() ([]byte, error) {
	e.mu.Lock()
	weights := e.state.weights
	e.mu.Unlock()

	return json.Marshal(map[string][]Smp{
		stateWeightsKey: weights[:],
	})
}

// RestoreState loads a snapshot produced by SaveState. Restore is
// tolerated field-by-field: a missing, short or malformed weights
// field leaves the corresponding weights at their prior values.
// Restored weights are clamped to [0,1] and also become the new
// targets. Only a blob that is not a JSON object at all is an error.
func (e *Engine) RestoreState(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var ws []Smp
	if field, ok := raw[stateWeightsKey]; ok {
		if err := json.Unmarshal(field, &ws); err != nil {
			ws = nil
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	for i, w := range ws {
		if i >= NumBuffers {
			break
		}
		w = clamp(w, 0, 1)
		e.state.weights[i] = w
		e.state.targets[i] = w
	}
	return nil
}
