package circuit

import (
	"github.com/orionthewake/qcc/ops"
)

// MeasureBit measures qubit idx against basis value tostate (0 or 1) and
// returns the outcome probability. With collapse the live state is
// projected and renormalized; without it the state is untouched and only
// the probability is reported.
//
// Measurement is a state operation, not a gate: nothing is recorded, so a
// measured circuit's log stays replayable as a pure gate sequence.
func (c *Circuit) MeasureBit(idx, tostate int, collapse bool) (float64, error) {
	prob, psi, err := ops.Measure(c.psi, idx, tostate, collapse)
	if err != nil {
		return 0, err
	}
	c.psi = psi

	return prob, nil
}

// PauliExpectation returns ⟨Z⟩ for qubit idx, derived from the |0⟩
// probability as 2·p(0) − 1. Non-collapsing.
func (c *Circuit) PauliExpectation(idx int) (float64, error) {
	p0, err := c.MeasureBit(idx, 0, false)
	if err != nil {
		return 0, err
	}

	return 2*p0 - 1, nil
}

// SampleState picks the most probable basis state and its probability,
// the cheap diagnostic for near-classical states.
func (c *Circuit) SampleState() (int, float64) {
	return c.psi.MaxProb()
}
