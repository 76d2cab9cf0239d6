// Package ops: projective single-qubit measurement.

package ops

import (
	"math"

	"github.com/orionthewake/qcc/kernel"
	"github.com/orionthewake/qcc/qmath"
	"github.com/orionthewake/qcc/state"
)

// Measure measures qubit idx of psi against basis value tostate (0 or 1).
//
// Implementation:
//   - Stage 1: Validate tostate; pick the matching projector.
//   - Stage 2: Apply the 2×2 projector to a CLONE of psi through the gate
//     kernel — mathematically identical to ⟨ψ|(I⊗...⊗|b⟩⟨b|⊗...⊗I)|ψ⟩
//     without materializing the 2^n projector.
//   - Stage 3: prob = ‖Pψ‖², clamped to [0,1]. If collapse, renormalize the
//     projected clone and return it; otherwise return psi untouched.
//
// Returns:
//   - float64: the outcome probability.
//   - *state.State: the post-measurement state (psi itself when collapse is
//     false).
//
// Errors:
//   - ErrBadMeasureTarget, ErrImpossibleOutcome (collapse onto probability
//     zero), kernel preconditions (index out of range).
func Measure(psi *state.State, idx, tostate int, collapse bool) (float64, *state.State, error) {
	// Validate the basis value
	if tostate != 0 && tostate != 1 {
		return 0, nil, ErrBadMeasureTarget
	}

	// Pick the projector and flatten for the kernel
	proj := Projector0()
	if tostate == 1 {
		proj = Projector1()
	}
	g, err := proj.Gate2()
	if err != nil {
		return 0, nil, err
	}

	// Project a clone; the kernel validates idx against the qubit count
	projected := psi.Clone()
	if err = kernel.Default().Apply1(projected.Amplitudes(), g, psi.NBits(), idx); err != nil {
		return 0, nil, err
	}

	// Probability with numeric clamping
	norm := qmath.Norm2(projected.Amplitudes())
	prob := norm * norm
	prob = math.Min(math.Max(prob, 0), 1)

	if !collapse {
		return prob, psi, nil
	}
	// Collapse: ψ ← Pψ / √prob
	if prob == 0 {
		return 0, nil, ErrImpossibleOutcome
	}
	if err = projected.Normalize(); err != nil {
		return 0, nil, err
	}

	return prob, projected, nil
}
