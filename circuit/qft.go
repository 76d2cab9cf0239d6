// Structured multi-gate constructions: swaps, register flips, and the
// quantum Fourier transform. Each records inside a labeled section so the
// log keeps the construction boundaries.

package circuit

import (
	"fmt"
	"math"

	"github.com/orionthewake/qcc/state"
)

// Swap exchanges qubits idx0 and idx1 via three CNOTs.
func (c *Circuit) Swap(idx0, idx1 int) error {
	return c.Scope(fmt.Sprintf("swap(%d,%d)", idx0, idx1), func() error {
		if err := c.CX(idx1, idx0); err != nil {
			return err
		}
		if err := c.CX(idx0, idx1); err != nil {
			return err
		}

		return c.CX(idx1, idx0)
	})
}

// CSwap is the Fredkin gate: swap idx0 and idx1 conditioned on ctl.
func (c *Circuit) CSwap(ctl, idx0, idx1 int) error {
	return c.Scope(fmt.Sprintf("cswap(%d,%d,%d)", ctl, idx0, idx1), func() error {
		if err := c.CX(idx1, idx0); err != nil {
			return err
		}
		if err := c.CCX(ctl, idx0, idx1); err != nil {
			return err
		}

		return c.CX(idx1, idx0)
	})
}

// Flip reverses a register's bit order with size/2 swaps.
func (c *Circuit) Flip(reg *state.Reg) error {
	return c.Scope(fmt.Sprintf("flip(%s)", reg.Name()), func() error {
		for i := 0; i < reg.Size()/2; i++ {
			if err := c.Swap(reg.Qubit(i), reg.Qubit(reg.Size()-1-i)); err != nil {
				return err
			}
		}

		return nil
	})
}

// QFT applies the quantum Fourier transform over reg: a Hadamard on each
// qubit from high to low, followed by controlled phase gates of angle
// π/2^(i−j). With withSwaps the register is flipped at the end to restore
// conventional bit order; without it, callers account for the reversed
// order themselves (or use Invert on the recorded log).
func (c *Circuit) QFT(reg *state.Reg, withSwaps bool) error {
	return c.Scope(fmt.Sprintf("qft(%s)", reg.Name()), func() error {
		// Predeclare the loop indices
		var i, j int

		for i = reg.Size() - 1; i >= 0; i-- {
			if err := c.H(reg.Qubit(i)); err != nil {
				return err
			}
			for j = i - 1; j >= 0; j-- {
				angle := math.Pi / math.Pow(2, float64(i-j))
				if err := c.CU1(angle, On(reg.Qubit(i)), reg.Qubit(j)); err != nil {
					return err
				}
			}
		}
		if withSwaps {
			return c.Flip(reg)
		}

		return nil
	})
}

// InverseQFT applies the inverse transform: the QFT sequence reversed with
// negated phase angles. With withSwaps the flip happens first, mirroring
// QFT's trailing flip.
func (c *Circuit) InverseQFT(reg *state.Reg, withSwaps bool) error {
	return c.Scope(fmt.Sprintf("iqft(%s)", reg.Name()), func() error {
		if withSwaps {
			if err := c.Flip(reg); err != nil {
				return err
			}
		}

		var i, j int

		for i = 0; i < reg.Size(); i++ {
			if err := c.H(reg.Qubit(i)); err != nil {
				return err
			}
			if i == reg.Size()-1 {
				continue
			}
			for j = i; j >= 0; j-- {
				angle := -math.Pi / math.Pow(2, float64(i+1-j))
				if err := c.CU1(angle, On(reg.Qubit(i+1)), reg.Qubit(j)); err != nil {
					return err
				}
			}
		}

		return nil
	})
}
