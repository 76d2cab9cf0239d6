// Package kernel: the pure fallback backend — one sequential masked scan.

package kernel

// Fallback is the pure sequential backend. It exists so the engine always
// has a working kernel regardless of build flags, and as the reference the
// optimized backend is checked against.
type Fallback struct{}

// NewFallback returns the sequential backend. It can never fail.
func NewFallback() *Fallback { return &Fallback{} }

// Name identifies the backend in diagnostics.
func (*Fallback) Name() string { return "fallback" }

// Apply1 applies g to qubit target of psi in place.
// Stage 1 (Validate): shared precondition checks.
// Stage 2 (Execute): walk all indices; every index with target bit 0 is the
// low half of exactly one pair (i, i|mask), updated via the 2×2 gate.
// Complexity: O(2^nbits) time, O(1) space.
func (*Fallback) Apply1(psi []complex128, g *Gate2, nbits, target int) error {
	// Validate preconditions (no control)
	if err := validate(psi, nbits, -1, target); err != nil {
		return err
	}

	// Big-endian: qubit 0 is the MSB of the basis index
	mask := 1 << uint(nbits-1-target)
	var a, b complex128
	for i := 0; i < len(psi); i++ {
		if i&mask != 0 {
			continue // high half of a pair, already handled
		}
		j := i | mask
		a, b = psi[i], psi[j]
		psi[i] = g[0]*a + g[1]*b
		psi[j] = g[2]*a + g[3]*b
	}

	return nil
}

// ApplyC applies g to qubit target conditioned on qubit control being |1⟩.
// Identical pair walk to Apply1, restricted to pairs whose control bit is set.
// Complexity: O(2^nbits) time, O(1) space.
func (*Fallback) ApplyC(psi []complex128, g *Gate2, nbits, control, target int) error {
	// Validate preconditions (with control)
	if err := validate(psi, nbits, control, target); err != nil {
		return err
	}

	mask := 1 << uint(nbits-1-target)
	cmask := 1 << uint(nbits-1-control)
	var a, b complex128
	for i := 0; i < len(psi); i++ {
		if i&mask != 0 || i&cmask == 0 {
			continue // not the low half, or control bit is 0
		}
		j := i | mask
		a, b = psi[i], psi[j]
		psi[i] = g[0]*a + g[1]*b
		psi[j] = g[2]*a + g[3]*b
	}

	return nil
}
