// Package state: Reg — register bookkeeping over the global State.

package state

// Reg names a contiguous run of global qubit indices. A register is pure
// indexing convenience: it is allocated once when its subsystem is composed
// into the global state, never reallocated, and holds no amplitudes.
type Reg struct {
	first int    // global index of the register's first qubit
	bits  []int  // initial classical value, one bit per qubit (big-endian)
	name  string // optional display name
}

// NewReg creates a register of size qubits starting at global index first,
// initialized to the classical value init (truncated to size bits,
// big-endian: the register's qubit 0 gets the MSB of init).
// Errors: ErrBadQubitCount.
func NewReg(size int, init uint64, first int, name string) (*Reg, error) {
	// Validate size and placement
	if size <= 0 || first < 0 {
		return nil, ErrBadQubitCount
	}

	// Decompose init into big-endian bits
	bits := make([]int, size)
	for i := 0; i < size; i++ {
		bits[i] = int(init >> uint(size-1-i) & 1)
	}

	return &Reg{first: first, bits: bits, name: name}, nil
}

// First returns the global index of the register's first qubit.
func (r *Reg) First() int { return r.first }

// Size returns the register width in qubits.
func (r *Reg) Size() int { return len(r.bits) }

// Name returns the register's display name (may be empty).
func (r *Reg) Name() string { return r.name }

// Qubit maps a register-local index to its global qubit index.
// Out-of-range locals return -1; gate application will reject it.
func (r *Reg) Qubit(i int) int {
	if i < 0 || i >= len(r.bits) {
		return -1
	}

	return r.first + i
}

// Indices returns all global qubit indices of the register in order —
// convenient for splatting into variadic gate calls.
func (r *Reg) Indices() []int {
	idx := make([]int, len(r.bits))
	for i := range idx {
		idx[i] = r.first + i
	}

	return idx
}

// InitBits returns a copy of the register's initial classical bits.
func (r *Reg) InitBits() []int {
	bits := make([]int, len(r.bits))
	copy(bits, r.bits)

	return bits
}

// Psi builds the basis state the register was declared with — the subsystem
// tensored into the global state at allocation time.
func (r *Reg) Psi() (*State, error) {
	return Bitstring(r.bits...)
}
