package circuit_test

import (
	"fmt"

	"github.com/orionthewake/qcc/circuit"
)

// ExampleCircuit builds the two-qubit entangler: Hadamard on qubit 0,
// CNOT onto qubit 1, then reads out the probability of each qubit.
func ExampleCircuit() {
	qc := circuit.New("bell")
	if err := qc.Zeros(2); err != nil {
		panic(err)
	}
	_ = qc.H(0)
	_ = qc.CX(0, 1)

	p0, _ := qc.MeasureBit(0, 0, false)
	p1, _ := qc.MeasureBit(1, 0, false)
	fmt.Printf("p(q0=0)=%.2f p(q1=0)=%.2f gates=%d\n", p0, p1, qc.Ir().NumGates())
	// Output: p(q0=0)=0.50 p(q1=0)=0.50 gates=2
}

// ExampleCircuit_deferred records a sub-circuit first and replays it later.
func ExampleCircuit_deferred() {
	sub := circuit.New("prep", circuit.WithDeferred())
	_ = sub.Zeros(1)
	_ = sub.X(0)

	idx, _ := sub.State().MaxProb()
	fmt.Println(sub.Ir().NumGates(), idx)
	_ = sub.Run()
	idx, _ = sub.State().MaxProb()
	fmt.Println(sub.Ir().NumGates(), idx)
	// Output:
	// 1 0
	// 1 1
}
