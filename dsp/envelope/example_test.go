package envelope_test

import (
	"fmt"

	"github.com/cwbudde/algo-wah/dsp/envelope"
)

func ExampleFollower() {
	f, err := envelope.New(envelope.Params{AttackRate: 0.5, DecayRate: 0.25, OnsetThreshold: 0.2})
	if err != nil {
		fmt.Println("error")
		return
	}

	for _, x := range []float32{0.5, 0.5, 0.5, 0, 0, 0, 0} {
		v := f.ProcessSample(x)
		fmt.Printf("%.2f %s\n", v, f.State())
	}

	// Output:
	// 0.00 attack
	// 0.50 attack
	// 1.00 decay
	// 0.75 decay
	// 0.50 decay
	// 0.25 decay
	// 0.00 waiting
}
