// File: chain/example_test.go
package chain_test

import (
	"fmt"

	"github.com/katalvlaran/padchain/chain"
)

// ExampleChain_MinCost resolves "029A" through zero, one and two
// directional layers.
func ExampleChain_MinCost() {
	for depth := 0; depth <= 2; depth++ {
		c, err := chain.NewKeypadChain(depth)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		n, _ := c.MinCost("029A")
		fmt.Printf("depth %d: %d presses\n", depth, n)
	}

	// Output:
	// depth 0: 12 presses
	// depth 1: 28 presses
	// depth 2: 68 presses
}
