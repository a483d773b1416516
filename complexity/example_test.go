// File: complexity/example_test.go
package complexity_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/padchain/chain"
	"github.com/katalvlaran/padchain/complexity"
)

// ExampleAggregator_Run sums a batch in which one line is not a code.
func ExampleAggregator_Run() {
	c, _ := chain.NewKeypadChain(2)
	agg, _ := complexity.New(c, complexity.WithWorkers(2))

	res, err := agg.Run(context.Background(), strings.NewReader("029A\n98#A\n980A\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, sc := range res.Scored {
		fmt.Printf("%s: %d × %d = %d\n", sc.Code.Text, sc.Presses, sc.Code.Value, sc.Complexity)
	}
	for _, f := range res.Failures {
		fmt.Println("failed:", f)
	}
	fmt.Println("total:", res.Total)

	// Output:
	// 029A: 68 × 29 = 1972
	// 980A: 60 × 980 = 58800
	// failed: line 2 "98#A": keypad: unknown symbol: '#' on numeric keypad
	// total: 60772
}
