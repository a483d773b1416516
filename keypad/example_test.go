// File: keypad/example_test.go
package keypad_test

import (
	"fmt"

	"github.com/katalvlaran/padchain/keypad"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Numeric layout lookups
////////////////////////////////////////////////////////////////////////////////

// ExampleLayout_PositionOf shows the two lookups every path computation
// relies on: symbol → cell and cell → symbol.
func ExampleLayout_PositionOf() {
	l := keypad.Numeric()
	fmt.Print(l.Render())

	p, _ := l.PositionOf('0')
	fmt.Println("0 at", p)

	_, ok := l.SymbolAt(l.Gap())
	fmt.Println("gap is a button:", ok)

	// Output:
	// 7 8 9
	// 4 5 6
	// 1 2 3
	// · 0 A
	// 0 at (1,3)
	// gap is a button: false
}
