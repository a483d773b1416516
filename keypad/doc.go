// Package keypad describes the fixed button grids of a keypad chain as
// immutable layouts.
//
// What:
//
//   - Layout maps every button Symbol to exactly one Position on a
//     rectangular grid and marks a single gap cell that holds no button.
//   - Move enumerates the control surface of a directional keypad:
//     Up, Down, Left, Right and Activate.
//   - Numeric and Directional return the two canonical layouts.
//
// Why:
//
//   - Path enumeration and cost resolution only ever need three lookups
//     (PositionOf, SymbolAt, IsGap); keeping them on a read-only value lets
//     any number of goroutines share one layout without locking.
//
// Layouts (rows top to bottom, "·" marks the gap):
//
//	Numeric        Directional
//	7 8 9          · ^ A
//	4 5 6          < v >
//	1 2 3
//	· 0 A
//
// Complexity:
//
//   - NewLayout:  O(W×H) time and memory (includes a 4-connectivity BFS).
//   - PositionOf: O(1).
//   - SymbolAt:   O(1).
//
// Errors:
//
//   - ErrEmptyLayout:     no rows or no columns.
//   - ErrNonRectangular:  rows of differing width.
//   - ErrNoGap:           the grid does not contain exactly one gap cell.
//   - ErrDuplicateSymbol: a symbol occupies more than one cell.
//   - ErrDisconnected:    buttons split into more than one 4-connected region.
//   - ErrUnknownSymbol:   PositionOf called with a symbol absent from the layout.
package keypad
