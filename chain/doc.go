// Package chain resolves the minimum number of human button presses needed
// to make the outermost keypad of a chain type a target sequence.
//
// Overview:
//
//   - A Chain is an ordered slice of Pads, outermost first. Pad i is operated
//     by the arm that Pad i+1 steers; the last Pad is pressed by a human.
//   - Every arm starts parked over "A" and returns there after each target
//     symbol, because every Sequence ends with Activate. Costs of consecutive
//     symbol pairs are therefore independent and simply add up.
//   - cost(i, a, b) = min over every optimal Sequence s from a to b on Pad i of
//     len(s) when i is the human pad, otherwise the cost of typing s on Pad i+1.
//
// Why every candidate is costed:
//
//	Two routes of equal length on one pad ("<^A" and "^<A") translate into
//	press sequences of different length on the pad below. Picking the
//	geometrically shortest route per layer is not enough; the minimum has to
//	be taken after recursing.
//
// Memoisation:
//
//   - With WithMemo(true) (the default) cost(i, a, b) is stored in a table
//     keyed by (layer, from, to). The table is the only mutable state of a
//     Chain; it is guarded by a sync.RWMutex and writes are idempotent, so
//     concurrent resolutions may race to fill a key without harm.
//   - Without the memo the recursion is exponential in depth and only usable
//     for the shallow reference chain.
//
// Complexity (memo enabled):
//
//   - Time:  O(D · K² · P · L) to fill the table, D = depth, K = buttons per
//     pad, P = sequences per pair, L = sequence length; O(len(target))
//     per query afterwards.
//   - Space: O(D · K²).
//
// Errors:
//
//   - ErrNoPads:         New called without layouts.
//   - ErrNegativeDepth:  NewKeypadChain called with depth < 0.
//   - ErrNilLayout:      a nil layout in the chain.
//   - ErrNoActivate:     a layout lacks the "A" parking button.
//   - ErrNotDirectional: an inner layout lacks one of the move buttons.
//   - ErrMissingPath:    no route between two buttons.
//   - ErrOverflow:       the press count does not fit in a uint64.
//   - keypad.ErrUnknownSymbol: a target symbol is not on the pad.
package chain
