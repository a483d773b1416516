// Package paths enumerates every length-optimal way to move a keypad arm
// from one button to another without crossing the gap.
//
// Overview:
//
//   - A move from button k1 to k2 needs |Δcol| horizontal and |Δrow| vertical
//     steps; any shorter route is impossible and any longer one is never
//     optimal. Every candidate is therefore an ordering of that multiset.
//   - Orderings are generated directly by choosing which slots hold the
//     horizontal steps (C(h+v, h) candidates) instead of filtering all
//     (h+v)! permutations.
//   - Each candidate is walked from k1; one that steps onto the gap or off
//     the grid is dropped. Survivors get a trailing Activate.
//
// Guarantees:
//
//   - len(seq) == Manhattan(k1, k2) + 1 for every returned Sequence.
//   - No visited cell is the gap or out of bounds.
//   - The result is deduplicated and sorted, so iteration order is stable.
//   - From == to yields the single Sequence [Activate].
//
// Zig-zag orderings such as "<^<^A" are returned alongside the straight
// runs. They are never cheaper once costed through another keypad, but
// pruning them is the resolver's business, not this package's.
//
// Complexity:
//
//   - Enumerate: O(C(h+v, h) · (h+v)) time and memory.
//   - NewTable:  O(K² · C(h+v, h) · (h+v)) for K buttons.
package paths
