// Package complexity parses door codes, resolves each through a keypad
// chain and sums their complexities.
//
// A code is a line of digits followed by a single "A", e.g. "029A". Its
// numeric value is the integer the digits spell (29), and its complexity is
// value × minimal human presses. The batch total is the sum over every code
// that parsed and resolved.
//
// Failure policy:
//
//   - A malformed line, or a symbol the outermost keypad does not carry,
//     yields a *ParseError for that line only.
//   - A resolution failure (overflow, unknown symbol on an inner pad) yields
//     a *ResolveError for that line only.
//   - Failures are returned in Result.Failures, ordered by line, and never
//     stop the rest of the batch. No codes at all is a total of 0.
//
// Codes are resolved concurrently (errgroup, bounded by WithWorkers) against
// one shared, read-only chain. The total is order-independent.
package complexity
