// Package padchain computes how few button presses a human needs to type
// door codes through a chain of robot-operated keypads.
//
// What is padchain?
//
//	A numeric door keypad is operated by a robot arm, which is steered from a
//	directional keypad, which may itself be operated by another robot, and so
//	on down to a keypad a human presses. padchain finds the minimal number of
//	human presses for each code and sums code value × presses.
//
// Under the hood, everything is organized under four packages:
//
//	keypad/     — immutable layouts: numeric and directional grids, positions, moves
//	paths/      — every length-optimal route between two buttons that avoids the gap
//	chain/      — ordered stack of pads + memoised minimum-cost resolver
//	complexity/ — code parsing, concurrent batch resolution, weighted total
//
// and one binary:
//
//	cmd/padchain — reads codes from stdin or a file and prints the total
//
// Quick ASCII example (depth 1):
//
//	human ──presses──▶ [· ^ A / < v >] ──steers──▶ [7 8 9 / 4 5 6 / 1 2 3 / · 0 A]
//
// "029A" costs 12 presses typed directly, 28 through one directional pad and
// 68 through two.
//
//	go install github.com/katalvlaran/padchain/cmd/padchain@latest
package padchain
