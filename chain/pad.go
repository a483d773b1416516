package chain

import (
	"github.com/katalvlaran/padchain/keypad"
	"github.com/katalvlaran/padchain/paths"
)

// Pad is one layer of the chain: a layout, the sequence sets of every
// button pair, and its place in the chain. Pads are immutable and owned by
// their Chain; Inner is a lookup into the chain, not a stored pointer.
type Pad struct {
	layout *keypad.Layout
	table  *paths.Table
	chain  *Chain
	layer  int
}

// Layout returns the pad's keypad layout.
func (p *Pad) Layout() *keypad.Layout { return p.layout }

// Layer returns the pad's index in the chain; 0 is the outermost pad.
func (p *Pad) Layer() int { return p.layer }

// Inner returns the pad whose presses steer this one, or nil when a human
// presses this pad directly.
func (p *Pad) Inner() *Pad {
	if p.layer+1 >= len(p.chain.pads) {
		return nil
	}
	return p.chain.pads[p.layer+1]
}

// MoveSets returns every optimal Sequence from one button to another.
// The slice is shared; do not modify it.
func (p *Pad) MoveSets(from, to keypad.Symbol) ([]paths.Sequence, error) {
	return p.table.Lookup(from, to)
}

// MinCostForSequence returns the fewest human presses that make this pad
// type target, starting with every arm from here inward parked over "A".
func (p *Pad) MinCostForSequence(target []keypad.Symbol) (uint64, error) {
	return p.chain.sequenceCost(p.layer, target)
}
