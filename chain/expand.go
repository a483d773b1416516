package chain

import (
	"fmt"

	"github.com/katalvlaran/padchain/keypad"
)

// Expand returns one concrete sequence of human presses that makes the
// outermost pad type target with the minimal press count, so
// len(Expand(t)) == MinCostForSequence(t). Among equally cheap routes the
// first in sorted order wins.
//
// The result has one element per press and grows roughly 2.5× per layer.
// Targets costing more than the expand limit (see WithExpandLimit) are
// refused with ErrExpandTooLong before anything is built.
func (c *Chain) Expand(target []keypad.Symbol) ([]keypad.Symbol, error) {
	n, err := c.MinCostForSequence(target)
	if err != nil {
		return nil, err
	}
	if n > c.expandLimit {
		return nil, fmt.Errorf("%w: %d presses, limit %d", ErrExpandTooLong, n, c.expandLimit)
	}
	return c.expandSequence(0, target)
}

func (c *Chain) expandSequence(layer int, target []keypad.Symbol) ([]keypad.Symbol, error) {
	var out []keypad.Symbol
	prev := keypad.ActivateSymbol
	for _, next := range target {
		presses, err := c.expandPair(layer, prev, next)
		if err != nil {
			return nil, err
		}
		out = append(out, presses...)
		prev = next
	}
	return out, nil
}

func (c *Chain) expandPair(layer int, from, to keypad.Symbol) ([]keypad.Symbol, error) {
	want, err := c.cost(layer, from, to)
	if err != nil {
		return nil, err
	}
	seqs, err := c.pads[layer].table.Lookup(from, to)
	if err != nil {
		return nil, err
	}
	for _, s := range seqs {
		v, err := c.sequenceCostOf(layer, s)
		if err != nil {
			return nil, err
		}
		if v != want {
			continue
		}
		if layer == len(c.pads)-1 {
			return s.Symbols(), nil
		}
		return c.expandSequence(layer+1, s.Symbols())
	}
	return nil, ErrMissingPath
}
