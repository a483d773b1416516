package chain

import (
	"fmt"
	"math"
	"math/bits"

	"go.uber.org/zap"

	"github.com/katalvlaran/padchain/keypad"
	"github.com/katalvlaran/padchain/paths"
)

// Chain is an ordered stack of pads, outermost first. Everything but the
// optional memo is read-only after New, so one Chain may serve any number
// of goroutines.
type Chain struct {
	pads        []*Pad
	memo        *memo // nil when disabled
	log         *zap.Logger
	expandLimit uint64
}

// New builds a chain from layouts ordered outermost first. Every layout
// after the first must carry the five move buttons, since it steers the
// pad before it. Path tables are built once per distinct layout.
//
// Returns ErrNoPads, ErrNilLayout, ErrNoActivate or ErrNotDirectional.
// Complexity: O(N · K² · P · L) for N layouts.
func New(layouts []*keypad.Layout, opts ...Option) (*Chain, error) {
	if len(layouts) == 0 {
		return nil, ErrNoPads
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &Chain{
		pads:        make([]*Pad, len(layouts)),
		log:         cfg.Logger,
		expandLimit: cfg.ExpandLimit,
	}
	if cfg.Memo {
		c.memo = newMemo()
	}

	// Built innermost first; repeated layouts share one table.
	tables := make(map[*keypad.Layout]*paths.Table, 2)
	for i := len(layouts) - 1; i >= 0; i-- {
		l := layouts[i]
		if err := validateLayout(l, i); err != nil {
			return nil, err
		}
		tbl, ok := tables[l]
		if !ok {
			var err error
			if tbl, err = paths.NewTable(l); err != nil {
				return nil, err
			}
			tables[l] = tbl
		}
		c.pads[i] = &Pad{layout: l, table: tbl, chain: c, layer: i}
	}

	return c, nil
}

// NewKeypadChain builds the canonical chain: a numeric pad steered through
// depth directional pads, the last of which a human presses.
func NewKeypadChain(depth int, opts ...Option) (*Chain, error) {
	if depth < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeDepth, depth)
	}
	layouts := make([]*keypad.Layout, 0, depth+1)
	layouts = append(layouts, keypad.Numeric())
	for i := 0; i < depth; i++ {
		layouts = append(layouts, keypad.Directional())
	}
	return New(layouts, opts...)
}

func validateLayout(l *keypad.Layout, layer int) error {
	if l == nil {
		return fmt.Errorf("%w: layer %d", ErrNilLayout, layer)
	}
	if !l.Has(keypad.ActivateSymbol) {
		return fmt.Errorf("%w: %s keypad at layer %d", ErrNoActivate, l.Name(), layer)
	}
	if layer == 0 {
		return nil
	}
	for _, m := range keypad.Moves {
		if !l.Has(m.Symbol()) {
			return fmt.Errorf("%w: %s keypad at layer %d has no %q", ErrNotDirectional, l.Name(), layer, rune(m.Symbol()))
		}
	}
	return nil
}

// Len returns the number of pads, human pad included.
func (c *Chain) Len() int { return len(c.pads) }

// Depth returns the number of directional layers between the human and the
// outermost pad.
func (c *Chain) Depth() int { return len(c.pads) - 1 }

// Pad returns the pad at layer i (0 = outermost), or nil if out of range.
func (c *Chain) Pad(i int) *Pad {
	if i < 0 || i >= len(c.pads) {
		return nil
	}
	return c.pads[i]
}

// Outermost returns layer 0.
func (c *Chain) Outermost() *Pad { return c.pads[0] }

// MinCostForSequence returns the fewest human presses that make the
// outermost pad type target.
func (c *Chain) MinCostForSequence(target []keypad.Symbol) (uint64, error) {
	return c.sequenceCost(0, target)
}

// MinCost is MinCostForSequence for a string of button symbols.
func (c *Chain) MinCost(target string) (uint64, error) {
	return c.sequenceCost(0, toSymbols(target))
}

// CachedPairs returns the number of (layer, from, to) costs in the memo.
func (c *Chain) CachedPairs() int {
	if c.memo == nil {
		return 0
	}
	return c.memo.len()
}

// sequenceCost sums the pair costs of target on layer, starting from "A".
func (c *Chain) sequenceCost(layer int, target []keypad.Symbol) (uint64, error) {
	var total uint64
	prev := keypad.ActivateSymbol
	for _, next := range target {
		v, err := c.cost(layer, prev, next)
		if err != nil {
			return 0, err
		}
		var carry uint64
		if total, carry = bits.Add64(total, v, 0); carry != 0 {
			return 0, ErrOverflow
		}
		prev = next
	}
	return total, nil
}

// cost is the fewest human presses that move the arm of layer from one
// button to another and press it, every inner arm starting and ending on "A".
func (c *Chain) cost(layer int, from, to keypad.Symbol) (uint64, error) {
	key := memoKey{layer: layer, from: from, to: to}
	if c.memo != nil {
		if v, ok := c.memo.get(key); ok {
			return v, nil
		}
	}

	pad := c.pads[layer]
	seqs, err := pad.table.Lookup(from, to)
	if err != nil {
		return 0, err
	}
	if len(seqs) == 0 {
		return 0, fmt.Errorf("%w: %q→%q on %s keypad", ErrMissingPath, rune(from), rune(to), pad.layout.Name())
	}

	best := uint64(math.MaxUint64)
	for _, s := range seqs {
		v, err := c.sequenceCostOf(layer, s)
		if err != nil {
			return 0, err
		}
		if v < best {
			best = v
		}
	}

	if ce := c.log.Check(zap.DebugLevel, "pad cost"); ce != nil {
		ce.Write(
			zap.Int("layer", layer),
			zap.String("pad", pad.layout.Name()),
			zap.Stringer("from", from),
			zap.Stringer("to", to),
			zap.Int("candidates", len(seqs)),
			zap.Uint64("cost", best),
		)
	}
	if c.memo != nil {
		c.memo.put(key, best)
	}
	return best, nil
}

// sequenceCostOf is what typing s on layer costs the human: its length on
// the human pad, its translated cost one layer further in otherwise.
func (c *Chain) sequenceCostOf(layer int, s paths.Sequence) (uint64, error) {
	if layer == len(c.pads)-1 {
		return uint64(len(s)), nil
	}
	return c.sequenceCost(layer+1, s.Symbols())
}

func toSymbols(s string) []keypad.Symbol {
	out := make([]keypad.Symbol, 0, len(s))
	for _, r := range s {
		out = append(out, keypad.Symbol(r))
	}
	return out
}
