package paths

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/padchain/keypad"
)

// ErrNilLayout indicates a nil *keypad.Layout was passed in.
var ErrNilLayout = errors.New("paths: layout is nil")

// Sequence is an ordered list of moves whose last element is keypad.Activate.
type Sequence []keypad.Move

// String renders the sequence with directional-keypad symbols, e.g. "<^^A".
func (s Sequence) String() string {
	var b strings.Builder
	b.Grow(len(s))
	for _, m := range s {
		b.WriteRune(rune(m.Symbol()))
	}
	return b.String()
}

// Symbols returns the directional-keypad buttons that type s.
func (s Sequence) Symbols() []keypad.Symbol {
	out := make([]keypad.Symbol, len(s))
	for i, m := range s {
		out[i] = m.Symbol()
	}
	return out
}

// Walk returns every cell the arm occupies after each move of s, starting
// from start. Activate repeats the current cell.
func (s Sequence) Walk(start keypad.Position) []keypad.Position {
	out := make([]keypad.Position, len(s))
	p := start
	for i, m := range s {
		p = p.Add(m)
		out[i] = p
	}
	return out
}

// Enumerate returns every minimal-length Sequence that moves the arm of l
// from button from to button to and presses it.
// Returns ErrNilLayout or keypad.ErrUnknownSymbol on bad input.
func Enumerate(l *keypad.Layout, from, to keypad.Symbol) ([]Sequence, error) {
	if l == nil {
		return nil, ErrNilLayout
	}
	src, err := l.PositionOf(from)
	if err != nil {
		return nil, err
	}
	dst, err := l.PositionOf(to)
	if err != nil {
		return nil, err
	}
	return between(l, src, dst), nil
}

// between does the work of Enumerate once both endpoints are resolved.
func between(l *keypad.Layout, src, dst keypad.Position) []Sequence {
	dx, dy := dst.Col-src.Col, dst.Row-src.Row
	horiz, vert := keypad.Right, keypad.Down
	if dx < 0 {
		horiz, dx = keypad.Left, -dx
	}
	if dy < 0 {
		vert, dy = keypad.Up, -dy
	}

	n := dx + dy
	var out []Sequence
	slots := make([]keypad.Move, n)
	// choose fills slots[i:] with the remaining h horizontal and v vertical steps.
	var choose func(i, h, v int)
	choose = func(i, h, v int) {
		if i == n {
			if valid(l, src, slots) {
				seq := make(Sequence, n+1)
				copy(seq, slots)
				seq[n] = keypad.Activate
				out = append(out, seq)
			}
			return
		}
		if h > 0 {
			slots[i] = horiz
			choose(i+1, h-1, v)
		}
		if v > 0 {
			slots[i] = vert
			choose(i+1, h, v-1)
		}
	}
	choose(0, dx, dy)

	// Distinct slot assignments never collide, so out is already a set.
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// valid reports whether walking moves from start never leaves the walkable cells.
func valid(l *keypad.Layout, start keypad.Position, moves []keypad.Move) bool {
	p := start
	for _, m := range moves {
		p = p.Add(m)
		if !l.Walkable(p) {
			return false
		}
	}
	return true
}

// Table holds the precomputed sequence sets of every ordered button pair
// of one layout. Immutable after NewTable; safe for concurrent reads.
type Table struct {
	layout *keypad.Layout
	sets   map[[2]keypad.Symbol][]Sequence
}

// NewTable enumerates all K² ordered pairs of l, identical pairs included.
func NewTable(l *keypad.Layout) (*Table, error) {
	if l == nil {
		return nil, ErrNilLayout
	}
	syms := l.Symbols()
	t := &Table{
		layout: l,
		sets:   make(map[[2]keypad.Symbol][]Sequence, len(syms)*len(syms)),
	}
	for _, a := range syms {
		for _, b := range syms {
			seqs, err := Enumerate(l, a, b)
			if err != nil {
				return nil, err
			}
			t.sets[[2]keypad.Symbol{a, b}] = seqs
		}
	}
	return t, nil
}

// Layout returns the layout the table was built from.
func (t *Table) Layout() *keypad.Layout { return t.layout }

// Lookup returns the sequences for (from, to). The returned slice is shared
// and must not be modified.
func (t *Table) Lookup(from, to keypad.Symbol) ([]Sequence, error) {
	seqs, ok := t.sets[[2]keypad.Symbol{from, to}]
	if !ok {
		if !t.layout.Has(from) {
			return nil, fmt.Errorf("%w: %q on %s keypad", keypad.ErrUnknownSymbol, rune(from), t.layout.Name())
		}
		return nil, fmt.Errorf("%w: %q on %s keypad", keypad.ErrUnknownSymbol, rune(to), t.layout.Name())
	}
	return seqs, nil
}
