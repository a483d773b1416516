package keypad

import (
	"fmt"
	"sort"
	"strings"
)

// Layout is an immutable keypad grid. Width and Height define its
// dimensions; every button symbol occupies exactly one cell and a single
// cell is the gap. Safe for concurrent reads.
type Layout struct {
	name          string
	width, height int
	cells         []Symbol // row-major, GapRune at the gap
	positions     map[Symbol]Position
	gap           Position
}

// NewLayout constructs a Layout from textual rows, one rune per cell,
// GapRune marking the gap. The rows are copied.
// Returns ErrEmptyLayout, ErrNonRectangular, ErrNoGap, ErrDuplicateSymbol
// or ErrDisconnected when the grid is not a valid keypad.
// Complexity: O(W×H) time and memory.
func NewLayout(name string, rows []string) (*Layout, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyLayout
	}
	grid := make([][]rune, len(rows))
	for y, row := range rows {
		grid[y] = []rune(row)
	}
	h, w := len(grid), len(grid[0])
	for _, row := range grid {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	l := &Layout{
		name:      name,
		width:     w,
		height:    h,
		cells:     make([]Symbol, w*h),
		positions: make(map[Symbol]Position, w*h-1),
	}
	gaps := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r := grid[y][x]
			l.cells[l.index(x, y)] = Symbol(r)
			if r == GapRune {
				gaps++
				l.gap = Position{Col: x, Row: y}
				continue
			}
			s := Symbol(r)
			if prev, dup := l.positions[s]; dup {
				return nil, fmt.Errorf("%w: %q at %v and %v", ErrDuplicateSymbol, r, prev, Position{Col: x, Row: y})
			}
			l.positions[s] = Position{Col: x, Row: y}
		}
	}
	if gaps != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrNoGap, gaps)
	}
	if n := len(l.buttonComponents()); n != 1 {
		return nil, fmt.Errorf("%w: %d regions", ErrDisconnected, n)
	}

	return l, nil
}

// Name returns the human-readable layout name.
func (l *Layout) Name() string { return l.name }

// Width returns the number of columns.
func (l *Layout) Width() int { return l.width }

// Height returns the number of rows.
func (l *Layout) Height() int { return l.height }

// Gap returns the position of the gap cell.
func (l *Layout) Gap() Position { return l.gap }

// Len returns the number of buttons.
func (l *Layout) Len() int { return len(l.positions) }

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (l *Layout) InBounds(p Position) bool {
	return p.Col >= 0 && p.Col < l.width && p.Row >= 0 && p.Row < l.height
}

// IsGap reports whether p is the gap cell.
func (l *Layout) IsGap(p Position) bool { return p == l.gap }

// Walkable reports whether the arm may rest on p: inside the grid and not the gap.
func (l *Layout) Walkable(p Position) bool { return l.InBounds(p) && !l.IsGap(p) }

// PositionOf returns the cell holding s, or ErrUnknownSymbol.
// Complexity: O(1).
func (l *Layout) PositionOf(s Symbol) (Position, error) {
	p, ok := l.positions[s]
	if !ok {
		return Position{}, fmt.Errorf("%w: %q on %s keypad", ErrUnknownSymbol, rune(s), l.name)
	}
	return p, nil
}

// Has reports whether s is a button of the layout.
func (l *Layout) Has(s Symbol) bool {
	_, ok := l.positions[s]
	return ok
}

// SymbolAt returns the button at p; ok is false for the gap and for
// positions outside the grid.
// Complexity: O(1).
func (l *Layout) SymbolAt(p Position) (s Symbol, ok bool) {
	if !l.Walkable(p) {
		return 0, false
	}
	return l.cells[l.index(p.Col, p.Row)], true
}

// Symbols returns every button symbol in ascending order.
func (l *Layout) Symbols() []Symbol {
	out := make([]Symbol, 0, len(l.positions))
	for s := range l.positions {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Render draws the grid one row per line, cells separated by a space and
// the gap shown as "·".
func (l *Layout) Render() string {
	var b strings.Builder
	for y := 0; y < l.height; y++ {
		for x := 0; x < l.width; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			if l.IsGap(Position{Col: x, Row: y}) {
				b.WriteString("·")
				continue
			}
			b.WriteRune(rune(l.cells[l.index(x, y)]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// index maps (x,y) to a row-major index: y*width + x.
func (l *Layout) index(x, y int) int {
	return y*l.width + x
}

// coordinate converts a row-major index back to a Position.
func (l *Layout) coordinate(idx int) Position {
	return Position{Col: idx % l.width, Row: idx / l.width}
}
