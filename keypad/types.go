package keypad

import (
	"errors"
	"fmt"
)

// Sentinel errors for keypad operations.
var (
	// ErrEmptyLayout indicates the layout rows are empty.
	ErrEmptyLayout = errors.New("keypad: layout must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing widths.
	ErrNonRectangular = errors.New("keypad: all rows must have the same width")
	// ErrNoGap indicates the layout does not contain exactly one gap cell.
	ErrNoGap = errors.New("keypad: layout must contain exactly one gap cell")
	// ErrDuplicateSymbol indicates a symbol appears in more than one cell.
	ErrDuplicateSymbol = errors.New("keypad: duplicate symbol")
	// ErrDisconnected indicates some buttons cannot be reached from the others.
	ErrDisconnected = errors.New("keypad: buttons are not 4-connected")
	// ErrUnknownSymbol indicates a lookup for a symbol the layout does not carry.
	ErrUnknownSymbol = errors.New("keypad: unknown symbol")
)

// GapRune marks the gap cell in the textual rows passed to NewLayout.
const GapRune = ' '

// Symbol is the label printed on a button.
type Symbol rune

// String returns the symbol as a one-character string.
func (s Symbol) String() string { return string(rune(s)) }

// Position is a (column, row) cell coordinate; (0,0) is the top-left cell.
type Position struct {
	Col, Row int
}

// Add returns p shifted by the delta of m. Activate leaves p unchanged.
func (p Position) Add(m Move) Position {
	d := m.Delta()
	return Position{Col: p.Col + d[0], Row: p.Row + d[1]}
}

// Manhattan returns |Δcol| + |Δrow| between p and q.
func (p Position) Manhattan(q Position) int {
	return abs(q.Col-p.Col) + abs(q.Row-p.Row)
}

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.Col, p.Row) }

// Move is one press on a directional keypad.
type Move uint8

const (
	// Up moves the arm one row towards row 0.
	Up Move = iota
	// Down moves the arm one row away from row 0.
	Down
	// Left moves the arm one column towards column 0.
	Left
	// Right moves the arm one column away from column 0.
	Right
	// Activate presses the button under the arm; it never moves.
	Activate
)

// Moves lists every Move in declaration order.
var Moves = [...]Move{Up, Down, Left, Right, Activate}

// moveOffsets holds the (Δcol, Δrow) of each Move, indexed by Move.
var moveOffsets = [...][2]int{
	Up:       {0, -1},
	Down:     {0, 1},
	Left:     {-1, 0},
	Right:    {1, 0},
	Activate: {0, 0},
}

var moveSymbols = [...]Symbol{
	Up:       '^',
	Down:     'v',
	Left:     '<',
	Right:    '>',
	Activate: 'A',
}

// Delta returns the (Δcol, Δrow) offset of m.
func (m Move) Delta() [2]int { return moveOffsets[m] }

// Symbol returns the directional-keypad button that issues m.
func (m Move) Symbol() Symbol { return moveSymbols[m] }

func (m Move) String() string {
	if int(m) >= len(moveSymbols) {
		return fmt.Sprintf("Move(%d)", uint8(m))
	}
	return moveSymbols[m].String()
}

// MoveOf maps a directional-keypad symbol back to its Move.
// Returns ErrUnknownSymbol for any other symbol.
func MoveOf(s Symbol) (Move, error) {
	for i, ms := range moveSymbols {
		if ms == s {
			return Move(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q is not a move", ErrUnknownSymbol, rune(s))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
