package keypad

// NumericRows is the door keypad; the gap sits left of "0".
var NumericRows = []string{
	"789",
	"456",
	"123",
	" 0A",
}

// DirectionalRows is the robot-control keypad; the gap sits left of "^".
var DirectionalRows = []string{
	" ^A",
	"<v>",
}

// ActivateSymbol is the button every arm starts parked over.
const ActivateSymbol Symbol = 'A'

var (
	numeric     = mustLayout("numeric", NumericRows)
	directional = mustLayout("directional", DirectionalRows)
)

// Numeric returns the shared numeric layout.
func Numeric() *Layout { return numeric }

// Directional returns the shared directional layout.
func Directional() *Layout { return directional }

func mustLayout(name string, rows []string) *Layout {
	l, err := NewLayout(name, rows)
	if err != nil {
		panic(err)
	}
	return l
}
