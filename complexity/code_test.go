package complexity_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/padchain/complexity"
	"github.com/katalvlaran/padchain/keypad"
)

func TestParseCode(t *testing.T) {
	c, err := complexity.ParseCode(3, "029A", keypad.Numeric())
	require.NoError(t, err)
	assert.Equal(t, 3, c.Line)
	assert.Equal(t, "029A", c.Text)
	assert.Equal(t, uint64(29), c.Value)
	assert.Equal(t, []keypad.Symbol{'0', '2', '9', 'A'}, c.Symbols)

	zero, err := complexity.ParseCode(1, "000A", keypad.Numeric())
	require.NoError(t, err)
	assert.Zero(t, zero.Value)
}

func TestParseCode_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		err  error
	}{
		{"UnknownSymbol", "12xA", keypad.ErrUnknownSymbol},
		{"DirectionalSymbol", "1^A", keypad.ErrUnknownSymbol},
		{"MissingActivate", "029", complexity.ErrMalformedCode},
		{"ActivateInside", "0A9A", complexity.ErrMalformedCode},
		{"OnlyActivate", "A", complexity.ErrNoDigits},
		{"Empty", "", complexity.ErrMalformedCode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := complexity.ParseCode(7, tc.text, keypad.Numeric())
			require.ErrorIs(t, err, tc.err)

			var pe *complexity.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, 7, pe.Line)
			assert.Equal(t, tc.text, pe.Text)
		})
	}
}

func TestParseCodes(t *testing.T) {
	in := "029A\r\n9x8A\n  179A  \n\n456A\n"
	codes, failures, err := complexity.ParseCodes(strings.NewReader(in), keypad.Numeric())
	require.NoError(t, err)

	require.Len(t, codes, 2, "scan stops at the blank line")
	assert.Equal(t, "029A", codes[0].Text)
	assert.Equal(t, 1, codes[0].Line)
	assert.Equal(t, "179A", codes[1].Text)
	assert.Equal(t, 3, codes[1].Line)

	require.Len(t, failures, 1)
	assert.Equal(t, 2, failures[0].Line)
	assert.ErrorIs(t, failures[0], keypad.ErrUnknownSymbol)
}

func TestParseCodes_Empty(t *testing.T) {
	codes, failures, err := complexity.ParseCodes(strings.NewReader(""), keypad.Numeric())
	require.NoError(t, err)
	assert.Empty(t, codes)
	assert.Empty(t, failures)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestParseCodes_ReadError(t *testing.T) {
	_, _, err := complexity.ParseCodes(failingReader{}, keypad.Numeric())
	require.ErrorContains(t, err, "disk on fire")
}

func TestParseCodes_LineLength(t *testing.T) {
	atLimit := strings.Repeat("0", complexity.MaxLineLength-2) + "1A"
	over := strings.Repeat("7", complexity.MaxLineLength) + "A"
	in := atLimit + "\n" + over + "\n980A"

	codes, failures, err := complexity.ParseCodes(strings.NewReader(in), keypad.Numeric())
	require.NoError(t, err)

	require.Len(t, codes, 2)
	assert.Equal(t, uint64(1), codes[0].Value)
	assert.Equal(t, "980A", codes[1].Text, "a final line without newline is read")
	assert.Equal(t, 3, codes[1].Line)

	require.Len(t, failures, 1)
	assert.Equal(t, 2, failures[0].Line)
	assert.ErrorIs(t, failures[0], complexity.ErrLineTooLong)
	assert.True(t, strings.HasSuffix(failures[0].Text, "…"))
}
