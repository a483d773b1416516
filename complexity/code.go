package complexity

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/padchain/keypad"
)

var (
	// ErrMalformedCode indicates a line that is not digits followed by "A".
	ErrMalformedCode = errors.New("complexity: code must be digits followed by a single A")

	// ErrNoDigits indicates a code with nothing before its trailing "A".
	ErrNoDigits = errors.New("complexity: code has no digits")

	// ErrLineTooLong indicates an input line longer than MaxLineLength.
	ErrLineTooLong = fmt.Errorf("%w: line exceeds %d bytes", ErrMalformedCode, MaxLineLength)
)

// MaxLineLength bounds the bytes kept from one input line. Longer lines are
// reported as *ParseError wrapping ErrLineTooLong and skipped.
const MaxLineLength = 4096

// quoteLimit bounds the text stored in a ParseError for an oversized line.
const quoteLimit = 32

// ParseError reports why one input line could not become a Code.
type ParseError struct {
	Line int    // 1-based input line
	Text string // the offending line
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// LineNumber returns the 1-based input line of the failure.
func (e *ParseError) LineNumber() int { return e.Line }

// Code is one requested target sequence.
type Code struct {
	Line    int
	Text    string
	Symbols []keypad.Symbol
	Value   uint64 // the integer spelled by the digits before "A"
}

// ParseCode validates text against the outermost layout and extracts its
// numeric value. Every failure is a *ParseError.
func ParseCode(line int, text string, outer *keypad.Layout) (Code, error) {
	fail := func(err error) (Code, error) {
		return Code{}, &ParseError{Line: line, Text: text, Err: err}
	}

	syms := make([]keypad.Symbol, 0, len(text))
	for _, r := range text {
		s := keypad.Symbol(r)
		if _, err := outer.PositionOf(s); err != nil {
			return fail(err)
		}
		syms = append(syms, s)
	}
	if len(syms) == 0 || syms[len(syms)-1] != keypad.ActivateSymbol {
		return fail(ErrMalformedCode)
	}

	digits := syms[:len(syms)-1]
	if len(digits) == 0 {
		return fail(ErrNoDigits)
	}
	for _, s := range digits {
		if s < '0' || s > '9' {
			return fail(fmt.Errorf("%w: %q", ErrMalformedCode, rune(s)))
		}
	}
	value, err := strconv.ParseUint(strings.TrimSuffix(text, string(keypad.ActivateSymbol)), 10, 64)
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrMalformedCode, err))
	}

	return Code{Line: line, Text: text, Symbols: syms, Value: value}, nil
}

// ParseCodes reads one code per line until EOF or the first blank line.
// Lines that fail to parse, oversized ones included, are returned as
// *ParseError values and do not stop the scan; err is only set when
// reading r fails.
func ParseCodes(r io.Reader, outer *keypad.Layout) (codes []Code, failures []*ParseError, err error) {
	br := bufio.NewReader(r)
	line := 0
	for {
		raw, tooLong, rerr := readLine(br)
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return nil, nil, fmt.Errorf("complexity: read codes: %w", rerr)
		}
		line++

		text := strings.TrimSpace(raw)
		if tooLong {
			failures = append(failures, &ParseError{Line: line, Text: clip(text), Err: ErrLineTooLong})
			continue
		}
		if text == "" {
			break
		}
		code, perr := ParseCode(line, text, outer)
		if perr != nil {
			var pe *ParseError
			if errors.As(perr, &pe) {
				failures = append(failures, pe)
				continue
			}
			return nil, nil, perr
		}
		codes = append(codes, code)
	}
	return codes, failures, nil
}

func clip(s string) string {
	r := []rune(s)
	if len(r) <= quoteLimit {
		return s
	}
	return string(r[:quoteLimit]) + "…"
}

// readLine returns the next line without its terminator. At most
// MaxLineLength bytes are kept; the rest of a longer line is drained and
// tooLong is set. io.EOF is only returned when no line remains.
func readLine(br *bufio.Reader) (text string, tooLong bool, err error) {
	var buf []byte
	started := false
	for {
		chunk, isPrefix, err := br.ReadLine()
		if err != nil {
			if err == io.EOF && started {
				return string(buf), tooLong, nil
			}
			return "", false, err
		}
		started = true
		if !tooLong {
			buf = append(buf, chunk...)
			if len(buf) > MaxLineLength {
				buf = buf[:MaxLineLength]
				tooLong = true
			}
		}
		if !isPrefix {
			return string(buf), tooLong, nil
		}
	}
}
