package chain

import (
	"errors"

	"go.uber.org/zap"
)

// Sentinel errors returned by chain construction and resolution.
var (
	// ErrNoPads indicates a chain was requested without any layout.
	ErrNoPads = errors.New("chain: at least one layout is required")

	// ErrNegativeDepth indicates a negative number of directional layers.
	ErrNegativeDepth = errors.New("chain: depth must be non-negative")

	// ErrNilLayout indicates a nil *keypad.Layout in the chain.
	ErrNilLayout = errors.New("chain: layout is nil")

	// ErrNoActivate indicates a layout without the "A" button arms park over.
	ErrNoActivate = errors.New("chain: layout has no activate button")

	// ErrNotDirectional indicates an inner layout that cannot steer the pad above it.
	ErrNotDirectional = errors.New("chain: inner layout lacks a move button")

	// ErrMissingPath indicates two buttons with no route between them.
	ErrMissingPath = errors.New("chain: no path between buttons")

	// ErrOverflow indicates the press count exceeded the uint64 range.
	ErrOverflow = errors.New("chain: press count overflows uint64")

	// ErrExpandTooLong indicates Expand was asked for more presses than its limit.
	ErrExpandTooLong = errors.New("chain: press sequence exceeds expand limit")
)

// DefaultExpandLimit is the longest press sequence Expand materialises
// unless WithExpandLimit says otherwise.
const DefaultExpandLimit = 1 << 20

// Options configures a Chain.
//
// Memo        – cache cost(layer, from, to) across calls. Default true.
// Logger      – receives debug records for every computed pair cost. Default no-op.
// ExpandLimit – most presses Expand returns. Default DefaultExpandLimit.
type Options struct {
	Memo        bool
	Logger      *zap.Logger
	ExpandLimit uint64
}

// Option represents a functional option for configuring a Chain.
type Option func(*Options)

// DefaultOptions returns Options with the memo enabled and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Memo:        true,
		Logger:      zap.NewNop(),
		ExpandLimit: DefaultExpandLimit,
	}
}

// WithMemo enables or disables the (layer, from, to) cost table.
func WithMemo(enabled bool) Option {
	return func(o *Options) {
		o.Memo = enabled
	}
}

// WithLogger sets the logger. Passing nil keeps the current one.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithExpandLimit caps the length of sequences built by Expand. Zero keeps
// the current limit.
func WithExpandLimit(n uint64) Option {
	return func(o *Options) {
		if n > 0 {
			o.ExpandLimit = n
		}
	}
}
