package complexity

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/bits"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/padchain/chain"
)

var (
	// ErrNilChain indicates New was called without a chain.
	ErrNilChain = errors.New("complexity: chain is nil")

	// ErrTotalOverflow indicates the sum of complexities exceeded uint64.
	ErrTotalOverflow = errors.New("complexity: total overflows uint64")
)

// ResolveError reports a code that parsed but could not be costed.
type ResolveError struct {
	Line int
	Text string
	Err  error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ResolveError) Unwrap() error { return e.Err }

// LineNumber returns the 1-based input line of the failure.
func (e *ResolveError) LineNumber() int { return e.Line }

// Scored is a resolved code.
type Scored struct {
	Code       Code
	Presses    uint64
	Complexity uint64
}

// Result is the outcome of one batch.
type Result struct {
	Total    uint64
	Scored   []Scored // in input order
	Failures []error  // *ParseError or *ResolveError, ordered by line
}

// Options configures an Aggregator.
//
// Workers – maximum codes resolved at once. Default 1; values < 1 mean 1.
// Logger  – per-code debug records and a batch summary. Default no-op.
type Options struct {
	Workers int
	Logger  *zap.Logger
}

// Option represents a functional option for configuring an Aggregator.
type Option func(*Options)

// DefaultOptions returns sequential resolution with a no-op logger.
func DefaultOptions() Options {
	return Options{Workers: 1, Logger: zap.NewNop()}
}

// WithWorkers bounds concurrent code resolutions.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = 1
		}
		o.Workers = n
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

// Aggregator resolves batches of codes against one chain.
type Aggregator struct {
	chain   *chain.Chain
	workers int
	log     *zap.Logger
}

// New returns an Aggregator over c.
func New(c *chain.Chain, opts ...Option) (*Aggregator, error) {
	if c == nil {
		return nil, ErrNilChain
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Aggregator{chain: c, workers: cfg.Workers, log: cfg.Logger}, nil
}

// Run parses codes from r and sums their complexities. Parse failures land
// in Result.Failures next to resolution failures.
func (a *Aggregator) Run(ctx context.Context, r io.Reader) (Result, error) {
	codes, parseFailures, err := ParseCodes(r, a.chain.Outermost().Layout())
	if err != nil {
		return Result{}, err
	}
	res, err := a.resolve(ctx, codes)
	if err != nil {
		return Result{}, err
	}
	for _, pf := range parseFailures {
		a.log.Warn("code rejected", zap.Int("line", pf.Line), zap.String("code", pf.Text), zap.Error(pf.Err))
		res.Failures = append(res.Failures, pf)
	}
	sortFailures(res.Failures)
	a.logSummary(len(codes), res)
	return res, nil
}

// Sum resolves codes concurrently and adds up value × presses. It only
// fails for a cancelled ctx or a total beyond uint64.
func (a *Aggregator) Sum(ctx context.Context, codes []Code) (Result, error) {
	res, err := a.resolve(ctx, codes)
	if err != nil {
		return Result{}, err
	}
	a.logSummary(len(codes), res)
	return res, nil
}

func (a *Aggregator) resolve(ctx context.Context, codes []Code) (Result, error) {
	scored := make([]Scored, len(codes))
	errs := make([]error, len(codes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for i := range codes {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			scored[i], errs[i] = a.score(codes[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	var res Result
	for i, sc := range scored {
		if errs[i] != nil {
			a.log.Warn("code unresolved", zap.Int("line", codes[i].Line), zap.String("code", codes[i].Text), zap.Error(errs[i]))
			res.Failures = append(res.Failures, errs[i])
			continue
		}
		var carry uint64
		if res.Total, carry = bits.Add64(res.Total, sc.Complexity, 0); carry != 0 {
			return Result{}, ErrTotalOverflow
		}
		res.Scored = append(res.Scored, sc)
	}
	sortFailures(res.Failures)
	return res, nil
}

// logSummary records one line per batch; failures counts parse and
// resolution failures alike.
func (a *Aggregator) logSummary(codes int, res Result) {
	a.log.Info("batch resolved",
		zap.Int("codes", codes),
		zap.Int("scored", len(res.Scored)),
		zap.Int("failures", len(res.Failures)),
		zap.Int("depth", a.chain.Depth()),
		zap.Uint64("total", res.Total),
	)
}

func (a *Aggregator) score(c Code) (Scored, error) {
	presses, err := a.chain.MinCostForSequence(c.Symbols)
	if err != nil {
		return Scored{}, &ResolveError{Line: c.Line, Text: c.Text, Err: err}
	}
	hi, complexity := bits.Mul64(presses, c.Value)
	if hi != 0 {
		return Scored{}, &ResolveError{Line: c.Line, Text: c.Text, Err: chain.ErrOverflow}
	}
	a.log.Debug("code resolved",
		zap.Int("line", c.Line),
		zap.String("code", c.Text),
		zap.Uint64("presses", presses),
		zap.Uint64("complexity", complexity),
	)
	return Scored{Code: c, Presses: presses, Complexity: complexity}, nil
}

type lineNumbered interface{ LineNumber() int }

func sortFailures(fs []error) {
	sort.SliceStable(fs, func(i, j int) bool {
		return lineOf(fs[i]) < lineOf(fs[j])
	})
}

func lineOf(err error) int {
	var ln lineNumbered
	if errors.As(err, &ln) {
		return ln.LineNumber()
	}
	return 0
}
