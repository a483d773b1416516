package complexity_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/padchain/chain"
	"github.com/katalvlaran/padchain/complexity"
	"github.com/katalvlaran/padchain/keypad"
)

const referenceInput = "029A\n980A\n179A\n456A\n379A\n"

// AggregatorSuite runs whole batches through the canonical chain.
type AggregatorSuite struct {
	suite.Suite
	ctx context.Context
}

func TestAggregatorSuite(t *testing.T) {
	suite.Run(t, new(AggregatorSuite))
}

func (s *AggregatorSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *AggregatorSuite) aggregator(depth int, opts ...complexity.Option) *complexity.Aggregator {
	c, err := chain.NewKeypadChain(depth)
	s.Require().NoError(err)
	a, err := complexity.New(c, opts...)
	s.Require().NoError(err)
	return a
}

// TestReferenceDepth2 reproduces the sample total at two directional layers.
func (s *AggregatorSuite) TestReferenceDepth2() {
	res, err := s.aggregator(2).Run(s.ctx, strings.NewReader(referenceInput))
	s.Require().NoError(err)
	s.Empty(res.Failures)
	s.Equal(uint64(126384), res.Total)

	s.Require().Len(res.Scored, 5)
	s.Equal(uint64(68), res.Scored[0].Presses)
	s.Equal(uint64(68*29), res.Scored[0].Complexity)
}

// TestReferenceDepth25 needs the memo to finish.
func (s *AggregatorSuite) TestReferenceDepth25() {
	res, err := s.aggregator(25, complexity.WithWorkers(4)).Run(s.ctx, strings.NewReader(referenceInput))
	s.Require().NoError(err)
	s.Equal(uint64(154115708116294), res.Total)
}

func (s *AggregatorSuite) TestEmptyInput() {
	res, err := s.aggregator(2).Run(s.ctx, strings.NewReader(""))
	s.Require().NoError(err)
	s.Zero(res.Total)
	s.Empty(res.Scored)
	s.Empty(res.Failures)

	res, err = s.aggregator(2).Sum(s.ctx, nil)
	s.Require().NoError(err)
	s.Zero(res.Total)
}

// TestBadLineDoesNotAbortBatch keeps the valid codes' total intact.
func (s *AggregatorSuite) TestBadLineDoesNotAbortBatch() {
	in := "029A\n12xA\n980A\n179A\nA\n456A\n379A\n"
	res, err := s.aggregator(2).Run(s.ctx, strings.NewReader(in))
	s.Require().NoError(err)
	s.Equal(uint64(126384), res.Total)

	s.Require().Len(res.Failures, 2)
	s.ErrorIs(res.Failures[0], keypad.ErrUnknownSymbol)
	s.ErrorIs(res.Failures[1], complexity.ErrNoDigits)
	s.Contains(res.Failures[0].Error(), "line 2")
	s.Contains(res.Failures[1].Error(), "line 5")
}

// TestOrderIndependent sums the same codes in two orders.
func (s *AggregatorSuite) TestOrderIndependent() {
	a := s.aggregator(2)
	fwd, err := a.Run(s.ctx, strings.NewReader("029A\n980A\n"))
	s.Require().NoError(err)
	rev, err := a.Run(s.ctx, strings.NewReader("980A\n029A\n"))
	s.Require().NoError(err)
	s.Equal(fwd.Total, rev.Total)
	s.Equal(uint64(68*29+60*980), fwd.Total)
}

// TestWorkersAgree compares sequential and concurrent batches.
func (s *AggregatorSuite) TestWorkersAgree() {
	seq, err := s.aggregator(3, complexity.WithWorkers(1)).Run(s.ctx, strings.NewReader(referenceInput))
	s.Require().NoError(err)
	par, err := s.aggregator(3, complexity.WithWorkers(8)).Run(s.ctx, strings.NewReader(referenceInput))
	s.Require().NoError(err)
	s.Equal(seq.Total, par.Total)
	s.Equal(seq.Scored, par.Scored)
}

// TestResolveOverflow reports an overflowing code per line.
func (s *AggregatorSuite) TestResolveOverflow() {
	res, err := s.aggregator(100).Run(s.ctx, strings.NewReader("029A\n"))
	s.Require().NoError(err)
	s.Zero(res.Total)
	s.Require().Len(res.Failures, 1)
	s.ErrorIs(res.Failures[0], chain.ErrOverflow)

	var re *complexity.ResolveError
	s.Require().ErrorAs(res.Failures[0], &re)
	s.Equal(1, re.Line)
}

func (s *AggregatorSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	_, err := s.aggregator(2).Run(ctx, strings.NewReader(referenceInput))
	s.Require().ErrorIs(err, context.Canceled)
}

// TestLogsSummary checks the batch summary record.
func (s *AggregatorSuite) TestLogsSummary() {
	core, logs := observer.New(zap.InfoLevel)
	a := s.aggregator(2, complexity.WithLogger(zap.New(core)))

	_, err := a.Run(s.ctx, strings.NewReader("029A\n9x\n"))
	s.Require().NoError(err)

	summary := logs.FilterMessage("batch resolved").All()
	s.Require().Len(summary, 1)
	fields := summary[0].ContextMap()
	s.Equal(int64(1), fields["codes"])
	s.Equal(int64(1), fields["scored"])
	s.Equal(int64(1), fields["failures"], "rejected lines count as failures")
	s.Equal(uint64(68*29), fields["total"])
	s.Len(logs.FilterMessage("code rejected").All(), 1)
}

// TestOversizedLineIsPerLine keeps the codes around a line beyond
// MaxLineLength.
func (s *AggregatorSuite) TestOversizedLineIsPerLine() {
	in := "029A\n" + strings.Repeat("1", 70000) + "A\n980A\n"
	res, err := s.aggregator(2).Run(s.ctx, strings.NewReader(in))
	s.Require().NoError(err)
	s.Equal(uint64(68*29+60*980), res.Total)
	s.Len(res.Scored, 2)

	s.Require().Len(res.Failures, 1)
	s.ErrorIs(res.Failures[0], complexity.ErrLineTooLong)
	s.ErrorIs(res.Failures[0], complexity.ErrMalformedCode)

	var pe *complexity.ParseError
	s.Require().ErrorAs(res.Failures[0], &pe)
	s.Equal(2, pe.Line)
	s.Less(len(pe.Text), 100)
}

func TestNew_NilChain(t *testing.T) {
	_, err := complexity.New(nil)
	require.ErrorIs(t, err, complexity.ErrNilChain)
}
