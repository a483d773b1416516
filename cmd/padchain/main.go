// Command padchain reads door codes and prints the sum of their
// complexities through a chain of keypads.
//
//	padchain < codes.txt
//	padchain --depth 25 --input codes.txt
//	padchain expand 029A
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/padchain/chain"
	"github.com/katalvlaran/padchain/complexity"
	"github.com/katalvlaran/padchain/internal/config"
	"github.com/katalvlaran/padchain/internal/logging"
	"github.com/katalvlaran/padchain/keypad"
)

// cli holds flag values and the state built in PersistentPreRunE.
type cli struct {
	configPath string
	inputPath  string
	depth      int
	workers    int
	noMemo     bool
	logLevel   string
	verbose    bool
	breakdown  bool

	cfg    *config.Config
	logger *zap.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "padchain",
		Short: "Minimal keypad-chain press counts for door codes",
		Long: `padchain reads door codes (digits followed by A), one per line, from
stdin or --input until EOF or the first blank line. Each code is typed on a
numeric keypad steered through --depth directional keypads, the last one
pressed by a human. The sum over codes of presses × numeric value is printed.

Lines that fail are reported on stderr; the total covers the rest.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
		RunE: c.runTotal,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "YAML config file")
	pf.IntVar(&c.depth, "depth", 0, "directional keypads between the human and the numeric pad (default from config: 2)")
	pf.BoolVar(&c.noMemo, "no-memo", false, "disable the (layer, from, to) cost table")
	pf.StringVar(&c.logLevel, "log-level", "", "debug, info, warn or error")
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "debug logging")

	f := root.Flags()
	f.StringVarP(&c.inputPath, "input", "i", "", "read codes from this file instead of stdin")
	f.IntVar(&c.workers, "workers", 0, "codes resolved concurrently (default from config: 4)")
	f.BoolVar(&c.breakdown, "breakdown", false, "print one line per code before the total")

	root.AddCommand(&cobra.Command{
		Use:   "expand [code...]",
		Short: "Print one optimal human press sequence per code",
		Args:  cobra.MinimumNArgs(1),
		RunE:  c.runExpand,
	})
	return root
}

// setup merges config file, environment and flags, then builds the logger.
func (c *cli) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("depth") {
		cfg.Chain.Depth = c.depth
	}
	if flags.Changed("workers") {
		cfg.Workers = c.workers
	}
	if flags.Changed("no-memo") {
		cfg.Chain.Memo = !c.noMemo
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = c.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg

	c.logger, err = logging.New(cfg.Logging, c.verbose)
	return err
}

func (c *cli) buildChain() (*chain.Chain, error) {
	return chain.NewKeypadChain(c.cfg.Chain.Depth,
		chain.WithMemo(c.cfg.Chain.Memo),
		chain.WithLogger(c.logger.Named("chain")),
	)
}

func (c *cli) runTotal(cmd *cobra.Command, args []string) error {
	in := cmd.InOrStdin()
	if c.inputPath != "" {
		fh, err := os.Open(c.inputPath)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer fh.Close()
		in = fh
	}

	ch, err := c.buildChain()
	if err != nil {
		return err
	}
	agg, err := complexity.New(ch,
		complexity.WithWorkers(c.cfg.Workers),
		complexity.WithLogger(c.logger.Named("complexity")),
	)
	if err != nil {
		return err
	}

	res, err := agg.Run(cmd.Context(), in)
	if err != nil {
		return err
	}
	report(cmd.OutOrStdout(), cmd.ErrOrStderr(), res, c.breakdown)
	return nil
}

func report(out, errOut io.Writer, res complexity.Result, breakdown bool) {
	for _, f := range res.Failures {
		fmt.Fprintln(errOut, f)
	}
	if breakdown {
		for _, sc := range res.Scored {
			fmt.Fprintf(out, "%s %d × %d = %d\n", sc.Code.Text, sc.Presses, sc.Code.Value, sc.Complexity)
		}
	}
	fmt.Fprintln(out, res.Total)
}

func (c *cli) runExpand(cmd *cobra.Command, args []string) error {
	ch, err := c.buildChain()
	if err != nil {
		return err
	}
	outer := ch.Outermost().Layout()
	for i, text := range args {
		code, err := complexity.ParseCode(i+1, text, outer)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			continue
		}
		presses, err := ch.Expand(code.Symbols)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%d)\n", code.Text, runes(presses), len(presses))
	}
	return nil
}

func runes(s []keypad.Symbol) string {
	b := make([]rune, len(s))
	for i, v := range s {
		b[i] = rune(v)
	}
	return string(b)
}
