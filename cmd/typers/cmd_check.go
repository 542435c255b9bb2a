package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Aleod-m/typers/cmd/typers/ui"
	"github.com/Aleod-m/typers/internal/laws"
)

var (
	checkMax     int
	checkWorkers int
	checkLaws    []string
	checkTimeout time.Duration
	checkProgram bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Cross-check the arithmetic against native integers and algebraic laws",
	Long: `Computes every operation for all operand pairs in 0..max, asserts the
results as Datalog facts and evaluates rules that derive a violation for
each disagreement with native arithmetic or with an algebraic law
(commutativity, associativity, identities, inc/dec round-trips, shifts,
decrement-of-zero poisoning).

Defaults come from the check section of the config file.

Example:
  typers check --max 32 --workers 8
  typers check --law add_native --law sub_self`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().IntVar(&checkMax, "max", 0, "Largest operand (default from config)")
	checkCmd.Flags().IntVar(&checkWorkers, "workers", 0, "Concurrent fact generators (default from config)")
	checkCmd.Flags().StringSliceVar(&checkLaws, "law", nil, "Check only the named laws (repeatable)")
	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", 0, "Abort after this long (default from config)")
	checkCmd.Flags().BoolVar(&checkProgram, "program", false, "Print the Datalog rules and exit")
}

func checkOptions() laws.Options {
	opts := laws.Options{
		MaxValue: cfg.Check.MaxValue,
		Workers:  cfg.Check.Workers,
		Laws:     cfg.Check.Laws,
		Timeout:  cfg.Check.GetTimeout(),
	}
	if checkMax > 0 {
		opts.MaxValue = checkMax
	}
	if checkWorkers > 0 {
		opts.Workers = checkWorkers
	}
	if len(checkLaws) > 0 {
		opts.Laws = checkLaws
	}
	if checkTimeout > 0 {
		opts.Timeout = checkTimeout
	}
	return opts
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if checkProgram {
		fmt.Fprint(out, laws.Program())
		return nil
	}

	format, err := resolveFormat()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := checkOptions()
	checker, err := laws.NewChecker(opts)
	if err != nil {
		return err
	}
	logger.Info("running law check", zap.Int("max", opts.MaxValue), zap.Int("workers", opts.Workers))

	report, err := checker.Run(ctx)
	if err != nil {
		return err
	}
	logger.Info("law check finished",
		zap.String("id", report.ID),
		zap.Int("violations", len(report.Violations)),
		zap.Duration("duration", report.Duration))

	if format == "json" {
		if err := printJSON(out, report); err != nil {
			return err
		}
	} else {
		fmt.Fprint(out, renderReport(report, currentStyles()))
	}

	if !report.OK() {
		return fmt.Errorf("%d law violations", len(report.Violations))
	}
	return nil
}

func renderReport(r *laws.Report, styles ui.Styles) string {
	failed := make(map[string]int)
	for _, v := range r.Violations {
		failed[v.Law]++
	}

	t := ui.NewSimpleTable(fmt.Sprintf("law check %s (operands 0..%d)", r.ID, r.MaxValue), "law", "status", "violations")
	for _, l := range r.Laws {
		status := styles.Success.Render("ok")
		if failed[l] > 0 {
			status = styles.Error.Render("FAIL")
		}
		t.AddRow(l, status, strconv.Itoa(failed[l]))
	}
	t.Footer = fmt.Sprintf("%d facts, %d violations, %v", r.Facts, len(r.Violations), r.Duration.Round(time.Millisecond))

	s := t.View(styles)
	for _, v := range r.Violations {
		s += styles.Error.Render("violation: "+v.String()) + "\n"
	}
	return s
}
