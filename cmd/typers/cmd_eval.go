package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Aleod-m/typers/internal/expr"
	"github.com/Aleod-m/typers/pkg/unsigned"
)

var evalCmd = &cobra.Command{
	Use:   "eval [expression]",
	Short: "Evaluate an arithmetic expression",
	Long: `Evaluates an expression over unsigned binary integers.

Literals are decimal (canonical) or 0b-prefixed binary (kept raw, leading
zeros included). Operators: + - * << >> == != < <= > >=.
Functions: ` + strings.Join(expr.Functions(), ", ") + `.

Subtraction wraps modulo the wider operand's width; dec(0) and msb of a
single digit are poison and fail the evaluation.

Example:
  typers eval '4 * 3'
  typers eval 'if(iszero(0), 1, dec(0))'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

type evalResult struct {
	Expression string `json:"expression"`
	Kind       string `json:"kind"`
	Binary     string `json:"binary"`
	Decimal    string `json:"decimal,omitempty"`
	Depth      int    `json:"depth,omitempty"`
}

func runEval(cmd *cobra.Command, args []string) error {
	format, err := resolveFormat()
	if err != nil {
		return err
	}
	src := strings.Join(args, " ")
	logger.Debug("evaluating", zap.String("expression", src))

	v, err := expr.EvalString(src, nil)
	if err != nil {
		if errors.Is(err, unsigned.ErrPoison) {
			return fmt.Errorf("poisoned result: %w", err)
		}
		return err
	}

	res := evalResult{Expression: src, Kind: v.Kind.String(), Binary: v.Binary()}
	if v.Kind == expr.KindNum {
		res.Decimal = v.String()
		res.Depth = v.Num.Depth()
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		return printJSON(out, res)
	}
	if v.Kind == expr.KindBool {
		fmt.Fprintln(out, res.Binary)
		return nil
	}
	fmt.Fprintf(out, "%s (%s)\n", currentStyles().Digits(res.Binary), res.Decimal)
	return nil
}
