package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aleod-m/typers/cmd/typers/ui"
	"github.com/Aleod-m/typers/pkg/bit"
)

var tableCmd = &cobra.Command{
	Use:   "table [op...]",
	Short: "Print the truth tables of the bit primitives",
	Long: `Prints the truth table of each named bit primitive, or of all of them.

Primitives: not and or xor add carry fulladd fullcarry diff borrow fulldiff
fullborrow.`,
	RunE: runTable,
}

type truthTable struct {
	Op   string  `json:"op"`
	Rows [][]int `json:"rows"` // inputs..., output
}

func truthTables(names []string) ([]truthTable, error) {
	ops := bit.Ops()
	if len(names) > 0 {
		ops = ops[:0:0]
		for _, n := range names {
			ops = append(ops, bit.Op(n))
		}
	}

	tables := make([]truthTable, 0, len(ops))
	for _, op := range ops {
		rows, err := bit.Table(op)
		if err != nil {
			return nil, err
		}
		tt := truthTable{Op: string(op)}
		for _, r := range rows {
			line := make([]int, 0, len(r.Inputs)+1)
			for _, in := range r.Inputs {
				line = append(line, int(in.Usize()))
			}
			tt.Rows = append(tt.Rows, append(line, int(r.Output.Usize())))
		}
		tables = append(tables, tt)
	}
	return tables, nil
}

func runTable(cmd *cobra.Command, args []string) error {
	format, err := resolveFormat()
	if err != nil {
		return err
	}
	tables, err := truthTables(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		return printJSON(out, tables)
	}

	styles := currentStyles()
	inputs := []string{"a", "b", "c"}
	for _, tt := range tables {
		arity := len(tt.Rows[0]) - 1
		t := ui.NewSimpleTable(tt.Op, append(append([]string{}, inputs[:arity]...), "out")...)
		for _, row := range tt.Rows {
			cells := make([]string, len(row))
			for i, v := range row {
				cells[i] = styles.Digits(fmt.Sprint(v))
			}
			t.AddRow(cells...)
		}
		fmt.Fprintln(out, t.View(styles))
	}
	return nil
}
