package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Aleod-m/typers/cmd/typers/ui"
	"github.com/Aleod-m/typers/pkg/unsigned"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [literal]",
	Short: "Show the digit structure of a number",
	Long: `Parses a decimal or 0b literal without canonicalizing it and shows its
digits, depth, canonical form and nested Single/Composite structure.

Example:
  typers inspect 0b00101`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

type inspection struct {
	Literal   string `json:"literal"`
	Digits    string `json:"digits"`
	Decimal   string `json:"decimal"`
	Depth     int    `json:"depth"`
	Canonical bool   `json:"canonical"`
	CanonForm string `json:"canonical_form"`
	Lsb       string `json:"lsb"`
	Msb       string `json:"msb"`
	Structure string `json:"structure"`
}

func inspect(literal string) (inspection, error) {
	u, err := unsigned.ParseRaw(literal)
	if err != nil {
		return inspection{}, err
	}
	in := inspection{
		Literal:   literal,
		Digits:    u.String(),
		Decimal:   unsigned.Decimal(u),
		Depth:     u.Depth(),
		Canonical: unsigned.IsCanonical(u),
		CanonForm: unsigned.Canonicalize(u).String(),
		Lsb:       u.Lsb().String(),
		Structure: structure(u),
	}
	if msb, err := unsigned.Msb(u); err != nil {
		if !errors.Is(err, unsigned.ErrPoison) {
			return inspection{}, err
		}
		in.Msb = "poison"
	} else {
		in.Msb = msb.String()
	}
	return in, nil
}

func structure(u unsigned.Unsigned) string {
	switch v := u.(type) {
	case unsigned.Single:
		return fmt.Sprintf("Single(%s)", v.Digit)
	case unsigned.Composite:
		return fmt.Sprintf("Composite(%s, %s)", structure(v.Prefix), v.Digit)
	}
	return fmt.Sprintf("%T", u)
}

func runInspect(cmd *cobra.Command, args []string) error {
	format, err := resolveFormat()
	if err != nil {
		return err
	}
	in, err := inspect(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		return printJSON(out, in)
	}

	styles := currentStyles()
	t := ui.NewSimpleTable("inspect "+in.Literal, "property", "value")
	t.AddRow("digits", styles.Digits(in.Digits))
	t.AddRow("decimal", in.Decimal)
	t.AddRow("depth", strconv.Itoa(in.Depth))
	t.AddRow("canonical", strconv.FormatBool(in.Canonical))
	t.AddRow("canonical form", styles.Digits(in.CanonForm))
	t.AddRow("lsb", in.Lsb)
	t.AddRow("msb", in.Msb)
	t.AddRow("structure", in.Structure)
	fmt.Fprint(out, t.View(styles))
	return nil
}
