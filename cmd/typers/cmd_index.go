package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aleod-m/typers/pkg/tlist"
	"github.com/Aleod-m/typers/pkg/unsigned"
)

var indexCmd = &cobra.Command{
	Use:   "index [index] [values...]",
	Short: "Look up an element of a heterogeneous list by an unsigned index",
	Long: `Builds a heterogeneous list from the values (numeric literals become
unsigned numbers, "true"/"false" booleans, anything else strings) and
fetches the element at the given index by decrementing the index until it
reaches zero.

Example:
  typers index 0b10 hello true 42`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIndex,
}

type indexResult struct {
	List  string `json:"list"`
	Len   string `json:"len"`
	Index string `json:"index"`
	Value string `json:"value"`
	Type  string `json:"type"`
}

// listValue converts a command-line word into a list element.
func listValue(s string) any {
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	if u, err := unsigned.Parse(s); err == nil {
		return u
	}
	return s
}

func lookup(index string, words []string) (indexResult, error) {
	idx, err := unsigned.ParseRaw(index)
	if err != nil {
		return indexResult{}, fmt.Errorf("index: %w", err)
	}
	values := make([]any, len(words))
	for i, w := range words {
		values[i] = listValue(w)
	}
	l := tlist.New(values...)

	v, err := tlist.Get(l, idx)
	if err != nil {
		return indexResult{}, err
	}
	res := indexResult{
		List:  fmt.Sprint(l),
		Len:   unsigned.Decimal(l.Len()),
		Index: unsigned.Decimal(idx),
		Value: fmt.Sprint(v),
		Type:  fmt.Sprintf("%T", v),
	}
	if u, ok := v.(unsigned.Unsigned); ok {
		res.Value = fmt.Sprintf("%s (%s)", u, unsigned.Decimal(u))
	}
	return res, nil
}

func runIndex(cmd *cobra.Command, args []string) error {
	format, err := resolveFormat()
	if err != nil {
		return err
	}
	res, err := lookup(args[0], args[1:])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		return printJSON(out, res)
	}
	fmt.Fprintf(out, "%s[%s] = %s : %s\n", res.List, res.Index, res.Value, res.Type)
	return nil
}
