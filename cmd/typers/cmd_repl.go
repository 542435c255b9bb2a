package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Aleod-m/typers/cmd/typers/ui"
	"github.com/Aleod-m/typers/internal/expr"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive expression evaluator",
	Long: `Starts an interactive session. Each line is evaluated like 'typers eval';
the previous result is available as ans.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

// newSessionEvaluator returns an evaluator that binds each successful
// result to ans.
func newSessionEvaluator(styles ui.Styles) ui.Evaluator {
	env := expr.Env{}
	return func(line string) (string, error) {
		v, err := expr.EvalString(line, env)
		if err != nil {
			return "", err
		}
		env["ans"] = v
		if v.Kind == expr.KindBool {
			return v.String(), nil
		}
		return fmt.Sprintf("%s (%s)", styles.Digits(v.Binary()), v.String()), nil
	}
}

func runRepl(cmd *cobra.Command, args []string) error {
	styles := currentStyles()
	model := ui.NewReplModel(newSessionEvaluator(styles), styles)
	_, err := tea.NewProgram(model).Run()
	return err
}
