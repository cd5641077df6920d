// Package cli wires the solver's commands together.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/eriklarko/boolean-solver/src/boolexpr"
	"github.com/eriklarko/boolean-solver/src/config"
	"github.com/eriklarko/boolean-solver/src/truthtable"
	"github.com/eriklarko/boolean-solver/src/tui"
	"github.com/spf13/cobra"
)

// rootCmd evaluates a single expression. The expression comes from the first
// argument if there is one, otherwise one line is read from stdin.
var rootCmd = &cobra.Command{
	Use:   "boolean-solver [expression]",
	Short: "Evaluate boolean expressions and generate truth tables.",
	Long: `Evaluate boolean expressions written with '+' for OR, '·' for AND and
'!' for NOT. Parentheses group, '0' and '1' are literals, and any single
letter is a variable. Variables without a value are true.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		conf := loadConfig(cmd)
		ui := tui.New()

		expression, err := readExpression(ui, args)
		if err != nil {
			return err
		}

		if truthTableMode, _ := cmd.Flags().GetBool("truth-table"); truthTableMode {
			table, err := truthtable.BuildWithLimit(expression, conf.MaxVariables)
			if err != nil {
				return err
			}
			ui.ShowTable(table)
			return nil
		}

		result, err := boolexpr.Evaluate(expression, nil)
		if err != nil {
			return err
		}
		ui.ShowResult(result)
		return nil
	},
}

// Execute runs the command tree. Errors have already been reported to the
// user when this returns.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("truth-table", false, "print a truth table instead of evaluating once")
	rootCmd.PersistentFlags().String("config", "", "path to a YAML config file")
	rootCmd.AddCommand(serveCmd)
}

func readExpression(ui *tui.TUI, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return ui.PromptExpression()
}

// loadConfig reads the file named by --config, falling back to defaults when
// the flag is unset or the file doesn't exist.
func loadConfig(cmd *cobra.Command) *config.Config {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.Default()
	}

	conf, err := config.LoadConfig(path)
	if os.IsNotExist(err) {
		slog.Warn("config file not found, using defaults", "path", path)
		return config.Default()
	} else if err != nil {
		slog.Warn("failed to load config, using defaults", "path", path, "error", err)
		return config.Default()
	}

	return conf
}
