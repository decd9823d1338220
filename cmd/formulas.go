package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/liftcalc/internal/export"
	"github.com/misterclayt0n/liftcalc/internal/strength"
	"github.com/spf13/cobra"
)

var formulasFormat string

var formulasCmd = &cobra.Command{
	Use:   "formulas",
	Short: "List the 1RM formulas and the rep ranges they are validated for",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := outputFormat(formulasFormat)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if format != export.Text {
			// TOML needs a table at the top level.
			return export.Encode(out, format, map[string][]strength.Formula{"formula": strength.Formulas()})
		}

		boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		for _, f := range strength.Formulas() {
			fmt.Fprintf(out, "  %s %-40s %s\n", boldCyan(fmt.Sprintf("%-10s", f.Name)), f.Equation,
				yellow(fmt.Sprintf("%d-%d reps", f.ValidRange.Min, f.ValidRange.Max)))
		}
		return nil
	},
}

func init() {
	formulasCmd.Flags().StringVarP(&formulasFormat, "format", "f", "", "Output format: text, json, yaml or toml")
	rootCmd.AddCommand(formulasCmd)
}
