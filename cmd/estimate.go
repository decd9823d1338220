package cmd

import (
	"fmt"

	"github.com/misterclayt0n/liftcalc/internal/calculator"
	"github.com/misterclayt0n/liftcalc/internal/export"
	"github.com/misterclayt0n/liftcalc/internal/strength"
	"github.com/spf13/cobra"
)

var (
	estimateFormat   string
	estimateFormulas []string
)

var estimateCmd = &cobra.Command{
	Use:   "estimate [weight] [reps]",
	Short: "Estimate your 1RM and the weight you could lift for 1-12 reps",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := outputFormat(estimateFormat)
		if err != nil {
			return err
		}
		names, err := formulaNames(estimateFormulas)
		if err != nil {
			return err
		}

		form := calculator.NewForm(cfg.Display.Unit)
		form.Weight, form.Reps = args[0], args[1]
		view := form.View(names...)
		logger.Debug("table built", "weight", form.Weight, "reps", form.Reps, "unit", form.Unit, "valid", view.Valid)

		out := cmd.OutOrStdout()
		if format != export.Text {
			return export.Encode(out, format, view)
		}

		printBoxedHeader(out, "ONE-REP MAX ("+form.Unit.Symbol()+")")
		printTable(out, view)
		return nil
	},
}

// outputFormat resolves a --format flag against the configured default.
func outputFormat(flag string) (export.Format, error) {
	if flag == "" {
		return cfg.Display.Format, nil
	}
	return export.ParseFormat(flag)
}

// formulaNames canonicalizes the --formula filter. Empty means all formulas.
func formulaNames(filter []string) ([]string, error) {
	var names []string
	for _, name := range filter {
		f, ok := strength.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown formula %q", name)
		}
		names = append(names, f.Name)
	}
	return names, nil
}

func init() {
	estimateCmd.Flags().StringVarP(&estimateFormat, "format", "f", "", "Output format: text, json, yaml or toml")
	estimateCmd.Flags().StringSliceVar(&estimateFormulas, "formula", nil, "Only show these formulas (repeatable)")
	rootCmd.AddCommand(estimateCmd)
}
