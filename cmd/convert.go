package cmd

import (
	"fmt"
	"strconv"

	"github.com/misterclayt0n/liftcalc/internal/units"
	"github.com/spf13/cobra"
)

var convertFrom string

var convertCmd = &cobra.Command{
	Use:   "convert [weight]",
	Short: "Convert a weight between pounds and kilograms",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := units.ParseUnit(convertFrom)
		if err != nil {
			return err
		}

		value, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return units.ErrInvalidWeight
		}
		result, err := units.Convert(value, from)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ %s %s = %s\n", args[0], from.Symbol(), result)
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertFrom, "from", "lbs", "Unit of the given weight: lbs or kg")
	rootCmd.AddCommand(convertCmd)
}
