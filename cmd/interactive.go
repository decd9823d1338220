package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/misterclayt0n/liftcalc/internal/calculator"
	"github.com/misterclayt0n/liftcalc/internal/units"
	"github.com/spf13/cobra"
)

const interactiveHelp = `Commands:
  weight <value>   set the weight in the current unit
  reps <count>     set the number of reps
  unit <system>    switch to metric or imperial
  toggle           flip between metric and imperial
  show             print the table again
  help             print this message
  quit             leave`

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Edit weight, reps and unit line by line and watch the table update",
	RunE: func(cmd *cobra.Command, args []string) error {
		form := calculator.NewForm(cfg.Display.Unit)
		return runInteractive(cmd.InOrStdin(), cmd.OutOrStdout(), form)
	},
}

// runInteractive processes one command per line. Every change to the form
// re-renders the table.
func runInteractive(in io.Reader, out io.Writer, form *calculator.Form) error {
	log := logger.With("session", uuid.New().String())
	red := color.New(color.FgRed).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	fmt.Fprintln(out, interactiveHelp)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "%s> ", form.Unit.Symbol())
		if !scanner.Scan() {
			break
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		arg := strings.Join(fields[1:], " ")
		log.Debug("input", "command", fields[0], "arg", arg)

		switch strings.ToLower(fields[0]) {
		case "weight", "w":
			form.Weight = arg
		case "reps", "r":
			form.Reps = arg
		case "unit", "u":
			u, err := units.ParseUnit(arg)
			if err != nil {
				fmt.Fprintln(out, red(err.Error()))
				continue
			}
			if form.SetUnit(u) {
				fmt.Fprintln(out, green("Switched to "+u.String()))
			}
		case "toggle", "t":
			form.Toggle()
			fmt.Fprintln(out, green("Switched to "+form.Unit.String()))
		case "show", "s":
		case "help", "h", "?":
			fmt.Fprintln(out, interactiveHelp)
			continue
		case "quit", "q", "exit":
			return nil
		default:
			fmt.Fprintln(out, red(fmt.Sprintf("unknown command %q, try help", fields[0])))
			continue
		}

		printTable(out, form.View())
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	fmt.Fprintln(out)
	return nil
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
