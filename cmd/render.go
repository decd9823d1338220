package cmd

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/misterclayt0n/liftcalc/internal/calculator"
	"github.com/misterclayt0n/liftcalc/internal/units"
)

const cellWidth = 9

const minBoxWidth = 40

// boxLines frames title in a double-line box at least minBoxWidth wide,
// growing to keep one space of margin on each side.
func boxLines(title string) [3]string {
	n := utf8.RuneCountInString(title)
	inner := max(minBoxWidth, n+2)
	left := (inner - n) / 2
	bar := strings.Repeat("═", inner)

	return [3]string{
		"╔" + bar + "╗",
		"║" + strings.Repeat(" ", left) + title + strings.Repeat(" ", inner-n-left) + "║",
		"╚" + bar + "╝",
	}
}

func printBoxedHeader(w io.Writer, title string) {
	paint := color.New(color.FgCyan, color.Bold).SprintFunc()
	for _, line := range boxLines(title) {
		fmt.Fprintln(w, paint(line))
	}
}

// printTable renders the projection table, highlighting the row that matches
// the submitted reps.
func printTable(w io.Writer, v calculator.View) {
	boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	highlight := color.New(color.FgRed, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	magenta := color.New(color.FgMagenta).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()

	if !v.Valid {
		fmt.Fprintf(w, "%s\n\n", magenta("No result: "+v.Error))
	}

	header := fmt.Sprintf("%-5s", "Reps")
	for _, name := range v.Formulas {
		header += fmt.Sprintf(" | %-*s", cellWidth, name)
	}
	fmt.Fprintln(w, boldCyan(header))
	fmt.Fprintln(w, strings.Repeat("─", 5+len(v.Formulas)*(cellWidth+3)))

	for _, row := range v.Rows {
		line := fmt.Sprintf("%-5d", row.Reps)
		for _, cell := range row.Cells {
			line += fmt.Sprintf(" | %-*s", cellWidth, cell)
		}
		if row.Current {
			line = highlight(line + "  ◀")
		}
		fmt.Fprintln(w, line)
	}

	if v.Scroll {
		fmt.Fprintln(w, gray(fmt.Sprintf("Table extended to %d reps", len(v.Rows))))
	}
	for _, warning := range v.Warnings {
		fmt.Fprintf(w, "%s %s\n", yellow("⚠"), warning)
	}
	fmt.Fprintln(w, gray(fmt.Sprintf("All calculations are approximate. 1 kg = %g lb", units.KgToLb)))
}
