package calculator

import (
	"math"
	"strconv"

	"github.com/misterclayt0n/liftcalc/internal/strength"
	"github.com/misterclayt0n/liftcalc/internal/units"
)

// Placeholder fills every cell that has no numeric result.
const Placeholder = "-"

type ViewRow struct {
	Reps    int      `json:"reps" yaml:"reps" toml:"reps"`
	Cells   []string `json:"cells" yaml:"cells" toml:"cells"`
	Current bool     `json:"current" yaml:"current" toml:"current"`
}

// View is the projection table rendered as display strings.
type View struct {
	Unit     units.Unit `json:"unit" yaml:"unit" toml:"unit"`
	Valid    bool       `json:"valid" yaml:"valid" toml:"valid"`
	Error    string     `json:"error,omitempty" yaml:"error,omitempty" toml:"error,omitempty"`
	Formulas []string   `json:"formulas" yaml:"formulas" toml:"formulas"`
	Rows     []ViewRow  `json:"rows" yaml:"rows" toml:"rows"`
	Current  int        `json:"current" yaml:"current" toml:"current"`
	Scroll   bool       `json:"scroll" yaml:"scroll" toml:"scroll"`
	Warnings []string   `json:"warnings,omitempty" yaml:"warnings,omitempty" toml:"warnings,omitempty"`
}

// FormatWeight renders a kilogram value in u with one decimal.
func FormatWeight(kg float64, ok bool, u units.Unit) string {
	if !ok || math.IsNaN(kg) || math.IsInf(kg, 0) {
		return Placeholder
	}
	return strconv.FormatFloat(units.ToDisplay(kg, u), 'f', 1, 64)
}

// View builds the table for the current inputs. Formulas restricts the
// columns; nil keeps all of them.
func (f *Form) View(formulas ...string) View {
	if len(formulas) == 0 {
		formulas = strength.Names()
	}

	kg, reps, err := f.Input()
	table := strength.BuildTable(kg, reps)

	v := View{
		Unit:     f.Unit,
		Valid:    err == nil,
		Formulas: formulas,
		Rows:     make([]ViewRow, len(table.Rows)),
		Current:  table.Current,
		Scroll:   err == nil && reps > strength.MinTableRows,
	}
	if err != nil {
		v.Error = err.Error()
	}

	for i, row := range table.Rows {
		cells := make([]string, len(formulas))
		for j, name := range formulas {
			w, ok := row.Weights.Get(name)
			cells[j] = FormatWeight(w, ok, f.Unit)
		}
		v.Rows[i] = ViewRow{Reps: row.Reps, Cells: cells, Current: i == table.Current}
	}

	if v.Valid {
		shown := make(map[string]bool, len(formulas))
		for _, name := range formulas {
			shown[name] = true
		}
		for _, w := range strength.DomainWarnings(table.RepCounts()...) {
			if shown[w.Formula] {
				v.Warnings = append(v.Warnings, w.String())
			}
		}
	}

	return v
}
