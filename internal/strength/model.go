package strength

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidWeight = errors.New("weight must be a positive number")
	ErrInvalidReps   = fmt.Errorf("reps must be a whole number from 1 to %d", MaxReps)
)

// MinTableRows is the number of rows a table always shows.
const MinTableRows = 12

// MaxReps is the largest rep count accepted as input. Bigger sets are far
// outside every formula's range and would only produce huge tables.
const MaxReps = 100

// Estimates maps formula name to a weight in kilograms. A nil Estimates means
// "no result" for every formula.
type Estimates map[string]float64

// Get reports the value for a formula, false when it is undefined.
func (e Estimates) Get(name string) (float64, bool) {
	v, ok := e[name]
	if !ok || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// Validate checks the preconditions of EstimateAll.
func Validate(weight float64, reps int) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0 {
		return ErrInvalidWeight
	}
	if reps < 1 || reps > MaxReps {
		return ErrInvalidReps
	}
	return nil
}

// EstimateAll computes the 1RM under every formula. Invalid input returns nil.
func EstimateAll(weight float64, reps int) Estimates {
	if Validate(weight, reps) != nil {
		return nil
	}

	out := make(Estimates, len(formulas))
	for _, f := range formulas {
		out[f.Name] = f.Estimate(weight, reps)
	}
	return out
}

// ProjectRow predicts, per formula, the weight liftable for targetReps given
// that formula's 1RM. Formulas missing from oneRepMax stay missing.
func ProjectRow(oneRepMax Estimates, targetReps int) Estimates {
	if oneRepMax == nil || targetReps < 1 {
		return nil
	}

	out := make(Estimates, len(oneRepMax))
	for _, f := range formulas {
		rm, ok := oneRepMax[f.Name]
		if !ok {
			continue
		}
		out[f.Name] = f.Project(rm, targetReps)
	}
	return out
}

type Row struct {
	Reps    int
	Weights Estimates
}

// Table is the projection of one input onto rep counts 1..N.
type Table struct {
	Rows     []Row
	Current  int // Index of the row matching the input reps, -1 when input is invalid.
	Warnings []string
}

// RepCounts lists the target rep count of every row.
func (t Table) RepCounts() []int {
	reps := make([]int, len(t.Rows))
	for i, row := range t.Rows {
		reps[i] = row.Reps
	}
	return reps
}

// BuildTable projects the 1RM estimated from weight x reps onto rows
// 1..max(12, reps). Rows of an invalid input carry nil weights.
func BuildTable(weight float64, reps int) Table {
	valid := Validate(weight, reps) == nil

	n := MinTableRows
	if valid && reps > n {
		n = reps
	}

	oneRM := EstimateAll(weight, reps)
	table := Table{Rows: make([]Row, n), Current: -1}
	for i := range table.Rows {
		target := i + 1
		table.Rows[i] = Row{Reps: target, Weights: ProjectRow(oneRM, target)}
		if valid && target == reps {
			table.Current = i
		}
	}
	table.Warnings = WarningsFor(table.RepCounts()...)

	return table
}

// DomainWarning reports a formula asked for more reps than it was
// validated for.
type DomainWarning struct {
	Formula   string
	Range     RepRange
	Requested int
}

func (w DomainWarning) String() string {
	return fmt.Sprintf("%s is only validated for %d-%d reps; values above %d reps are extrapolated",
		w.Formula, w.Range.Min, w.Range.Max, w.Range.Max)
}

// DomainWarnings returns one warning per formula whose validated range ends
// below the largest requested rep count, in registry order.
func DomainWarnings(targetReps ...int) []DomainWarning {
	largest := 0
	for _, r := range targetReps {
		if r > largest {
			largest = r
		}
	}

	var warnings []DomainWarning
	for _, f := range formulas {
		if largest > f.ValidRange.Max {
			warnings = append(warnings, DomainWarning{Formula: f.Name, Range: f.ValidRange, Requested: largest})
		}
	}
	return warnings
}

// WarningsFor is DomainWarnings rendered as text. Purely advisory.
func WarningsFor(targetReps ...int) []string {
	var out []string
	for _, w := range DomainWarnings(targetReps...) {
		out = append(out, w.String())
	}
	return out
}
