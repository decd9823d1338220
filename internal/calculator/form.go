package calculator

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/misterclayt0n/liftcalc/internal/strength"
	"github.com/misterclayt0n/liftcalc/internal/units"
)

// Form holds the raw calculator inputs as typed by the user. Weight is
// expressed in Unit.
type Form struct {
	Weight string
	Reps   string
	Unit   units.Unit

	lastUnit units.Unit
}

func NewForm(u units.Unit) *Form {
	return &Form{Unit: u, lastUnit: u}
}

func ParseWeight(text string) (float64, error) {
	w, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
		return 0, fmt.Errorf("%q: %w", text, strength.ErrInvalidWeight)
	}
	return w, nil
}

// ParseReps rejects anything that is not a whole number from 1 to
// strength.MaxReps, "5.5" included.
func ParseReps(text string) (int, error) {
	r, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || r < 1 || r > strength.MaxReps {
		return 0, fmt.Errorf("%q: %w", text, strength.ErrInvalidReps)
	}
	return r, nil
}

// SetUnit switches the display unit. A valid weight is re-expressed in the new
// unit exactly once per transition; setting the unit already in effect does
// nothing. It reports whether a transition happened.
func (f *Form) SetUnit(u units.Unit) bool {
	f.Unit = u
	if u == f.lastUnit {
		return false
	}

	if w, err := ParseWeight(f.Weight); err == nil {
		kg := units.ToCanonical(w, f.lastUnit)
		f.Weight = strconv.FormatFloat(units.ToDisplay(kg, u), 'f', 2, 64)
	}
	f.lastUnit = u
	return true
}

// Toggle flips between metric and imperial.
func (f *Form) Toggle() {
	f.SetUnit(f.lastUnit.Other())
}

// Input returns the parsed inputs with the weight in kilograms, or the first
// validation error.
func (f *Form) Input() (kg float64, reps int, err error) {
	w, err := ParseWeight(f.Weight)
	if err != nil {
		return 0, 0, err
	}
	reps, err = ParseReps(f.Reps)
	if err != nil {
		return 0, 0, err
	}
	return units.ToCanonical(w, f.Unit), reps, nil
}
