package strength

import (
	"math"
	"strings"
)

// RepRange is an inclusive rep interval a formula was validated against.
type RepRange struct {
	Min int `json:"min" yaml:"min" toml:"min"`
	Max int `json:"max" yaml:"max" toml:"max"`
}

func (r RepRange) Contains(reps int) bool {
	return reps >= r.Min && reps <= r.Max
}

// Formula is one 1RM regression model. Estimate and Project are exact inverses
// for a fixed rep count.
type Formula struct {
	Name       string                                    `json:"name" yaml:"name" toml:"name"`
	Equation   string                                    `json:"equation" yaml:"equation" toml:"equation"`
	ValidRange RepRange                                  `json:"valid_range" yaml:"valid_range" toml:"valid_range"`
	Estimate   func(weight float64, reps int) float64    `json:"-" yaml:"-" toml:"-"`
	Project    func(oneRepMax float64, reps int) float64 `json:"-" yaml:"-" toml:"-"`
}

func wathanDenominator(reps int) float64 {
	return 48.8 + 53.8*math.Exp(-0.075*float64(reps))
}

var formulas = []Formula{
	{
		Name:       "Epley",
		Equation:   "w * (1 + r/30)",
		ValidRange: RepRange{Min: 1, Max: 10},
		Estimate:   func(w float64, r int) float64 { return w * (1 + float64(r)/30) },
		Project:    func(rm float64, r int) float64 { return rm / (1 + float64(r)/30) },
	},
	{
		Name:       "Brzycki",
		Equation:   "w * 36 / (37 - r)",
		ValidRange: RepRange{Min: 1, Max: 10},
		Estimate:   func(w float64, r int) float64 { return w * 36 / (37 - float64(r)) },
		Project:    func(rm float64, r int) float64 { return rm * (37 - float64(r)) / 36 },
	},
	{
		Name:       "Lombardi",
		Equation:   "w * r^0.1",
		ValidRange: RepRange{Min: 1, Max: 12},
		Estimate:   func(w float64, r int) float64 { return w * math.Pow(float64(r), 0.1) },
		Project:    func(rm float64, r int) float64 { return rm / math.Pow(float64(r), 0.1) },
	},
	{
		Name:       "O'Conner",
		Equation:   "w * (1 + 0.025*r)",
		ValidRange: RepRange{Min: 1, Max: 10},
		Estimate:   func(w float64, r int) float64 { return w * (1 + 0.025*float64(r)) },
		Project:    func(rm float64, r int) float64 { return rm / (1 + 0.025*float64(r)) },
	},
	{
		Name:       "Wathan",
		Equation:   "100 * w / (48.8 + 53.8 * e^(-0.075*r))",
		ValidRange: RepRange{Min: 1, Max: 10},
		Estimate:   func(w float64, r int) float64 { return 100 * w / wathanDenominator(r) },
		Project:    func(rm float64, r int) float64 { return rm * wathanDenominator(r) / 100 },
	},
}

// Formulas returns the registry in display order. The slice is a copy.
func Formulas() []Formula {
	out := make([]Formula, len(formulas))
	copy(out, formulas)
	return out
}

// Names returns the formula names in registry order.
func Names() []string {
	names := make([]string, len(formulas))
	for i, f := range formulas {
		names[i] = f.Name
	}
	return names
}

// Lookup finds a formula by name, ignoring case.
func Lookup(name string) (Formula, bool) {
	for _, f := range formulas {
		if strings.EqualFold(f.Name, strings.TrimSpace(name)) {
			return f, true
		}
	}
	return Formula{}, false
}
