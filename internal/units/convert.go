package units

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidWeight = errors.New("please enter a valid positive number")

// Conversion is the outcome of a one-shot weight conversion.
type Conversion struct {
	Value float64 `json:"value" yaml:"value" toml:"value"`
	Unit  Unit    `json:"unit" yaml:"unit" toml:"unit"`
}

func (c Conversion) String() string {
	return fmt.Sprintf("%.2f %s", c.Value, c.Unit.Symbol())
}

// Convert turns a weight given in from into the other unit. Pounds go to
// kilograms with LbToKg and kilograms to pounds with KgToLb.
func Convert(value float64, from Unit) (Conversion, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return Conversion{}, ErrInvalidWeight
	}

	if from == Imperial {
		return Conversion{Value: value * LbToKg, Unit: Metric}, nil
	}
	return Conversion{Value: value * KgToLb, Unit: Imperial}, nil
}
