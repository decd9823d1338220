package units

import (
	"fmt"
	"strings"
)

const (
	KgToLb = 2.20462
	LbToKg = 0.453592 // Published lb->kg constant, not exactly 1/KgToLb.
)

type Unit int

const (
	Metric Unit = iota
	Imperial
)

func (u Unit) String() string {
	if u == Imperial {
		return "imperial"
	}
	return "metric"
}

// Symbol is the weight suffix shown next to values.
func (u Unit) Symbol() string {
	if u == Imperial {
		return "lb"
	}
	return "kg"
}

func (u Unit) Other() Unit {
	if u == Imperial {
		return Metric
	}
	return Imperial
}

func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *Unit) UnmarshalText(text []byte) error {
	parsed, err := ParseUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// ParseUnit accepts the system name or its weight symbol.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "metric", "kg", "kgs":
		return Metric, nil
	case "imperial", "lb", "lbs":
		return Imperial, nil
	}
	return Metric, fmt.Errorf("unknown unit %q (use metric or imperial)", s)
}

// ToDisplay expresses a canonical kilogram value in the given unit.
func ToDisplay(kg float64, u Unit) float64 {
	if u == Imperial {
		return kg * KgToLb
	}
	return kg
}

// ToCanonical turns a value shown in the given unit back into kilograms.
func ToCanonical(v float64, u Unit) float64 {
	if u == Imperial {
		return v / KgToLb
	}
	return v
}
