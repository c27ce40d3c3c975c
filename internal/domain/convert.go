package domain

import "math"

// Recognised weight units.
const (
	UnitKg = "kg"
	UnitLb = "lb"
)

// lbToKg is the single source of truth for the pound conversion factor.
const lbToKg = 0.45359237

// NormalizeToKg converts a weight value to kilograms, the canonical unit.
// Kilogram input is returned unchanged; pound input is converted and rounded
// half-away-from-zero to 2 decimal places so conversions are reproducible
// bit for bit.
func NormalizeToKg(value float64, unit string) float64 {
	if unit == UnitLb {
		return math.Round(value*lbToKg*100) / 100
	}
	return value
}
