package emissions

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// MilesDrivenFactor is kg CO2e per mile for an average passenger vehicle
	// (EPA greenhouse gas equivalencies, 2024).
	MilesDrivenFactor = 0.192

	// MinEquivalencyKg is the smallest total worth expressing as an equivalency.
	MinEquivalencyKg = 1.0
)

var printer = message.NewPrinter(language.English)

// MilesDriven converts kg CO2e into equivalent passenger-vehicle miles.
func MilesDriven(kg float64) float64 {
	return kg / MilesDrivenFactor
}

// DescribeEquivalency returns a human-readable comparison, or "" below
// MinEquivalencyKg.
func DescribeEquivalency(kg float64) string {
	if kg < MinEquivalencyKg || math.IsInf(kg, 0) || math.IsNaN(kg) {
		return ""
	}
	miles := int64(math.Round(MilesDriven(kg)))
	return printer.Sprintf("Equivalent to driving ~%d miles", miles)
}
