package domain

import "sort"

// emissionFactors holds kg CO2e per unit for every supported category.
var emissionFactors = map[Category]EmissionFactor{
	CategoryElectricity:    {Category: CategoryElectricity, Factor: 0.444, Unit: "kWh", Description: "Grid electricity (US average)"},
	CategoryNaturalGas:     {Category: CategoryNaturalGas, Factor: 0.185, Unit: "kWh", Description: "Natural gas consumption"},
	CategoryFuel:           {Category: CategoryFuel, Factor: 2.31, Unit: "liter", Description: "Gasoline/Diesel fuel"},
	CategoryWater:          {Category: CategoryWater, Factor: 0.344, Unit: "m³", Description: "Water consumption"},
	CategoryWaste:          {Category: CategoryWaste, Factor: 0.42, Unit: "kg", Description: "General waste disposal"},
	CategoryPaper:          {Category: CategoryPaper, Factor: 1.84, Unit: "kg", Description: "Paper products"},
	CategoryTransport:      {Category: CategoryTransport, Factor: 0.12, Unit: "km", Description: "Vehicle transport"},
	CategoryOfficeSupplies: {Category: CategoryOfficeSupplies, Factor: 2.1, Unit: "$", Description: "Office supplies (spend-based)"},
}

// LookupFactor returns the emission factor for a category.
func LookupFactor(c Category) (EmissionFactor, bool) {
	f, ok := emissionFactors[c]
	return f, ok
}

// IsValidCategory reports whether c is one of the fixed categories.
func IsValidCategory(c Category) bool {
	_, ok := emissionFactors[c]
	return ok
}

// CategoryCount returns the number of supported categories.
func CategoryCount() int {
	return len(emissionFactors)
}

// EmissionFactors returns a copy of the factor table sorted by category key.
func EmissionFactors() []EmissionFactor {
	out := make([]EmissionFactor, 0, len(emissionFactors))
	for _, f := range emissionFactors {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}
