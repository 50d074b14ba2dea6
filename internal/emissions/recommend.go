package emissions

import "smartcarbon/internal/domain"

const defaultRecommendation = "Focus on this category for maximum impact"

var recommendations = map[domain.Category]string{
	domain.CategoryElectricity:    "Switch to renewable energy sources or improve energy efficiency",
	domain.CategoryFuel:           "Consider electric vehicles or optimize routes to reduce fuel consumption",
	domain.CategoryNaturalGas:     "Improve building insulation or switch to heat pumps",
	domain.CategoryOfficeSupplies: "Choose suppliers with lower carbon footprints or reduce paper usage",
	domain.CategoryTransport:      "Promote public transport or remote work to reduce travel emissions",
}

// TopRecommendation picks the highest-emitting category. Ties go to the first
// category by key. It returns false when docs is empty.
func TopRecommendation(docs []domain.ProcessedDocument) (domain.Recommendation, bool) {
	totals := CategoryTotals(docs)
	if len(totals) == 0 {
		return domain.Recommendation{}, false
	}

	top := totals[0]
	for _, t := range totals[1:] {
		if t.Emissions > top.Emissions {
			top = t
		}
	}

	msg, ok := recommendations[top.Category]
	if !ok {
		msg = defaultRecommendation
	}
	return domain.Recommendation{
		Category:  top.Category,
		Emissions: top.Emissions,
		Message:   msg,
	}, true
}
