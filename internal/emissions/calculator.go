// Package emissions converts quantities into kg CO2e and derives the dashboard,
// compliance, and recommendation views from a set of processed documents.
package emissions

import (
	"fmt"

	"smartcarbon/internal/domain"
)

// Calculate returns amount multiplied by the category's emission factor.
func Calculate(amount float64, category domain.Category) (float64, error) {
	f, ok := domain.LookupFactor(category)
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, category)
	}
	return amount * f.Factor, nil
}

// NewDocument builds a ProcessedDocument, computing emissions and copying the unit
// from the factor table.
func NewDocument(category domain.Category, amount, cost float64, date domain.CalendarDate) (domain.ProcessedDocument, error) {
	f, ok := domain.LookupFactor(category)
	if !ok {
		return domain.ProcessedDocument{}, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, category)
	}
	return domain.ProcessedDocument{
		Type:      category,
		Amount:    amount,
		Cost:      cost,
		Date:      date,
		Emissions: amount * f.Factor,
		Unit:      f.Unit,
	}, nil
}
