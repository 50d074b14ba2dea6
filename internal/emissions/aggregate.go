package emissions

import (
	"sort"

	"smartcarbon/internal/domain"
)

// RecentLimit is the number of rows in the recent documents table.
const RecentLimit = 10

// TotalEmissions sums emissions over docs.
func TotalEmissions(docs []domain.ProcessedDocument) float64 {
	var total float64
	for i := range docs {
		total += docs[i].Emissions
	}
	return total
}

// TotalCost sums cost over docs.
func TotalCost(docs []domain.ProcessedDocument) float64 {
	var total float64
	for i := range docs {
		total += docs[i].Cost
	}
	return total
}

// CategoryTotals groups emissions by category, one entry per category present,
// ordered by category key.
func CategoryTotals(docs []domain.ProcessedDocument) []domain.CategoryTotal {
	sums := make(map[domain.Category]float64)
	for i := range docs {
		sums[docs[i].Type] += docs[i].Emissions
	}
	out := make([]domain.CategoryTotal, 0, len(sums))
	for c, v := range sums {
		out = append(out, domain.CategoryTotal{Category: c, Emissions: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// DailyTotals groups emissions by calendar date, ordered by date.
func DailyTotals(docs []domain.ProcessedDocument) []domain.DailyTotal {
	sums := make(map[string]float64)
	dates := make(map[string]domain.CalendarDate)
	for i := range docs {
		key := docs[i].Date.String()
		sums[key] += docs[i].Emissions
		dates[key] = docs[i].Date
	}
	out := make([]domain.DailyTotal, 0, len(sums))
	for key, v := range sums {
		out = append(out, domain.DailyTotal{Date: dates[key], Emissions: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date.Time) })
	return out
}

// HighestDay is the largest per-day sum, not the largest single document.
func HighestDay(docs []domain.ProcessedDocument) float64 {
	var highest float64
	for i, d := range DailyTotals(docs) {
		if i == 0 || d.Emissions > highest {
			highest = d.Emissions
		}
	}
	return highest
}

// DistinctMonths counts the calendar months present among docs.
func DistinctMonths(docs []domain.ProcessedDocument) int {
	months := make(map[string]struct{})
	for i := range docs {
		months[docs[i].Date.MonthKey()] = struct{}{}
	}
	return len(months)
}

// AverageMonthly divides total by the number of distinct months, flooring the
// denominator at one.
func AverageMonthly(total float64, docs []domain.ProcessedDocument) float64 {
	return total / float64(max(1, DistinctMonths(docs)))
}

// DistinctCategories counts the categories present among docs.
func DistinctCategories(docs []domain.ProcessedDocument) int {
	seen := make(map[domain.Category]struct{})
	for i := range docs {
		seen[docs[i].Type] = struct{}{}
	}
	return len(seen)
}

// RecentDocuments returns up to limit documents ordered by date, newest first.
// Documents on the same date keep insertion order.
func RecentDocuments(docs []domain.ProcessedDocument, limit int) []domain.ProcessedDocument {
	out := make([]domain.ProcessedDocument, len(docs))
	copy(out, docs)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date.Time) })
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// BuildDashboard assembles the dashboard from docs and the store's running total.
func BuildDashboard(docs []domain.ProcessedDocument, total float64) domain.Dashboard {
	return domain.Dashboard{
		TotalEmissions:  total,
		AverageMonthly:  AverageMonthly(total, docs),
		HighestDay:      HighestDay(docs),
		TotalCost:       TotalCost(docs),
		DocumentCount:   len(docs),
		CategoryTotals:  CategoryTotals(docs),
		DailyTotals:     DailyTotals(docs),
		RecentDocuments: RecentDocuments(docs, RecentLimit),
		Equivalency:     DescribeEquivalency(total),
	}
}
