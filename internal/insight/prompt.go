package insight

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"smartcarbon/internal/domain"
)

// RecentEntries is how many of the latest documents are embedded in the prompt.
const RecentEntries = 3

// BuildPrompt summarizes docs for the model: total, distinct categories, count,
// and the last RecentEntries documents in insertion order as indented JSON.
func BuildPrompt(docs []domain.ProcessedDocument, total float64) (string, error) {
	seen := make(map[domain.Category]struct{})
	var types []string
	for i := range docs {
		if _, ok := seen[docs[i].Type]; ok {
			continue
		}
		seen[docs[i].Type] = struct{}{}
		types = append(types, string(docs[i].Type))
	}
	sort.Strings(types)

	recent := docs
	if len(recent) > RecentEntries {
		recent = recent[len(recent)-RecentEntries:]
	}
	if recent == nil {
		recent = []domain.ProcessedDocument{}
	}
	recentJSON, err := json.MarshalIndent(recent, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling recent entries: %w", err)
	}

	var b strings.Builder
	b.WriteString("Analyze this carbon emissions data and provide actionable insights:\n\n")
	fmt.Fprintf(&b, "Total Emissions: %.2f kg CO2e\n", total)
	fmt.Fprintf(&b, "Document Types: %s\n", strings.Join(types, ", "))
	fmt.Fprintf(&b, "Number of Documents: %d\n\n", len(docs))
	b.WriteString("Recent entries:\n")
	b.Write(recentJSON)
	b.WriteString("\n\nPlease provide:\n")
	b.WriteString("1. Key emission hotspots and patterns\n")
	b.WriteString("2. Specific reduction recommendations\n")
	b.WriteString("3. Comparison to industry benchmarks\n")
	b.WriteString("4. Priority actions for next month\n\n")
	b.WriteString("Keep the response concise and actionable.\n")
	return b.String(), nil
}
