package domain

import (
	"time"

	"github.com/google/uuid"
)

// EmissionFactor converts a physical quantity of a category into kg CO2e.
type EmissionFactor struct {
	Category    Category `json:"category"`
	Factor      float64  `json:"factor"`
	Unit        string   `json:"unit"`
	Description string   `json:"description"`
}

// ExtractedFields is the transient result of running the text extractor over OCR
// output. Amount and Cost are nil when no pattern matched.
type ExtractedFields struct {
	Amount *float64 `json:"amount"`
	Cost   *float64 `json:"cost"`
	Date   string   `json:"date"`
}

// ProcessedDocument is a confirmed, immutable emissions record.
type ProcessedDocument struct {
	Type      Category     `json:"type"`
	Amount    float64      `json:"amount"`
	Cost      float64      `json:"cost"`
	Date      CalendarDate `json:"date"`
	Emissions float64      `json:"emissions"`
	Unit      string       `json:"unit"`
}

// Session owns one independent document store and an optional insight credential.
type Session struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionSummary backs the quick stats panel.
type SessionSummary struct {
	ID             uuid.UUID `json:"id"`
	DocumentCount  int       `json:"document_count"`
	TotalEmissions float64   `json:"total_emissions"`
	HasCredential  bool      `json:"has_credential"`
	CreatedAt      time.Time `json:"created_at"`
}

// CategoryTotal is the emissions sum for one category.
type CategoryTotal struct {
	Category  Category `json:"category"`
	Emissions float64  `json:"emissions"`
}

// DailyTotal is the emissions sum for one calendar day.
type DailyTotal struct {
	Date      CalendarDate `json:"date"`
	Emissions float64      `json:"emissions"`
}

// Dashboard holds every metric rendered on the dashboard tab.
type Dashboard struct {
	TotalEmissions  float64             `json:"total_emissions"`
	AverageMonthly  float64             `json:"average_monthly"`
	HighestDay      float64             `json:"highest_day"`
	TotalCost       float64             `json:"total_cost"`
	DocumentCount   int                 `json:"document_count"`
	CategoryTotals  []CategoryTotal     `json:"category_totals"`
	DailyTotals     []DailyTotal        `json:"daily_totals"`
	RecentDocuments []ProcessedDocument `json:"recent_documents"`
	Equivalency     string              `json:"equivalency,omitempty"`
}

// ComplianceScore is a heuristic readiness score for one reporting framework.
type ComplianceScore struct {
	Framework string  `json:"framework"`
	Score     float64 `json:"score"`
	Compliant bool    `json:"compliant"`
	Status    string  `json:"status"`
}

// ComplianceReport is the compliance tab. Scores are illustrative placeholders,
// not regulatory computations.
type ComplianceReport struct {
	DistinctCategories int               `json:"distinct_categories"`
	DocumentCount      int               `json:"document_count"`
	Threshold          float64           `json:"threshold"`
	Scores             []ComplianceScore `json:"scores"`
	Actions            []string          `json:"actions"`
	Message            string            `json:"message,omitempty"`
}

// Recommendation points at the highest-emitting category.
type Recommendation struct {
	Category  Category `json:"category"`
	Emissions float64  `json:"emissions"`
	Message   string   `json:"message"`
}

// Insight is generated prose. Generated is false when Text is a user-facing
// message describing why no insight could be produced.
type Insight struct {
	Text      string `json:"text"`
	Generated bool   `json:"generated"`
	Model     string `json:"model,omitempty"`
}

// ExtractionResult is returned by the upload/extract step before confirmation.
type ExtractionResult struct {
	Category Category         `json:"category"`
	Unit     string           `json:"unit"`
	RawText  string           `json:"raw_text"`
	Fields   *ExtractedFields `json:"fields,omitempty"`
	Warning  string           `json:"warning,omitempty"`
}

// StoreSnapshot is a consistent copy of a session's documents and running total.
type StoreSnapshot struct {
	Documents      []ProcessedDocument `json:"documents"`
	TotalEmissions float64             `json:"total_emissions"`
}
