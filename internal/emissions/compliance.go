package emissions

import (
	"math"

	"smartcarbon/internal/domain"
)

// ComplianceThreshold is the score at which a framework is labeled compliant.
const ComplianceThreshold = 70.0

// Framework names as shown on the compliance tab.
const (
	FrameworkGHG  = "GHG Protocol"
	FrameworkISO  = "ISO 14064"
	FrameworkCDP  = "CDP"
	FrameworkTCFD = "TCFD"
)

const (
	actionScope3      = "Implement comprehensive Scope 3 supply chain tracking"
	actionClimateRisk = "Prepare climate risk assessment and scenario analysis"
	actionDataCollect = "Increase data collection across all emission categories"
	allCompliantMsg   = "Great job! You're meeting all major compliance requirements."
)

// Scores are the four heuristic framework scores.
type Scores struct {
	GHG  float64
	ISO  float64
	CDP  float64
	TCFD float64
}

// ComputeScores applies the fixed scoring formulas. They reward breadth of
// categories and volume of documents and are not real regulatory checks.
func ComputeScores(distinctCategories, documentCount int) Scores {
	categories := float64(domain.CategoryCount())

	ghg := math.Min(100, (float64(distinctCategories)/categories)*80+(float64(documentCount)/10)*20)
	iso := math.Min(100, ghg*0.9)

	cdp := 45.0
	if distinctCategories > 3 {
		cdp = math.Min(100, ghg*0.7)
	}
	tcfd := 30.0
	if documentCount > 5 {
		tcfd = math.Min(100, ghg*0.6)
	}

	return Scores{GHG: ghg, ISO: iso, CDP: cdp, TCFD: tcfd}
}

// EvaluateCompliance scores docs and lists the follow-up actions for every
// framework below the threshold.
func EvaluateCompliance(docs []domain.ProcessedDocument) domain.ComplianceReport {
	distinct := DistinctCategories(docs)
	s := ComputeScores(distinct, len(docs))

	report := domain.ComplianceReport{
		DistinctCategories: distinct,
		DocumentCount:      len(docs),
		Threshold:          ComplianceThreshold,
		Scores: []domain.ComplianceScore{
			score(FrameworkGHG, s.GHG, "Needs Work"),
			score(FrameworkISO, s.ISO, "Needs Work"),
			score(FrameworkCDP, s.CDP, "Missing Scope 3"),
			score(FrameworkTCFD, s.TCFD, "Climate Risk Needed"),
		},
		Actions: []string{},
	}

	if s.CDP < ComplianceThreshold {
		report.Actions = append(report.Actions, actionScope3)
	}
	if s.TCFD < ComplianceThreshold {
		report.Actions = append(report.Actions, actionClimateRisk)
	}
	if s.GHG < ComplianceThreshold {
		report.Actions = append(report.Actions, actionDataCollect)
	}
	if len(report.Actions) == 0 {
		report.Message = allCompliantMsg
	}
	return report
}

func score(framework string, value float64, gap string) domain.ComplianceScore {
	compliant := value >= ComplianceThreshold
	status := gap
	if compliant {
		status = "Compliant"
	}
	return domain.ComplianceScore{
		Framework: framework,
		Score:     value,
		Compliant: compliant,
		Status:    status,
	}
}
