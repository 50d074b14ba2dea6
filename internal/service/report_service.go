package service

import (
	"context"

	"github.com/google/uuid"

	"smartcarbon/internal/domain"
	"smartcarbon/internal/emissions"
	"smartcarbon/internal/port"
)

// ReportService derives the dashboard, compliance, and recommendation views
// from a session's store. Every call reads a fresh snapshot and never mutates.
type ReportService interface {
	Dashboard(ctx context.Context, sessionID uuid.UUID) (*domain.Dashboard, error)
	Compliance(ctx context.Context, sessionID uuid.UUID) (*domain.ComplianceReport, error)
	Recommendations(ctx context.Context, sessionID uuid.UUID) ([]domain.Recommendation, error)
}

type reportService struct {
	docRepo port.DocumentRepository
}

func NewReportService(docRepo port.DocumentRepository) ReportService {
	return &reportService{docRepo: docRepo}
}

func (s *reportService) Dashboard(ctx context.Context, sessionID uuid.UUID) (*domain.Dashboard, error) {
	snap, err := s.docRepo.Snapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	d := emissions.BuildDashboard(snap.Documents, snap.TotalEmissions)
	return &d, nil
}

func (s *reportService) Compliance(ctx context.Context, sessionID uuid.UUID) (*domain.ComplianceReport, error) {
	snap, err := s.docRepo.Snapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	r := emissions.EvaluateCompliance(snap.Documents)
	return &r, nil
}

func (s *reportService) Recommendations(ctx context.Context, sessionID uuid.UUID) ([]domain.Recommendation, error) {
	snap, err := s.docRepo.Snapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	rec, ok := emissions.TopRecommendation(snap.Documents)
	if !ok {
		return []domain.Recommendation{}, nil
	}
	return []domain.Recommendation{rec}, nil
}
