package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"smartcarbon/internal/domain"
)

// MockInsightService is a mock implementation of service.InsightService.
type MockInsightService struct {
	mock.Mock
}

func (m *MockInsightService) Generate(ctx context.Context, sessionID uuid.UUID) (*domain.Insight, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Insight), args.Error(1)
}
