package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"smartcarbon/internal/port"
)

// MockInsightGenerator is a mock implementation of port.InsightGenerator.
type MockInsightGenerator struct {
	mock.Mock
}

func (m *MockInsightGenerator) Generate(ctx context.Context, req port.InsightRequest) (*port.InsightOutput, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.InsightOutput), args.Error(1)
}
