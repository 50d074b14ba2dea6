package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"smartcarbon/internal/domain"
	"smartcarbon/internal/service"
)

// MockDocumentService is a mock implementation of service.DocumentService.
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) ExtractUpload(ctx context.Context, input service.ExtractUploadInput) (*domain.ExtractionResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtractionResult), args.Error(1)
}

func (m *MockDocumentService) ExtractText(ctx context.Context, input service.ExtractTextInput) (*domain.ExtractionResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtractionResult), args.Error(1)
}

func (m *MockDocumentService) Record(ctx context.Context, input service.RecordInput) (*domain.ProcessedDocument, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProcessedDocument), args.Error(1)
}

func (m *MockDocumentService) List(ctx context.Context, sessionID uuid.UUID, recentOnly bool) ([]domain.ProcessedDocument, error) {
	args := m.Called(ctx, sessionID, recentOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProcessedDocument), args.Error(1)
}
