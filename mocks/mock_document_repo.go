package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"smartcarbon/internal/domain"
)

// MockDocumentRepo is a mock implementation of port.DocumentRepository.
type MockDocumentRepo struct {
	mock.Mock
}

func (m *MockDocumentRepo) Record(ctx context.Context, sessionID uuid.UUID, doc domain.ProcessedDocument) error {
	args := m.Called(ctx, sessionID, doc)
	return args.Error(0)
}

func (m *MockDocumentRepo) Snapshot(ctx context.Context, sessionID uuid.UUID) (*domain.StoreSnapshot, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StoreSnapshot), args.Error(1)
}
