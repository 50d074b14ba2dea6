package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"smartcarbon/internal/domain"
	"smartcarbon/internal/port"
)

type documentRepo struct {
	reg *Registry
}

// NewDocumentRepo creates a registry-backed DocumentRepository.
func NewDocumentRepo(reg *Registry) port.DocumentRepository {
	return &documentRepo{reg: reg}
}

func (r *documentRepo) Record(_ context.Context, sessionID uuid.UUID, doc domain.ProcessedDocument) error {
	e, err := r.reg.lookup(sessionID)
	if err != nil {
		return fmt.Errorf("documentRepo.Record: %w", err)
	}
	e.store.Record(doc)
	return nil
}

func (r *documentRepo) Snapshot(_ context.Context, sessionID uuid.UUID) (*domain.StoreSnapshot, error) {
	e, err := r.reg.lookup(sessionID)
	if err != nil {
		return nil, fmt.Errorf("documentRepo.Snapshot: %w", err)
	}
	snap := e.store.Snapshot()
	return &snap, nil
}
