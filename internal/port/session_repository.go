package port

import (
	"context"

	"github.com/google/uuid"

	"smartcarbon/internal/domain"
)

// SessionRepository defines the contract for session lifecycle and credential storage.
type SessionRepository interface {
	Create(ctx context.Context) (*domain.Session, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetCredential(ctx context.Context, id uuid.UUID, apiKey string) error
	GetCredential(ctx context.Context, id uuid.UUID) (string, error)
}

// DocumentRepository defines the contract for a session's append-only document store.
type DocumentRepository interface {
	Record(ctx context.Context, sessionID uuid.UUID, doc domain.ProcessedDocument) error
	Snapshot(ctx context.Context, sessionID uuid.UUID) (*domain.StoreSnapshot, error)
}
