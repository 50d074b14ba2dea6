package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"smartcarbon/internal/domain"
	"smartcarbon/internal/port"
)

type sessionRepo struct {
	reg *Registry
}

// NewSessionRepo creates a registry-backed SessionRepository.
func NewSessionRepo(reg *Registry) port.SessionRepository {
	return &sessionRepo{reg: reg}
}

func (r *sessionRepo) Create(_ context.Context) (*domain.Session, error) {
	s := r.reg.create()
	return &s, nil
}

func (r *sessionRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Session, error) {
	e, err := r.reg.lookup(id)
	if err != nil {
		return nil, fmt.Errorf("sessionRepo.GetByID: %w", err)
	}
	s := e.session
	return &s, nil
}

func (r *sessionRepo) Delete(_ context.Context, id uuid.UUID) error {
	if err := r.reg.remove(id); err != nil {
		return fmt.Errorf("sessionRepo.Delete: %w", err)
	}
	return nil
}

func (r *sessionRepo) SetCredential(_ context.Context, id uuid.UUID, apiKey string) error {
	if err := r.reg.setCredential(id, apiKey); err != nil {
		return fmt.Errorf("sessionRepo.SetCredential: %w", err)
	}
	return nil
}

func (r *sessionRepo) GetCredential(_ context.Context, id uuid.UUID) (string, error) {
	key, err := r.reg.credential(id)
	if err != nil {
		return "", fmt.Errorf("sessionRepo.GetCredential: %w", err)
	}
	return key, nil
}
