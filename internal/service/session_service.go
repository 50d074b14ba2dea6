package service

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"smartcarbon/internal/domain"
	"smartcarbon/internal/port"
)

// SessionService defines the session lifecycle contract.
type SessionService interface {
	Create(ctx context.Context) (*domain.Session, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.SessionSummary, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetCredential(ctx context.Context, id uuid.UUID, apiKey string) error
}

// ArchiveTarget locates archived upload images. A nil Storage disables archiving.
type ArchiveTarget struct {
	Storage port.ObjectStorage
	Bucket  string
	Prefix  string
}

// uploadsPrefix is the key prefix under which a session's images are archived.
func (a ArchiveTarget) uploadsPrefix(sessionID uuid.UUID) string {
	return path.Join(a.Prefix, "sessions", sessionID.String(), "uploads") + "/"
}

type sessionService struct {
	sessionRepo port.SessionRepository
	docRepo     port.DocumentRepository
	archive     ArchiveTarget
}

// NewSessionService creates a new SessionService implementation.
func NewSessionService(sessionRepo port.SessionRepository, docRepo port.DocumentRepository, archive ArchiveTarget) SessionService {
	return &sessionService{sessionRepo: sessionRepo, docRepo: docRepo, archive: archive}
}

func (s *sessionService) Create(ctx context.Context) (*domain.Session, error) {
	session, err := s.sessionRepo.Create(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	log.Info().Str("session_id", session.ID.String()).Msg("session created")
	return session, nil
}

func (s *sessionService) Get(ctx context.Context, id uuid.UUID) (*domain.SessionSummary, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	snap, err := s.docRepo.Snapshot(ctx, id)
	if err != nil {
		return nil, err
	}
	key, err := s.sessionRepo.GetCredential(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.SessionSummary{
		ID:             session.ID,
		DocumentCount:  len(snap.Documents),
		TotalEmissions: snap.TotalEmissions,
		HasCredential:  key != "",
		CreatedAt:      session.CreatedAt,
	}, nil
}

func (s *sessionService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.sessionRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.purgeUploads(ctx, id)
	log.Info().Str("session_id", id.String()).Msg("session discarded")
	return nil
}

// purgeUploads drops the session's archived images. The session is already
// gone, so failures are logged rather than returned.
func (s *sessionService) purgeUploads(ctx context.Context, id uuid.UUID) {
	if s.archive.Storage == nil {
		return
	}
	prefix := s.archive.uploadsPrefix(id)
	keys, err := s.archive.Storage.List(ctx, s.archive.Bucket, prefix)
	if err != nil {
		log.Warn().Err(err).Str("prefix", prefix).Msg("listing archived uploads failed")
		return
	}
	for _, key := range keys {
		if err := s.archive.Storage.Delete(ctx, s.archive.Bucket, key); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("deleting archived upload failed")
		}
	}
	if len(keys) > 0 {
		log.Debug().Str("session_id", id.String()).Int("objects", len(keys)).Msg("archived uploads purged")
	}
}

func (s *sessionService) SetCredential(ctx context.Context, id uuid.UUID, apiKey string) error {
	return s.sessionRepo.SetCredential(ctx, id, strings.TrimSpace(apiKey))
}
