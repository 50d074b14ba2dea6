package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"smartcarbon/internal/domain"
	"smartcarbon/internal/insight"
	"smartcarbon/internal/port"
)

// User-facing texts returned in place of generated insights.
const (
	NoDocumentsMessage     = "Process some documents first to get AI insights!"
	MissingKeyMessage      = "Please configure an API key for the insight provider to get AI insights."
	insightErrorMessagePfx = "Error generating AI insights: "
)

// InsightService produces AI reduction advice for a session. Provider
// failures are reported in the returned Insight, never as an error.
type InsightService interface {
	Generate(ctx context.Context, sessionID uuid.UUID) (*domain.Insight, error)
}

type insightService struct {
	sessionRepo port.SessionRepository
	docRepo     port.DocumentRepository
	generator   port.InsightGenerator
}

// NewInsightService creates a new InsightService. A nil generator behaves as
// if no provider were configured.
func NewInsightService(sessionRepo port.SessionRepository, docRepo port.DocumentRepository, generator port.InsightGenerator) InsightService {
	return &insightService{sessionRepo: sessionRepo, docRepo: docRepo, generator: generator}
}

func (s *insightService) Generate(ctx context.Context, sessionID uuid.UUID) (*domain.Insight, error) {
	snap, err := s.docRepo.Snapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(snap.Documents) == 0 {
		return &domain.Insight{Text: NoDocumentsMessage}, nil
	}

	apiKey, err := s.sessionRepo.GetCredential(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if s.generator == nil {
		return &domain.Insight{Text: MissingKeyMessage}, nil
	}

	prompt, err := insight.BuildPrompt(snap.Documents, snap.TotalEmissions)
	if err != nil {
		return nil, fmt.Errorf("building insight prompt: %w", err)
	}

	out, err := s.generator.Generate(ctx, port.InsightRequest{Prompt: prompt, APIKey: apiKey})
	if err != nil {
		if errors.Is(err, domain.ErrMissingCredential) {
			return &domain.Insight{Text: MissingKeyMessage}, nil
		}
		log.Warn().Err(err).Str("session_id", sessionID.String()).Msg("insight generation failed")
		return &domain.Insight{Text: insightErrorMessagePfx + err.Error()}, nil
	}

	return &domain.Insight{Text: out.Text, Generated: true, Model: out.ModelUsed}, nil
}
