package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"smartcarbon/internal/domain"
	"smartcarbon/internal/export"
	"smartcarbon/internal/port"
)

// ExportOutput is a rendered export ready to stream.
type ExportOutput struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService renders a session's documents for download.
type ExportService interface {
	Export(ctx context.Context, sessionID uuid.UUID, format domain.ExportFormat) (*ExportOutput, error)
}

type exportService struct {
	docRepo port.DocumentRepository
	now     func() time.Time
}

// NewExportService creates a new ExportService. A nil clock uses time.Now.
func NewExportService(docRepo port.DocumentRepository, now func() time.Time) ExportService {
	if now == nil {
		now = time.Now
	}
	return &exportService{docRepo: docRepo, now: now}
}

func (s *exportService) Export(ctx context.Context, sessionID uuid.UUID, format domain.ExportFormat) (*ExportOutput, error) {
	if format != domain.ExportFormatCSV && format != domain.ExportFormatXLSX {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}

	snap, err := s.docRepo.Snapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var data []byte
	switch format {
	case domain.ExportFormatXLSX:
		data, err = export.WriteXLSX(snap.Documents, snap.TotalEmissions)
		if err != nil {
			return nil, fmt.Errorf("rendering xlsx: %w", err)
		}
	default:
		var buf bytes.Buffer
		if err := export.WriteCSV(&buf, snap.Documents); err != nil {
			return nil, fmt.Errorf("rendering csv: %w", err)
		}
		data = buf.Bytes()
	}

	return &ExportOutput{
		Filename:    export.BuildFilename(sessionID, format, s.now()),
		ContentType: export.ContentType(format),
		Data:        data,
	}, nil
}
