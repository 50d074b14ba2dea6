package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"smartcarbon/internal/config"
	"smartcarbon/internal/domain"
	"smartcarbon/internal/emissions"
	"smartcarbon/internal/extractor"
	"smartcarbon/internal/port"
)

// NoTextWarning is shown when OCR fails or finds nothing.
const NoTextWarning = "No text could be extracted from the image."

// ExtractUploadInput is the DTO for OCR extraction from an uploaded bill image.
type ExtractUploadInput struct {
	SessionID uuid.UUID
	Category  domain.Category
	File      io.Reader
	Size      int64
}

// ExtractTextInput is the DTO for extraction from already-recognized text.
type ExtractTextInput struct {
	SessionID uuid.UUID
	Category  domain.Category
	Text      string
}

// RecordInput is the DTO for confirming a document into the store.
type RecordInput struct {
	SessionID uuid.UUID
	Category  domain.Category
	Source    domain.DocumentSource
	Amount    float64
	Cost      float64
	Date      string
}

// DocumentService defines the extraction and confirmation contract.
type DocumentService interface {
	ExtractUpload(ctx context.Context, input ExtractUploadInput) (*domain.ExtractionResult, error)
	ExtractText(ctx context.Context, input ExtractTextInput) (*domain.ExtractionResult, error)
	Record(ctx context.Context, input RecordInput) (*domain.ProcessedDocument, error)
	List(ctx context.Context, sessionID uuid.UUID, recentOnly bool) ([]domain.ProcessedDocument, error)
}

// DocumentServiceDeps groups the collaborators of the document service.
type DocumentServiceDeps struct {
	SessionRepo port.SessionRepository
	DocRepo     port.DocumentRepository
	Recognizer  port.TextRecognizer
	Storage     port.ObjectStorage
	Upload      *config.UploadConfig
	StorageCfg  *config.StorageConfig
	Bucket      string
	Now         func() time.Time
}

type documentService struct {
	sessionRepo port.SessionRepository
	docRepo     port.DocumentRepository
	recognizer  port.TextRecognizer
	storage     port.ObjectStorage
	extractor   *extractor.Extractor
	maxBytes    int64
	prefix      string
	bucket      string
	now         func() time.Time
}

// NewDocumentService creates a new DocumentService implementation.
func NewDocumentService(deps DocumentServiceDeps) DocumentService {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	s := &documentService{
		sessionRepo: deps.SessionRepo,
		docRepo:     deps.DocRepo,
		recognizer:  deps.Recognizer,
		storage:     deps.Storage,
		extractor:   extractor.New(extractor.WithClock(now)),
		bucket:      deps.Bucket,
		now:         now,
	}
	if deps.Upload != nil {
		s.maxBytes = deps.Upload.MaxBytes()
	}
	if deps.StorageCfg != nil {
		s.prefix = deps.StorageCfg.Prefix
	}
	return s
}

func (s *documentService) ExtractUpload(ctx context.Context, input ExtractUploadInput) (*domain.ExtractionResult, error) {
	factor, ok := domain.LookupFactor(input.Category)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, input.Category)
	}
	if s.maxBytes > 0 && input.Size > s.maxBytes {
		return nil, domain.ErrFileTooLarge
	}
	if _, err := s.sessionRepo.GetByID(ctx, input.SessionID); err != nil {
		return nil, err
	}

	reader := input.File
	if s.maxBytes > 0 {
		reader = io.LimitReader(input.File, s.maxBytes+1)
	}
	image, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	if s.maxBytes > 0 && int64(len(image)) > s.maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	// Magic-byte detection; the declared content type is not trusted.
	detected := http.DetectContentType(image)
	fileType, ok := domain.AllowedContentTypes[detected]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	s.archive(ctx, input.SessionID, image, detected, fileType)

	result := &domain.ExtractionResult{Category: input.Category, Unit: factor.Unit}

	text, err := s.recognizer.RecognizeText(ctx, image)
	if err != nil {
		log.Warn().Err(err).Str("session_id", input.SessionID.String()).Msg("ocr failed")
		result.Warning = NoTextWarning
		return result, nil
	}
	if text == "" {
		result.Warning = NoTextWarning
		return result, nil
	}

	fields := s.extractor.Extract(text, input.Category)
	result.RawText = text
	result.Fields = &fields
	return result, nil
}

// archive stores the source image when a bucket is configured. Failures are
// logged and never block extraction.
func (s *documentService) archive(ctx context.Context, sessionID uuid.UUID, image []byte, contentType string, fileType domain.FileType) {
	if s.storage == nil {
		return
	}
	key := ArchiveTarget{Prefix: s.prefix}.uploadsPrefix(sessionID) + uuid.New().String() + "." + string(fileType)
	_, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.bucket,
		Key:         key,
		Body:        bytes.NewReader(image),
		ContentType: contentType,
		Size:        int64(len(image)),
	})
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("archiving upload failed")
		return
	}
	log.Debug().Str("key", key).Int("bytes", len(image)).Msg("upload archived")
}

func (s *documentService) ExtractText(ctx context.Context, input ExtractTextInput) (*domain.ExtractionResult, error) {
	factor, ok := domain.LookupFactor(input.Category)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, input.Category)
	}
	if _, err := s.sessionRepo.GetByID(ctx, input.SessionID); err != nil {
		return nil, err
	}

	fields := s.extractor.Extract(input.Text, input.Category)
	return &domain.ExtractionResult{
		Category: input.Category,
		Unit:     factor.Unit,
		RawText:  input.Text,
		Fields:   &fields,
	}, nil
}

func (s *documentService) Record(ctx context.Context, input RecordInput) (*domain.ProcessedDocument, error) {
	if !domain.IsValidCategory(input.Category) {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, input.Category)
	}
	switch input.Source {
	case domain.SourceUpload, domain.SourceManual:
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidSource, input.Source)
	}
	if input.Amount < 0 || input.Cost < 0 {
		return nil, domain.ErrNegativeValue
	}
	if input.Source == domain.SourceManual && input.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	date := domain.NewCalendarDate(s.now())
	if input.Date != "" {
		parsed, err := domain.ParseCalendarDate(input.Date)
		if err != nil {
			return nil, err
		}
		date = parsed
	}

	doc, err := emissions.NewDocument(input.Category, input.Amount, input.Cost, date)
	if err != nil {
		return nil, err
	}

	if err := s.docRepo.Record(ctx, input.SessionID, doc); err != nil {
		return nil, err
	}

	log.Info().
		Str("session_id", input.SessionID.String()).
		Str("category", string(doc.Type)).
		Str("source", string(input.Source)).
		Float64("emissions", doc.Emissions).
		Msg("document recorded")
	return &doc, nil
}

func (s *documentService) List(ctx context.Context, sessionID uuid.UUID, recentOnly bool) ([]domain.ProcessedDocument, error) {
	snap, err := s.docRepo.Snapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if recentOnly {
		return emissions.RecentDocuments(snap.Documents, emissions.RecentLimit), nil
	}
	return snap.Documents, nil
}
