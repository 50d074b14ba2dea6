package service_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"smartcarbon/internal/config"
	"smartcarbon/internal/domain"
	"smartcarbon/internal/port"
	"smartcarbon/internal/repository/memory"
	"smartcarbon/internal/service"
	"smartcarbon/mocks"
)

var (
	pngBytes  = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 32)...)
	fixedNow  = time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
	fixedTime = func() time.Time { return fixedNow }
)

type docFixture struct {
	svc        service.DocumentService
	sessions   port.SessionRepository
	docs       port.DocumentRepository
	recognizer *mocks.MockTextRecognizer
	storage    *mocks.MockObjectStorage
	sessionID  uuid.UUID
}

func newDocFixture(t *testing.T) *docFixture {
	t.Helper()
	reg := memory.NewRegistry()
	sessions := memory.NewSessionRepo(reg)
	docs := memory.NewDocumentRepo(reg)
	s, err := sessions.Create(context.Background())
	require.NoError(t, err)

	recognizer := new(mocks.MockTextRecognizer)
	storage := new(mocks.MockObjectStorage)
	svc := service.NewDocumentService(service.DocumentServiceDeps{
		SessionRepo: sessions,
		DocRepo:     docs,
		Recognizer:  recognizer,
		Storage:     storage,
		Upload:      &config.UploadConfig{MaxFileSizeMB: 1},
		StorageCfg:  &config.StorageConfig{Prefix: "smartcarbon"},
		Bucket:      "bills",
		Now:         fixedTime,
	})
	return &docFixture{svc: svc, sessions: sessions, docs: docs, recognizer: recognizer, storage: storage, sessionID: s.ID}
}

func (f *docFixture) snapshot(t *testing.T) *domain.StoreSnapshot {
	t.Helper()
	snap, err := f.docs.Snapshot(context.Background(), f.sessionID)
	require.NoError(t, err)
	return snap
}

func TestDocumentService_ExtractUpload(t *testing.T) {
	f := newDocFixture(t)
	f.storage.On("Upload", mock.Anything, mock.MatchedBy(func(in port.UploadInput) bool {
		return in.Bucket == "bills" &&
			strings.HasPrefix(in.Key, "smartcarbon/sessions/"+f.sessionID.String()+"/uploads/") &&
			strings.HasSuffix(in.Key, ".png") &&
			in.ContentType == "image/png"
	})).Return(&port.UploadOutput{Location: "s3://bills/x"}, nil)
	f.recognizer.On("RecognizeText", mock.Anything, pngBytes).
		Return("Total usage: 450 kWh\nAmount Due: $62.10\nDate: 03/15/2024", nil)

	result, err := f.svc.ExtractUpload(context.Background(), service.ExtractUploadInput{
		SessionID: f.sessionID,
		Category:  domain.CategoryElectricity,
		File:      bytes.NewReader(pngBytes),
		Size:      int64(len(pngBytes)),
	})

	require.NoError(t, err)
	assert.Equal(t, "kWh", result.Unit)
	assert.Empty(t, result.Warning)
	require.NotNil(t, result.Fields)
	require.NotNil(t, result.Fields.Amount)
	assert.Equal(t, 450.0, *result.Fields.Amount)
	require.NotNil(t, result.Fields.Cost)
	assert.Equal(t, 62.10, *result.Fields.Cost)
	assert.Equal(t, "03/15/2024", result.Fields.Date)
	assert.Empty(t, f.snapshot(t).Documents, "extraction must not record")
	f.storage.AssertExpectations(t)
}

func TestDocumentService_ExtractUpload_OCRFailureIsAWarning(t *testing.T) {
	f := newDocFixture(t)
	f.storage.On("Upload", mock.Anything, mock.Anything).Return(nil, errors.New("bucket gone"))
	f.recognizer.On("RecognizeText", mock.Anything, mock.Anything).Return("", errors.New("tesseract missing"))

	result, err := f.svc.ExtractUpload(context.Background(), service.ExtractUploadInput{
		SessionID: f.sessionID,
		Category:  domain.CategoryFuel,
		File:      bytes.NewReader(pngBytes),
	})

	require.NoError(t, err)
	assert.Equal(t, service.NoTextWarning, result.Warning)
	assert.Nil(t, result.Fields)
	assert.Empty(t, f.snapshot(t).Documents)
}

func TestDocumentService_ExtractUpload_EmptyText(t *testing.T) {
	f := newDocFixture(t)
	f.storage.On("Upload", mock.Anything, mock.Anything).Return(&port.UploadOutput{}, nil)
	f.recognizer.On("RecognizeText", mock.Anything, mock.Anything).Return("", nil)

	result, err := f.svc.ExtractUpload(context.Background(), service.ExtractUploadInput{
		SessionID: f.sessionID,
		Category:  domain.CategoryWater,
		File:      bytes.NewReader(pngBytes),
	})

	require.NoError(t, err)
	assert.Equal(t, service.NoTextWarning, result.Warning)
}

func TestDocumentService_ExtractUpload_Rejections(t *testing.T) {
	f := newDocFixture(t)
	ctx := context.Background()

	_, err := f.svc.ExtractUpload(ctx, service.ExtractUploadInput{
		SessionID: f.sessionID, Category: "coal", File: bytes.NewReader(pngBytes),
	})
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)

	_, err = f.svc.ExtractUpload(ctx, service.ExtractUploadInput{
		SessionID: f.sessionID, Category: domain.CategoryFuel, File: strings.NewReader("%PDF-1.7 not an image"),
	})
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)

	_, err = f.svc.ExtractUpload(ctx, service.ExtractUploadInput{
		SessionID: f.sessionID, Category: domain.CategoryFuel, File: bytes.NewReader(pngBytes), Size: 2 << 20,
	})
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)

	big := append(append([]byte{}, pngBytes...), bytes.Repeat([]byte{1}, 1<<20)...)
	_, err = f.svc.ExtractUpload(ctx, service.ExtractUploadInput{
		SessionID: f.sessionID, Category: domain.CategoryFuel, File: bytes.NewReader(big),
	})
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)

	_, err = f.svc.ExtractUpload(ctx, service.ExtractUploadInput{
		SessionID: uuid.New(), Category: domain.CategoryFuel, File: bytes.NewReader(pngBytes),
	})
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	f.recognizer.AssertNotCalled(t, "RecognizeText", mock.Anything, mock.Anything)
}

func TestDocumentService_ExtractText(t *testing.T) {
	f := newDocFixture(t)

	result, err := f.svc.ExtractText(context.Background(), service.ExtractTextInput{
		SessionID: f.sessionID,
		Category:  domain.CategoryOfficeSupplies,
		Text:      "Staples receipt total $45.99",
	})

	require.NoError(t, err)
	assert.Equal(t, "$", result.Unit)
	require.NotNil(t, result.Fields.Amount)
	assert.Equal(t, 45.99, *result.Fields.Amount)
	assert.Equal(t, "06/01/2024", result.Fields.Date)
}

func TestDocumentService_Record(t *testing.T) {
	f := newDocFixture(t)
	ctx := context.Background()

	doc, err := f.svc.Record(ctx, service.RecordInput{
		SessionID: f.sessionID,
		Category:  domain.CategoryElectricity,
		Source:    domain.SourceUpload,
		Amount:    100,
		Cost:      20,
		Date:      "03/15/2024",
	})
	require.NoError(t, err)
	assert.InDelta(t, 44.4, doc.Emissions, 1e-9)
	assert.Equal(t, "2024-03-15", doc.Date.String())

	doc, err = f.svc.Record(ctx, service.RecordInput{
		SessionID: f.sessionID,
		Category:  domain.CategoryFuel,
		Source:    domain.SourceManual,
		Amount:    50,
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", doc.Date.String(), "missing date defaults to today")

	snap := f.snapshot(t)
	assert.Len(t, snap.Documents, 2)
	assert.InDelta(t, 159.9, snap.TotalEmissions, 1e-9)
}

func TestDocumentService_Record_UploadAcceptsZeroAmount(t *testing.T) {
	f := newDocFixture(t)

	doc, err := f.svc.Record(context.Background(), service.RecordInput{
		SessionID: f.sessionID,
		Category:  domain.CategoryWaste,
		Source:    domain.SourceUpload,
	})

	require.NoError(t, err)
	assert.Zero(t, doc.Emissions)
}

func TestDocumentService_Record_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		input service.RecordInput
		want  error
	}{
		{"unknown category", service.RecordInput{Category: "plastic", Source: domain.SourceManual, Amount: 1}, domain.ErrUnknownCategory},
		{"bad source", service.RecordInput{Category: domain.CategoryFuel, Source: "fax", Amount: 1}, domain.ErrInvalidSource},
		{"manual zero amount", service.RecordInput{Category: domain.CategoryFuel, Source: domain.SourceManual}, domain.ErrInvalidAmount},
		{"negative cost", service.RecordInput{Category: domain.CategoryFuel, Source: domain.SourceUpload, Amount: 1, Cost: -1}, domain.ErrNegativeValue},
		{"bad date", service.RecordInput{Category: domain.CategoryFuel, Source: domain.SourceUpload, Amount: 1, Date: "15.03.2024"}, domain.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDocFixture(t)
			tt.input.SessionID = f.sessionID

			_, err := f.svc.Record(context.Background(), tt.input)

			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, f.snapshot(t).Documents, "store must be unchanged")
		})
	}
}

func TestDocumentService_Record_UnknownSession(t *testing.T) {
	f := newDocFixture(t)

	_, err := f.svc.Record(context.Background(), service.RecordInput{
		SessionID: uuid.New(), Category: domain.CategoryFuel, Source: domain.SourceManual, Amount: 1,
	})
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestDocumentService_List(t *testing.T) {
	f := newDocFixture(t)
	ctx := context.Background()
	for i := 1; i <= 12; i++ {
		_, err := f.svc.Record(ctx, service.RecordInput{
			SessionID: f.sessionID,
			Category:  domain.CategoryTransport,
			Source:    domain.SourceManual,
			Amount:    float64(i),
			Date:      time.Date(2024, 1, i, 0, 0, 0, 0, time.UTC).Format("2006-01-02"),
		})
		require.NoError(t, err)
	}

	all, err := f.svc.List(ctx, f.sessionID, false)
	require.NoError(t, err)
	assert.Len(t, all, 12)
	assert.Equal(t, "2024-01-01", all[0].Date.String())

	recent, err := f.svc.List(ctx, f.sessionID, true)
	require.NoError(t, err)
	require.Len(t, recent, 10)
	assert.Equal(t, "2024-01-12", recent[0].Date.String())
	assert.Equal(t, "2024-01-03", recent[9].Date.String())
}
