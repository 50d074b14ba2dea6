package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"smartcarbon/internal/domain"
	"smartcarbon/internal/service"
	"smartcarbon/mocks"
)

func TestSessionService_Get(t *testing.T) {
	sessionRepo := new(mocks.MockSessionRepo)
	docRepo := new(mocks.MockDocumentRepo)
	svc := service.NewSessionService(sessionRepo, docRepo, service.ArchiveTarget{})

	id := uuid.New()
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sessionRepo.On("GetByID", context.Background(), id).Return(&domain.Session{ID: id, CreatedAt: created}, nil)
	sessionRepo.On("GetCredential", context.Background(), id).Return("key", nil)
	docRepo.On("Snapshot", context.Background(), id).Return(&domain.StoreSnapshot{
		Documents:      []domain.ProcessedDocument{{Emissions: 2}, {Emissions: 3}},
		TotalEmissions: 5,
	}, nil)

	summary, err := svc.Get(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, 2, summary.DocumentCount)
	assert.Equal(t, 5.0, summary.TotalEmissions)
	assert.True(t, summary.HasCredential)
	assert.Equal(t, created, summary.CreatedAt)
}

func TestSessionService_Get_NotFound(t *testing.T) {
	sessionRepo := new(mocks.MockSessionRepo)
	docRepo := new(mocks.MockDocumentRepo)
	svc := service.NewSessionService(sessionRepo, docRepo, service.ArchiveTarget{})

	id := uuid.New()
	sessionRepo.On("GetByID", context.Background(), id).Return(nil, domain.ErrSessionNotFound)

	_, err := svc.Get(context.Background(), id)

	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	docRepo.AssertNotCalled(t, "Snapshot", mock.Anything, mock.Anything)
}

func TestSessionService_Create(t *testing.T) {
	sessionRepo := new(mocks.MockSessionRepo)
	svc := service.NewSessionService(sessionRepo, new(mocks.MockDocumentRepo), service.ArchiveTarget{})

	id := uuid.New()
	sessionRepo.On("Create", context.Background()).Return(&domain.Session{ID: id}, nil).Once()
	sessionRepo.On("Create", context.Background()).Return(nil, errors.New("full")).Once()

	s, err := svc.Create(context.Background())
	require.NoError(t, err)
	assert.Equal(t, id, s.ID)

	_, err = svc.Create(context.Background())
	assert.ErrorContains(t, err, "creating session")
}

func TestSessionService_SetCredentialTrimsWhitespace(t *testing.T) {
	sessionRepo := new(mocks.MockSessionRepo)
	svc := service.NewSessionService(sessionRepo, new(mocks.MockDocumentRepo), service.ArchiveTarget{})

	id := uuid.New()
	sessionRepo.On("SetCredential", context.Background(), id, "abc").Return(nil)

	require.NoError(t, svc.SetCredential(context.Background(), id, "  abc\n"))
	sessionRepo.AssertExpectations(t)
}

func TestSessionService_Delete(t *testing.T) {
	sessionRepo := new(mocks.MockSessionRepo)
	svc := service.NewSessionService(sessionRepo, new(mocks.MockDocumentRepo), service.ArchiveTarget{})

	id := uuid.New()
	sessionRepo.On("Delete", context.Background(), id).Return(domain.ErrSessionNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), id), domain.ErrSessionNotFound)
}

func TestSessionService_Delete_PurgesArchivedUploads(t *testing.T) {
	sessionRepo := new(mocks.MockSessionRepo)
	storage := new(mocks.MockObjectStorage)
	svc := service.NewSessionService(sessionRepo, new(mocks.MockDocumentRepo), service.ArchiveTarget{
		Storage: storage,
		Bucket:  "bills",
		Prefix:  "smartcarbon",
	})

	id := uuid.New()
	prefix := "smartcarbon/sessions/" + id.String() + "/uploads/"
	sessionRepo.On("Delete", context.Background(), id).Return(nil)
	storage.On("List", context.Background(), "bills", prefix).
		Return([]string{prefix + "a.png", prefix + "b.jpg"}, nil)
	storage.On("Delete", context.Background(), "bills", prefix+"a.png").Return(errors.New("timeout"))
	storage.On("Delete", context.Background(), "bills", prefix+"b.jpg").Return(nil)

	require.NoError(t, svc.Delete(context.Background(), id))
	storage.AssertExpectations(t)
}

func TestSessionService_Delete_UnknownSessionKeepsArchive(t *testing.T) {
	sessionRepo := new(mocks.MockSessionRepo)
	storage := new(mocks.MockObjectStorage)
	svc := service.NewSessionService(sessionRepo, new(mocks.MockDocumentRepo), service.ArchiveTarget{Storage: storage, Bucket: "bills"})

	id := uuid.New()
	sessionRepo.On("Delete", context.Background(), id).Return(domain.ErrSessionNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), id), domain.ErrSessionNotFound)
	storage.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestSessionService_Delete_ListFailureStillDeletesSession(t *testing.T) {
	sessionRepo := new(mocks.MockSessionRepo)
	storage := new(mocks.MockObjectStorage)
	svc := service.NewSessionService(sessionRepo, new(mocks.MockDocumentRepo), service.ArchiveTarget{Storage: storage, Bucket: "bills"})

	id := uuid.New()
	sessionRepo.On("Delete", context.Background(), id).Return(nil)
	storage.On("List", context.Background(), "bills", "sessions/"+id.String()+"/uploads/").
		Return(nil, errors.New("access denied"))

	require.NoError(t, svc.Delete(context.Background(), id))
	storage.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}
