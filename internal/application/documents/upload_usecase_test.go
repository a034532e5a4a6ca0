package documents_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YudheerRM/bidding-insights/internal/application/documents"
	"github.com/YudheerRM/bidding-insights/internal/application/dto"
	"github.com/YudheerRM/bidding-insights/internal/application/usecase"
	"github.com/YudheerRM/bidding-insights/internal/domain"
	"github.com/YudheerRM/bidding-insights/internal/domain/access"
	"github.com/YudheerRM/bidding-insights/internal/domain/entity"
	"github.com/YudheerRM/bidding-insights/internal/infrastructure/memory"
)

type fakeStorage struct {
	objects   map[string]string
	deleted   []string
	deleteErr error
}

func newFakeStorage() *fakeStorage { return &fakeStorage{objects: map[string]string{}} }

func (f *fakeStorage) Put(_ context.Context, key string, body io.Reader, _ int64, _ string) (string, error) {
	b, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	f.objects[key] = string(b)
	return f.PublicURL(key), nil
}

func (f *fakeStorage) Delete(_ context.Context, key string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.objects, key)
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeStorage) PresignPut(_ context.Context, key, _ string, _ time.Duration) (string, error) {
	return "https://bucket.example/" + key + "?signed", nil
}

func (f *fakeStorage) PublicURL(key string) string { return "https://cdn.example/" + key }

var official = access.Actor{ID: "gov-1", Role: entity.RoleGovernmentOfficial}

func pdfUpload(kind string) dto.UploadRequest {
	return dto.UploadRequest{
		FileName:    "Bid doc (final).pdf",
		ContentType: "application/pdf",
		Size:        7,
		Body:        strings.NewReader("%PDF-1."),
		Kind:        kind,
	}
}

func TestObjectKey(t *testing.T) {
	at := time.UnixMilli(1700000000123)
	assert.Equal(t, "tender-documents/1700000000123-Bid_doc__final_.pdf",
		documents.ObjectKey(entity.DocumentKindBidDocument, "Bid doc (final).pdf", at))
	assert.Equal(t, "tender-reports/1700000000123-r-1.docx",
		documents.ObjectKey(entity.DocumentKindBidReport, "r-1.docx", at))
}

func TestUpload(t *testing.T) {
	storage := newFakeStorage()
	uc := documents.NewUploadUseCase(storage, nil)

	out, err := uc.Upload(context.Background(), official, pdfUpload("document"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.Key, "tender-documents/"))
	assert.True(t, strings.HasSuffix(out.Key, "-Bid_doc__final_.pdf"))
	assert.Equal(t, "https://cdn.example/"+out.Key, out.URL)
	assert.Equal(t, "%PDF-1.", storage.objects[out.Key])
}

func TestUpload_Rejections(t *testing.T) {
	uc := documents.NewUploadUseCase(newFakeStorage(), nil)
	ctx := context.Background()

	_, err := uc.Upload(ctx, access.Actor{ID: "b", Role: entity.RoleBidder}, pdfUpload("document"))
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Upload(ctx, official, pdfUpload("invoice"))
	assert.ErrorIs(t, err, domain.ErrDocumentKind)

	in := pdfUpload("report")
	in.ContentType = "image/png"
	_, err = uc.Upload(ctx, official, in)
	assert.ErrorIs(t, err, domain.ErrFileTypeRejected)

	in = pdfUpload("report")
	in.Size = documents.MaxFileSize + 1
	_, err = uc.Upload(ctx, official, in)
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)

	in = pdfUpload("report")
	in.Body = nil
	_, err = uc.Upload(ctx, official, in)
	assert.ErrorIs(t, err, domain.ErrFileRequired)
}

func TestUpload_AttachToTender(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	tenders := usecase.NewTenderUseCase(store.Tenders())
	created, err := tenders.Create(ctx, official, dto.CreateTenderRequest{Title: "Roads", Status: "open"})
	require.NoError(t, err)

	storage := newFakeStorage()
	uc := documents.NewUploadUseCase(storage, tenders)

	in := pdfUpload("report")
	in.TenderID = created.ID
	out, err := uc.Upload(ctx, official, in)
	require.NoError(t, err)

	got, err := tenders.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, out.URL, got.BidReportURL)

	in = pdfUpload("document")
	in.TenderID = "missing"
	_, err = uc.Upload(ctx, official, in)
	assert.ErrorIs(t, err, domain.ErrTenderNotFound)
	require.Len(t, storage.deleted, 1)
	assert.NotContains(t, storage.objects, storage.deleted[0])
}

func TestUpload_AttachFailsAndCleanupFails(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	storage := newFakeStorage()
	storage.deleteErr = errors.New("bucket unavailable")
	uc := documents.NewUploadUseCase(storage, usecase.NewTenderUseCase(memory.NewStore().Tenders()))

	in := pdfUpload("document")
	in.TenderID = "missing"
	_, err := uc.Upload(context.Background(), official, in)
	assert.ErrorIs(t, err, domain.ErrTenderNotFound)
	assert.Len(t, storage.objects, 1)

	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), "bucket unavailable")
	assert.Contains(t, buf.String(), "remove orphaned upload")
	for key := range storage.objects {
		assert.Contains(t, buf.String(), key)
	}
}

func TestPresignAndDelete(t *testing.T) {
	storage := newFakeStorage()
	uc := documents.NewUploadUseCase(storage, nil)
	ctx := context.Background()

	out, err := uc.Presign(ctx, official, "document", "spec.docx",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	require.NoError(t, err)
	assert.Contains(t, out.UploadURL, "?signed")
	assert.Equal(t, "https://cdn.example/"+out.Key, out.URL)

	assert.ErrorIs(t, uc.Delete(ctx, official, "secrets/keys.txt"), domain.ErrInvalidInput)
	require.NoError(t, uc.Delete(ctx, official, out.Key))
	assert.Equal(t, []string{out.Key}, storage.deleted)
}
