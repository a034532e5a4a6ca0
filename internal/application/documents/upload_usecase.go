// Package documents stores tender documents and reports in object storage.
package documents

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/YudheerRM/bidding-insights/internal/application/dto"
	"github.com/YudheerRM/bidding-insights/internal/application/ports"
	"github.com/YudheerRM/bidding-insights/internal/domain"
	"github.com/YudheerRM/bidding-insights/internal/domain/access"
	"github.com/YudheerRM/bidding-insights/internal/domain/entity"
)

// MaxFileSize upper bound of an uploaded document.
const MaxFileSize = 10 * 1024 * 1024

// PresignTTL lifetime of a direct-upload URL.
const PresignTTL = 15 * time.Minute

var allowedContentTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

var unsafeKeyChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// TenderDocuments links a stored object to a tender.
type TenderDocuments interface {
	AttachDocument(ctx context.Context, actor access.Actor, tenderID string, kind entity.DocumentKind, obj entity.StoredObject) error
}

// UploadUseCase validates and stores documents.
type UploadUseCase struct {
	storage ports.ObjectStorage
	tenders TenderDocuments
	now     func() time.Time
}

// NewUploadUseCase builds the use case. tenders may be nil when uploads are never attached.
func NewUploadUseCase(storage ports.ObjectStorage, tenders TenderDocuments) *UploadUseCase {
	return &UploadUseCase{storage: storage, tenders: tenders, now: time.Now}
}

// ObjectKey folder/<unix millis>-<file name with unsafe characters replaced by "_">.
func ObjectKey(kind entity.DocumentKind, fileName string, at time.Time) string {
	return fmt.Sprintf("%s/%d-%s", kind.Folder(), at.UnixMilli(), unsafeKeyChars.ReplaceAllString(fileName, "_"))
}

func (uc *UploadUseCase) validate(actor access.Actor, kind, fileName, contentType string) (entity.DocumentKind, error) {
	if err := access.Require(actor, access.CanUploadDocument); err != nil {
		return "", err
	}
	if strings.TrimSpace(fileName) == "" {
		return "", domain.ErrFileRequired
	}
	k, ok := entity.ParseDocumentKind(kind)
	if !ok {
		return "", domain.ErrDocumentKind
	}
	if !allowedContentTypes[contentType] {
		return "", domain.ErrFileTypeRejected
	}
	return k, nil
}

// Upload stores the file and, when a tender id is given, attaches it to that tender.
// A failed attach removes the stored object again.
func (uc *UploadUseCase) Upload(ctx context.Context, actor access.Actor, in dto.UploadRequest) (*dto.UploadResponse, error) {
	if in.Body == nil {
		if err := access.Require(actor, access.CanUploadDocument); err != nil {
			return nil, err
		}
		return nil, domain.ErrFileRequired
	}
	kind, err := uc.validate(actor, in.Kind, in.FileName, in.ContentType)
	if err != nil {
		return nil, err
	}
	if in.Size > MaxFileSize {
		return nil, domain.ErrFileTooLarge
	}

	key := ObjectKey(kind, in.FileName, uc.now())
	url, err := uc.storage.Put(ctx, key, in.Body, in.Size, in.ContentType)
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", key, err)
	}

	if tenderID := strings.TrimSpace(in.TenderID); tenderID != "" && uc.tenders != nil {
		obj := entity.StoredObject{Key: key, URL: url}
		if err := uc.tenders.AttachDocument(ctx, actor, tenderID, kind, obj); err != nil {
			if derr := uc.storage.Delete(ctx, key); derr != nil {
				log.Error().Err(derr).Str("key", key).Str("tender_id", tenderID).Msg("remove orphaned upload")
			}
			return nil, err
		}
	}
	return &dto.UploadResponse{Key: key, URL: url}, nil
}

// Presign reserves a key and returns a URL the client can upload to directly.
func (uc *UploadUseCase) Presign(ctx context.Context, actor access.Actor, kind, fileName, contentType string) (*dto.PresignResponse, error) {
	k, err := uc.validate(actor, kind, fileName, contentType)
	if err != nil {
		return nil, err
	}
	key := ObjectKey(k, fileName, uc.now())
	uploadURL, err := uc.storage.PresignPut(ctx, key, contentType, PresignTTL)
	if err != nil {
		return nil, fmt.Errorf("presign %s: %w", key, err)
	}
	return &dto.PresignResponse{Key: key, UploadURL: uploadURL, URL: uc.storage.PublicURL(key)}, nil
}

// Delete removes a stored document.
func (uc *UploadUseCase) Delete(ctx context.Context, actor access.Actor, key string) error {
	if err := access.Require(actor, access.CanUploadDocument); err != nil {
		return err
	}
	if !strings.HasPrefix(key, entity.DocumentKindBidDocument.Folder()+"/") &&
		!strings.HasPrefix(key, entity.DocumentKindBidReport.Folder()+"/") {
		return domain.Invalid("INVALID_KEY", "object key outside the document folders")
	}
	return uc.storage.Delete(ctx, key)
}
