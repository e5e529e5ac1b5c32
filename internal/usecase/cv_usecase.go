package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-jobboard-api/internal/domain"
	"go-jobboard-api/internal/policy"
	"go-jobboard-api/pkg/apperror"
	"go-jobboard-api/pkg/upload"

	"github.com/google/uuid"
)

// presignTTL bounds how long a CV download link stays valid.
const presignTTL = 5 * time.Minute

type cvUsecase struct {
	cvRepo  domain.CVRepository
	appRepo domain.ApplicationRepository
	storage domain.AssetStorage
}

func NewCVUsecase(cvRepo domain.CVRepository, appRepo domain.ApplicationRepository, storage domain.AssetStorage) domain.CVUsecase {
	return &cvUsecase{
		cvRepo:  cvRepo,
		appRepo: appRepo,
		storage: storage,
	}
}

func (u *cvUsecase) Upload(ctx context.Context, actor domain.Actor, title string, file domain.FileUpload) (*domain.CV, error) {
	if title == "" {
		return nil, apperror.BadRequest("Title is required")
	}

	key, fileType, err := u.storeFile(ctx, actor.ID, &file)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	cv := &domain.CV{
		UserID:    actor.ID,
		Title:     title,
		FilePath:  key,
		FileType:  fileType,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.cvRepo.Create(ctx, cv); err != nil {
		_ = u.storage.Delete(ctx, key)
		return nil, err
	}
	return cv, nil
}

func (u *cvUsecase) Get(ctx context.Context, actor domain.Actor, id int64) (*domain.CV, error) {
	cv, err := u.authorizeView(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	url, err := u.storage.PresignedDownloadURL(ctx, cv.FilePath, presignTTL)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	cv.DownloadURL = url
	return cv, nil
}

func (u *cvUsecase) DownloadURL(ctx context.Context, actor domain.Actor, id int64) (string, error) {
	cv, err := u.authorizeView(ctx, actor, id)
	if err != nil {
		return "", err
	}

	url, err := u.storage.PresignedDownloadURL(ctx, cv.FilePath, presignTTL)
	if err != nil {
		return "", apperror.Storage(err)
	}
	return url, nil
}

// authorizeView loads the CV and applies the view policy, resolving the
// derived recruiter relation when the actor is a recruiter.
func (u *cvUsecase) authorizeView(ctx context.Context, actor domain.Actor, id int64) (*domain.CV, error) {
	cv, err := u.cvRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("CV not found")
		}
		return nil, err
	}

	hasApplication := false
	if actor.Role == domain.RoleRecruiter && actor.ID != cv.UserID {
		hasApplication, err = u.appRepo.ExistsForRecruiter(ctx, cv.UserID, actor.ID)
		if err != nil {
			return nil, err
		}
	}
	if !policy.CanViewCV(actor, cv, hasApplication) {
		return nil, apperror.Forbidden()
	}
	return cv, nil
}

func (u *cvUsecase) Update(ctx context.Context, actor domain.Actor, id int64, patch domain.CVPatch) (*domain.CV, error) {
	cv, err := u.cvRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("CV not found")
		}
		return nil, err
	}
	if !policy.CanUpdateCV(actor, cv) {
		return nil, apperror.Forbidden()
	}

	if patch.Title != nil {
		if *patch.Title == "" {
			return nil, apperror.BadRequest("Title is required")
		}
		cv.Title = *patch.Title
	}
	// The replacement is stored and the row updated before the previous asset
	// is released, so the row references a live object on every failure path.
	var oldKey string
	if patch.File != nil {
		oldKey = cv.FilePath
		key, fileType, err := u.storeFile(ctx, cv.UserID, patch.File)
		if err != nil {
			return nil, err
		}
		cv.FilePath = key
		cv.FileType = fileType
	}

	cv.UpdatedAt = time.Now()
	if err := u.cvRepo.Update(ctx, cv); err != nil {
		// The row kept its previous reference; the replacement is the orphan.
		if patch.File != nil {
			_ = u.storage.Delete(ctx, cv.FilePath)
		}
		return nil, err
	}

	if patch.File != nil {
		_ = u.storage.Delete(ctx, oldKey)
	}
	return cv, nil
}

func (u *cvUsecase) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	cv, err := u.cvRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("CV not found")
		}
		return err
	}
	if !policy.CanDeleteCV(actor, cv) {
		return apperror.Forbidden()
	}

	// Asset first; a failed delete keeps the row so nothing dangles.
	if err := u.storage.Delete(ctx, cv.FilePath); err != nil {
		return apperror.Storage(err)
	}
	return u.cvRepo.Delete(ctx, id)
}

func (u *cvUsecase) storeFile(ctx context.Context, userID int64, file *domain.FileUpload) (key, fileType string, err error) {
	if len(file.Data) > maxUploadSize {
		return "", "", apperror.BadRequest("CV file exceeds the 2MB limit")
	}
	result := upload.ValidateDocument(file.Filename, file.Data)
	if !result.Valid {
		return "", "", apperror.BadRequest(result.Error)
	}

	key = fmt.Sprintf("cvs/%d/%s%s", userID, uuid.NewString(), result.Extension)
	if err := u.storage.Put(ctx, key, file.Data, result.ContentType); err != nil {
		return "", "", apperror.Storage(err)
	}
	return key, result.ContentType, nil
}
