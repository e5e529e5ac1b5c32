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

// maxUploadSize caps CV uploads at 2MB.
const maxUploadSize = 2 << 20

type applicationUsecase struct {
	appRepo   domain.ApplicationRepository
	offerRepo domain.JobOfferRepository
	storage   domain.AssetStorage
}

func NewApplicationUsecase(appRepo domain.ApplicationRepository, offerRepo domain.JobOfferRepository, storage domain.AssetStorage) domain.ApplicationUsecase {
	return &applicationUsecase{
		appRepo:   appRepo,
		offerRepo: offerRepo,
		storage:   storage,
	}
}

func (u *applicationUsecase) Submit(ctx context.Context, actor domain.Actor, jobOfferID int64, coverLetter string, cv *domain.FileUpload) (*domain.Application, error) {
	if !policy.CanCreateApplication(actor) {
		return nil, apperror.Forbidden()
	}

	if _, err := u.offerRepo.GetByID(ctx, jobOfferID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job offer not found")
		}
		return nil, err
	}

	// Pre-check to fail fast; the unique index on (user_id, job_offer_id) is
	// the source of truth when two submits race.
	exists, err := u.appRepo.Exists(ctx, actor.ID, jobOfferID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.Conflict("You have already applied to this job offer")
	}

	now := time.Now()
	app := &domain.Application{
		UserID:      actor.ID,
		JobOfferID:  jobOfferID,
		CoverLetter: coverLetter,
		Status:      domain.ApplicationStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if cv != nil {
		key, err := u.storeCV(ctx, actor.ID, cv)
		if err != nil {
			return nil, err
		}
		app.CVPath = &key
	}

	if err := u.appRepo.Create(ctx, app); err != nil {
		// The row never existed, so the uploaded asset is orphaned.
		if app.CVPath != nil {
			_ = u.storage.Delete(ctx, *app.CVPath)
		}
		return nil, err
	}
	return app, nil
}

func (u *applicationUsecase) List(ctx context.Context, actor domain.Actor, jobOfferID *int64) ([]domain.Application, error) {
	if !policy.CanViewAnyApplication(actor) {
		return nil, apperror.Forbidden()
	}

	if jobOfferID != nil {
		offer, err := u.offerRepo.GetByID(ctx, *jobOfferID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, apperror.NotFound("Job offer not found")
			}
			return nil, err
		}
		// The filter itself is gated: a denied actor gets Forbidden, never a
		// silently emptied list.
		if !policy.CanFilterApplicationsByOffer(actor, offer) {
			return nil, apperror.Forbidden()
		}
		return u.appRepo.FetchByJobOfferID(ctx, *jobOfferID)
	}

	switch actor.Role {
	case domain.RoleAdmin:
		return u.appRepo.Fetch(ctx)
	case domain.RoleRecruiter:
		return u.appRepo.FetchByRecruiterID(ctx, actor.ID)
	default:
		return u.appRepo.FetchByUserID(ctx, actor.ID)
	}
}

func (u *applicationUsecase) Get(ctx context.Context, actor domain.Actor, id int64) (*domain.Application, error) {
	app, err := u.appRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, err
	}
	if !policy.CanViewApplication(actor, app) {
		return nil, apperror.Forbidden()
	}
	return app, nil
}

func (u *applicationUsecase) Update(ctx context.Context, actor domain.Actor, id int64, patch domain.ApplicationPatch) (*domain.Application, error) {
	app, err := u.appRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, err
	}
	if !policy.CanUpdateApplication(actor, app) {
		return nil, apperror.Forbidden()
	}

	// The writable field set depends on who is asking: candidates rework their
	// submission, recruiters move the status. Admins may do either.
	if patch.Status != nil {
		if actor.Role == domain.RoleCandidate {
			return nil, apperror.Forbidden()
		}
		if !domain.ValidApplicationStatus(*patch.Status) {
			return nil, apperror.BadRequest("Invalid application status")
		}
		app.Status = *patch.Status
	}
	if patch.CoverLetter != nil || patch.CV != nil {
		if actor.Role == domain.RoleRecruiter {
			return nil, apperror.Forbidden()
		}
	}
	if patch.CoverLetter != nil {
		app.CoverLetter = *patch.CoverLetter
	}

	// The replacement is stored and the row updated before the previous asset
	// is released, so the row references a live object on every failure path.
	var oldKey *string
	if patch.CV != nil {
		oldKey = app.CVPath
		key, err := u.storeCV(ctx, app.UserID, patch.CV)
		if err != nil {
			return nil, err
		}
		app.CVPath = &key
	}

	app.UpdatedAt = time.Now()
	if err := u.appRepo.Update(ctx, app); err != nil {
		// The row kept its previous reference; the replacement is the orphan.
		if patch.CV != nil {
			_ = u.storage.Delete(ctx, *app.CVPath)
		}
		return nil, err
	}

	if oldKey != nil {
		_ = u.storage.Delete(ctx, *oldKey)
	}
	return app, nil
}

func (u *applicationUsecase) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	app, err := u.appRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Application not found")
		}
		return err
	}
	if !policy.CanDeleteApplication(actor, app) {
		return apperror.Forbidden()
	}

	// The asset goes first. If the store refuses, the row stays so the
	// reference never dangles.
	if app.CVPath != nil {
		if err := u.storage.Delete(ctx, *app.CVPath); err != nil {
			return apperror.Storage(err)
		}
	}
	return u.appRepo.Delete(ctx, id)
}

// storeCV validates and persists an uploaded CV, returning the asset key.
func (u *applicationUsecase) storeCV(ctx context.Context, userID int64, file *domain.FileUpload) (string, error) {
	if len(file.Data) > maxUploadSize {
		return "", apperror.BadRequest("CV file exceeds the 2MB limit")
	}
	result := upload.ValidateDocument(file.Filename, file.Data)
	if !result.Valid {
		return "", apperror.BadRequest(result.Error)
	}

	key := fmt.Sprintf("applications/%d/%s%s", userID, uuid.NewString(), result.Extension)
	if err := u.storage.Put(ctx, key, file.Data, result.ContentType); err != nil {
		return "", apperror.Storage(err)
	}
	return key, nil
}
