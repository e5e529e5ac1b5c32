package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobboard-api/internal/domain"
	"go-jobboard-api/internal/policy"
	"go-jobboard-api/pkg/apperror"
)

type jobOfferUsecase struct {
	offerRepo domain.JobOfferRepository
	appRepo   domain.ApplicationRepository
	storage   domain.AssetStorage
}

func NewJobOfferUsecase(offerRepo domain.JobOfferRepository, appRepo domain.ApplicationRepository, storage domain.AssetStorage) domain.JobOfferUsecase {
	return &jobOfferUsecase{
		offerRepo: offerRepo,
		appRepo:   appRepo,
		storage:   storage,
	}
}

// ListJobOffers scopes the result set server-side; the client cannot widen it.
func (u *jobOfferUsecase) ListJobOffers(ctx context.Context, actor domain.Actor) ([]domain.JobOffer, error) {
	if !policy.CanViewAnyJobOffer(actor) {
		return nil, apperror.Forbidden()
	}

	switch actor.Role {
	case domain.RoleAdmin:
		return u.offerRepo.Fetch(ctx)
	case domain.RoleRecruiter:
		return u.offerRepo.FetchByRecruiterID(ctx, actor.ID)
	default:
		return u.offerRepo.FetchByStatus(ctx, domain.JobOfferStatusPublished)
	}
}

func (u *jobOfferUsecase) GetJobOffer(ctx context.Context, actor domain.Actor, id int64) (*domain.JobOffer, error) {
	offer, err := u.offerRepo.GetByIDWithRecruiter(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job offer not found")
		}
		return nil, err
	}
	if !policy.CanViewJobOffer(actor, offer) {
		return nil, apperror.Forbidden()
	}
	return offer, nil
}

func (u *jobOfferUsecase) CreateJobOffer(ctx context.Context, actor domain.Actor, in domain.JobOfferInput) (*domain.JobOffer, error) {
	if !policy.CanCreateJobOffer(actor) {
		return nil, apperror.Forbidden()
	}
	if err := validateOfferInput(&in); err != nil {
		return nil, err
	}

	now := time.Now()
	offer := &domain.JobOffer{
		Title:        in.Title,
		Description:  in.Description,
		Location:     in.Location,
		ContractType: in.ContractType,
		Salary:       in.Salary,
		PostedAt:     now,
		RecruiterID:  actor.ID,
		Status:       in.Status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.offerRepo.Create(ctx, offer); err != nil {
		return nil, err
	}
	return offer, nil
}

func (u *jobOfferUsecase) UpdateJobOffer(ctx context.Context, actor domain.Actor, id int64, in domain.JobOfferInput) (*domain.JobOffer, error) {
	offer, err := u.offerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job offer not found")
		}
		return nil, err
	}
	if !policy.CanUpdateJobOffer(actor, offer) {
		return nil, apperror.Forbidden()
	}
	if err := validateOfferInput(&in); err != nil {
		return nil, err
	}

	offer.Title = in.Title
	offer.Description = in.Description
	offer.Location = in.Location
	offer.ContractType = in.ContractType
	offer.Salary = in.Salary
	offer.Status = in.Status
	offer.UpdatedAt = time.Now()

	if err := u.offerRepo.Update(ctx, offer); err != nil {
		return nil, err
	}
	return offer, nil
}

func (u *jobOfferUsecase) DeleteJobOffer(ctx context.Context, actor domain.Actor, id int64) error {
	offer, err := u.offerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job offer not found")
		}
		return err
	}
	if !policy.CanDeleteJobOffer(actor, offer) {
		return apperror.Forbidden()
	}

	// Applications cascade with the offer, so their stored CVs are released
	// first. A storage refusal aborts the delete and keeps everything.
	apps, err := u.appRepo.FetchByJobOfferID(ctx, id)
	if err != nil {
		return err
	}
	for _, app := range apps {
		if app.CVPath == nil {
			continue
		}
		if err := u.storage.Delete(ctx, *app.CVPath); err != nil {
			return apperror.Storage(err)
		}
	}

	return u.offerRepo.Delete(ctx, id)
}

func validateOfferInput(in *domain.JobOfferInput) error {
	if in.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if in.Salary < 0 {
		return apperror.BadRequest("Salary cannot be negative")
	}
	switch in.ContractType {
	case domain.ContractFullTime, domain.ContractPartTime, domain.ContractFreelance:
	default:
		return apperror.BadRequest("Invalid contract type")
	}
	if in.Status == "" {
		in.Status = domain.JobOfferStatusDraft
	}
	switch in.Status {
	case domain.JobOfferStatusDraft, domain.JobOfferStatusPublished, domain.JobOfferStatusClosed:
	default:
		return apperror.BadRequest("Invalid job offer status")
	}
	return nil
}
