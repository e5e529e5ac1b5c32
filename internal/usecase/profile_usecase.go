package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobboard-api/internal/domain"
	"go-jobboard-api/pkg/apperror"
)

type profileUsecase struct {
	profileRepo domain.ProfileRepository
}

func NewProfileUsecase(profileRepo domain.ProfileRepository) domain.ProfileUsecase {
	return &profileUsecase{profileRepo: profileRepo}
}

func (u *profileUsecase) GetProfile(ctx context.Context, actor domain.Actor) (*domain.Profile, error) {
	profile, err := u.profileRepo.GetByUserID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, err
	}
	return profile, nil
}

// UpsertProfile creates the profile on first write and updates it after.
// Ownership is implicit: the actor can only ever touch their own row.
func (u *profileUsecase) UpsertProfile(ctx context.Context, actor domain.Actor, in domain.ProfileInput) (*domain.Profile, error) {
	now := time.Now()

	profile, err := u.profileRepo.GetByUserID(ctx, actor.ID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		profile = &domain.Profile{
			UserID:      actor.ID,
			PhoneNumber: in.PhoneNumber,
			Image:       in.Image,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := u.profileRepo.Create(ctx, profile); err != nil {
			return nil, err
		}
		return profile, nil
	}

	if in.PhoneNumber != nil {
		profile.PhoneNumber = in.PhoneNumber
	}
	if in.Image != nil {
		profile.Image = in.Image
	}
	profile.UpdatedAt = now

	if err := u.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
