package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobboard-api/internal/domain"
	"go-jobboard-api/internal/policy"
	"go-jobboard-api/pkg/apperror"
	"go-jobboard-api/pkg/auth"
)

type userUsecase struct {
	userRepo    domain.UserRepository
	cvRepo      domain.CVRepository
	appRepo     domain.ApplicationRepository
	refreshRepo domain.RefreshTokenRepository
	storage     domain.AssetStorage
}

func NewUserUsecase(
	userRepo domain.UserRepository,
	cvRepo domain.CVRepository,
	appRepo domain.ApplicationRepository,
	refreshRepo domain.RefreshTokenRepository,
	storage domain.AssetStorage,
) domain.UserUsecase {
	return &userUsecase{
		userRepo:    userRepo,
		cvRepo:      cvRepo,
		appRepo:     appRepo,
		refreshRepo: refreshRepo,
		storage:     storage,
	}
}

func (u *userUsecase) ListUsers(ctx context.Context, actor domain.Actor, page, pageSize int) ([]domain.User, int64, error) {
	if !policy.CanViewAnyUser(actor) {
		return nil, 0, apperror.Forbidden()
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	return u.userRepo.Fetch(ctx, pageSize, offset)
}

func (u *userUsecase) GetUser(ctx context.Context, actor domain.Actor, id int64) (*domain.User, error) {
	target, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	if !policy.CanViewUser(actor, target) {
		return nil, apperror.Forbidden()
	}
	return target, nil
}

func (u *userUsecase) UpdateUser(ctx context.Context, actor domain.Actor, id int64, patch domain.UserPatch) (*domain.User, error) {
	target, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	if !policy.CanUpdateUser(actor, target) {
		return nil, apperror.Forbidden()
	}

	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, apperror.BadRequest("Name is required")
		}
		target.Name = *patch.Name
	}
	if patch.Email != nil {
		target.Email = *patch.Email
	}
	if patch.Password != nil {
		hash, err := auth.HashPassword(*patch.Password)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		target.PasswordHash = hash
	}

	target.UpdatedAt = time.Now()
	if err := u.userRepo.Update(ctx, target); err != nil {
		return nil, err
	}
	return target, nil
}

func (u *userUsecase) DeleteUser(ctx context.Context, actor domain.Actor, id int64) error {
	target, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return err
	}
	if !policy.CanDeleteUser(actor, target) {
		return apperror.Forbidden()
	}

	// Stored assets are released before the rows go; a storage refusal aborts
	// the whole delete so nothing is left half-removed.
	cvs, err := u.cvRepo.FetchByUserID(ctx, id)
	if err != nil {
		return err
	}
	for _, cv := range cvs {
		if err := u.storage.Delete(ctx, cv.FilePath); err != nil {
			return apperror.Storage(err)
		}
	}

	apps, err := u.appRepo.FetchByUserID(ctx, id)
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

	if err := u.refreshRepo.RevokeAllForUser(ctx, id, time.Now()); err != nil {
		return err
	}

	// Owned rows (profile, cvs, applications, user_skills) cascade in the DB.
	return u.userRepo.Delete(ctx, id)
}
