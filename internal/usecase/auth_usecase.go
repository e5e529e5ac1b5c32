package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobboard-api/internal/domain"
	"go-jobboard-api/pkg/apperror"
	"go-jobboard-api/pkg/auth"
	"go-jobboard-api/pkg/token"

	"github.com/google/uuid"
)

type authUsecase struct {
	userRepo    domain.UserRepository
	profileRepo domain.ProfileRepository
	skillRepo   domain.SkillRepository
	cvRepo      domain.CVRepository
	refreshRepo domain.RefreshTokenRepository
	tokens      *token.Provider
	blacklist   token.Blacklist
	refreshTTL  time.Duration
}

func NewAuthUsecase(
	userRepo domain.UserRepository,
	profileRepo domain.ProfileRepository,
	skillRepo domain.SkillRepository,
	cvRepo domain.CVRepository,
	refreshRepo domain.RefreshTokenRepository,
	tokens *token.Provider,
	blacklist token.Blacklist,
	refreshTTL time.Duration,
) domain.AuthUsecase {
	return &authUsecase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		skillRepo:   skillRepo,
		cvRepo:      cvRepo,
		refreshRepo: refreshRepo,
		tokens:      tokens,
		blacklist:   blacklist,
		refreshTTL:  refreshTTL,
	}
}

func (u *authUsecase) Register(ctx context.Context, in domain.RegisterInput) (*domain.TokenPair, *domain.User, error) {
	// Admin accounts are provisioned out of band, never self-registered.
	if in.Role != domain.RoleCandidate && in.Role != domain.RoleRecruiter {
		return nil, nil, apperror.BadRequest("Role must be candidate or recruiter")
	}

	if len(in.SkillIDs) > 0 {
		ok, err := u.skillRepo.ExistAll(ctx, in.SkillIDs)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			return nil, nil, apperror.BadRequest("One or more skills do not exist")
		}
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, nil, apperror.Internal(err)
	}

	now := time.Now()
	user := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	if len(in.SkillIDs) > 0 {
		if err := u.userRepo.AttachSkills(ctx, user.ID, in.SkillIDs); err != nil {
			return nil, nil, err
		}
	}

	pair, err := u.issuePair(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return pair, user, nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.TokenPair, *domain.User, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, apperror.Unauthorized("Invalid email or password")
		}
		return nil, nil, err
	}
	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		return nil, nil, apperror.Unauthorized("Invalid email or password")
	}

	pair, err := u.issuePair(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return pair, user, nil
}

func (u *authUsecase) Logout(ctx context.Context, rawAccessToken, refreshToken string) error {
	claims, err := u.tokens.Parse(rawAccessToken)
	if err != nil {
		return apperror.Unauthorized("Invalid token")
	}

	// Blacklist the jti for the token's remaining lifetime.
	if claims.ExpiresAt != nil {
		ttl := time.Until(claims.ExpiresAt.Time)
		if err := u.blacklist.Revoke(ctx, claims.ID, ttl); err != nil {
			return err
		}
	}

	if refreshToken != "" {
		if err := u.refreshRepo.Revoke(ctx, refreshToken, time.Now()); err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}
	}
	return nil
}

func (u *authUsecase) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, *domain.User, error) {
	stored, err := u.refreshRepo.GetByToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, apperror.Unauthorized("Invalid refresh token")
		}
		return nil, nil, err
	}
	if stored.RevokedAt != nil || time.Now().After(stored.ExpiresAt) {
		return nil, nil, apperror.Unauthorized("Invalid refresh token")
	}

	user, err := u.userRepo.GetByID(ctx, stored.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, apperror.Unauthorized("Invalid refresh token")
		}
		return nil, nil, err
	}

	// Rotation: the presented token dies the moment it is used.
	if err := u.refreshRepo.Revoke(ctx, refreshToken, time.Now()); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, nil, err
	}

	pair, err := u.issuePair(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return pair, user, nil
}

func (u *authUsecase) CurrentUser(ctx context.Context, actor domain.Actor) (*domain.UserDetail, error) {
	user, err := u.userRepo.GetByID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("Account no longer exists")
		}
		return nil, err
	}

	detail := &domain.UserDetail{User: *user}

	profile, err := u.profileRepo.GetByUserID(ctx, actor.ID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	detail.Profile = profile

	if detail.Skills, err = u.userRepo.GetSkills(ctx, actor.ID); err != nil {
		return nil, err
	}
	if detail.CVs, err = u.cvRepo.FetchByUserID(ctx, actor.ID); err != nil {
		return nil, err
	}
	return detail, nil
}

func (u *authUsecase) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) issuePair(ctx context.Context, user *domain.User) (*domain.TokenPair, error) {
	access, expiresAt, err := u.tokens.Generate(user.ID, string(user.Role))
	if err != nil {
		return nil, apperror.Internal(err)
	}

	refresh, err := token.NewRefreshToken()
	if err != nil {
		return nil, apperror.Internal(err)
	}
	stored := &domain.RefreshToken{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Token:     refresh,
		ExpiresAt: time.Now().Add(u.refreshTTL),
		CreatedAt: time.Now(),
	}
	if err := u.refreshRepo.Store(ctx, stored); err != nil {
		return nil, err
	}

	return &domain.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresAt:    expiresAt,
	}, nil
}
