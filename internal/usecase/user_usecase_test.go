package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"go-jobboard-api/internal/domain"
	"go-jobboard-api/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserList(t *testing.T) {
	ctx := context.Background()

	t.Run("only admins list accounts", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(userRepo, new(MockCVRepo), new(MockApplicationRepo), new(MockRefreshTokenRepo), new(MockAssetStorage))

		_, _, err := uc.ListUsers(ctx, recruiterActor, 1, 10)
		assertAppError(t, err, http.StatusForbidden)
		userRepo.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("pagination is normalized", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("Fetch", mock.Anything, 10, 0).Return([]domain.User{{ID: 1}}, int64(1), nil)
		uc := usecase.NewUserUsecase(userRepo, new(MockCVRepo), new(MockApplicationRepo), new(MockRefreshTokenRepo), new(MockAssetStorage))

		users, total, err := uc.ListUsers(ctx, adminActor, 0, -5)
		assert.NoError(t, err)
		assert.Len(t, users, 1)
		assert.Equal(t, int64(1), total)
	})
}

func TestUserGet(t *testing.T) {
	ctx := context.Background()
	candidate := &domain.User{ID: candidateActor.ID, Role: domain.RoleCandidate}
	otherRecruiter := &domain.User{ID: 9, Role: domain.RoleRecruiter}

	t.Run("recruiters may view candidates but not other recruiters", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", mock.Anything, candidateActor.ID).Return(candidate, nil)
		userRepo.On("GetByID", mock.Anything, int64(9)).Return(otherRecruiter, nil)
		uc := usecase.NewUserUsecase(userRepo, new(MockCVRepo), new(MockApplicationRepo), new(MockRefreshTokenRepo), new(MockAssetStorage))

		_, err := uc.GetUser(ctx, recruiterActor, candidateActor.ID)
		assert.NoError(t, err)

		_, err = uc.GetUser(ctx, recruiterActor, 9)
		assertAppError(t, err, http.StatusForbidden)
	})

	t.Run("candidates only see themselves", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", mock.Anything, int64(5)).
			Return(&domain.User{ID: 5, Role: domain.RoleCandidate}, nil)
		uc := usecase.NewUserUsecase(userRepo, new(MockCVRepo), new(MockApplicationRepo), new(MockRefreshTokenRepo), new(MockAssetStorage))

		_, err := uc.GetUser(ctx, candidateActor, 5)
		assertAppError(t, err, http.StatusForbidden)
	})
}

func TestUserDelete(t *testing.T) {
	ctx := context.Background()
	candidate := &domain.User{ID: candidateActor.ID, Role: domain.RoleCandidate}

	t.Run("assets and sessions are released before the rows", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		cvRepo := new(MockCVRepo)
		appRepo := new(MockApplicationRepo)
		refreshRepo := new(MockRefreshTokenRepo)
		store := new(MockAssetStorage)

		appCV := "applications/4/cv.pdf"
		userRepo.On("GetByID", mock.Anything, candidateActor.ID).Return(candidate, nil)
		cvRepo.On("FetchByUserID", mock.Anything, candidateActor.ID).Return([]domain.CV{
			{ID: 7, FilePath: "cvs/4/a.pdf"},
			{ID: 8, FilePath: "cvs/4/b.pdf"},
		}, nil)
		appRepo.On("FetchByUserID", mock.Anything, candidateActor.ID).Return([]domain.Application{
			{ID: 55, CVPath: &appCV},
			{ID: 56},
		}, nil)
		store.On("Delete", mock.Anything, "cvs/4/a.pdf").Return(nil)
		store.On("Delete", mock.Anything, "cvs/4/b.pdf").Return(nil)
		store.On("Delete", mock.Anything, appCV).Return(nil)
		refreshRepo.On("RevokeAllForUser", mock.Anything, candidateActor.ID, mock.Anything).Return(nil)
		userRepo.On("Delete", mock.Anything, candidateActor.ID).Return(nil)

		uc := usecase.NewUserUsecase(userRepo, cvRepo, appRepo, refreshRepo, store)
		assert.NoError(t, uc.DeleteUser(ctx, candidateActor, candidateActor.ID))
		store.AssertExpectations(t)
		refreshRepo.AssertExpectations(t)
		userRepo.AssertExpectations(t)
	})

	t.Run("a storage refusal aborts the whole delete", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		cvRepo := new(MockCVRepo)
		store := new(MockAssetStorage)

		userRepo.On("GetByID", mock.Anything, candidateActor.ID).Return(candidate, nil)
		cvRepo.On("FetchByUserID", mock.Anything, candidateActor.ID).Return([]domain.CV{
			{ID: 7, FilePath: "cvs/4/a.pdf"},
		}, nil)
		store.On("Delete", mock.Anything, "cvs/4/a.pdf").Return(errors.New("store unavailable"))

		uc := usecase.NewUserUsecase(userRepo, cvRepo, new(MockApplicationRepo), new(MockRefreshTokenRepo), store)
		err := uc.DeleteUser(ctx, candidateActor, candidateActor.ID)
		assertAppError(t, err, http.StatusBadGateway)
		userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("candidates cannot delete other accounts", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", mock.Anything, int64(5)).
			Return(&domain.User{ID: 5, Role: domain.RoleCandidate}, nil)
		uc := usecase.NewUserUsecase(userRepo, new(MockCVRepo), new(MockApplicationRepo), new(MockRefreshTokenRepo), new(MockAssetStorage))

		err := uc.DeleteUser(ctx, candidateActor, 5)
		assertAppError(t, err, http.StatusForbidden)
	})
}
