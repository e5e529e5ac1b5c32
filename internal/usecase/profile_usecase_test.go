package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"go-jobboard-api/internal/domain"
	"go-jobboard-api/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProfileUpsert(t *testing.T) {
	ctx := context.Background()

	t.Run("first write creates the profile", func(t *testing.T) {
		profileRepo := new(MockProfileRepo)
		profileRepo.On("GetByUserID", mock.Anything, candidateActor.ID).Return(nil, domain.ErrNotFound)
		profileRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Profile).ID = 1
		})
		uc := usecase.NewProfileUsecase(profileRepo)

		phone := "+33612345678"
		profile, err := uc.UpsertProfile(ctx, candidateActor, domain.ProfileInput{PhoneNumber: &phone})
		assert.NoError(t, err)
		assert.Equal(t, candidateActor.ID, profile.UserID)
		assert.Equal(t, &phone, profile.PhoneNumber)
		profileRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("later writes update only the supplied fields", func(t *testing.T) {
		profileRepo := new(MockProfileRepo)
		oldPhone := "+33600000000"
		image := "https://img.example/jane.png"
		profileRepo.On("GetByUserID", mock.Anything, candidateActor.ID).Return(&domain.Profile{
			ID: 1, UserID: candidateActor.ID, PhoneNumber: &oldPhone, Image: &image,
		}, nil)
		profileRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
		uc := usecase.NewProfileUsecase(profileRepo)

		newPhone := "+33612345678"
		profile, err := uc.UpsertProfile(ctx, candidateActor, domain.ProfileInput{PhoneNumber: &newPhone})
		assert.NoError(t, err)
		assert.Equal(t, &newPhone, profile.PhoneNumber)
		assert.Equal(t, &image, profile.Image)
		profileRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestProfileGet(t *testing.T) {
	ctx := context.Background()

	t.Run("missing profile", func(t *testing.T) {
		profileRepo := new(MockProfileRepo)
		profileRepo.On("GetByUserID", mock.Anything, candidateActor.ID).Return(nil, domain.ErrNotFound)
		uc := usecase.NewProfileUsecase(profileRepo)

		_, err := uc.GetProfile(ctx, candidateActor)
		assertAppError(t, err, http.StatusNotFound)
	})
}
