package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"go-jobboard-api/internal/domain"
	"go-jobboard-api/internal/usecase"
	"go-jobboard-api/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func strPtr(s string) *string { return &s }

func TestApplicationSubmit(t *testing.T) {
	ctx := context.Background()
	offer := &domain.JobOffer{ID: 10, RecruiterID: recruiterActor.ID, Status: domain.JobOfferStatusPublished}

	t.Run("only candidates can apply", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobOfferRepo), new(MockAssetStorage))

		_, err := uc.Submit(ctx, recruiterActor, 10, "hire me", nil)
		assertAppError(t, err, http.StatusForbidden)
		appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing job offer", func(t *testing.T) {
		offerRepo := new(MockJobOfferRepo)
		offerRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), offerRepo, new(MockAssetStorage))

		_, err := uc.Submit(ctx, candidateActor, 99, "hire me", nil)
		assertAppError(t, err, http.StatusNotFound)
	})

	t.Run("duplicate application is rejected before anything is stored", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		offerRepo := new(MockJobOfferRepo)
		store := new(MockAssetStorage)
		offerRepo.On("GetByID", mock.Anything, int64(10)).Return(offer, nil)
		appRepo.On("Exists", mock.Anything, candidateActor.ID, int64(10)).Return(true, nil)
		uc := usecase.NewApplicationUsecase(appRepo, offerRepo, store)

		_, err := uc.Submit(ctx, candidateActor, 10, "hire me", pdfUpload())
		assertAppError(t, err, http.StatusConflict)
		store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("racing submit loses on the unique index", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		offerRepo := new(MockJobOfferRepo)
		offerRepo.On("GetByID", mock.Anything, int64(10)).Return(offer, nil)
		appRepo.On("Exists", mock.Anything, candidateActor.ID, int64(10)).Return(false, nil)
		appRepo.On("Create", mock.Anything, mock.Anything).
			Return(apperror.Conflict("You have already applied to this job offer"))
		uc := usecase.NewApplicationUsecase(appRepo, offerRepo, new(MockAssetStorage))

		_, err := uc.Submit(ctx, candidateActor, 10, "hire me", nil)
		assertAppError(t, err, http.StatusConflict)
	})

	t.Run("cv is stored before the row and released when the insert fails", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		offerRepo := new(MockJobOfferRepo)
		store := new(MockAssetStorage)
		offerRepo.On("GetByID", mock.Anything, int64(10)).Return(offer, nil)
		appRepo.On("Exists", mock.Anything, candidateActor.ID, int64(10)).Return(false, nil)
		store.On("Put", mock.Anything, mock.AnythingOfType("string"), mock.Anything, "application/pdf").Return(nil)
		appRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("insert failed"))
		store.On("Delete", mock.Anything, mock.AnythingOfType("string")).Return(nil)
		uc := usecase.NewApplicationUsecase(appRepo, offerRepo, store)

		_, err := uc.Submit(ctx, candidateActor, 10, "hire me", pdfUpload())
		assert.Error(t, err)
		store.AssertCalled(t, "Delete", mock.Anything, mock.AnythingOfType("string"))
	})

	t.Run("successful submit starts pending with the stored cv key", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		offerRepo := new(MockJobOfferRepo)
		store := new(MockAssetStorage)
		offerRepo.On("GetByID", mock.Anything, int64(10)).Return(offer, nil)
		appRepo.On("Exists", mock.Anything, candidateActor.ID, int64(10)).Return(false, nil)
		store.On("Put", mock.Anything, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "applications/4/")
		}), mock.Anything, "application/pdf").Return(nil)
		appRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Application).ID = 55
		})
		uc := usecase.NewApplicationUsecase(appRepo, offerRepo, store)

		app, err := uc.Submit(ctx, candidateActor, 10, "hire me", pdfUpload())
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusPending, app.Status)
		assert.NotNil(t, app.CVPath)
		store.AssertExpectations(t)
	})

	t.Run("oversized cv is rejected", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		offerRepo := new(MockJobOfferRepo)
		store := new(MockAssetStorage)
		offerRepo.On("GetByID", mock.Anything, int64(10)).Return(offer, nil)
		appRepo.On("Exists", mock.Anything, candidateActor.ID, int64(10)).Return(false, nil)
		uc := usecase.NewApplicationUsecase(appRepo, offerRepo, store)

		big := &domain.FileUpload{Filename: "resume.pdf", Data: make([]byte, 3<<20)}
		_, err := uc.Submit(ctx, candidateActor, 10, "hire me", big)
		assertAppError(t, err, http.StatusBadRequest)
		store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestApplicationList(t *testing.T) {
	ctx := context.Background()

	t.Run("each role gets its own scope", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		appRepo.On("Fetch", mock.Anything).Return([]domain.Application{}, nil)
		appRepo.On("FetchByRecruiterID", mock.Anything, recruiterActor.ID).Return([]domain.Application{}, nil)
		appRepo.On("FetchByUserID", mock.Anything, candidateActor.ID).Return([]domain.Application{}, nil)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobOfferRepo), new(MockAssetStorage))

		_, err := uc.List(ctx, adminActor, nil)
		assert.NoError(t, err)
		_, err = uc.List(ctx, recruiterActor, nil)
		assert.NoError(t, err)
		_, err = uc.List(ctx, candidateActor, nil)
		assert.NoError(t, err)
		appRepo.AssertExpectations(t)
	})

	t.Run("offer filter is forbidden for a non-owning recruiter", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		offerRepo := new(MockJobOfferRepo)
		offerRepo.On("GetByID", mock.Anything, int64(10)).
			Return(&domain.JobOffer{ID: 10, RecruiterID: 9}, nil)
		uc := usecase.NewApplicationUsecase(appRepo, offerRepo, new(MockAssetStorage))

		offerID := int64(10)
		_, err := uc.List(ctx, recruiterActor, &offerID)
		assertAppError(t, err, http.StatusForbidden)
		appRepo.AssertNotCalled(t, "FetchByJobOfferID", mock.Anything, mock.Anything)
	})

	t.Run("offer filter works for the owning recruiter", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		offerRepo := new(MockJobOfferRepo)
		offerRepo.On("GetByID", mock.Anything, int64(10)).
			Return(&domain.JobOffer{ID: 10, RecruiterID: recruiterActor.ID}, nil)
		appRepo.On("FetchByJobOfferID", mock.Anything, int64(10)).Return([]domain.Application{{ID: 1}}, nil)
		uc := usecase.NewApplicationUsecase(appRepo, offerRepo, new(MockAssetStorage))

		offerID := int64(10)
		apps, err := uc.List(ctx, recruiterActor, &offerID)
		assert.NoError(t, err)
		assert.Len(t, apps, 1)
	})

	t.Run("candidates cannot filter by offer", func(t *testing.T) {
		offerRepo := new(MockJobOfferRepo)
		offerRepo.On("GetByID", mock.Anything, int64(10)).
			Return(&domain.JobOffer{ID: 10, RecruiterID: 9}, nil)
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), offerRepo, new(MockAssetStorage))

		offerID := int64(10)
		_, err := uc.List(ctx, candidateActor, &offerID)
		assertAppError(t, err, http.StatusForbidden)
	})
}

func TestApplicationUpdate(t *testing.T) {
	ctx := context.Background()

	pendingApp := func() *domain.Application {
		return &domain.Application{
			ID:               55,
			UserID:           candidateActor.ID,
			JobOfferID:       10,
			Status:           domain.ApplicationStatusPending,
			OfferRecruiterID: recruiterActor.ID,
		}
	}

	t.Run("candidate edits are frozen once the status leaves pending", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		reviewed := pendingApp()
		reviewed.Status = domain.ApplicationStatusReviewed
		appRepo.On("GetByID", mock.Anything, int64(55)).Return(reviewed, nil)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobOfferRepo), new(MockAssetStorage))

		_, err := uc.Update(ctx, candidateActor, 55, domain.ApplicationPatch{CoverLetter: strPtr("updated")})
		assertAppError(t, err, http.StatusForbidden)
		appRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("candidate cannot move the status", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		appRepo.On("GetByID", mock.Anything, int64(55)).Return(pendingApp(), nil)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobOfferRepo), new(MockAssetStorage))

		_, err := uc.Update(ctx, candidateActor, 55, domain.ApplicationPatch{Status: strPtr(domain.ApplicationStatusAccepted)})
		assertAppError(t, err, http.StatusForbidden)
	})

	t.Run("recruiter cannot rewrite the submission", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		appRepo.On("GetByID", mock.Anything, int64(55)).Return(pendingApp(), nil)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobOfferRepo), new(MockAssetStorage))

		_, err := uc.Update(ctx, recruiterActor, 55, domain.ApplicationPatch{CoverLetter: strPtr("better letter")})
		assertAppError(t, err, http.StatusForbidden)
	})

	t.Run("recruiter moves the status on their own offer", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		appRepo.On("GetByID", mock.Anything, int64(55)).Return(pendingApp(), nil)
		appRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobOfferRepo), new(MockAssetStorage))

		app, err := uc.Update(ctx, recruiterActor, 55, domain.ApplicationPatch{Status: strPtr(domain.ApplicationStatusInterview)})
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusInterview, app.Status)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		appRepo.On("GetByID", mock.Anything, int64(55)).Return(pendingApp(), nil)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobOfferRepo), new(MockAssetStorage))

		_, err := uc.Update(ctx, recruiterActor, 55, domain.ApplicationPatch{Status: strPtr("archived")})
		assertAppError(t, err, http.StatusBadRequest)
	})

	t.Run("the old cv is released only after the row update succeeds", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		store := new(MockAssetStorage)
		app := pendingApp()
		oldKey := "applications/4/old.pdf"
		app.CVPath = &oldKey
		appRepo.On("GetByID", mock.Anything, int64(55)).Return(app, nil)
		store.On("Put", mock.Anything, mock.AnythingOfType("string"), mock.Anything, "application/pdf").Return(nil)
		appRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
		store.On("Delete", mock.Anything, oldKey).Return(nil)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobOfferRepo), store)

		got, err := uc.Update(ctx, candidateActor, 55, domain.ApplicationPatch{CV: pdfUpload()})
		assert.NoError(t, err)
		assert.NotEqual(t, oldKey, *got.CVPath)
		store.AssertCalled(t, "Delete", mock.Anything, oldKey)
	})

	t.Run("a failed replacement store keeps the old asset", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		store := new(MockAssetStorage)
		app := pendingApp()
		oldKey := "applications/4/old.pdf"
		app.CVPath = &oldKey
		appRepo.On("GetByID", mock.Anything, int64(55)).Return(app, nil)
		store.On("Put", mock.Anything, mock.AnythingOfType("string"), mock.Anything, "application/pdf").
			Return(errors.New("store unavailable"))
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobOfferRepo), store)

		_, err := uc.Update(ctx, candidateActor, 55, domain.ApplicationPatch{CV: pdfUpload()})
		assertAppError(t, err, http.StatusBadGateway)
		store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		appRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("a failed row update removes the replacement and keeps the old asset", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		store := new(MockAssetStorage)
		app := pendingApp()
		oldKey := "applications/4/old.pdf"
		app.CVPath = &oldKey
		appRepo.On("GetByID", mock.Anything, int64(55)).Return(app, nil)
		store.On("Put", mock.Anything, mock.AnythingOfType("string"), mock.Anything, "application/pdf").Return(nil)
		appRepo.On("Update", mock.Anything, mock.Anything).Return(errors.New("update failed"))
		store.On("Delete", mock.Anything, mock.MatchedBy(func(key string) bool {
			return key != oldKey
		})).Return(nil)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobOfferRepo), store)

		_, err := uc.Update(ctx, candidateActor, 55, domain.ApplicationPatch{CV: pdfUpload()})
		assert.Error(t, err)
		store.AssertNotCalled(t, "Delete", mock.Anything, oldKey)
	})
}

func TestApplicationDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("a refused asset delete keeps the row", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		store := new(MockAssetStorage)
		key := "applications/4/cv.pdf"
		appRepo.On("GetByID", mock.Anything, int64(55)).Return(&domain.Application{
			ID: 55, UserID: candidateActor.ID, Status: domain.ApplicationStatusPending, CVPath: &key,
		}, nil)
		store.On("Delete", mock.Anything, key).Return(errors.New("store unavailable"))
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobOfferRepo), store)

		err := uc.Delete(ctx, candidateActor, 55)
		assertAppError(t, err, http.StatusBadGateway)
		appRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("asset goes first, then the row", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		store := new(MockAssetStorage)
		key := "applications/4/cv.pdf"
		appRepo.On("GetByID", mock.Anything, int64(55)).Return(&domain.Application{
			ID: 55, UserID: candidateActor.ID, Status: domain.ApplicationStatusPending, CVPath: &key,
		}, nil)
		store.On("Delete", mock.Anything, key).Return(nil)
		appRepo.On("Delete", mock.Anything, int64(55)).Return(nil)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobOfferRepo), store)

		assert.NoError(t, uc.Delete(ctx, candidateActor, 55))
		store.AssertExpectations(t)
		appRepo.AssertExpectations(t)
	})

	t.Run("recruiters never delete applications", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		appRepo.On("GetByID", mock.Anything, int64(55)).Return(&domain.Application{
			ID: 55, UserID: candidateActor.ID, Status: domain.ApplicationStatusPending, OfferRecruiterID: recruiterActor.ID,
		}, nil)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobOfferRepo), new(MockAssetStorage))

		err := uc.Delete(ctx, recruiterActor, 55)
		assertAppError(t, err, http.StatusForbidden)
	})
}
