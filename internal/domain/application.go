package domain

import (
	"context"
	"time"
)

// Application status constants
const (
	ApplicationStatusPending   = "pending"
	ApplicationStatusReviewed  = "reviewed"
	ApplicationStatusInterview = "interview"
	ApplicationStatusAccepted  = "accepted"
	ApplicationStatusRejected  = "rejected"
)

// ValidApplicationStatus reports whether s is a known application status.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewed, ApplicationStatusInterview,
		ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// Application represents a candidate's application to a job offer.
// (user_id, job_offer_id) is unique: a candidate cannot apply twice.
type Application struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	JobOfferID  int64     `json:"job_offer_id"`
	CoverLetter string    `json:"cover_letter"`
	Status      string    `json:"status"`
	CVPath      *string   `json:"cv_path,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// OfferRecruiterID is the owning recruiter of the parent job offer, loaded
	// by join. Policy decisions on applications depend on it.
	OfferRecruiterID int64 `json:"-"`

	// Joined data for list/detail responses
	ApplicantName  *string `json:"applicant_name,omitempty"`
	ApplicantEmail *string `json:"applicant_email,omitempty"`
	OfferTitle     *string `json:"offer_title,omitempty"`
}

// ApplicationPatch carries a role-dependent partial update: candidates may set
// CoverLetter and CV, recruiters and admins may set Status.
type ApplicationPatch struct {
	CoverLetter *string
	Status      *string
	CV          *FileUpload
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	Fetch(ctx context.Context) ([]Application, error)
	FetchByJobOfferID(ctx context.Context, jobOfferID int64) ([]Application, error)
	FetchByUserID(ctx context.Context, userID int64) ([]Application, error)
	FetchByRecruiterID(ctx context.Context, recruiterID int64) ([]Application, error)
	Exists(ctx context.Context, userID, jobOfferID int64) (bool, error)
	// ExistsForRecruiter reports whether the user has at least one application
	// to a job offer owned by the recruiter. It backs the derived CV
	// visibility rule and is kept separate from static ownership checks.
	ExistsForRecruiter(ctx context.Context, userID, recruiterID int64) (bool, error)
	Update(ctx context.Context, app *Application) error
	Delete(ctx context.Context, id int64) error
}

type ApplicationUsecase interface {
	Submit(ctx context.Context, actor Actor, jobOfferID int64, coverLetter string, cv *FileUpload) (*Application, error)
	// List returns applications visible to the actor. A non-nil jobOfferID
	// filter is itself authorization-gated: only an admin or the offer's
	// owning recruiter may use it.
	List(ctx context.Context, actor Actor, jobOfferID *int64) ([]Application, error)
	Get(ctx context.Context, actor Actor, id int64) (*Application, error)
	Update(ctx context.Context, actor Actor, id int64, patch ApplicationPatch) (*Application, error)
	Delete(ctx context.Context, actor Actor, id int64) error
}
