package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Job offer lifecycle states
const (
	JobOfferStatusDraft     = "draft"
	JobOfferStatusPublished = "published"
	JobOfferStatusClosed    = "closed"
)

// Contract types accepted on a job offer
const (
	ContractFullTime  = "full-time"
	ContractPartTime  = "part-time"
	ContractFreelance = "freelance"
)

type JobOffer struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	ContractType string    `json:"contract_type"`
	Salary       float64   `json:"salary"`
	PostedAt     time.Time `json:"posted_at"`
	RecruiterID  int64     `json:"recruiter_id"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Joined data for detail responses
	RecruiterName     *string `json:"recruiter_name,omitempty"`
	RecruiterEmail    *string `json:"recruiter_email,omitempty"`
	ApplicationsCount *int64  `json:"applications_count,omitempty"`
}

// JobOfferInput carries the mutable fields of an offer.
type JobOfferInput struct {
	Title        string
	Description  string
	Location     string
	ContractType string
	Salary       float64
	Status       string
}

type JobOfferRepository interface {
	Create(ctx context.Context, offer *JobOffer) error
	GetByID(ctx context.Context, id int64) (*JobOffer, error)
	GetByIDWithRecruiter(ctx context.Context, id int64) (*JobOffer, error)
	Fetch(ctx context.Context) ([]JobOffer, error)
	FetchByRecruiterID(ctx context.Context, recruiterID int64) ([]JobOffer, error)
	FetchByStatus(ctx context.Context, status string) ([]JobOffer, error)
	Update(ctx context.Context, offer *JobOffer) error
	Delete(ctx context.Context, id int64) error
}

type JobOfferUsecase interface {
	// ListJobOffers scopes the visible set by role: recruiters see their own
	// offers, admins see everything, candidates see published offers only.
	ListJobOffers(ctx context.Context, actor Actor) ([]JobOffer, error)
	GetJobOffer(ctx context.Context, actor Actor, id int64) (*JobOffer, error)
	CreateJobOffer(ctx context.Context, actor Actor, in JobOfferInput) (*JobOffer, error)
	UpdateJobOffer(ctx context.Context, actor Actor, id int64, in JobOfferInput) (*JobOffer, error)
	DeleteJobOffer(ctx context.Context, actor Actor, id int64) error
}
