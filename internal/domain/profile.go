package domain

import (
	"context"
	"time"
)

// Profile is the one-per-user contact record, upserted by its owner.
type Profile struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	PhoneNumber *string   `json:"phone_number"`
	Image       *string   `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ProfileInput struct {
	PhoneNumber *string
	Image       *string
}

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*Profile, error)
	Create(ctx context.Context, profile *Profile) error
	Update(ctx context.Context, profile *Profile) error
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context, actor Actor) (*Profile, error)
	// UpsertProfile creates the profile on first write and updates it after.
	UpsertProfile(ctx context.Context, actor Actor, in ProfileInput) (*Profile, error)
}
