package domain

import (
	"context"
	"time"
)

// RegisterInput is the payload for account creation.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     Role
	SkillIDs []int64
}

// TokenPair is the credential set returned by login, register and refresh.
type TokenPair struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// RefreshToken is a stored, single-use refresh credential. Tokens are rotated:
// using one revokes it and issues a replacement.
type RefreshToken struct {
	ID        string
	UserID    int64
	Token     string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}

type RefreshTokenRepository interface {
	Store(ctx context.Context, token *RefreshToken) error
	GetByToken(ctx context.Context, token string) (*RefreshToken, error)
	Revoke(ctx context.Context, token string, at time.Time) error
	RevokeAllForUser(ctx context.Context, userID int64, at time.Time) error
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (*TokenPair, *User, error)
	Login(ctx context.Context, email, password string) (*TokenPair, *User, error)
	// Logout revokes the presented access token (by jti) and, when supplied,
	// the refresh token.
	Logout(ctx context.Context, rawAccessToken, refreshToken string) error
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, *User, error)
	CurrentUser(ctx context.Context, actor Actor) (*UserDetail, error)
	// GetUserByID is used by the auth middleware to load the fresh role for a
	// validated token subject. The role claim inside the token is never trusted.
	GetUserByID(ctx context.Context, id int64) (*User, error)
}
