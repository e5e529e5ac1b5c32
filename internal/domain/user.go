package domain

import (
	"context"
	"time"
)

// Role is the authorization role carried by every account.
type Role string

const (
	RoleCandidate Role = "candidate"
	RoleRecruiter Role = "recruiter"
	RoleAdmin     Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCandidate, RoleRecruiter, RoleAdmin:
		return true
	}
	return false
}

// Actor is the authenticated identity performing a request. The auth middleware
// builds it once per request and it is passed explicitly into every usecase and
// policy call; nothing below the delivery layer reads it from ambient state.
type Actor struct {
	ID   int64 `json:"id"`
	Role Role  `json:"role"`
}

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Actor returns the acting identity for this account.
func (u *User) Actor() Actor {
	return Actor{ID: u.ID, Role: u.Role}
}

// UserDetail is the /user aggregate: the account plus its owned records.
type UserDetail struct {
	User
	Profile *Profile `json:"profile"`
	Skills  []Skill  `json:"skills"`
	CVs     []CV     `json:"cvs"`
}

// UserPatch carries the mutable account fields. Nil means "leave unchanged".
type UserPatch struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Fetch(ctx context.Context, limit, offset int) ([]User, int64, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id int64) error
	AttachSkills(ctx context.Context, userID int64, skillIDs []int64) error
	GetSkills(ctx context.Context, userID int64) ([]Skill, error)
}

type UserUsecase interface {
	ListUsers(ctx context.Context, actor Actor, page, pageSize int) ([]User, int64, error)
	GetUser(ctx context.Context, actor Actor, id int64) (*User, error)
	UpdateUser(ctx context.Context, actor Actor, id int64, patch UserPatch) (*User, error)
	DeleteUser(ctx context.Context, actor Actor, id int64) error
}
