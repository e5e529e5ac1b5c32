package domain

import (
	"context"
	"time"
)

// Skill is a global catalog entry, not owned by any user.
type Skill struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type SkillInput struct {
	Name        string
	Description *string
}

type SkillRepository interface {
	Create(ctx context.Context, skill *Skill) error
	GetByID(ctx context.Context, id int64) (*Skill, error)
	Fetch(ctx context.Context) ([]Skill, error)
	Update(ctx context.Context, skill *Skill) error
	Delete(ctx context.Context, id int64) error
	ExistAll(ctx context.Context, ids []int64) (bool, error)
}

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]Skill, error)
	GetSkill(ctx context.Context, id int64) (*Skill, error)
	CreateSkill(ctx context.Context, actor Actor, in SkillInput) (*Skill, error)
	UpdateSkill(ctx context.Context, actor Actor, id int64, in SkillInput) (*Skill, error)
	DeleteSkill(ctx context.Context, actor Actor, id int64) error
}
