package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobboard-api/internal/domain"
	"go-jobboard-api/pkg/apperror"
)

type skillUsecase struct {
	skillRepo domain.SkillRepository
}

func NewSkillUsecase(skillRepo domain.SkillRepository) domain.SkillUsecase {
	return &skillUsecase{skillRepo: skillRepo}
}

func (u *skillUsecase) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	return u.skillRepo.Fetch(ctx)
}

func (u *skillUsecase) GetSkill(ctx context.Context, id int64) (*domain.Skill, error) {
	skill, err := u.skillRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Skill not found")
		}
		return nil, err
	}
	return skill, nil
}

func (u *skillUsecase) CreateSkill(ctx context.Context, actor domain.Actor, in domain.SkillInput) (*domain.Skill, error) {
	if in.Name == "" {
		return nil, apperror.BadRequest("Name is required")
	}

	now := time.Now()
	skill := &domain.Skill{
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.skillRepo.Create(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (u *skillUsecase) UpdateSkill(ctx context.Context, actor domain.Actor, id int64, in domain.SkillInput) (*domain.Skill, error) {
	skill, err := u.skillRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Skill not found")
		}
		return nil, err
	}

	if in.Name == "" {
		return nil, apperror.BadRequest("Name is required")
	}
	skill.Name = in.Name
	skill.Description = in.Description
	skill.UpdatedAt = time.Now()

	if err := u.skillRepo.Update(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (u *skillUsecase) DeleteSkill(ctx context.Context, actor domain.Actor, id int64) error {
	if _, err := u.skillRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Skill not found")
		}
		return err
	}
	return u.skillRepo.Delete(ctx, id)
}
