package postgres

import (
	"context"
	"errors"

	"go-jobboard-api/internal/domain"
	"go-jobboard-api/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type skillRepo struct {
	db *pgxpool.Pool
}

func NewSkillRepository(db *pgxpool.Pool) domain.SkillRepository {
	return &skillRepo{db: db}
}

func (r *skillRepo) Create(ctx context.Context, skill *domain.Skill) error {
	query := `INSERT INTO skills (name, description, created_at, updated_at)
              VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		skill.Name, skill.Description, skill.CreatedAt, skill.UpdatedAt,
	).Scan(&skill.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("Skill with this name already exists")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *skillRepo) GetByID(ctx context.Context, id int64) (*domain.Skill, error) {
	query := `SELECT id, name, description, created_at, updated_at FROM skills WHERE id = $1`
	var skill domain.Skill
	err := r.db.QueryRow(ctx, query, id).Scan(
		&skill.ID, &skill.Name, &skill.Description, &skill.CreatedAt, &skill.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &skill, nil
}

func (r *skillRepo) Fetch(ctx context.Context) ([]domain.Skill, error) {
	query := `SELECT id, name, description, created_at, updated_at FROM skills ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []domain.Skill
	for rows.Next() {
		var skill domain.Skill
		if err := rows.Scan(&skill.ID, &skill.Name, &skill.Description, &skill.CreatedAt, &skill.UpdatedAt); err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}
	return skills, rows.Err()
}

func (r *skillRepo) Update(ctx context.Context, skill *domain.Skill) error {
	query := `UPDATE skills SET name = $2, description = $3, updated_at = $4 WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, skill.ID, skill.Name, skill.Description, skill.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("Skill with this name already exists")
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *skillRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ExistAll reports whether every id resolves to an existing skill.
func (r *skillRepo) ExistAll(ctx context.Context, ids []int64) (bool, error) {
	if len(ids) == 0 {
		return true, nil
	}
	query := `SELECT COUNT(*) FROM skills WHERE id = ANY($1)`
	var count int64
	if err := r.db.QueryRow(ctx, query, ids).Scan(&count); err != nil {
		return false, err
	}
	return count == int64(len(uniqueIDs(ids))), nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}
