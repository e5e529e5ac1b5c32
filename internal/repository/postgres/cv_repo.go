package postgres

import (
	"context"
	"errors"

	"go-jobboard-api/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type cvRepo struct {
	db *pgxpool.Pool
}

func NewCVRepository(db *pgxpool.Pool) domain.CVRepository {
	return &cvRepo{db: db}
}

func (r *cvRepo) Create(ctx context.Context, cv *domain.CV) error {
	query := `INSERT INTO cvs (user_id, title, file_path, file_type, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRow(ctx, query,
		cv.UserID, cv.Title, cv.FilePath, cv.FileType, cv.CreatedAt, cv.UpdatedAt,
	).Scan(&cv.ID)
}

func (r *cvRepo) GetByID(ctx context.Context, id int64) (*domain.CV, error) {
	query := `SELECT id, user_id, title, file_path, file_type, created_at, updated_at FROM cvs WHERE id = $1`
	var cv domain.CV
	err := r.db.QueryRow(ctx, query, id).Scan(
		&cv.ID, &cv.UserID, &cv.Title, &cv.FilePath, &cv.FileType, &cv.CreatedAt, &cv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &cv, nil
}

func (r *cvRepo) FetchByUserID(ctx context.Context, userID int64) ([]domain.CV, error) {
	query := `SELECT id, user_id, title, file_path, file_type, created_at, updated_at
              FROM cvs WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cvs []domain.CV
	for rows.Next() {
		var cv domain.CV
		if err := rows.Scan(&cv.ID, &cv.UserID, &cv.Title, &cv.FilePath, &cv.FileType, &cv.CreatedAt, &cv.UpdatedAt); err != nil {
			return nil, err
		}
		cvs = append(cvs, cv)
	}
	return cvs, rows.Err()
}

func (r *cvRepo) Update(ctx context.Context, cv *domain.CV) error {
	query := `UPDATE cvs SET title = $2, file_path = $3, file_type = $4, updated_at = $5 WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, cv.ID, cv.Title, cv.FilePath, cv.FileType, cv.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *cvRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM cvs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
