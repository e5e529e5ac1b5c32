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

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// applicationColumns joins the parent offer for its recruiter and title, and
// the applicant for name/email. Every read goes through it so the recruiter
// of the offer is always loaded alongside the row.
const applicationColumns = `
	a.id, a.user_id, a.job_offer_id, a.cover_letter, a.status, a.cv_path,
	a.created_at, a.updated_at,
	o.recruiter_id, u.name, u.email, o.title`

func scanApplication(row pgx.Row, app *domain.Application) error {
	return row.Scan(
		&app.ID, &app.UserID, &app.JobOfferID, &app.CoverLetter, &app.Status, &app.CVPath,
		&app.CreatedAt, &app.UpdatedAt,
		&app.OfferRecruiterID, &app.ApplicantName, &app.ApplicantEmail, &app.OfferTitle,
	)
}

func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `INSERT INTO applications (user_id, job_offer_id, cover_letter, status, cv_path, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		app.UserID, app.JobOfferID, app.CoverLetter, app.Status, app.CVPath, app.CreatedAt, app.UpdatedAt,
	).Scan(&app.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("You have already applied to this job offer")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + `
		FROM applications a
		JOIN job_offers o ON a.job_offer_id = o.id
		JOIN users u ON a.user_id = u.id
		WHERE a.id = $1`

	var app domain.Application
	if err := scanApplication(r.db.QueryRow(ctx, query, id), &app); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepo) Fetch(ctx context.Context) ([]domain.Application, error) {
	query := `SELECT ` + applicationColumns + `
		FROM applications a
		JOIN job_offers o ON a.job_offer_id = o.id
		JOIN users u ON a.user_id = u.id
		ORDER BY a.created_at DESC`
	return r.fetch(ctx, query)
}

func (r *applicationRepo) FetchByJobOfferID(ctx context.Context, jobOfferID int64) ([]domain.Application, error) {
	query := `SELECT ` + applicationColumns + `
		FROM applications a
		JOIN job_offers o ON a.job_offer_id = o.id
		JOIN users u ON a.user_id = u.id
		WHERE a.job_offer_id = $1
		ORDER BY a.created_at DESC`
	return r.fetch(ctx, query, jobOfferID)
}

func (r *applicationRepo) FetchByUserID(ctx context.Context, userID int64) ([]domain.Application, error) {
	query := `SELECT ` + applicationColumns + `
		FROM applications a
		JOIN job_offers o ON a.job_offer_id = o.id
		JOIN users u ON a.user_id = u.id
		WHERE a.user_id = $1
		ORDER BY a.created_at DESC`
	return r.fetch(ctx, query, userID)
}

func (r *applicationRepo) FetchByRecruiterID(ctx context.Context, recruiterID int64) ([]domain.Application, error) {
	query := `SELECT ` + applicationColumns + `
		FROM applications a
		JOIN job_offers o ON a.job_offer_id = o.id
		JOIN users u ON a.user_id = u.id
		WHERE o.recruiter_id = $1
		ORDER BY a.created_at DESC`
	return r.fetch(ctx, query, recruiterID)
}

func (r *applicationRepo) fetch(ctx context.Context, query string, args ...any) ([]domain.Application, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := scanApplication(rows, &app); err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func (r *applicationRepo) Exists(ctx context.Context, userID, jobOfferID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE user_id = $1 AND job_offer_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, userID, jobOfferID).Scan(&exists)
	return exists, err
}

func (r *applicationRepo) ExistsForRecruiter(ctx context.Context, userID, recruiterID int64) (bool, error) {
	query := `SELECT EXISTS(
		SELECT 1
		FROM applications a
		JOIN job_offers o ON a.job_offer_id = o.id
		WHERE a.user_id = $1 AND o.recruiter_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, userID, recruiterID).Scan(&exists)
	return exists, err
}

func (r *applicationRepo) Update(ctx context.Context, app *domain.Application) error {
	query := `UPDATE applications SET cover_letter = $2, status = $3, cv_path = $4, updated_at = $5 WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, app.ID, app.CoverLetter, app.Status, app.CVPath, app.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *applicationRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
