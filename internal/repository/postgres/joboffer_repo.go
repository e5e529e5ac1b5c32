package postgres

import (
	"context"
	"errors"

	"go-jobboard-api/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobOfferRepo struct {
	db *pgxpool.Pool
}

func NewJobOfferRepository(db *pgxpool.Pool) domain.JobOfferRepository {
	return &jobOfferRepo{db: db}
}

func (r *jobOfferRepo) Create(ctx context.Context, offer *domain.JobOffer) error {
	query := `INSERT INTO job_offers (title, description, location, contract_type, salary, posted_at, recruiter_id, status, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	return r.db.QueryRow(ctx, query,
		offer.Title, offer.Description, offer.Location, offer.ContractType, offer.Salary,
		offer.PostedAt, offer.RecruiterID, offer.Status, offer.CreatedAt, offer.UpdatedAt,
	).Scan(&offer.ID)
}

func (r *jobOfferRepo) GetByID(ctx context.Context, id int64) (*domain.JobOffer, error) {
	query := `SELECT id, title, description, location, contract_type, salary, posted_at, recruiter_id, status, created_at, updated_at
              FROM job_offers WHERE id = $1`
	var offer domain.JobOffer
	err := r.db.QueryRow(ctx, query, id).Scan(
		&offer.ID, &offer.Title, &offer.Description, &offer.Location, &offer.ContractType, &offer.Salary,
		&offer.PostedAt, &offer.RecruiterID, &offer.Status, &offer.CreatedAt, &offer.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &offer, nil
}

// GetByIDWithRecruiter retrieves an offer with recruiter details and the
// application count for detail responses.
func (r *jobOfferRepo) GetByIDWithRecruiter(ctx context.Context, id int64) (*domain.JobOffer, error) {
	query := `
		SELECT
			o.id, o.title, o.description, o.location, o.contract_type, o.salary,
			o.posted_at, o.recruiter_id, o.status, o.created_at, o.updated_at,
			u.name, u.email,
			(SELECT COUNT(*) FROM applications a WHERE a.job_offer_id = o.id)
		FROM job_offers o
		JOIN users u ON o.recruiter_id = u.id
		WHERE o.id = $1`

	var offer domain.JobOffer
	err := r.db.QueryRow(ctx, query, id).Scan(
		&offer.ID, &offer.Title, &offer.Description, &offer.Location, &offer.ContractType, &offer.Salary,
		&offer.PostedAt, &offer.RecruiterID, &offer.Status, &offer.CreatedAt, &offer.UpdatedAt,
		&offer.RecruiterName, &offer.RecruiterEmail, &offer.ApplicationsCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &offer, nil
}

func (r *jobOfferRepo) Fetch(ctx context.Context) ([]domain.JobOffer, error) {
	query := `SELECT id, title, description, location, contract_type, salary, posted_at, recruiter_id, status, created_at, updated_at
              FROM job_offers ORDER BY posted_at DESC`
	return r.fetch(ctx, query)
}

func (r *jobOfferRepo) FetchByRecruiterID(ctx context.Context, recruiterID int64) ([]domain.JobOffer, error) {
	query := `SELECT id, title, description, location, contract_type, salary, posted_at, recruiter_id, status, created_at, updated_at
              FROM job_offers WHERE recruiter_id = $1 ORDER BY posted_at DESC`
	return r.fetch(ctx, query, recruiterID)
}

func (r *jobOfferRepo) FetchByStatus(ctx context.Context, status string) ([]domain.JobOffer, error) {
	query := `SELECT id, title, description, location, contract_type, salary, posted_at, recruiter_id, status, created_at, updated_at
              FROM job_offers WHERE status = $1 ORDER BY posted_at DESC`
	return r.fetch(ctx, query, status)
}

func (r *jobOfferRepo) fetch(ctx context.Context, query string, args ...any) ([]domain.JobOffer, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offers []domain.JobOffer
	for rows.Next() {
		var offer domain.JobOffer
		if err := rows.Scan(
			&offer.ID, &offer.Title, &offer.Description, &offer.Location, &offer.ContractType, &offer.Salary,
			&offer.PostedAt, &offer.RecruiterID, &offer.Status, &offer.CreatedAt, &offer.UpdatedAt,
		); err != nil {
			return nil, err
		}
		offers = append(offers, offer)
	}
	return offers, rows.Err()
}

func (r *jobOfferRepo) Update(ctx context.Context, offer *domain.JobOffer) error {
	query := `UPDATE job_offers SET title = $2, description = $3, location = $4, contract_type = $5, salary = $6, status = $7, updated_at = $8
              WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		offer.ID, offer.Title, offer.Description, offer.Location, offer.ContractType, offer.Salary,
		offer.Status, offer.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobOfferRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM job_offers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
