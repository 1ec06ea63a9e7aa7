package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mtendere/education-consult/internal/domain/scholarship"
)

// ErrScholarshipNotFound is returned when the scholarship does not exist.
var ErrScholarshipNotFound = errors.New("scholarship not found")

// ScholarshipRepository persists scholarship listings in PostgreSQL.
type ScholarshipRepository struct {
	db *pgxpool.Pool
}

// NewScholarshipRepository creates a new ScholarshipRepository instance.
func NewScholarshipRepository(db *pgxpool.Pool) scholarship.Repository {
	return &ScholarshipRepository{
		db: db,
	}
}

// Create inserts a new scholarship and fills in its generated ID.
func (r *ScholarshipRepository) Create(ctx context.Context, s *scholarship.Scholarship) error {
	query := `
		INSERT INTO scholarships (name, provider, amount, currency, type, eligibility,
			deadline, description, application_url, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		s.Name,
		s.Provider,
		s.Amount,
		s.Currency,
		s.Type,
		s.Eligibility,
		s.Deadline,
		s.Description,
		s.ApplicationURL,
		s.IsActive,
		s.CreatedAt,
		s.UpdatedAt,
	).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("failed to create scholarship: %w", err)
	}

	return nil
}

// FindByID returns a scholarship by its ID.
func (r *ScholarshipRepository) FindByID(ctx context.Context, id int) (*scholarship.Scholarship, error) {
	query := `
		SELECT id, name, provider, amount, currency, type, eligibility,
			deadline, description, application_url, is_active, created_at, updated_at
		FROM scholarships
		WHERE id = $1
	`

	var s scholarship.Scholarship
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID,
		&s.Name,
		&s.Provider,
		&s.Amount,
		&s.Currency,
		&s.Type,
		&s.Eligibility,
		&s.Deadline,
		&s.Description,
		&s.ApplicationURL,
		&s.IsActive,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrScholarshipNotFound
		}
		return nil, fmt.Errorf("failed to find scholarship: %w", err)
	}

	return &s, nil
}

// List returns active scholarships, newest deadline last.
func (r *ScholarshipRepository) List(ctx context.Context, limit int) ([]scholarship.Scholarship, error) {
	query := `
		SELECT id, name, provider, amount, currency, type, eligibility,
			deadline, description, application_url, is_active, created_at, updated_at
		FROM scholarships
		WHERE is_active = TRUE
		ORDER BY deadline ASC NULLS LAST
	`

	args := make([]interface{}, 0, 1)
	if limit > 0 {
		args = append(args, limit)
		query += " LIMIT $1"
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list scholarships: %w", err)
	}
	defer rows.Close()

	scholarships := make([]scholarship.Scholarship, 0)
	for rows.Next() {
		var s scholarship.Scholarship
		err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Provider,
			&s.Amount,
			&s.Currency,
			&s.Type,
			&s.Eligibility,
			&s.Deadline,
			&s.Description,
			&s.ApplicationURL,
			&s.IsActive,
			&s.CreatedAt,
			&s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scholarship: %w", err)
		}
		scholarships = append(scholarships, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	return scholarships, nil
}

// Update rewrites all editable fields of a scholarship.
func (r *ScholarshipRepository) Update(ctx context.Context, s *scholarship.Scholarship) error {
	query := `
		UPDATE scholarships
		SET name = $1, provider = $2, amount = $3, currency = $4, type = $5,
			eligibility = $6, deadline = $7, description = $8, application_url = $9,
			is_active = $10, updated_at = NOW()
		WHERE id = $11
	`

	result, err := r.db.Exec(ctx, query,
		s.Name,
		s.Provider,
		s.Amount,
		s.Currency,
		s.Type,
		s.Eligibility,
		s.Deadline,
		s.Description,
		s.ApplicationURL,
		s.IsActive,
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update scholarship: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrScholarshipNotFound
	}

	return nil
}

// Delete removes a scholarship.
func (r *ScholarshipRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.Exec(ctx, `DELETE FROM scholarships WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete scholarship: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrScholarshipNotFound
	}

	return nil
}
