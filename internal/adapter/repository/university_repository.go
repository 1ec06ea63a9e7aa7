package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mtendere/education-consult/internal/domain/university"
)

// ErrUniversityNotFound is returned when the university does not exist.
var ErrUniversityNotFound = errors.New("university not found")

// UniversityRepository persists the university catalog in PostgreSQL.
type UniversityRepository struct {
	db *pgxpool.Pool
}

// NewUniversityRepository creates a new UniversityRepository instance.
func NewUniversityRepository(db *pgxpool.Pool) university.Repository {
	return &UniversityRepository{
		db: db,
	}
}

// Create inserts a new university and fills in its generated ID.
func (r *UniversityRepository) Create(ctx context.Context, u *university.University) error {
	query := `
		INSERT INTO universities (name, location, country, description, image_url, ranking,
			website, established, student_count, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		u.Name,
		u.Location,
		u.Country,
		u.Description,
		u.ImageURL,
		u.Ranking,
		u.Website,
		u.Established,
		u.StudentCount,
		u.IsActive,
		u.CreatedAt,
		u.UpdatedAt,
	).Scan(&u.ID)
	if err != nil {
		return fmt.Errorf("failed to create university: %w", err)
	}

	return nil
}

// FindByID returns a university by its ID.
func (r *UniversityRepository) FindByID(ctx context.Context, id int) (*university.University, error) {
	query := `
		SELECT id, name, location, country, description, image_url, ranking,
			website, established, student_count, is_active, created_at, updated_at
		FROM universities
		WHERE id = $1
	`

	var u university.University
	err := r.db.QueryRow(ctx, query, id).Scan(
		&u.ID,
		&u.Name,
		&u.Location,
		&u.Country,
		&u.Description,
		&u.ImageURL,
		&u.Ranking,
		&u.Website,
		&u.Established,
		&u.StudentCount,
		&u.IsActive,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUniversityNotFound
		}
		return nil, fmt.Errorf("failed to find university: %w", err)
	}

	return &u, nil
}

// List returns active universities, optionally filtered by name search and
// country.
func (r *UniversityRepository) List(ctx context.Context, filter university.Filter) ([]university.University, error) {
	query := `
		SELECT id, name, location, country, description, image_url, ranking,
			website, established, student_count, is_active, created_at, updated_at
		FROM universities
		WHERE is_active = TRUE
	`

	args := make([]interface{}, 0, 3)
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND name ILIKE $%d", len(args))
	}
	if filter.Country != "" {
		args = append(args, filter.Country)
		query += fmt.Sprintf(" AND country = $%d", len(args))
	}

	query += " ORDER BY name ASC"

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list universities: %w", err)
	}
	defer rows.Close()

	universities := make([]university.University, 0)
	for rows.Next() {
		var u university.University
		err := rows.Scan(
			&u.ID,
			&u.Name,
			&u.Location,
			&u.Country,
			&u.Description,
			&u.ImageURL,
			&u.Ranking,
			&u.Website,
			&u.Established,
			&u.StudentCount,
			&u.IsActive,
			&u.CreatedAt,
			&u.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan university: %w", err)
		}
		universities = append(universities, u)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	return universities, nil
}

// Update rewrites all editable fields of a university.
func (r *UniversityRepository) Update(ctx context.Context, u *university.University) error {
	query := `
		UPDATE universities
		SET name = $1, location = $2, country = $3, description = $4, image_url = $5,
			ranking = $6, website = $7, established = $8, student_count = $9,
			is_active = $10, updated_at = NOW()
		WHERE id = $11
	`

	result, err := r.db.Exec(ctx, query,
		u.Name,
		u.Location,
		u.Country,
		u.Description,
		u.ImageURL,
		u.Ranking,
		u.Website,
		u.Established,
		u.StudentCount,
		u.IsActive,
		u.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update university: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrUniversityNotFound
	}

	return nil
}

// Delete removes a university. Programs cascade at the database level.
func (r *UniversityRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.Exec(ctx, `DELETE FROM universities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete university: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrUniversityNotFound
	}

	return nil
}

// CountActive counts the active partner universities.
func (r *UniversityRepository) CountActive(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM universities WHERE is_active = TRUE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count universities: %w", err)
	}

	return count, nil
}
