package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mtendere/education-consult/internal/domain/program"
)

// ErrProgramNotFound is returned when the program does not exist.
var ErrProgramNotFound = errors.New("program not found")

// ProgramRepository persists the program catalog in PostgreSQL.
type ProgramRepository struct {
	db *pgxpool.Pool
}

// NewProgramRepository creates a new ProgramRepository instance.
func NewProgramRepository(db *pgxpool.Pool) program.Repository {
	return &ProgramRepository{
		db: db,
	}
}

// Create inserts a new program and fills in its generated ID.
func (r *ProgramRepository) Create(ctx context.Context, p *program.Program) error {
	query := `
		INSERT INTO programs (university_id, name, level, field, duration, tuition_fee,
			currency, requirements, description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		p.UniversityID,
		p.Name,
		p.Level,
		p.Field,
		p.Duration,
		p.TuitionFee,
		p.Currency,
		p.Requirements,
		p.Description,
		p.IsActive,
		p.CreatedAt,
		p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("failed to create program: %w", err)
	}

	return nil
}

// FindByID returns a program by its ID.
func (r *ProgramRepository) FindByID(ctx context.Context, id int) (*program.Program, error) {
	query := `
		SELECT id, university_id, name, level, field, duration, tuition_fee,
			currency, requirements, description, is_active, created_at, updated_at
		FROM programs
		WHERE id = $1
	`

	var p program.Program
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.UniversityID,
		&p.Name,
		&p.Level,
		&p.Field,
		&p.Duration,
		&p.TuitionFee,
		&p.Currency,
		&p.Requirements,
		&p.Description,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProgramNotFound
		}
		return nil, fmt.Errorf("failed to find program: %w", err)
	}

	return &p, nil
}

// List returns active programs matching the filter.
func (r *ProgramRepository) List(ctx context.Context, filter program.Filter) ([]program.Program, error) {
	query := `
		SELECT id, university_id, name, level, field, duration, tuition_fee,
			currency, requirements, description, is_active, created_at, updated_at
		FROM programs
		WHERE is_active = TRUE
	`

	args := make([]interface{}, 0, 4)
	if filter.UniversityID > 0 {
		args = append(args, filter.UniversityID)
		query += fmt.Sprintf(" AND university_id = $%d", len(args))
	}
	if filter.Level != "" {
		args = append(args, filter.Level)
		query += fmt.Sprintf(" AND level = $%d", len(args))
	}
	if filter.Field != "" {
		args = append(args, filter.Field)
		query += fmt.Sprintf(" AND field = $%d", len(args))
	}

	query += " ORDER BY name ASC"

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list programs: %w", err)
	}
	defer rows.Close()

	programs := make([]program.Program, 0)
	for rows.Next() {
		var p program.Program
		err := rows.Scan(
			&p.ID,
			&p.UniversityID,
			&p.Name,
			&p.Level,
			&p.Field,
			&p.Duration,
			&p.TuitionFee,
			&p.Currency,
			&p.Requirements,
			&p.Description,
			&p.IsActive,
			&p.CreatedAt,
			&p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan program: %w", err)
		}
		programs = append(programs, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	return programs, nil
}

// Update rewrites all editable fields of a program.
func (r *ProgramRepository) Update(ctx context.Context, p *program.Program) error {
	query := `
		UPDATE programs
		SET university_id = $1, name = $2, level = $3, field = $4, duration = $5,
			tuition_fee = $6, currency = $7, requirements = $8, description = $9,
			is_active = $10, updated_at = NOW()
		WHERE id = $11
	`

	result, err := r.db.Exec(ctx, query,
		p.UniversityID,
		p.Name,
		p.Level,
		p.Field,
		p.Duration,
		p.TuitionFee,
		p.Currency,
		p.Requirements,
		p.Description,
		p.IsActive,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update program: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrProgramNotFound
	}

	return nil
}

// Delete removes a program.
func (r *ProgramRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.Exec(ctx, `DELETE FROM programs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete program: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrProgramNotFound
	}

	return nil
}
