package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mtendere/education-consult/internal/domain/application"
)

// ErrApplicationNotFound is returned when the application does not exist.
var ErrApplicationNotFound = errors.New("application not found")

// ApplicationRepository persists student applications in PostgreSQL.
type ApplicationRepository struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new ApplicationRepository instance.
func NewApplicationRepository(db *pgxpool.Pool) application.Repository {
	return &ApplicationRepository{
		db: db,
	}
}

// Create inserts a new application and fills in its generated ID. The
// free-form sections are stored as JSONB.
func (r *ApplicationRepository) Create(ctx context.Context, a *application.Application) error {
	personalInfo, err := marshalJSON(a.PersonalInfo)
	if err != nil {
		return fmt.Errorf("failed to encode personal info: %w", err)
	}

	documents, err := marshalJSON(a.Documents)
	if err != nil {
		return fmt.Errorf("failed to encode documents: %w", err)
	}

	query := `
		INSERT INTO applications (user_id, university_id, program_id, status,
			personal_info, documents, submitted_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err = r.db.QueryRow(ctx, query,
		a.UserID,
		a.UniversityID,
		a.ProgramID,
		a.Status,
		personalInfo,
		documents,
		a.SubmittedAt,
		a.UpdatedAt,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}

	return nil
}

// FindByID returns an application by its ID.
func (r *ApplicationRepository) FindByID(ctx context.Context, id int) (*application.Application, error) {
	query := `
		SELECT id, user_id, university_id, program_id, status,
			personal_info, documents, submitted_at, updated_at
		FROM applications
		WHERE id = $1
	`

	a, err := scanApplication(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to find application: %w", err)
	}

	return a, nil
}

// List returns applications matching the filter, newest first.
func (r *ApplicationRepository) List(ctx context.Context, filter application.Filter) ([]application.Application, error) {
	query := `
		SELECT id, user_id, university_id, program_id, status,
			personal_info, documents, submitted_at, updated_at
		FROM applications
		WHERE 1 = 1
	`

	args := make([]interface{}, 0, 3)
	if filter.UserID != "" {
		args = append(args, filter.UserID)
		query += fmt.Sprintf(" AND user_id = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}

	query += " ORDER BY submitted_at DESC"

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	applications := make([]application.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		applications = append(applications, *a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	return applications, nil
}

// UpdateStatus moves an application to a new pipeline state and returns the
// updated record.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id int, status application.Status) (*application.Application, error) {
	query := `
		UPDATE applications
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`

	result, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}

	if result.RowsAffected() == 0 {
		return nil, ErrApplicationNotFound
	}

	return r.FindByID(ctx, id)
}

// Count counts all applications.
func (r *ApplicationRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM applications`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count applications: %w", err)
	}

	return count, nil
}

func scanApplication(row pgx.Row) (*application.Application, error) {
	var a application.Application
	var personalInfo, documents []byte

	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.UniversityID,
		&a.ProgramID,
		&a.Status,
		&personalInfo,
		&documents,
		&a.SubmittedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(personalInfo) > 0 {
		if err := json.Unmarshal(personalInfo, &a.PersonalInfo); err != nil {
			return nil, fmt.Errorf("failed to decode personal info: %w", err)
		}
	}
	if len(documents) > 0 {
		if err := json.Unmarshal(documents, &a.Documents); err != nil {
			return nil, fmt.Errorf("failed to decode documents: %w", err)
		}
	}

	return &a, nil
}

func marshalJSON(m map[string]any) ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}
