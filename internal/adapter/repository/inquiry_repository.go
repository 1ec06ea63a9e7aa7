package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mtendere/education-consult/internal/domain/inquiry"
)

// InquiryRepository persists contact inquiries in PostgreSQL.
type InquiryRepository struct {
	db *pgxpool.Pool
}

// NewInquiryRepository creates a new InquiryRepository instance.
func NewInquiryRepository(db *pgxpool.Pool) inquiry.Repository {
	return &InquiryRepository{
		db: db,
	}
}

// Create inserts a new inquiry and fills in its generated ID.
func (r *InquiryRepository) Create(ctx context.Context, i *inquiry.Inquiry) error {
	query := `
		INSERT INTO inquiries (name, email, phone, subject, message, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		i.Name,
		i.Email,
		i.Phone,
		i.Subject,
		i.Message,
		i.Status,
		i.CreatedAt,
		i.UpdatedAt,
	).Scan(&i.ID)
	if err != nil {
		return fmt.Errorf("failed to create inquiry: %w", err)
	}

	return nil
}

// List returns inquiries, optionally filtered by status, newest first.
func (r *InquiryRepository) List(ctx context.Context, status string, limit int) ([]inquiry.Inquiry, error) {
	query := `
		SELECT id, name, email, phone, subject, message, status, created_at, updated_at
		FROM inquiries
		WHERE 1 = 1
	`

	args := make([]interface{}, 0, 2)
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}

	query += " ORDER BY created_at DESC"

	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	defer rows.Close()

	inquiries := make([]inquiry.Inquiry, 0)
	for rows.Next() {
		var i inquiry.Inquiry
		err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Email,
			&i.Phone,
			&i.Subject,
			&i.Message,
			&i.Status,
			&i.CreatedAt,
			&i.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inquiry: %w", err)
		}
		inquiries = append(inquiries, i)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	return inquiries, nil
}

// Count counts all inquiries.
func (r *InquiryRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM inquiries`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count inquiries: %w", err)
	}

	return count, nil
}
