package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mtendere/education-consult/internal/domain/chat"
)

// ChatRepository persists conversation turns in PostgreSQL.
type ChatRepository struct {
	db *pgxpool.Pool
}

// NewChatRepository creates a new ChatRepository instance.
func NewChatRepository(db *pgxpool.Pool) chat.Repository {
	return &ChatRepository{
		db: db,
	}
}

// Append inserts one turn. Each turn is an independent row; concurrent
// appends across sessions need no coordination beyond the insert itself.
func (r *ChatRepository) Append(ctx context.Context, turn *chat.Turn) error {
	if turn.ID == "" {
		turn.ID = uuid.New().String()
	}

	query := `
		INSERT INTO chat_messages (id, session_id, user_id, message, response, is_escalated, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		turn.ID,
		turn.SessionID,
		turn.UserID,
		turn.Message,
		turn.Response,
		turn.IsEscalated,
		turn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append chat turn: %w", err)
	}

	return nil
}

// ListBySession returns turns in ascending creation order, capped at limit.
func (r *ChatRepository) ListBySession(ctx context.Context, sessionID string, limit int) ([]chat.Turn, error) {
	if limit <= 0 {
		limit = chat.DefaultHistoryLimit
	}

	query := `
		SELECT id, session_id, user_id, message, response, is_escalated, created_at
		FROM chat_messages
		WHERE session_id = $1
		ORDER BY created_at ASC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat history: %w", err)
	}
	defer rows.Close()

	turns := make([]chat.Turn, 0)
	for rows.Next() {
		var turn chat.Turn
		err := rows.Scan(
			&turn.ID,
			&turn.SessionID,
			&turn.UserID,
			&turn.Message,
			&turn.Response,
			&turn.IsEscalated,
			&turn.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan chat turn: %w", err)
		}
		turns = append(turns, turn)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	return turns, nil
}
