package chat

import "context"

// DefaultHistoryLimit caps ListBySession when the caller does not give a limit.
const DefaultHistoryLimit = 50

// Repository is the append-only conversation store.
type Repository interface {
	// Append writes one turn. Turns are immutable once written.
	Append(ctx context.Context, turn *Turn) error

	// ListBySession returns up to limit turns for a session in ascending
	// creation order. An unknown session yields an empty slice, not an error.
	ListBySession(ctx context.Context, sessionID string, limit int) ([]Turn, error)
}
