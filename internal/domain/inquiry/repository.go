package inquiry

import "context"

// Repository persists contact inquiries.
type Repository interface {
	Create(ctx context.Context, i *Inquiry) error
	List(ctx context.Context, status string, limit int) ([]Inquiry, error)
	Count(ctx context.Context) (int, error)
}
