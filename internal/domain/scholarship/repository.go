package scholarship

import "context"

// Repository persists the scholarship listings.
type Repository interface {
	Create(ctx context.Context, s *Scholarship) error
	FindByID(ctx context.Context, id int) (*Scholarship, error)
	List(ctx context.Context, limit int) ([]Scholarship, error)
	Update(ctx context.Context, s *Scholarship) error
	Delete(ctx context.Context, id int) error
}
