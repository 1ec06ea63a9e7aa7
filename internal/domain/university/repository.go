package university

import "context"

// Filter narrows List results. Zero values mean "no restriction".
type Filter struct {
	Search  string
	Country string
	Limit   int
}

// Repository persists the university catalog.
type Repository interface {
	Create(ctx context.Context, u *University) error
	FindByID(ctx context.Context, id int) (*University, error)
	List(ctx context.Context, filter Filter) ([]University, error)
	Update(ctx context.Context, u *University) error
	Delete(ctx context.Context, id int) error
	CountActive(ctx context.Context) (int, error)
}
