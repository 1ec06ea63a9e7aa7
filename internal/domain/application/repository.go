package application

import "context"

// Filter narrows List results. Zero values mean "no restriction".
type Filter struct {
	UserID string
	Status string
	Limit  int
}

// Repository persists student applications.
type Repository interface {
	Create(ctx context.Context, a *Application) error
	FindByID(ctx context.Context, id int) (*Application, error)
	List(ctx context.Context, filter Filter) ([]Application, error)
	UpdateStatus(ctx context.Context, id int, status Status) (*Application, error)
	Count(ctx context.Context) (int, error)
}
