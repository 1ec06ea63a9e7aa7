package program

import "context"

// Filter narrows List results. Zero values mean "no restriction".
type Filter struct {
	UniversityID int
	Level        string
	Field        string
	Limit        int
}

// Repository persists the program catalog.
type Repository interface {
	Create(ctx context.Context, p *Program) error
	FindByID(ctx context.Context, id int) (*Program, error)
	List(ctx context.Context, filter Filter) ([]Program, error)
	Update(ctx context.Context, p *Program) error
	Delete(ctx context.Context, id int) error
}
