package user

import "context"

// Repository persists user identities.
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	CountByRole(ctx context.Context, role Role) (int, error)
}
