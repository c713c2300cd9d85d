package repository

import (
	"context"

	"github.com/ErlanBelekov/accounts/internal/domain"
)

// UserRepository owns persisted user records. Lookups return
// domain.ErrUserNotFound when nothing matches; Insert returns
// domain.ErrDuplicateEmail when the store's unique constraint on email fires.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	Insert(ctx context.Context, name, email, passwordHash string) (*domain.User, error)
	Ping(ctx context.Context) error
}
