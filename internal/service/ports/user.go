package ports

import (
	"context"

	"github.com/santiagoprado21/southpark-reservas/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, f domain.UserFilter) ([]*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	Deactivate(ctx context.Context, id string) error
}
