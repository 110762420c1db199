package ports

import (
	"context"

	"github.com/santiagoprado21/southpark-reservas/internal/domain"
)

type ReservationRepo interface {
	// Create inserts the reservation after re-checking, inside one
	// transaction that serializes writers per court, that the interval is
	// still free of active reservations and blocks. A lost race surfaces
	// as domain.ErrSlotUnavailable.
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	List(ctx context.Context, f domain.ReservationFilter) ([]*domain.Reservation, int, error)
	ListActiveByCourtDate(ctx context.Context, courtID, fecha string) ([]*domain.Reservation, error)
	Update(ctx context.Context, r *domain.Reservation) error
}
