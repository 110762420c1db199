package ports

import (
	"context"

	"github.com/santiagoprado21/southpark-reservas/internal/domain"
)

type CourtRepo interface {
	Create(ctx context.Context, c *domain.Court) error
	GetByID(ctx context.Context, id string) (*domain.Court, error)
	List(ctx context.Context, f domain.CourtFilter) ([]*domain.Court, error)
	Update(ctx context.Context, c *domain.Court) error
	Deactivate(ctx context.Context, id string) error

	// SetActiveConfig deactivates the current active configuration and
	// inserts cfg as the new active one in a single transaction.
	SetActiveConfig(ctx context.Context, cfg *domain.PriceConfig) error
	ListConfigs(ctx context.Context, courtID string) ([]*domain.PriceConfig, error)
}
