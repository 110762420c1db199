package ports

import (
	"context"

	"github.com/santiagoprado21/southpark-reservas/internal/domain"
)

type BlockRepo interface {
	// Create inserts the block after verifying, inside one transaction,
	// that it does not overlap another active block for the same court and
	// date. An overlap surfaces as domain.ErrBlockOverlap.
	Create(ctx context.Context, b *domain.Block) error
	GetByID(ctx context.Context, id string) (*domain.Block, error)
	List(ctx context.Context, f domain.BlockFilter) ([]*domain.Block, error)
	ListActiveByCourtDate(ctx context.Context, courtID, fecha string) ([]*domain.Block, error)
	Update(ctx context.Context, b *domain.Block) error
	Deactivate(ctx context.Context, id string) error
}
