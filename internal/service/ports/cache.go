package ports

import (
	"context"

	"github.com/santiagoprado21/southpark-reservas/internal/domain"
)

// ScheduleCache caches computed day grids. Implementations must be safe to
// call with a miss on every read; the engine treats the cache as advisory.
type ScheduleCache interface {
	GetDay(ctx context.Context, courtID, fecha string) (*domain.DaySchedule, bool)
	SetDay(ctx context.Context, courtID, fecha string, s *domain.DaySchedule)
	InvalidateDay(ctx context.Context, courtID, fecha string)
	// InvalidateCourt drops every cached day for the court, for edits that
	// change the grid on all dates (operating days, hours, deactivation).
	InvalidateCourt(ctx context.Context, courtID string)
}
