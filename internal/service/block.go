package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/santiagoprado21/southpark-reservas/internal/domain"
	"github.com/santiagoprado21/southpark-reservas/internal/schedule"
	"github.com/santiagoprado21/southpark-reservas/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BlockService struct {
	blockRepo ports.BlockRepo
	courtRepo ports.CourtRepo
	cache     ports.ScheduleCache
	logger    logger.Logger
}

func NewBlockService(
	blockRepo ports.BlockRepo,
	courtRepo ports.CourtRepo,
	cache ports.ScheduleCache,
	logger logger.Logger,
) *BlockService {
	return &BlockService{
		blockRepo: blockRepo,
		courtRepo: courtRepo,
		cache:     cache,
		logger:    logger,
	}
}

func (s *BlockService) Create(ctx context.Context, input domain.CreateBlockInput) (*domain.Block, error) {
	if err := validateBlockWindow(input.Fecha, input.HoraInicio, input.HoraFin); err != nil {
		return nil, err
	}
	if len(input.Motivo) < 3 {
		return nil, fmt.Errorf("%w: el motivo debe tener al menos 3 caracteres", domain.ErrValidation)
	}

	if _, err := s.courtRepo.GetByID(ctx, input.CanchaID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	block := &domain.Block{
		ID:         uuid.New().String(),
		CanchaID:   input.CanchaID,
		Fecha:      input.Fecha,
		HoraInicio: input.HoraInicio,
		HoraFin:    input.HoraFin,
		Motivo:     input.Motivo,
		Activo:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.blockRepo.Create(ctx, block); err != nil {
		return nil, fmt.Errorf("create block: %w", err)
	}

	s.cache.InvalidateDay(ctx, block.CanchaID, block.Fecha)

	s.logger.Info("block created",
		logger.String("block_id", block.ID),
		logger.String("court_id", block.CanchaID),
		logger.String("fecha", block.Fecha),
	)

	return block, nil
}

func (s *BlockService) GetByID(ctx context.Context, id string) (*domain.Block, error) {
	return s.blockRepo.GetByID(ctx, id)
}

func (s *BlockService) List(ctx context.Context, f domain.BlockFilter) ([]*domain.Block, error) {
	return s.blockRepo.List(ctx, f)
}

func (s *BlockService) Update(ctx context.Context, id string, input domain.UpdateBlockInput) (*domain.Block, error) {
	block, err := s.blockRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	prevFecha := block.Fecha

	if input.Fecha != nil {
		block.Fecha = *input.Fecha
	}
	if input.HoraInicio != nil {
		block.HoraInicio = *input.HoraInicio
	}
	if input.HoraFin != nil {
		block.HoraFin = *input.HoraFin
	}
	if input.Motivo != nil {
		if len(*input.Motivo) < 3 {
			return nil, fmt.Errorf("%w: el motivo debe tener al menos 3 caracteres", domain.ErrValidation)
		}
		block.Motivo = *input.Motivo
	}
	if input.Activo != nil {
		block.Activo = *input.Activo
	}

	if err = validateBlockWindow(block.Fecha, block.HoraInicio, block.HoraFin); err != nil {
		return nil, err
	}

	block.UpdatedAt = time.Now().UTC()
	if err = s.blockRepo.Update(ctx, block); err != nil {
		return nil, fmt.Errorf("update block: %w", err)
	}

	s.cache.InvalidateDay(ctx, block.CanchaID, prevFecha)
	s.cache.InvalidateDay(ctx, block.CanchaID, block.Fecha)

	return block, nil
}

// Deactivate is the delete operation for blocks: the row stays, activo flips.
func (s *BlockService) Deactivate(ctx context.Context, id string) (*domain.Block, error) {
	block, err := s.blockRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = s.blockRepo.Deactivate(ctx, id); err != nil {
		return nil, fmt.Errorf("deactivate block: %w", err)
	}
	block.Activo = false

	s.cache.InvalidateDay(ctx, block.CanchaID, block.Fecha)

	return block, nil
}

// validateBlockWindow rejects blocks that cross midnight: a maintenance
// window past 00:00 is declared as two blocks on consecutive dates.
func validateBlockWindow(fecha, horaInicio, horaFin string) error {
	if _, err := schedule.ParseDate(fecha); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}
	start, err := schedule.ParseClock(horaInicio)
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}
	end, err := schedule.ParseClock(horaFin)
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}
	if end <= start {
		return fmt.Errorf("%w: la hora de fin debe ser posterior a la hora de inicio", domain.ErrValidation)
	}
	return nil
}
