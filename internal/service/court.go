package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/santiagoprado21/southpark-reservas/internal/domain"
	"github.com/santiagoprado21/southpark-reservas/internal/schedule"
	"github.com/santiagoprado21/southpark-reservas/internal/service/ports"
)

type CourtService struct {
	repo  ports.CourtRepo
	cache ports.ScheduleCache
}

func NewCourtService(repo ports.CourtRepo, cache ports.ScheduleCache) *CourtService {
	return &CourtService{repo: repo, cache: cache}
}

func (s *CourtService) Create(ctx context.Context, input domain.CreateCourtInput) (*domain.Court, error) {
	if len(input.Nombre) < 2 {
		return nil, fmt.Errorf("%w: el nombre debe tener al menos 2 caracteres", domain.ErrValidation)
	}
	if !input.Tipo.Valid() {
		return nil, fmt.Errorf("%w: tipo de cancha inválido %q", domain.ErrValidation, input.Tipo)
	}
	if len(input.DiasOperacion) == 0 {
		return nil, fmt.Errorf("%w: debe indicar al menos un día de operación", domain.ErrValidation)
	}
	if err := validateWeekdays(input.DiasOperacion); err != nil {
		return nil, err
	}
	if _, err := schedule.ParseClock(input.HoraApertura); err != nil {
		return nil, fmt.Errorf("%w: hora de apertura: %s", domain.ErrValidation, err)
	}
	if _, err := schedule.ParseClock(input.HoraCierre); err != nil {
		return nil, fmt.Errorf("%w: hora de cierre: %s", domain.ErrValidation, err)
	}

	now := time.Now().UTC()
	court := &domain.Court{
		ID:              uuid.New().String(),
		Nombre:          input.Nombre,
		Tipo:            input.Tipo,
		Descripcion:     input.Descripcion,
		CapacidadMaxima: input.CapacidadMaxima,
		DiasOperacion:   input.DiasOperacion,
		HoraApertura:    input.HoraApertura,
		HoraCierre:      input.HoraCierre,
		Orden:           input.Orden,
		Activa:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, court); err != nil {
		return nil, fmt.Errorf("create court: %w", err)
	}

	return court, nil
}

func (s *CourtService) GetByID(ctx context.Context, id string) (*domain.Court, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CourtService) List(ctx context.Context, f domain.CourtFilter) ([]*domain.Court, error) {
	if f.Tipo != "" && !f.Tipo.Valid() {
		return nil, fmt.Errorf("%w: tipo de cancha inválido %q", domain.ErrValidation, f.Tipo)
	}
	return s.repo.List(ctx, f)
}

func (s *CourtService) Update(ctx context.Context, id string, input domain.UpdateCourtInput) (*domain.Court, error) {
	court, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Nombre != nil {
		if len(*input.Nombre) < 2 {
			return nil, fmt.Errorf("%w: el nombre debe tener al menos 2 caracteres", domain.ErrValidation)
		}
		court.Nombre = *input.Nombre
	}
	if input.Descripcion != nil {
		court.Descripcion = *input.Descripcion
	}
	if input.CapacidadMaxima != nil {
		court.CapacidadMaxima = input.CapacidadMaxima
	}
	if input.DiasOperacion != nil {
		if err = validateWeekdays(input.DiasOperacion); err != nil {
			return nil, err
		}
		court.DiasOperacion = input.DiasOperacion
	}
	if input.HoraApertura != nil {
		if _, err = schedule.ParseClock(*input.HoraApertura); err != nil {
			return nil, fmt.Errorf("%w: hora de apertura: %s", domain.ErrValidation, err)
		}
		court.HoraApertura = *input.HoraApertura
	}
	if input.HoraCierre != nil {
		if _, err = schedule.ParseClock(*input.HoraCierre); err != nil {
			return nil, fmt.Errorf("%w: hora de cierre: %s", domain.ErrValidation, err)
		}
		court.HoraCierre = *input.HoraCierre
	}
	if input.Orden != nil {
		court.Orden = *input.Orden
	}
	if input.Activa != nil {
		court.Activa = *input.Activa
	}
	court.UpdatedAt = time.Now().UTC()

	if err = s.repo.Update(ctx, court); err != nil {
		return nil, fmt.Errorf("update court: %w", err)
	}

	// the edit may change the grid on every date, drop all cached days
	s.cache.InvalidateCourt(ctx, court.ID)

	return court, nil
}

// Deactivate soft-deletes the court so reservation history keeps a valid
// reference.
func (s *CourtService) Deactivate(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return err
	}

	s.cache.InvalidateCourt(ctx, id)

	return nil
}

// SetPriceConfig appends a new tariff sheet and makes it the active one.
// The old configuration stays as history; the swap is atomic so the court
// never has zero or two active configurations.
func (s *CourtService) SetPriceConfig(ctx context.Context, courtID string, input domain.CreatePriceConfigInput) (*domain.PriceConfig, error) {
	court, err := s.repo.GetByID(ctx, courtID)
	if err != nil {
		return nil, err
	}

	if err = validatePriceConfig(court.Tipo, input); err != nil {
		return nil, err
	}

	cfg := &domain.PriceConfig{
		ID:                      uuid.New().String(),
		CanchaID:                court.ID,
		PrecioHora1:             input.PrecioHora1,
		PrecioHora2:             input.PrecioHora2,
		PrecioHora3:             input.PrecioHora3,
		TieneHappyHour:          input.TieneHappyHour,
		HappyHourInicio:         input.HappyHourInicio,
		HappyHourFin:            input.HappyHourFin,
		PrecioHora2HappyHour:    input.PrecioHora2HappyHour,
		PrecioPersona1Circuito:  input.PrecioPersona1Circuito,
		PrecioPersona2Circuitos: input.PrecioPersona2Circuitos,
		Activa:                  true,
		CreatedAt:               time.Now().UTC(),
	}

	if err = s.repo.SetActiveConfig(ctx, cfg); err != nil {
		return nil, fmt.Errorf("set active config: %w", err)
	}

	return cfg, nil
}

func (s *CourtService) ListConfigs(ctx context.Context, courtID string) ([]*domain.PriceConfig, error) {
	if _, err := s.repo.GetByID(ctx, courtID); err != nil {
		return nil, err
	}
	return s.repo.ListConfigs(ctx, courtID)
}

func validateWeekdays(days []string) error {
	valid := make(map[string]struct{}, len(domain.Weekdays))
	for _, d := range domain.Weekdays {
		valid[d] = struct{}{}
	}
	for _, d := range days {
		if _, ok := valid[d]; !ok {
			return fmt.Errorf("%w: día de operación inválido %q", domain.ErrValidation, d)
		}
	}
	return nil
}

func validatePriceConfig(tipo domain.CourtType, input domain.CreatePriceConfigInput) error {
	switch tipo {
	case domain.CourtTypeBeachVolley:
		if input.PrecioHora1 <= 0 || input.PrecioHora2 <= 0 || input.PrecioHora3 <= 0 {
			return fmt.Errorf("%w: los precios por hora son requeridos", domain.ErrValidation)
		}
		if input.TieneHappyHour {
			if _, err := schedule.ParseClock(input.HappyHourInicio); err != nil {
				return fmt.Errorf("%w: inicio de happy hour: %s", domain.ErrValidation, err)
			}
			if _, err := schedule.ParseClock(input.HappyHourFin); err != nil {
				return fmt.Errorf("%w: fin de happy hour: %s", domain.ErrValidation, err)
			}
			if input.PrecioHora2HappyHour <= 0 {
				return fmt.Errorf("%w: el precio de happy hour es requerido", domain.ErrValidation)
			}
		}
	case domain.CourtTypeMiniGolf:
		if input.PrecioPersona1Circuito <= 0 || input.PrecioPersona2Circuitos <= 0 {
			return fmt.Errorf("%w: los precios por persona son requeridos", domain.ErrValidation)
		}
	}
	return nil
}
