// Package pricing computes reservation totals and deposits from a court's
// active price configuration.
package pricing

import (
	"fmt"

	"github.com/santiagoprado21/southpark-reservas/internal/domain"
	"github.com/santiagoprado21/southpark-reservas/internal/schedule"
)

const DefaultDepositPercent = 30

// Config carries the venue-wide pricing knobs. It is passed in explicitly at
// construction time instead of being read from ambient state.
type Config struct {
	DepositPercent int
}

type Calculator struct {
	depositPercent int64
}

func NewCalculator(cfg Config) *Calculator {
	pct := cfg.DepositPercent
	if pct <= 0 {
		pct = DefaultDepositPercent
	}
	return &Calculator{depositPercent: int64(pct)}
}

// Price computes the total for a booking. startMinutes is the requested start
// as minutes since midnight; the active config is mandatory — a court without
// one cannot be priced.
func (c *Calculator) Price(
	tipo domain.CourtType,
	cfg *domain.PriceConfig,
	startMinutes int,
	duracionHoras int,
	cantidadPersonas int,
	cantidadCircuitos int,
) (int64, error) {
	if cfg == nil {
		return 0, domain.ErrNoActiveConfig
	}

	switch tipo {
	case domain.CourtTypeBeachVolley:
		return c.timedPrice(cfg, startMinutes, duracionHoras)
	case domain.CourtTypeMiniGolf:
		return c.perPersonPrice(cfg, cantidadPersonas, cantidadCircuitos)
	default:
		return 0, fmt.Errorf("%w: tipo de cancha desconocido %q", domain.ErrValidation, tipo)
	}
}

func (c *Calculator) timedPrice(cfg *domain.PriceConfig, startMinutes, duracionHoras int) (int64, error) {
	switch duracionHoras {
	case 1:
		return cfg.PrecioHora1, nil
	case 3:
		return cfg.PrecioHora3, nil
	case 2:
		if c.isHappyHour(cfg, startMinutes, 2*60) {
			return cfg.PrecioHora2HappyHour, nil
		}
		return cfg.PrecioHora2, nil
	default:
		return 0, fmt.Errorf("%w: la duración debe ser de 1 a 3 horas", domain.ErrValidation)
	}
}

// isHappyHour: the discount applies only when the whole booking fits inside
// the happy-hour window, not merely when it starts inside it.
func (c *Calculator) isHappyHour(cfg *domain.PriceConfig, startMinutes, durationMinutes int) bool {
	if !cfg.TieneHappyHour || cfg.PrecioHora2HappyHour <= 0 {
		return false
	}

	hhStart, err := schedule.ParseClock(cfg.HappyHourInicio)
	if err != nil {
		return false
	}
	hhEnd, err := schedule.ParseClock(cfg.HappyHourFin)
	if err != nil {
		return false
	}

	end := startMinutes + durationMinutes
	return startMinutes >= hhStart && end <= hhEnd
}

func (c *Calculator) perPersonPrice(cfg *domain.PriceConfig, cantidadPersonas, cantidadCircuitos int) (int64, error) {
	if cantidadPersonas < 1 {
		return 0, fmt.Errorf("%w: la cantidad de personas debe ser al menos 1", domain.ErrValidation)
	}

	unit := cfg.PrecioPersona1Circuito
	if cantidadCircuitos == 2 {
		unit = cfg.PrecioPersona2Circuitos
	}

	return unit * int64(cantidadPersonas), nil
}

// Deposit computes the amount held to confirm a reservation, rounding half-up
// to a whole currency unit.
func (c *Calculator) Deposit(total int64) int64 {
	return (total*c.depositPercent + 50) / 100
}
