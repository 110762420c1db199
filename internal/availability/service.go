package availability

import (
	"context"
	"fmt"
	"strings"

	"github.com/santiagoprado21/southpark-reservas/internal/domain"
	"github.com/santiagoprado21/southpark-reservas/internal/schedule"
	"github.com/santiagoprado21/southpark-reservas/internal/service/ports"
)

type Service struct {
	courtRepo       ports.CourtRepo
	reservationRepo ports.ReservationRepo
	blockRepo       ports.BlockRepo
	cache           ports.ScheduleCache
}

func NewService(
	courtRepo ports.CourtRepo,
	reservationRepo ports.ReservationRepo,
	blockRepo ports.BlockRepo,
	cache ports.ScheduleCache,
) *Service {
	return &Service{
		courtRepo:       courtRepo,
		reservationRepo: reservationRepo,
		blockRepo:       blockRepo,
		cache:           cache,
	}
}

// DaySchedule returns the hour-by-hour grid for a court on a date. A date the
// court does not operate yields a top-level signal with an empty grid rather
// than per-slot reasons.
func (s *Service) DaySchedule(ctx context.Context, courtID, fecha string) (*domain.DaySchedule, error) {
	court, err := s.courtRepo.GetByID(ctx, courtID)
	if err != nil {
		return nil, err
	}
	if !court.Activa {
		return nil, domain.ErrCourtNotFound
	}

	date, err := schedule.ParseDate(fecha)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}

	summary := &domain.CourtSummary{ID: court.ID, Nombre: court.Nombre, Tipo: court.Tipo}

	if !schedule.IsOperatingDay(court.DiasOperacion, date) {
		return &domain.DaySchedule{
			Cancha:     summary,
			Disponible: false,
			Motivo:     fmt.Sprintf("La cancha no opera los %s", strings.ToLower(schedule.WeekdayCode(date))),
			Fecha:      fecha,
			Horarios:   []domain.Slot{},
		}, nil
	}

	if cached, ok := s.cache.GetDay(ctx, courtID, fecha); ok {
		return cached, nil
	}

	opening, closing, err := courtWindow(court)
	if err != nil {
		return nil, err
	}

	blocks, reservations, err := s.occupied(ctx, courtID, fecha, "")
	if err != nil {
		return nil, err
	}

	day := &domain.DaySchedule{
		Cancha:     summary,
		Disponible: true,
		Fecha:      fecha,
		Horarios:   BuildDaySlots(opening, closing, blocks, reservations),
	}
	s.cache.SetDay(ctx, courtID, fecha, day)

	return day, nil
}

// Verify answers whether a specific proposed interval is bookable.
func (s *Service) Verify(ctx context.Context, courtID, fecha, horaInicio string, duracionHoras int) (*domain.SlotCheck, error) {
	if duracionHoras < 1 {
		return nil, fmt.Errorf("%w: duración inválida", domain.ErrValidation)
	}
	if _, err := schedule.ParseDate(fecha); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}

	start, err := schedule.ParseClock(horaInicio)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}
	end := start + duracionHoras*60

	ok, motivo, err := s.CheckSlot(ctx, courtID, fecha, start, end)
	if err != nil {
		return nil, err
	}

	check := &domain.SlotCheck{
		Disponible: ok,
		Motivo:     motivo,
		HoraInicio: horaInicio,
	}
	if ok {
		check.HoraFin = schedule.FormatClock(end)
	}

	return check, nil
}

// CheckSlot runs the proposed [start, end) against active blocks, then
// reservations in occupying states, for the court and date. It is built on
// the same predicate as the slot grid, so the two never disagree for
// hour-aligned intervals.
func (s *Service) CheckSlot(ctx context.Context, courtID, fecha string, start, end int) (bool, string, error) {
	return s.checkSlot(ctx, courtID, fecha, start, end, "")
}

// CheckSlotExcluding is CheckSlot minus one reservation, used when editing a
// booking so it does not conflict with its own previous interval.
func (s *Service) CheckSlotExcluding(ctx context.Context, courtID, fecha string, start, end int, excludeReservationID string) (bool, string, error) {
	return s.checkSlot(ctx, courtID, fecha, start, end, excludeReservationID)
}

func (s *Service) checkSlot(ctx context.Context, courtID, fecha string, start, end int, excludeID string) (bool, string, error) {
	blocks, reservations, err := s.occupied(ctx, courtID, fecha, excludeID)
	if err != nil {
		return false, "", err
	}

	ok, motivo := CheckInterval(start, end, blocks, reservations)
	return ok, motivo, nil
}

func (s *Service) occupied(ctx context.Context, courtID, fecha, excludeID string) (blocks, reservations []Interval, err error) {
	activeBlocks, err := s.blockRepo.ListActiveByCourtDate(ctx, courtID, fecha)
	if err != nil {
		return nil, nil, fmt.Errorf("list blocks: %w", err)
	}
	for _, b := range activeBlocks {
		iv, err := NewInterval(b.HoraInicio, b.HoraFin, b.Motivo)
		if err != nil {
			return nil, nil, fmt.Errorf("block %s: %w", b.ID, err)
		}
		blocks = append(blocks, iv)
	}

	activeReservations, err := s.reservationRepo.ListActiveByCourtDate(ctx, courtID, fecha)
	if err != nil {
		return nil, nil, fmt.Errorf("list reservations: %w", err)
	}
	for _, r := range activeReservations {
		if excludeID != "" && r.ID == excludeID {
			continue
		}
		iv, err := NewInterval(r.HoraInicio, r.HoraFin, "")
		if err != nil {
			return nil, nil, fmt.Errorf("reservation %s: %w", r.ID, err)
		}
		reservations = append(reservations, iv)
	}

	return blocks, reservations, nil
}

func courtWindow(court *domain.Court) (opening, closing int, err error) {
	opening, err = schedule.ParseClock(court.HoraApertura)
	if err != nil {
		return 0, 0, fmt.Errorf("cancha %s: hora de apertura: %w", court.ID, err)
	}
	closing, err = schedule.ParseClock(court.HoraCierre)
	if err != nil {
		return 0, 0, fmt.Errorf("cancha %s: hora de cierre: %w", court.ID, err)
	}
	return opening, closing, nil
}
