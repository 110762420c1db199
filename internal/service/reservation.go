package service

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/santiagoprado21/southpark-reservas/internal/availability"
	"github.com/santiagoprado21/southpark-reservas/internal/domain"
	"github.com/santiagoprado21/southpark-reservas/internal/pricing"
	"github.com/santiagoprado21/southpark-reservas/internal/schedule"
	"github.com/santiagoprado21/southpark-reservas/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// AvailabilityChecker is the slice of the availability engine the lifecycle
// manager needs.
type AvailabilityChecker interface {
	CheckSlot(ctx context.Context, courtID, fecha string, start, end int) (bool, string, error)
	CheckSlotExcluding(ctx context.Context, courtID, fecha string, start, end int, excludeReservationID string) (bool, string, error)
}

type ReservationService struct {
	reservationRepo ports.ReservationRepo
	courtRepo       ports.CourtRepo
	checker         AvailabilityChecker
	calculator      *pricing.Calculator
	cache           ports.ScheduleCache
	logger          logger.Logger
}

func NewReservationService(
	reservationRepo ports.ReservationRepo,
	courtRepo ports.CourtRepo,
	checker AvailabilityChecker,
	calculator *pricing.Calculator,
	cache ports.ScheduleCache,
	logger logger.Logger,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		courtRepo:       courtRepo,
		checker:         checker,
		calculator:      calculator,
		cache:           cache,
		logger:          logger,
	}
}

// Create runs the whole booking pipeline: validate, resolve court and active
// tariff, operating-window check, availability check, price, persist. The
// final insert re-checks the interval inside a transaction, so two customers
// racing for the same slot cannot both win.
func (s *ReservationService) Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error) {
	if err := validateReservationInput(input); err != nil {
		return nil, err
	}

	court, err := s.courtRepo.GetByID(ctx, input.CanchaID)
	if err != nil {
		return nil, fmt.Errorf("get court: %w", err)
	}
	if !court.Activa {
		return nil, domain.ErrCourtNotFound
	}
	if court.Config == nil {
		return nil, domain.ErrNoActiveConfig
	}

	date, err := schedule.ParseDate(input.Fecha)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}
	if dateBeforeToday(date) {
		return nil, fmt.Errorf("%w: no se pueden hacer reservas en fechas pasadas", domain.ErrValidation)
	}

	start, err := schedule.ParseClock(input.HoraInicio)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}
	end := start + input.DuracionHoras*60

	if !schedule.IsOperatingDay(court.DiasOperacion, date) {
		return nil, fmt.Errorf("%w: la cancha no opera ese día", domain.ErrValidation)
	}

	opening, err := schedule.ParseClock(court.HoraApertura)
	if err != nil {
		return nil, fmt.Errorf("court %s opening: %w", court.ID, err)
	}
	closing, err := schedule.ParseClock(court.HoraCierre)
	if err != nil {
		return nil, fmt.Errorf("court %s closing: %w", court.ID, err)
	}
	if !schedule.WithinOperatingWindow(start, end, opening, closing) {
		return nil, fmt.Errorf(
			"%w: la reserva excede el horario de operación (%s a %s)",
			domain.ErrValidation, court.HoraApertura, court.HoraCierre,
		)
	}

	ok, motivo, err := s.checker.CheckSlot(ctx, court.ID, input.Fecha, start, end)
	if err != nil {
		return nil, fmt.Errorf("check slot: %w", err)
	}
	if !ok {
		return nil, slotConflict(motivo)
	}

	circuitos := input.CantidadCircuitos
	if circuitos == 0 {
		circuitos = 1
	}

	total, err := s.calculator.Price(court.Tipo, court.Config, start, input.DuracionHoras, input.CantidadPersonas, circuitos)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	reservation := &domain.Reservation{
		ID:                uuid.New().String(),
		CanchaID:          court.ID,
		Fecha:             input.Fecha,
		HoraInicio:        input.HoraInicio,
		HoraFin:           schedule.FormatClock(end),
		DuracionHoras:     input.DuracionHoras,
		CantidadPersonas:  input.CantidadPersonas,
		CantidadCircuitos: circuitos,
		NombreCliente:     input.NombreCliente,
		EmailCliente:      input.EmailCliente,
		TelefonoCliente:   input.TelefonoCliente,
		PrecioTotal:       total,
		MontoSena:         s.calculator.Deposit(total),
		PagoCompletado:    false,
		Notas:             input.Notas,
		Estado:            domain.ReservationPendiente,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err = s.reservationRepo.Create(ctx, reservation); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}
	reservation.Cancha = court

	s.cache.InvalidateDay(ctx, court.ID, input.Fecha)

	s.logger.Info("reservation created",
		logger.String("reservation_id", reservation.ID),
		logger.String("court_id", court.ID),
		logger.String("fecha", input.Fecha),
		logger.String("hora_inicio", input.HoraInicio),
		logger.Int("duracion_horas", input.DuracionHoras),
	)

	return reservation, nil
}

func (s *ReservationService) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.reservationRepo.GetByID(ctx, id)
}

func (s *ReservationService) List(ctx context.Context, f domain.ReservationFilter) ([]*domain.Reservation, int, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = defaultPageLimit
	}
	if f.Limit > maxPageLimit {
		f.Limit = maxPageLimit
	}
	return s.reservationRepo.List(ctx, f)
}

// RecordPayment marks the deposit as paid and confirms the reservation.
func (s *ReservationService) RecordPayment(ctx context.Context, id string, metodoPago, pagoID *string) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch reservation.Estado {
	case domain.ReservationCancelada:
		return nil, domain.ErrAlreadyCancelled
	case domain.ReservationCompletada:
		return nil, domain.ErrReservationFinished
	}

	reservation.PagoCompletado = true
	reservation.MetodoPago = metodoPago
	reservation.PagoID = pagoID
	reservation.Estado = domain.ReservationConfirmada
	reservation.UpdatedAt = time.Now().UTC()

	if err = s.reservationRepo.Update(ctx, reservation); err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	s.logger.Info("payment recorded",
		logger.String("reservation_id", id),
	)

	return reservation, nil
}

// UpdateStatus applies one lifecycle transition. Terminal states have no
// outgoing transitions.
func (s *ReservationService) UpdateStatus(ctx context.Context, id string, estado domain.ReservationStatus) (*domain.Reservation, error) {
	if !estado.Valid() {
		return nil, fmt.Errorf("%w: estado inválido %q", domain.ErrValidation, estado)
	}

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if estado == domain.ReservationCancelada {
		return s.cancel(ctx, reservation)
	}

	if !reservation.Estado.CanTransitionTo(estado) {
		return nil, fmt.Errorf("%w: de %s a %s", domain.ErrInvalidTransition, reservation.Estado, estado)
	}

	reservation.Estado = estado
	reservation.UpdatedAt = time.Now().UTC()

	if err = s.reservationRepo.Update(ctx, reservation); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	return reservation, nil
}

// Cancel is a state transition, never a delete: the record stays for history
// with a cancellation timestamp.
func (s *ReservationService) Cancel(ctx context.Context, id string) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.cancel(ctx, reservation)
}

func (s *ReservationService) cancel(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	switch reservation.Estado {
	case domain.ReservationCancelada:
		return nil, domain.ErrAlreadyCancelled
	case domain.ReservationCompletada:
		return nil, domain.ErrReservationFinished
	}

	now := time.Now().UTC()
	reservation.Estado = domain.ReservationCancelada
	reservation.CanceladaAt = &now
	reservation.UpdatedAt = now

	if err := s.reservationRepo.Update(ctx, reservation); err != nil {
		return nil, fmt.Errorf("cancel reservation: %w", err)
	}

	s.cache.InvalidateDay(ctx, reservation.CanchaID, reservation.Fecha)

	s.logger.Info("reservation cancelled",
		logger.String("reservation_id", reservation.ID),
	)

	return reservation, nil
}

// Update edits a reservation administratively. Whenever the court, date,
// start, duration, party size or circuit count changes, the price and deposit
// are recomputed against the target court's active configuration.
func (s *ReservationService) Update(ctx context.Context, id string, input domain.UpdateReservationInput) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch reservation.Estado {
	case domain.ReservationCancelada:
		return nil, domain.ErrAlreadyCancelled
	case domain.ReservationCompletada:
		return nil, domain.ErrReservationFinished
	}

	prevCancha, prevFecha := reservation.CanchaID, reservation.Fecha

	if input.NombreCliente != nil {
		reservation.NombreCliente = *input.NombreCliente
	}
	if input.EmailCliente != nil {
		reservation.EmailCliente = *input.EmailCliente
	}
	if input.TelefonoCliente != nil {
		reservation.TelefonoCliente = *input.TelefonoCliente
	}
	if input.Notas != nil {
		reservation.Notas = *input.Notas
	}

	repriced := false
	if input.CanchaID != nil && *input.CanchaID != reservation.CanchaID {
		reservation.CanchaID = *input.CanchaID
		repriced = true
	}
	if input.Fecha != nil && *input.Fecha != reservation.Fecha {
		reservation.Fecha = *input.Fecha
		repriced = true
	}
	if input.HoraInicio != nil && *input.HoraInicio != reservation.HoraInicio {
		reservation.HoraInicio = *input.HoraInicio
		repriced = true
	}
	if input.DuracionHoras != nil && *input.DuracionHoras != reservation.DuracionHoras {
		reservation.DuracionHoras = *input.DuracionHoras
		repriced = true
	}
	if input.CantidadPersonas != nil && *input.CantidadPersonas != reservation.CantidadPersonas {
		reservation.CantidadPersonas = *input.CantidadPersonas
		repriced = true
	}
	if input.CantidadCircuitos != nil && *input.CantidadCircuitos != reservation.CantidadCircuitos {
		reservation.CantidadCircuitos = *input.CantidadCircuitos
		repriced = true
	}

	if repriced {
		if err = s.reprice(ctx, reservation); err != nil {
			return nil, err
		}
	}

	reservation.UpdatedAt = time.Now().UTC()
	if err = s.reservationRepo.Update(ctx, reservation); err != nil {
		return nil, fmt.Errorf("update reservation: %w", err)
	}

	s.cache.InvalidateDay(ctx, prevCancha, prevFecha)
	s.cache.InvalidateDay(ctx, reservation.CanchaID, reservation.Fecha)

	return reservation, nil
}

// reprice revalidates the schedule and recomputes money after an edit moved
// the reservation. The reservation itself is excluded from the conflict
// check so it does not collide with its own old interval.
func (s *ReservationService) reprice(ctx context.Context, reservation *domain.Reservation) error {
	court, err := s.courtRepo.GetByID(ctx, reservation.CanchaID)
	if err != nil {
		return fmt.Errorf("get court: %w", err)
	}
	if court.Config == nil {
		return domain.ErrNoActiveConfig
	}

	date, err := schedule.ParseDate(reservation.Fecha)
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}
	if !schedule.IsOperatingDay(court.DiasOperacion, date) {
		return fmt.Errorf("%w: la cancha no opera ese día", domain.ErrValidation)
	}

	start, err := schedule.ParseClock(reservation.HoraInicio)
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}
	if reservation.DuracionHoras < 1 {
		return fmt.Errorf("%w: duración inválida", domain.ErrValidation)
	}
	end := start + reservation.DuracionHoras*60
	reservation.HoraFin = schedule.FormatClock(end)

	opening, err := schedule.ParseClock(court.HoraApertura)
	if err != nil {
		return fmt.Errorf("court %s opening: %w", court.ID, err)
	}
	closing, err := schedule.ParseClock(court.HoraCierre)
	if err != nil {
		return fmt.Errorf("court %s closing: %w", court.ID, err)
	}
	if !schedule.WithinOperatingWindow(start, end, opening, closing) {
		return fmt.Errorf(
			"%w: la reserva excede el horario de operación (%s a %s)",
			domain.ErrValidation, court.HoraApertura, court.HoraCierre,
		)
	}

	ok, motivo, err := s.checker.CheckSlotExcluding(ctx, court.ID, reservation.Fecha, start, end, reservation.ID)
	if err != nil {
		return fmt.Errorf("check slot: %w", err)
	}
	if !ok {
		return slotConflict(motivo)
	}

	total, err := s.calculator.Price(
		court.Tipo, court.Config, start,
		reservation.DuracionHoras, reservation.CantidadPersonas, reservation.CantidadCircuitos,
	)
	if err != nil {
		return err
	}

	reservation.PrecioTotal = total
	reservation.MontoSena = s.calculator.Deposit(total)

	return nil
}

func slotConflict(motivo string) error {
	if motivo == "" || motivo == availability.ReasonReserved {
		return domain.ErrSlotUnavailable
	}
	return fmt.Errorf("%w: %s", domain.ErrSlotUnavailable, motivo)
}

func validateReservationInput(input domain.CreateReservationInput) error {
	if input.CanchaID == "" {
		return fmt.Errorf("%w: canchaId es requerido", domain.ErrValidation)
	}
	if input.DuracionHoras < 1 || input.DuracionHoras > 3 {
		return fmt.Errorf("%w: la duración debe ser de 1 a 3 horas", domain.ErrValidation)
	}
	if len(input.NombreCliente) < 2 {
		return fmt.Errorf("%w: el nombre debe tener al menos 2 caracteres", domain.ErrValidation)
	}
	if _, err := mail.ParseAddress(input.EmailCliente); err != nil {
		return fmt.Errorf("%w: email inválido", domain.ErrValidation)
	}
	if len(input.TelefonoCliente) < 8 {
		return fmt.Errorf("%w: teléfono inválido", domain.ErrValidation)
	}
	if input.CantidadPersonas < 1 {
		return fmt.Errorf("%w: la cantidad de personas debe ser al menos 1", domain.ErrValidation)
	}
	if input.CantidadCircuitos < 0 || input.CantidadCircuitos > 2 {
		return fmt.Errorf("%w: cantidad de circuitos inválida", domain.ErrValidation)
	}
	return nil
}

func dateBeforeToday(date time.Time) bool {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return date.Before(today)
}
