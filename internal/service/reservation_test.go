package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/santiagoprado21/southpark-reservas/internal/domain"
	"github.com/santiagoprado21/southpark-reservas/internal/pricing"
	svcmocks "github.com/santiagoprado21/southpark-reservas/internal/service/mocks"
	"github.com/santiagoprado21/southpark-reservas/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

// fechaLunes and fechaDomingo are fixed future dates: a Monday and a Sunday.
const (
	fechaLunes   = "2027-03-15"
	fechaDomingo = "2027-03-21"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func voleyCourt() *domain.Court {
	return &domain.Court{
		ID:            "c1",
		Nombre:        "Cancha de Voley 1",
		Tipo:          domain.CourtTypeBeachVolley,
		DiasOperacion: []string{domain.Lunes, domain.Martes, domain.Miercoles, domain.Jueves, domain.Viernes, domain.Sabado},
		HoraApertura:  "16:00",
		HoraCierre:    "00:00",
		Activa:        true,
		Config: &domain.PriceConfig{
			ID:                   "cfg1",
			CanchaID:             "c1",
			PrecioHora1:          80000,
			PrecioHora2:          130000,
			PrecioHora3:          180000,
			TieneHappyHour:       true,
			HappyHourInicio:      "16:00",
			HappyHourFin:         "20:00",
			PrecioHora2HappyHour: 110000,
			Activa:               true,
		},
	}
}

type reservationFixture struct {
	reservationRepo *mocks.MockReservationRepo
	courtRepo       *mocks.MockCourtRepo
	checker         *svcmocks.MockAvailabilityChecker
	cache           *mocks.MockScheduleCache
	svc             *ReservationService
}

func newReservationFixture(t *testing.T) *reservationFixture {
	t.Helper()
	f := &reservationFixture{
		reservationRepo: mocks.NewMockReservationRepo(t),
		courtRepo:       mocks.NewMockCourtRepo(t),
		checker:         svcmocks.NewMockAvailabilityChecker(t),
		cache:           mocks.NewMockScheduleCache(t),
	}
	f.svc = NewReservationService(
		f.reservationRepo, f.courtRepo, f.checker,
		pricing.NewCalculator(pricing.Config{}), f.cache, newTestLogger(t),
	)
	return f
}

func validCreateInput() domain.CreateReservationInput {
	return domain.CreateReservationInput{
		CanchaID:         "c1",
		Fecha:            fechaLunes,
		HoraInicio:       "18:00",
		DuracionHoras:    2,
		NombreCliente:    "Carlos Rodríguez",
		EmailCliente:     "carlos@ejemplo.com",
		TelefonoCliente:  "+57 300 111 2222",
		CantidadPersonas: 8,
	}
}

func TestReservationService_Create_HappyHour(t *testing.T) {
	f := newReservationFixture(t)

	f.courtRepo.EXPECT().GetByID(mock.Anything, "c1").Return(voleyCourt(), nil)
	f.checker.EXPECT().CheckSlot(mock.Anything, "c1", fechaLunes, 18*60, 20*60).Return(true, "", nil)
	f.reservationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.cache.EXPECT().InvalidateDay(mock.Anything, "c1", fechaLunes).Return()

	res, err := f.svc.Create(context.Background(), validCreateInput())

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationPendiente, res.Estado)
	assert.Equal(t, "20:00", res.HoraFin)
	assert.Equal(t, int64(110000), res.PrecioTotal)
	assert.Equal(t, int64(33000), res.MontoSena)
	assert.False(t, res.PagoCompletado)
	assert.NotEmpty(t, res.ID)
}

func TestReservationService_Create_NightRate(t *testing.T) {
	f := newReservationFixture(t)

	f.courtRepo.EXPECT().GetByID(mock.Anything, "c1").Return(voleyCourt(), nil)
	f.checker.EXPECT().CheckSlot(mock.Anything, "c1", fechaLunes, 20*60, 22*60).Return(true, "", nil)
	f.reservationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.cache.EXPECT().InvalidateDay(mock.Anything, "c1", fechaLunes).Return()

	input := validCreateInput()
	input.HoraInicio = "20:00"

	res, err := f.svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, int64(130000), res.PrecioTotal)
	assert.Equal(t, int64(39000), res.MontoSena)
}

func TestReservationService_Create_UntilMidnight(t *testing.T) {
	f := newReservationFixture(t)

	f.courtRepo.EXPECT().GetByID(mock.Anything, "c1").Return(voleyCourt(), nil)
	f.checker.EXPECT().CheckSlot(mock.Anything, "c1", fechaLunes, 22*60, 24*60).Return(true, "", nil)
	f.reservationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.cache.EXPECT().InvalidateDay(mock.Anything, "c1", fechaLunes).Return()

	input := validCreateInput()
	input.HoraInicio = "22:00"

	res, err := f.svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "00:00", res.HoraFin)
}

func TestReservationService_Create_PastDate(t *testing.T) {
	f := newReservationFixture(t)

	f.courtRepo.EXPECT().GetByID(mock.Anything, "c1").Return(voleyCourt(), nil)

	input := validCreateInput()
	input.Fecha = "2020-01-06"

	_, err := f.svc.Create(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Create_NoActiveConfig(t *testing.T) {
	f := newReservationFixture(t)

	court := voleyCourt()
	court.Config = nil
	f.courtRepo.EXPECT().GetByID(mock.Anything, "c1").Return(court, nil)

	_, err := f.svc.Create(context.Background(), validCreateInput())
	assert.ErrorIs(t, err, domain.ErrNoActiveConfig)
}

func TestReservationService_Create_InactiveCourt(t *testing.T) {
	f := newReservationFixture(t)

	court := voleyCourt()
	court.Activa = false
	f.courtRepo.EXPECT().GetByID(mock.Anything, "c1").Return(court, nil)

	_, err := f.svc.Create(context.Background(), validCreateInput())
	assert.ErrorIs(t, err, domain.ErrCourtNotFound)
}

func TestReservationService_Create_NonOperatingDay(t *testing.T) {
	f := newReservationFixture(t)

	f.courtRepo.EXPECT().GetByID(mock.Anything, "c1").Return(voleyCourt(), nil)

	input := validCreateInput()
	input.Fecha = fechaDomingo

	_, err := f.svc.Create(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Create_OutsideOperatingWindow(t *testing.T) {
	f := newReservationFixture(t)

	f.courtRepo.EXPECT().GetByID(mock.Anything, "c1").Return(voleyCourt(), nil)

	input := validCreateInput()
	input.HoraInicio = "23:00" // 23:00 + 2h cruza el cierre de medianoche

	_, err := f.svc.Create(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Create_SlotTaken(t *testing.T) {
	f := newReservationFixture(t)

	f.courtRepo.EXPECT().GetByID(mock.Anything, "c1").Return(voleyCourt(), nil)
	f.checker.EXPECT().CheckSlot(mock.Anything, "c1", fechaLunes, 18*60, 20*60).Return(false, "Reservado", nil)

	_, err := f.svc.Create(context.Background(), validCreateInput())
	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)
}

func TestReservationService_Create_BlockedSlotKeepsReason(t *testing.T) {
	f := newReservationFixture(t)

	f.courtRepo.EXPECT().GetByID(mock.Anything, "c1").Return(voleyCourt(), nil)
	f.checker.EXPECT().CheckSlot(mock.Anything, "c1", fechaLunes, 18*60, 20*60).
		Return(false, "Cancha bloqueada: Mantenimiento programado", nil)

	_, err := f.svc.Create(context.Background(), validCreateInput())
	require.ErrorIs(t, err, domain.ErrSlotUnavailable)
	assert.Contains(t, err.Error(), "Mantenimiento programado")
}

func TestReservationService_Create_RepositoryLostRace(t *testing.T) {
	f := newReservationFixture(t)

	f.courtRepo.EXPECT().GetByID(mock.Anything, "c1").Return(voleyCourt(), nil)
	f.checker.EXPECT().CheckSlot(mock.Anything, "c1", fechaLunes, 18*60, 20*60).Return(true, "", nil)
	f.reservationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrSlotUnavailable)

	_, err := f.svc.Create(context.Background(), validCreateInput())
	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)
}

func TestReservationService_Create_ValidationErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.CreateReservationInput)
	}{
		{"sin cancha", func(i *domain.CreateReservationInput) { i.CanchaID = "" }},
		{"duración cero", func(i *domain.CreateReservationInput) { i.DuracionHoras = 0 }},
		{"duración excesiva", func(i *domain.CreateReservationInput) { i.DuracionHoras = 4 }},
		{"nombre corto", func(i *domain.CreateReservationInput) { i.NombreCliente = "X" }},
		{"email inválido", func(i *domain.CreateReservationInput) { i.EmailCliente = "no-es-email" }},
		{"teléfono corto", func(i *domain.CreateReservationInput) { i.TelefonoCliente = "123" }},
		{"sin personas", func(i *domain.CreateReservationInput) { i.CantidadPersonas = 0 }},
		{"circuitos inválidos", func(i *domain.CreateReservationInput) { i.CantidadCircuitos = 3 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newReservationFixture(t)
			input := validCreateInput()
			tc.mutate(&input)

			_, err := f.svc.Create(context.Background(), input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func existingReservation(estado domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:               "r1",
		CanchaID:         "c1",
		Fecha:            fechaLunes,
		HoraInicio:       "18:00",
		HoraFin:          "20:00",
		DuracionHoras:    2,
		CantidadPersonas: 8,
		NombreCliente:    "Carlos Rodríguez",
		EmailCliente:     "carlos@ejemplo.com",
		TelefonoCliente:  "+57 300 111 2222",
		PrecioTotal:      110000,
		MontoSena:        33000,
		Estado:           estado,
	}
}

func TestReservationService_RecordPayment_Confirms(t *testing.T) {
	f := newReservationFixture(t)

	f.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(existingReservation(domain.ReservationPendiente), nil)
	f.reservationRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	metodo := "TRANSFERENCIA"
	res, err := f.svc.RecordPayment(context.Background(), "r1", &metodo, nil)

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationConfirmada, res.Estado)
	assert.True(t, res.PagoCompletado)
	assert.Equal(t, "TRANSFERENCIA", *res.MetodoPago)
}

func TestReservationService_RecordPayment_Cancelled(t *testing.T) {
	f := newReservationFixture(t)

	f.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(existingReservation(domain.ReservationCancelada), nil)

	_, err := f.svc.RecordPayment(context.Background(), "r1", nil, nil)
	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)
}

func TestReservationService_UpdateStatus_Transitions(t *testing.T) {
	cases := []struct {
		name    string
		from    domain.ReservationStatus
		to      domain.ReservationStatus
		wantErr error
	}{
		{"pendiente a confirmada", domain.ReservationPendiente, domain.ReservationConfirmada, nil},
		{"confirmada a completada", domain.ReservationConfirmada, domain.ReservationCompletada, nil},
		{"pendiente a completada", domain.ReservationPendiente, domain.ReservationCompletada, domain.ErrInvalidTransition},
		{"completada a confirmada", domain.ReservationCompletada, domain.ReservationConfirmada, domain.ErrInvalidTransition},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newReservationFixture(t)
			f.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(existingReservation(tc.from), nil)
			if tc.wantErr == nil {
				f.reservationRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
			}

			res, err := f.svc.UpdateStatus(context.Background(), "r1", tc.to)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.to, res.Estado)
		})
	}
}

func TestReservationService_UpdateStatus_InvalidState(t *testing.T) {
	f := newReservationFixture(t)

	_, err := f.svc.UpdateStatus(context.Background(), "r1", "LISTA")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Cancel(t *testing.T) {
	f := newReservationFixture(t)

	f.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(existingReservation(domain.ReservationConfirmada), nil)
	f.reservationRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	f.cache.EXPECT().InvalidateDay(mock.Anything, "c1", fechaLunes).Return()

	res, err := f.svc.Cancel(context.Background(), "r1")

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationCancelada, res.Estado)
	require.NotNil(t, res.CanceladaAt)
	assert.WithinDuration(t, time.Now().UTC(), *res.CanceladaAt, 5*time.Second)
}

func TestReservationService_Cancel_Twice(t *testing.T) {
	f := newReservationFixture(t)

	f.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(existingReservation(domain.ReservationCancelada), nil)

	_, err := f.svc.Cancel(context.Background(), "r1")
	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)
}

func TestReservationService_Cancel_Completed(t *testing.T) {
	f := newReservationFixture(t)

	f.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(existingReservation(domain.ReservationCompletada), nil)

	_, err := f.svc.Cancel(context.Background(), "r1")
	assert.ErrorIs(t, err, domain.ErrReservationFinished)
}

func TestReservationService_Update_RepricesOnMove(t *testing.T) {
	f := newReservationFixture(t)

	f.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(existingReservation(domain.ReservationPendiente), nil)
	f.courtRepo.EXPECT().GetByID(mock.Anything, "c1").Return(voleyCourt(), nil)
	f.checker.EXPECT().CheckSlotExcluding(mock.Anything, "c1", fechaLunes, 20*60, 22*60, "r1").Return(true, "", nil)
	f.reservationRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	f.cache.EXPECT().InvalidateDay(mock.Anything, "c1", fechaLunes).Return()

	nuevaHora := "20:00"
	res, err := f.svc.Update(context.Background(), "r1", domain.UpdateReservationInput{HoraInicio: &nuevaHora})

	require.NoError(t, err)
	assert.Equal(t, "22:00", res.HoraFin)
	assert.Equal(t, int64(130000), res.PrecioTotal)
	assert.Equal(t, int64(39000), res.MontoSena)
}

func TestReservationService_Update_ContactOnlySkipsRepricing(t *testing.T) {
	f := newReservationFixture(t)

	f.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(existingReservation(domain.ReservationPendiente), nil)
	f.reservationRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	f.cache.EXPECT().InvalidateDay(mock.Anything, "c1", fechaLunes).Return()

	nombre := "María González"
	res, err := f.svc.Update(context.Background(), "r1", domain.UpdateReservationInput{NombreCliente: &nombre})

	require.NoError(t, err)
	assert.Equal(t, "María González", res.NombreCliente)
	assert.Equal(t, int64(110000), res.PrecioTotal)
}

func TestReservationService_Update_Terminal(t *testing.T) {
	f := newReservationFixture(t)

	f.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(existingReservation(domain.ReservationCompletada), nil)

	notas := "cambio"
	_, err := f.svc.Update(context.Background(), "r1", domain.UpdateReservationInput{Notas: &notas})
	assert.ErrorIs(t, err, domain.ErrReservationFinished)
}

func TestReservationService_List_NormalizesPagination(t *testing.T) {
	f := newReservationFixture(t)

	f.reservationRepo.EXPECT().List(mock.Anything, mock.Anything).
		Run(func(_ context.Context, filter domain.ReservationFilter) {
			assert.Equal(t, 1, filter.Page)
			assert.Equal(t, 20, filter.Limit)
		}).
		Return([]*domain.Reservation{}, 0, nil)

	_, _, err := f.svc.List(context.Background(), domain.ReservationFilter{Page: 0, Limit: 0})
	require.NoError(t, err)
}

func TestReservationService_GetByID_NotFound(t *testing.T) {
	f := newReservationFixture(t)

	f.reservationRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrReservationNotFound)

	_, err := f.svc.GetByID(context.Background(), "missing")
	assert.True(t, errors.Is(err, domain.ErrReservationNotFound))
}
