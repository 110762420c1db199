package availability

import (
	"context"
	"testing"

	"github.com/santiagoprado21/southpark-reservas/internal/domain"
	"github.com/santiagoprado21/southpark-reservas/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	lunes   = "2027-03-15"
	domingo = "2027-03-21"
)

type serviceFixture struct {
	courtRepo       *mocks.MockCourtRepo
	reservationRepo *mocks.MockReservationRepo
	blockRepo       *mocks.MockBlockRepo
	cache           *mocks.MockScheduleCache
	svc             *Service
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	f := &serviceFixture{
		courtRepo:       mocks.NewMockCourtRepo(t),
		reservationRepo: mocks.NewMockReservationRepo(t),
		blockRepo:       mocks.NewMockBlockRepo(t),
		cache:           mocks.NewMockScheduleCache(t),
	}
	f.svc = NewService(f.courtRepo, f.reservationRepo, f.blockRepo, f.cache)
	return f
}

func testCourt() *domain.Court {
	return &domain.Court{
		ID:            "c1",
		Nombre:        "Cancha de Voley 1",
		Tipo:          domain.CourtTypeBeachVolley,
		DiasOperacion: []string{domain.Lunes, domain.Martes, domain.Miercoles, domain.Jueves, domain.Viernes, domain.Sabado},
		HoraApertura:  "16:00",
		HoraCierre:    "00:00",
		Activa:        true,
	}
}

func TestService_DaySchedule(t *testing.T) {
	f := newServiceFixture(t)

	f.courtRepo.EXPECT().GetByID(mock.Anything, "c1").Return(testCourt(), nil)
	f.cache.EXPECT().GetDay(mock.Anything, "c1", lunes).Return(nil, false)
	f.blockRepo.EXPECT().ListActiveByCourtDate(mock.Anything, "c1", lunes).Return([]*domain.Block{
		{ID: "b1", CanchaID: "c1", Fecha: lunes, HoraInicio: "16:00", HoraFin: "18:00", Motivo: "Mantenimiento"},
	}, nil)
	f.reservationRepo.EXPECT().ListActiveByCourtDate(mock.Anything, "c1", lunes).Return([]*domain.Reservation{
		{ID: "r1", CanchaID: "c1", Fecha: lunes, HoraInicio: "20:00", HoraFin: "22:00"},
	}, nil)
	f.cache.EXPECT().SetDay(mock.Anything, "c1", lunes, mock.Anything).Return()

	day, err := f.svc.DaySchedule(context.Background(), "c1", lunes)

	require.NoError(t, err)
	assert.True(t, day.Disponible)
	require.NotNil(t, day.Cancha)
	assert.Equal(t, "c1", day.Cancha.ID)
	assert.Equal(t, "Cancha de Voley 1", day.Cancha.Nombre)
	assert.Equal(t, domain.CourtTypeBeachVolley, day.Cancha.Tipo)
	require.Len(t, day.Horarios, 8) // 16:00 hasta 23:00 inclusive

	byHour := make(map[string]domain.Slot, len(day.Horarios))
	for _, s := range day.Horarios {
		byHour[s.Hora] = s
	}
	assert.False(t, byHour["16:00"].Disponible)
	assert.Equal(t, "Cancha bloqueada: Mantenimiento", byHour["17:00"].Motivo)
	assert.True(t, byHour["18:00"].Disponible)
	assert.True(t, byHour["19:00"].Disponible)
	assert.Equal(t, ReasonReserved, byHour["20:00"].Motivo)
	assert.False(t, byHour["21:00"].Disponible)
	assert.True(t, byHour["22:00"].Disponible)
	assert.True(t, byHour["23:00"].Disponible)
}

func TestService_DaySchedule_CacheHit(t *testing.T) {
	f := newServiceFixture(t)

	cached := &domain.DaySchedule{Disponible: true, Fecha: lunes, Horarios: []domain.Slot{}}
	f.courtRepo.EXPECT().GetByID(mock.Anything, "c1").Return(testCourt(), nil)
	f.cache.EXPECT().GetDay(mock.Anything, "c1", lunes).Return(cached, true)

	day, err := f.svc.DaySchedule(context.Background(), "c1", lunes)

	require.NoError(t, err)
	assert.Same(t, cached, day)
}

func TestService_DaySchedule_NonOperatingDay(t *testing.T) {
	f := newServiceFixture(t)

	f.courtRepo.EXPECT().GetByID(mock.Anything, "c1").Return(testCourt(), nil)

	day, err := f.svc.DaySchedule(context.Background(), "c1", domingo)

	require.NoError(t, err)
	assert.False(t, day.Disponible)
	assert.Equal(t, "La cancha no opera los domingo", day.Motivo)
	assert.Empty(t, day.Horarios)
	require.NotNil(t, day.Cancha)
	assert.Equal(t, "Cancha de Voley 1", day.Cancha.Nombre)
}

func TestService_DaySchedule_InactiveCourt(t *testing.T) {
	f := newServiceFixture(t)

	court := testCourt()
	court.Activa = false
	f.courtRepo.EXPECT().GetByID(mock.Anything, "c1").Return(court, nil)

	_, err := f.svc.DaySchedule(context.Background(), "c1", lunes)
	assert.ErrorIs(t, err, domain.ErrCourtNotFound)
}

func TestService_DaySchedule_BadDate(t *testing.T) {
	f := newServiceFixture(t)

	f.courtRepo.EXPECT().GetByID(mock.Anything, "c1").Return(testCourt(), nil)

	_, err := f.svc.DaySchedule(context.Background(), "c1", "15-03-2027")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_Verify_Free(t *testing.T) {
	f := newServiceFixture(t)

	f.blockRepo.EXPECT().ListActiveByCourtDate(mock.Anything, "c1", lunes).Return(nil, nil)
	f.reservationRepo.EXPECT().ListActiveByCourtDate(mock.Anything, "c1", lunes).Return(nil, nil)

	check, err := f.svc.Verify(context.Background(), "c1", lunes, "18:00", 2)

	require.NoError(t, err)
	assert.True(t, check.Disponible)
	assert.Equal(t, "18:00", check.HoraInicio)
	assert.Equal(t, "20:00", check.HoraFin)
}

func TestService_Verify_Blocked(t *testing.T) {
	f := newServiceFixture(t)

	f.blockRepo.EXPECT().ListActiveByCourtDate(mock.Anything, "c1", lunes).Return([]*domain.Block{
		{ID: "b1", HoraInicio: "17:00", HoraFin: "19:00", Motivo: "Torneo privado"},
	}, nil)
	f.reservationRepo.EXPECT().ListActiveByCourtDate(mock.Anything, "c1", lunes).Return(nil, nil)

	check, err := f.svc.Verify(context.Background(), "c1", lunes, "18:00", 1)

	require.NoError(t, err)
	assert.False(t, check.Disponible)
	assert.Equal(t, "Cancha bloqueada: Torneo privado", check.Motivo)
	assert.Empty(t, check.HoraFin)
}

func TestService_Verify_AdjacentIntervalsDoNotConflict(t *testing.T) {
	f := newServiceFixture(t)

	f.blockRepo.EXPECT().ListActiveByCourtDate(mock.Anything, "c1", lunes).Return(nil, nil)
	f.reservationRepo.EXPECT().ListActiveByCourtDate(mock.Anything, "c1", lunes).Return([]*domain.Reservation{
		{ID: "r1", HoraInicio: "16:00", HoraFin: "18:00"},
		{ID: "r2", HoraInicio: "20:00", HoraFin: "22:00"},
	}, nil)

	check, err := f.svc.Verify(context.Background(), "c1", lunes, "18:00", 2)

	require.NoError(t, err)
	assert.True(t, check.Disponible)
}

func TestService_Verify_BadDuration(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.svc.Verify(context.Background(), "c1", lunes, "18:00", 0)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_CheckSlotExcluding_SkipsOwnReservation(t *testing.T) {
	f := newServiceFixture(t)

	f.blockRepo.EXPECT().ListActiveByCourtDate(mock.Anything, "c1", lunes).Return(nil, nil)
	f.reservationRepo.EXPECT().ListActiveByCourtDate(mock.Anything, "c1", lunes).Return([]*domain.Reservation{
		{ID: "r1", HoraInicio: "18:00", HoraFin: "20:00"},
	}, nil)

	ok, motivo, err := f.svc.CheckSlotExcluding(context.Background(), "c1", lunes, 18*60, 20*60, "r1")

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, motivo)
}

func TestService_CheckSlot_MidnightReservation(t *testing.T) {
	f := newServiceFixture(t)

	f.blockRepo.EXPECT().ListActiveByCourtDate(mock.Anything, "c1", lunes).Return(nil, nil)
	f.reservationRepo.EXPECT().ListActiveByCourtDate(mock.Anything, "c1", lunes).Return([]*domain.Reservation{
		{ID: "r1", HoraInicio: "22:00", HoraFin: "00:00"},
	}, nil)

	ok, motivo, err := f.svc.CheckSlot(context.Background(), "c1", lunes, 23*60, 24*60)

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, ReasonReserved, motivo)
}
