package service

import (
	"context"
	"testing"

	"github.com/santiagoprado21/southpark-reservas/internal/domain"
	"github.com/santiagoprado21/southpark-reservas/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type blockFixture struct {
	blockRepo *mocks.MockBlockRepo
	courtRepo *mocks.MockCourtRepo
	cache     *mocks.MockScheduleCache
	svc       *BlockService
}

func newBlockFixture(t *testing.T) *blockFixture {
	t.Helper()
	f := &blockFixture{
		blockRepo: mocks.NewMockBlockRepo(t),
		courtRepo: mocks.NewMockCourtRepo(t),
		cache:     mocks.NewMockScheduleCache(t),
	}
	f.svc = NewBlockService(f.blockRepo, f.courtRepo, f.cache, newTestLogger(t))
	return f
}

func validBlockInput() domain.CreateBlockInput {
	return domain.CreateBlockInput{
		CanchaID:   "c1",
		Fecha:      fechaLunes,
		HoraInicio: "16:00",
		HoraFin:    "18:00",
		Motivo:     "Mantenimiento programado",
	}
}

func existingBlock() *domain.Block {
	return &domain.Block{
		ID:         "b1",
		CanchaID:   "c1",
		Fecha:      fechaLunes,
		HoraInicio: "16:00",
		HoraFin:    "18:00",
		Motivo:     "Mantenimiento programado",
		Activo:     true,
	}
}

func TestBlockService_Create(t *testing.T) {
	f := newBlockFixture(t)

	f.courtRepo.EXPECT().GetByID(mock.Anything, "c1").Return(voleyCourt(), nil)
	f.blockRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.cache.EXPECT().InvalidateDay(mock.Anything, "c1", fechaLunes).Return()

	block, err := f.svc.Create(context.Background(), validBlockInput())

	require.NoError(t, err)
	assert.True(t, block.Activo)
	assert.NotEmpty(t, block.ID)
	assert.Equal(t, "Mantenimiento programado", block.Motivo)
}

func TestBlockService_Create_CourtNotFound(t *testing.T) {
	f := newBlockFixture(t)

	f.courtRepo.EXPECT().GetByID(mock.Anything, "c1").Return(nil, domain.ErrCourtNotFound)

	_, err := f.svc.Create(context.Background(), validBlockInput())
	assert.ErrorIs(t, err, domain.ErrCourtNotFound)
}

func TestBlockService_Create_Overlap(t *testing.T) {
	f := newBlockFixture(t)

	f.courtRepo.EXPECT().GetByID(mock.Anything, "c1").Return(voleyCourt(), nil)
	f.blockRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrBlockOverlap)

	_, err := f.svc.Create(context.Background(), validBlockInput())
	assert.ErrorIs(t, err, domain.ErrBlockOverlap)
}

func TestBlockService_Create_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.CreateBlockInput)
	}{
		{"fecha inválida", func(i *domain.CreateBlockInput) { i.Fecha = "15/03/2027" }},
		{"hora inválida", func(i *domain.CreateBlockInput) { i.HoraInicio = "16" }},
		{"fin antes de inicio", func(i *domain.CreateBlockInput) { i.HoraFin = "15:00" }},
		{"fin igual a inicio", func(i *domain.CreateBlockInput) { i.HoraFin = "16:00" }},
		{"motivo corto", func(i *domain.CreateBlockInput) { i.Motivo = "ok" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newBlockFixture(t)
			input := validBlockInput()
			tc.mutate(&input)

			_, err := f.svc.Create(context.Background(), input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestBlockService_Update_MoveDateInvalidatesBothDays(t *testing.T) {
	f := newBlockFixture(t)

	f.blockRepo.EXPECT().GetByID(mock.Anything, "b1").Return(existingBlock(), nil)
	f.blockRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	f.cache.EXPECT().InvalidateDay(mock.Anything, "c1", fechaLunes).Return()
	f.cache.EXPECT().InvalidateDay(mock.Anything, "c1", "2027-03-16").Return()

	nuevaFecha := "2027-03-16"
	block, err := f.svc.Update(context.Background(), "b1", domain.UpdateBlockInput{Fecha: &nuevaFecha})

	require.NoError(t, err)
	assert.Equal(t, "2027-03-16", block.Fecha)
}

func TestBlockService_Update_InvalidWindow(t *testing.T) {
	f := newBlockFixture(t)

	f.blockRepo.EXPECT().GetByID(mock.Anything, "b1").Return(existingBlock(), nil)

	finTemprano := "15:00"
	_, err := f.svc.Update(context.Background(), "b1", domain.UpdateBlockInput{HoraFin: &finTemprano})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBlockService_Deactivate(t *testing.T) {
	f := newBlockFixture(t)

	f.blockRepo.EXPECT().GetByID(mock.Anything, "b1").Return(existingBlock(), nil)
	f.blockRepo.EXPECT().Deactivate(mock.Anything, "b1").Return(nil)
	f.cache.EXPECT().InvalidateDay(mock.Anything, "c1", fechaLunes).Return()

	block, err := f.svc.Deactivate(context.Background(), "b1")

	require.NoError(t, err)
	assert.False(t, block.Activo)
}

func TestBlockService_Deactivate_NotFound(t *testing.T) {
	f := newBlockFixture(t)

	f.blockRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBlockNotFound)

	_, err := f.svc.Deactivate(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrBlockNotFound)
}
