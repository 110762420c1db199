package pricing

import (
	"testing"

	"github.com/santiagoprado21/southpark-reservas/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func voleyConfig() *domain.PriceConfig {
	return &domain.PriceConfig{
		PrecioHora1:          80000,
		PrecioHora2:          130000,
		PrecioHora3:          180000,
		TieneHappyHour:       true,
		HappyHourInicio:      "16:00",
		HappyHourFin:         "20:00",
		PrecioHora2HappyHour: 110000,
		Activa:               true,
	}
}

func golfConfig() *domain.PriceConfig {
	return &domain.PriceConfig{
		PrecioPersona1Circuito:  25000,
		PrecioPersona2Circuitos: 45000,
		Activa:                  true,
	}
}

func TestPrice_BeachVolley_FixedDurations(t *testing.T) {
	calc := NewCalculator(Config{})
	cfg := voleyConfig()

	price, err := calc.Price(domain.CourtTypeBeachVolley, cfg, 21*60, 1, 4, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(80000), price)

	price, err = calc.Price(domain.CourtTypeBeachVolley, cfg, 16*60, 3, 4, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(180000), price)

	_, err = calc.Price(domain.CourtTypeBeachVolley, cfg, 16*60, 4, 4, 0)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = calc.Price(domain.CourtTypeBeachVolley, cfg, 16*60, 0, 4, 0)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPrice_HappyHourBoundary(t *testing.T) {
	calc := NewCalculator(Config{})
	cfg := voleyConfig()

	// 18:00-20:00 entirely inside 16:00-20:00
	price, err := calc.Price(domain.CourtTypeBeachVolley, cfg, 18*60, 2, 4, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(110000), price)

	// 19:00-21:00 exceeds the boundary: standard price
	price, err = calc.Price(domain.CourtTypeBeachVolley, cfg, 19*60, 2, 4, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(130000), price)

	// starting exactly at the window start
	price, err = calc.Price(domain.CourtTypeBeachVolley, cfg, 16*60, 2, 4, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(110000), price)

	// starting before the window
	price, err = calc.Price(domain.CourtTypeBeachVolley, cfg, 15*60, 2, 4, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(130000), price)
}

func TestPrice_HappyHourDisabled(t *testing.T) {
	calc := NewCalculator(Config{})
	cfg := voleyConfig()
	cfg.TieneHappyHour = false

	price, err := calc.Price(domain.CourtTypeBeachVolley, cfg, 18*60, 2, 4, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(130000), price)
}

func TestPrice_MiniGolf(t *testing.T) {
	calc := NewCalculator(Config{})
	cfg := golfConfig()

	price, err := calc.Price(domain.CourtTypeMiniGolf, cfg, 17*60, 0, 4, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(100000), price)

	price, err = calc.Price(domain.CourtTypeMiniGolf, cfg, 17*60, 0, 4, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(180000), price)

	_, err = calc.Price(domain.CourtTypeMiniGolf, cfg, 17*60, 0, 0, 1)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPrice_RequiresActiveConfig(t *testing.T) {
	calc := NewCalculator(Config{})

	_, err := calc.Price(domain.CourtTypeBeachVolley, nil, 18*60, 2, 4, 0)
	assert.ErrorIs(t, err, domain.ErrNoActiveConfig)
}

func TestPrice_UnknownCourtType(t *testing.T) {
	calc := NewCalculator(Config{})

	_, err := calc.Price(domain.CourtType("PADEL"), voleyConfig(), 18*60, 2, 4, 0)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDeposit_RoundsHalfUp(t *testing.T) {
	calc := NewCalculator(Config{DepositPercent: 30})

	assert.Equal(t, int64(30000), calc.Deposit(100000))
	assert.Equal(t, int64(24000), calc.Deposit(80001))
	assert.Equal(t, int64(33000), calc.Deposit(110000))
	// 30% of 5 = 1.5, rounds up
	assert.Equal(t, int64(2), calc.Deposit(5))
	assert.Equal(t, int64(0), calc.Deposit(0))
}

func TestDeposit_DefaultPercent(t *testing.T) {
	calc := NewCalculator(Config{})
	assert.Equal(t, int64(30000), calc.Deposit(100000))
}
