package schedule

import (
	"testing"
	"time"

	"github.com/santiagoprado21/southpark-reservas/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd int
		want                       bool
	}{
		{"identical", 9 * 60, 10 * 60, 9 * 60, 10 * 60, true},
		{"partial", 9 * 60, 11 * 60, 10 * 60, 12 * 60, true},
		{"contained", 9 * 60, 12 * 60, 10 * 60, 11 * 60, true},
		{"adjacent after", 9 * 60, 10 * 60, 10 * 60, 11 * 60, false},
		{"adjacent before", 10 * 60, 11 * 60, 9 * 60, 10 * 60, false},
		{"disjoint", 9 * 60, 10 * 60, 14 * 60, 15 * 60, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// simetría
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestParseClock(t *testing.T) {
	m, err := ParseClock("16:00")
	require.NoError(t, err)
	assert.Equal(t, 960, m)

	m, err = ParseClock("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, m)

	m, err = ParseClock("23:59")
	require.NoError(t, err)
	assert.Equal(t, 1439, m)

	for _, bad := range []string{"", "16", "16:0x", "24:00", "12:60", "-1:00", "12:00:00"} {
		_, err = ParseClock(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "16:00", FormatClock(960))
	assert.Equal(t, "00:00", FormatClock(0))
	// adjusted end-of-day values wrap back to wall clock
	assert.Equal(t, "00:00", FormatClock(1440))
	assert.Equal(t, "01:00", FormatClock(1500))
}

func TestWeekdayCode(t *testing.T) {
	// 2026-09-07 is a Monday
	monday, err := ParseDate("2026-09-07")
	require.NoError(t, err)
	assert.Equal(t, domain.Lunes, WeekdayCode(monday))
	assert.Equal(t, domain.Domingo, WeekdayCode(monday.AddDate(0, 0, 6)))
}

func TestIsOperatingDay(t *testing.T) {
	days := []string{domain.Lunes, domain.Martes, domain.Miercoles, domain.Jueves, domain.Viernes, domain.Sabado}

	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	sunday := monday.AddDate(0, 0, 6)

	assert.True(t, IsOperatingDay(days, monday))
	assert.False(t, IsOperatingDay(days, sunday))
	assert.False(t, IsOperatingDay(nil, monday))
}

func TestClosingBoundary(t *testing.T) {
	// 16:00 - 22:00, same day
	assert.Equal(t, 22*60, ClosingBoundary(16*60, 22*60))
	// 16:00 - 00:00 closes at end of day
	assert.Equal(t, 1440, ClosingBoundary(16*60, 0))
	// 20:00 - 02:00 crosses midnight
	assert.Equal(t, 1440+2*60, ClosingBoundary(20*60, 2*60))
}

func TestWithinOperatingWindow_MidnightClosing(t *testing.T) {
	opening, closing := 16*60, 0 // 16:00 - 00:00

	// 22:00 + 2h ends exactly at closing
	assert.True(t, WithinOperatingWindow(22*60, 0, opening, closing))
	// 23:00 + 2h ends 01:00, past closing
	assert.False(t, WithinOperatingWindow(23*60, 1*60, opening, closing))
	// before opening
	assert.False(t, WithinOperatingWindow(15*60, 17*60, opening, closing))
	// fully inside
	assert.True(t, WithinOperatingWindow(17*60, 19*60, opening, closing))
}

func TestWithinOperatingWindow_SameDayClosing(t *testing.T) {
	opening, closing := 16*60, 22*60

	assert.True(t, WithinOperatingWindow(16*60, 17*60, opening, closing))
	assert.True(t, WithinOperatingWindow(21*60, 22*60, opening, closing))
	assert.False(t, WithinOperatingWindow(21*60, 23*60, opening, closing))
}
