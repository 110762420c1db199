// Package schedule holds the interval math every conflict check in the
// system is built on: half-open interval overlap and the court operating
// window, including schedules that close past midnight.
package schedule

import (
	"time"

	"github.com/santiagoprado21/southpark-reservas/internal/domain"
)

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. An interval ending exactly where another starts
// does not overlap. All conflict checks (reservation vs reservation,
// reservation vs block, slot grid) go through this single predicate.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

var weekdayNames = map[time.Weekday]string{
	time.Monday:    domain.Lunes,
	time.Tuesday:   domain.Martes,
	time.Wednesday: domain.Miercoles,
	time.Thursday:  domain.Jueves,
	time.Friday:    domain.Viernes,
	time.Saturday:  domain.Sabado,
	time.Sunday:    domain.Domingo,
}

// WeekdayCode maps a date to the venue's weekday vocabulary (LUNES..DOMINGO).
func WeekdayCode(date time.Time) string {
	return weekdayNames[date.Weekday()]
}

// IsOperatingDay reports whether the court operates on the given date.
func IsOperatingDay(operatingDays []string, date time.Time) bool {
	code := WeekdayCode(date)
	for _, d := range operatingDays {
		if d == code {
			return true
		}
	}
	return false
}

// ClosingBoundary returns the effective closing minute for interval math.
// A closing time numerically at or before the opening time means the court
// closes on the following day, so a full day is added; closing at "00:00"
// therefore means minute 1440, end of day, not start of day.
func ClosingBoundary(opening, closing int) int {
	if closing <= opening {
		return closing + MinutesPerDay
	}
	return closing
}

// AdjustEnd lifts an interval end that crossed midnight onto the same scale
// as its start, e.g. a booking from 23:00 to 00:00 becomes [1380, 1440).
func AdjustEnd(start, end int) int {
	if end < start {
		return end + MinutesPerDay
	}
	return end
}

// WithinOperatingWindow reports whether [start, end) fits inside the court's
// opening hours, after adjusting both the court closing time and the
// candidate end for midnight crossings.
func WithinOperatingWindow(start, end, opening, closing int) bool {
	return start >= opening && AdjustEnd(start, end) <= ClosingBoundary(opening, closing)
}
