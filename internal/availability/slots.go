// Package availability decides whether court time can be booked: it builds
// the per-hour slot grid for a day and answers point-in-time queries for a
// proposed interval. Both paths run over the same overlap predicate, so a
// slot the grid shows as free is bookable modulo concurrent writers.
package availability

import (
	"github.com/santiagoprado21/southpark-reservas/internal/domain"
	"github.com/santiagoprado21/southpark-reservas/internal/schedule"
)

const slotMinutes = 60

// ReasonReserved is reported for slots taken by a customer reservation.
// Blocked slots report the block's own reason instead.
const ReasonReserved = "Reservado"

// Interval is an occupied stretch of a court's day, already normalized to
// minutes since midnight with midnight-crossing ends lifted past 1440.
type Interval struct {
	Start  int
	End    int
	Motivo string
}

// NewInterval parses an occupied interval from its stored HH:mm bounds.
func NewInterval(horaInicio, horaFin, motivo string) (Interval, error) {
	start, err := schedule.ParseClock(horaInicio)
	if err != nil {
		return Interval{}, err
	}
	end, err := schedule.ParseClock(horaFin)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: start, End: schedule.AdjustEnd(start, end), Motivo: motivo}, nil
}

// BuildDaySlots generates one slot per hour from opening until the adjusted
// closing boundary (exclusive: the slot at closing itself has no playable
// time left). Blocks are checked before reservations so a block's reason
// wins when both cover the same hour.
func BuildDaySlots(opening, closing int, blocks, reservations []Interval) []domain.Slot {
	limit := schedule.ClosingBoundary(opening, closing)

	slots := make([]domain.Slot, 0, (limit-opening)/slotMinutes)
	for start := opening; start < limit; start += slotMinutes {
		ok, motivo := CheckInterval(start, start+slotMinutes, blocks, reservations)
		slots = append(slots, domain.Slot{
			Hora:       schedule.FormatClock(start),
			Disponible: ok,
			Motivo:     motivo,
		})
	}

	return slots
}

// CheckInterval reports whether [start, end) is free. The first conflicting
// block determines the reason; otherwise the first conflicting reservation
// does.
func CheckInterval(start, end int, blocks, reservations []Interval) (bool, string) {
	for _, b := range blocks {
		if schedule.Overlaps(start, end, b.Start, b.End) {
			return false, "Cancha bloqueada: " + b.Motivo
		}
	}

	for _, r := range reservations {
		if schedule.Overlaps(start, end, r.Start, r.End) {
			return false, ReasonReserved
		}
	}

	return true, ""
}
