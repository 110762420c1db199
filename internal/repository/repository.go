// Package repository implements the storage ports over PostgreSQL.
package repository

import (
	"time"

	"github.com/santiagoprado21/southpark-reservas/internal/schedule"
	"github.com/wb-go/wbf/retry"
)

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

// window is an occupied [start, end) in minutes, adjusted for midnight.
type window struct {
	start, end int
}

func parseWindow(horaInicio, horaFin string) (window, error) {
	start, err := schedule.ParseClock(horaInicio)
	if err != nil {
		return window{}, err
	}
	end, err := schedule.ParseClock(horaFin)
	if err != nil {
		return window{}, err
	}
	return window{start: start, end: schedule.AdjustEnd(start, end)}, nil
}

func anyOverlap(start, end int, occupied []window) bool {
	for _, w := range occupied {
		if schedule.Overlaps(start, end, w.start, w.end) {
			return true
		}
	}
	return false
}
