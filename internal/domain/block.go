package domain

import "time"

// Block is an administrator-declared unavailability window for a court on a
// specific date. Blocks are never hard-deleted; removing one flips Activo.
type Block struct {
	ID         string    `json:"id"`
	CanchaID   string    `json:"canchaId"`
	Fecha      string    `json:"fecha"`      // YYYY-MM-DD
	HoraInicio string    `json:"horaInicio"` // HH:mm
	HoraFin    string    `json:"horaFin"`    // HH:mm
	Motivo     string    `json:"motivo"`
	Activo     bool      `json:"activo"`
	Cancha     *Court    `json:"cancha,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type CreateBlockInput struct {
	CanchaID   string
	Fecha      string
	HoraInicio string
	HoraFin    string
	Motivo     string
}

type UpdateBlockInput struct {
	Fecha      *string
	HoraInicio *string
	HoraFin    *string
	Motivo     *string
	Activo     *bool
}

type BlockFilter struct {
	CanchaID string
	Fecha    string
	Activo   *bool
}
