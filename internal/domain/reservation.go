package domain

import "time"

type ReservationStatus string

const (
	ReservationPendiente  ReservationStatus = "PENDIENTE"
	ReservationConfirmada ReservationStatus = "CONFIRMADA"
	ReservationCompletada ReservationStatus = "COMPLETADA"
	ReservationCancelada  ReservationStatus = "CANCELADA"
)

// ActiveStatuses are the states that occupy a slot on the calendar.
var ActiveStatuses = []ReservationStatus{ReservationPendiente, ReservationConfirmada}

var transitions = map[ReservationStatus][]ReservationStatus{
	ReservationPendiente:  {ReservationConfirmada, ReservationCancelada},
	ReservationConfirmada: {ReservationCompletada, ReservationCancelada},
}

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationPendiente, ReservationConfirmada, ReservationCompletada, ReservationCancelada:
		return true
	}
	return false
}

func (s ReservationStatus) Terminal() bool {
	return s == ReservationCompletada || s == ReservationCancelada
}

func (s ReservationStatus) CanTransitionTo(to ReservationStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

type Reservation struct {
	ID         string `json:"id"`
	CanchaID   string `json:"canchaId"`
	Fecha      string `json:"fecha"`      // YYYY-MM-DD
	HoraInicio string `json:"horaInicio"` // HH:mm
	HoraFin    string `json:"horaFin"`    // HH:mm, derived from inicio + duration

	DuracionHoras     int `json:"duracionHoras"`
	CantidadPersonas  int `json:"cantidadPersonas"`
	CantidadCircuitos int `json:"cantidadCircuitos"`

	NombreCliente   string `json:"nombreCliente"`
	EmailCliente    string `json:"emailCliente"`
	TelefonoCliente string `json:"telefonoCliente"`

	PrecioTotal    int64   `json:"precioTotal"`
	MontoSena      int64   `json:"montoSena"`
	PagoCompletado bool    `json:"pagoCompletado"`
	MetodoPago     *string `json:"metodoPago"`
	PagoID         *string `json:"pagoId"`

	Notas       string            `json:"notas"`
	Estado      ReservationStatus `json:"estado"`
	CanceladaAt *time.Time        `json:"canceladaAt"`

	Cancha    *Court    `json:"cancha,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateReservationInput struct {
	CanchaID          string
	Fecha             string
	HoraInicio        string
	DuracionHoras     int
	NombreCliente     string
	EmailCliente      string
	TelefonoCliente   string
	CantidadPersonas  int
	CantidadCircuitos int
	Notas             string
}

type UpdateReservationInput struct {
	CanchaID          *string
	Fecha             *string
	HoraInicio        *string
	DuracionHoras     *int
	CantidadPersonas  *int
	CantidadCircuitos *int
	NombreCliente     *string
	EmailCliente      *string
	TelefonoCliente   *string
	Notas             *string
}

type ReservationFilter struct {
	CanchaID string
	Fecha    string
	Estado   ReservationStatus
	Email    string
	Telefono string
	Page     int
	Limit    int
}

// Slot is one hour of a court's operating window with its disposition.
type Slot struct {
	Hora       string `json:"hora"`
	Disponible bool   `json:"disponible"`
	Motivo     string `json:"motivo,omitempty"`
}

// CourtSummary identifies the court a schedule belongs to without dragging
// the full record into the payload.
type CourtSummary struct {
	ID     string    `json:"id"`
	Nombre string    `json:"nombre"`
	Tipo   CourtType `json:"tipo"`
}

// DaySchedule is the full slot grid for a court on one date. When the court
// does not operate that weekday, Disponible is false and Horarios is empty.
type DaySchedule struct {
	Cancha     *CourtSummary `json:"cancha,omitempty"`
	Disponible bool          `json:"disponible"`
	Motivo     string        `json:"motivo,omitempty"`
	Fecha      string        `json:"fecha"`
	Horarios   []Slot        `json:"horarios"`
}

// SlotCheck is the answer to a point-in-time availability query.
type SlotCheck struct {
	Disponible bool   `json:"disponible"`
	Motivo     string `json:"motivo,omitempty"`
	HoraInicio string `json:"horaInicio,omitempty"`
	HoraFin    string `json:"horaFin,omitempty"`
}
