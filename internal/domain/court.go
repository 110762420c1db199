package domain

import "time"

type CourtType string

const (
	CourtTypeBeachVolley CourtType = "VOLEY_PLAYA"
	CourtTypeMiniGolf    CourtType = "MINI_GOLF"
)

func (t CourtType) Valid() bool {
	return t == CourtTypeBeachVolley || t == CourtTypeMiniGolf
}

// Weekday codes as stored in dias_operacion.
const (
	Lunes     = "LUNES"
	Martes    = "MARTES"
	Miercoles = "MIERCOLES"
	Jueves    = "JUEVES"
	Viernes   = "VIERNES"
	Sabado    = "SABADO"
	Domingo   = "DOMINGO"
)

var Weekdays = []string{Lunes, Martes, Miercoles, Jueves, Viernes, Sabado, Domingo}

type Court struct {
	ID              string       `json:"id"`
	Nombre          string       `json:"nombre"`
	Tipo            CourtType    `json:"tipo"`
	Descripcion     string       `json:"descripcion"`
	CapacidadMaxima *int         `json:"capacidadMaxima"`
	DiasOperacion   []string     `json:"diasOperacion"`
	HoraApertura    string       `json:"horaApertura"`
	HoraCierre      string       `json:"horaCierre"`
	Orden           int          `json:"orden"`
	Activa          bool         `json:"activa"`
	Config          *PriceConfig `json:"configuracion,omitempty"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

// PriceConfig is the tariff sheet for one court. Exactly one row per court
// is active at a time; superseded rows are kept as price history.
type PriceConfig struct {
	ID       string `json:"id"`
	CanchaID string `json:"canchaId"`

	// VOLEY_PLAYA: price per booking by elapsed hours.
	PrecioHora1 int64 `json:"precioHora1"`
	PrecioHora2 int64 `json:"precioHora2"`
	PrecioHora3 int64 `json:"precioHora3"`

	TieneHappyHour       bool   `json:"tieneHappyHour"`
	HappyHourInicio      string `json:"happyHourInicio,omitempty"`
	HappyHourFin         string `json:"happyHourFin,omitempty"`
	PrecioHora2HappyHour int64  `json:"precioHora2HappyHour,omitempty"`

	// MINI_GOLF: price per person by circuit count.
	PrecioPersona1Circuito  int64 `json:"precioPersona1Circuito"`
	PrecioPersona2Circuitos int64 `json:"precioPersona2Circuitos"`

	Activa    bool      `json:"activa"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreatePriceConfigInput struct {
	PrecioHora1          int64
	PrecioHora2          int64
	PrecioHora3          int64
	TieneHappyHour       bool
	HappyHourInicio      string
	HappyHourFin         string
	PrecioHora2HappyHour int64

	PrecioPersona1Circuito  int64
	PrecioPersona2Circuitos int64
}

type CourtFilter struct {
	Tipo   CourtType
	Activa *bool
}

type CreateCourtInput struct {
	Nombre          string
	Tipo            CourtType
	Descripcion     string
	CapacidadMaxima *int
	DiasOperacion   []string
	HoraApertura    string
	HoraCierre      string
	Orden           int
}

type UpdateCourtInput struct {
	Nombre          *string
	Descripcion     *string
	CapacidadMaxima *int
	DiasOperacion   []string
	HoraApertura    *string
	HoraCierre      *string
	Orden           *int
	Activa          *bool
}
