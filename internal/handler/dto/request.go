package dto

type CreateCourtRequest struct {
	Nombre          string   `json:"nombre" binding:"required"`
	Tipo            string   `json:"tipo" binding:"required"`
	Descripcion     string   `json:"descripcion"`
	CapacidadMaxima *int     `json:"capacidadMaxima"`
	DiasOperacion   []string `json:"diasOperacion" binding:"required"`
	HoraApertura    string   `json:"horaApertura" binding:"required"`
	HoraCierre      string   `json:"horaCierre" binding:"required"`
	Orden           int      `json:"orden"`
}

type UpdateCourtRequest struct {
	Nombre          *string  `json:"nombre"`
	Descripcion     *string  `json:"descripcion"`
	CapacidadMaxima *int     `json:"capacidadMaxima"`
	DiasOperacion   []string `json:"diasOperacion"`
	HoraApertura    *string  `json:"horaApertura"`
	HoraCierre      *string  `json:"horaCierre"`
	Orden           *int     `json:"orden"`
	Activa          *bool    `json:"activa"`
}

type PriceConfigRequest struct {
	PrecioHora1          int64  `json:"precioHora1"`
	PrecioHora2          int64  `json:"precioHora2"`
	PrecioHora3          int64  `json:"precioHora3"`
	TieneHappyHour       bool   `json:"tieneHappyHour"`
	HappyHourInicio      string `json:"happyHourInicio"`
	HappyHourFin         string `json:"happyHourFin"`
	PrecioHora2HappyHour int64  `json:"precioHora2HappyHour"`

	PrecioPersona1Circuito  int64 `json:"precioPersona1Circuito"`
	PrecioPersona2Circuitos int64 `json:"precioPersona2Circuitos"`
}

type CreateReservationRequest struct {
	CanchaID          string `json:"canchaId" binding:"required"`
	Fecha             string `json:"fecha" binding:"required"`
	HoraInicio        string `json:"horaInicio" binding:"required"`
	DuracionHoras     int    `json:"duracionHoras" binding:"required"`
	NombreCliente     string `json:"nombreCliente" binding:"required"`
	EmailCliente      string `json:"emailCliente" binding:"required"`
	TelefonoCliente   string `json:"telefonoCliente" binding:"required"`
	CantidadPersonas  int    `json:"cantidadPersonas"`
	CantidadCircuitos int    `json:"cantidadCircuitos"`
	Notas             string `json:"notas"`
}

type UpdateReservationRequest struct {
	CanchaID          *string `json:"canchaId"`
	Fecha             *string `json:"fecha"`
	HoraInicio        *string `json:"horaInicio"`
	DuracionHoras     *int    `json:"duracionHoras"`
	CantidadPersonas  *int    `json:"cantidadPersonas"`
	CantidadCircuitos *int    `json:"cantidadCircuitos"`
	NombreCliente     *string `json:"nombreCliente"`
	EmailCliente      *string `json:"emailCliente"`
	TelefonoCliente   *string `json:"telefonoCliente"`
	Notas             *string `json:"notas"`
}

type UpdateStatusRequest struct {
	Estado string `json:"estado" binding:"required"`
}

type PaymentRequest struct {
	MetodoPago *string `json:"metodoPago"`
	PagoID     *string `json:"pagoId"`
}

type CreateBlockRequest struct {
	CanchaID   string `json:"canchaId" binding:"required"`
	Fecha      string `json:"fecha" binding:"required"`
	HoraInicio string `json:"horaInicio" binding:"required"`
	HoraFin    string `json:"horaFin" binding:"required"`
	Motivo     string `json:"motivo" binding:"required"`
}

type UpdateBlockRequest struct {
	Fecha      *string `json:"fecha"`
	HoraInicio *string `json:"horaInicio"`
	HoraFin    *string `json:"horaFin"`
	Motivo     *string `json:"motivo"`
	Activo     *bool   `json:"activo"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Nombre   string `json:"nombre" binding:"required"`
	Role     string `json:"role"`
}

type UpdateUserRequest struct {
	Nombre   *string `json:"nombre"`
	Role     *string `json:"role"`
	Password *string `json:"password"`
	Activo   *bool   `json:"activo"`
}
