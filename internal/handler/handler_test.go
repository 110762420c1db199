package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/santiagoprado21/southpark-reservas/internal/domain"
	"github.com/santiagoprado21/southpark-reservas/internal/handler/dto"
	hmocks "github.com/santiagoprado21/southpark-reservas/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

type svcMocks struct {
	court        *hmocks.MockCourtSvc
	availability *hmocks.MockAvailabilitySvc
	reservation  *hmocks.MockReservationSvc
	block        *hmocks.MockBlockSvc
	user         *hmocks.MockUserSvc
}

func setupRouter(t *testing.T) (*svcMocks, http.Handler) {
	t.Helper()

	m := &svcMocks{
		court:        hmocks.NewMockCourtSvc(t),
		availability: hmocks.NewMockAvailabilitySvc(t),
		reservation:  hmocks.NewMockReservationSvc(t),
		block:        hmocks.NewMockBlockSvc(t),
		user:         hmocks.NewMockUserSvc(t),
	}

	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)

	h := NewHandler(m.court, m.availability, m.reservation, m.block, m.user, log)

	r := ginext.New("test")
	api := r.Group("/api/v1")
	{
		api.GET("/canchas", h.ListCourts)
		api.POST("/canchas", h.CreateCourt)
		api.GET("/canchas/:id", h.GetCourt)
		api.PUT("/canchas/:id", h.UpdateCourt)
		api.DELETE("/canchas/:id", h.DeleteCourt)
		api.POST("/canchas/:id/configuracion", h.SetPriceConfig)
		api.GET("/canchas/:id/configuraciones", h.ListPriceConfigs)

		api.GET("/disponibilidad/verificar", h.VerifySlot)
		api.GET("/disponibilidad/:canchaId/:fecha", h.GetDaySchedule)

		api.POST("/reservas", h.CreateReservation)
		api.GET("/reservas", h.ListReservations)
		api.GET("/reservas/:id", h.GetReservation)
		api.PUT("/reservas/:id", h.UpdateReservation)
		api.PATCH("/reservas/:id/estado", h.UpdateReservationStatus)
		api.DELETE("/reservas/:id", h.CancelReservation)
		api.POST("/reservas/:id/pago", h.RecordPayment)

		api.POST("/bloqueos", h.CreateBlock)
		api.GET("/bloqueos", h.ListBlocks)
		api.DELETE("/bloqueos/:id", h.DeleteBlock)

		api.POST("/auth/login", h.Login)
		api.GET("/auth/me", func(c *ginext.Context) {
			c.Set("userId", "u1")
			h.Me(c)
		})
		api.POST("/usuarios", h.CreateUser)
	}

	return m, r
}

// envelope mirrors the wire format of every endpoint.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

// --- Canchas ---

func TestHandler_ListCourts(t *testing.T) {
	m, r := setupRouter(t)

	m.court.EXPECT().List(mock.Anything, mock.Anything).Return([]*domain.Court{
		{ID: "c1", Nombre: "Cancha de Voley 1", Tipo: domain.CourtTypeBeachVolley},
	}, nil)

	w, env := doJSON(t, r, http.MethodGet, "/api/v1/canchas?tipo=VOLEY_PLAYA", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	var courts []domain.Court
	require.NoError(t, json.Unmarshal(env.Data, &courts))
	require.Len(t, courts, 1)
	assert.Equal(t, "Cancha de Voley 1", courts[0].Nombre)
}

func TestHandler_ListCourts_EmptyIsArray(t *testing.T) {
	m, r := setupRouter(t)

	m.court.EXPECT().List(mock.Anything, mock.Anything).Return(nil, nil)

	w, env := doJSON(t, r, http.MethodGet, "/api/v1/canchas", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", string(env.Data))
}

func TestHandler_ListCourts_BadActivaFlag(t *testing.T) {
	_, r := setupRouter(t)

	w, env := doJSON(t, r, http.MethodGet, "/api/v1/canchas?activa=quizas", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
}

func TestHandler_GetCourt_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w, env := doJSON(t, r, http.MethodGet, "/api/v1/canchas/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "id de cancha inválido", env.Message)
}

func TestHandler_GetCourt_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.court.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrCourtNotFound)

	w, env := doJSON(t, r, http.MethodGet, "/api/v1/canchas/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
}

func TestHandler_CreateCourt(t *testing.T) {
	m, r := setupRouter(t)

	m.court.EXPECT().Create(mock.Anything, mock.Anything).Return(&domain.Court{
		ID:     uuid.New().String(),
		Nombre: "Cancha de Voley 5",
		Tipo:   domain.CourtTypeBeachVolley,
		Activa: true,
	}, nil)

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/canchas", dto.CreateCourtRequest{
		Nombre:        "Cancha de Voley 5",
		Tipo:          "VOLEY_PLAYA",
		DiasOperacion: []string{"LUNES", "MARTES"},
		HoraApertura:  "16:00",
		HoraCierre:    "00:00",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "cancha creada", env.Message)
}

func TestHandler_CreateCourt_MissingFields(t *testing.T) {
	_, r := setupRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/canchas", map[string]any{"nombre": "Cancha"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SetPriceConfig(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.court.EXPECT().SetPriceConfig(mock.Anything, id, mock.Anything).Return(&domain.PriceConfig{
		ID:          uuid.New().String(),
		CanchaID:    id,
		PrecioHora1: 80000,
		Activa:      true,
	}, nil)

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/canchas/"+id+"/configuracion", dto.PriceConfigRequest{
		PrecioHora1: 80000,
		PrecioHora2: 130000,
		PrecioHora3: 180000,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "configuración de precios activada", env.Message)
}

// --- Disponibilidad ---

func TestHandler_GetDaySchedule(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.availability.EXPECT().DaySchedule(mock.Anything, id, "2027-03-15").Return(&domain.DaySchedule{
		Disponible: true,
		Fecha:      "2027-03-15",
		Horarios: []domain.Slot{
			{Hora: "16:00", Disponible: true},
			{Hora: "17:00", Disponible: false, Motivo: "Reservado"},
		},
	}, nil)

	w, env := doJSON(t, r, http.MethodGet, "/api/v1/disponibilidad/"+id+"/2027-03-15", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var day domain.DaySchedule
	require.NoError(t, json.Unmarshal(env.Data, &day))
	assert.True(t, day.Disponible)
	require.Len(t, day.Horarios, 2)
	assert.Equal(t, "Reservado", day.Horarios[1].Motivo)
}

func TestHandler_VerifySlot(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.availability.EXPECT().Verify(mock.Anything, id, "2027-03-15", "18:00", 2).Return(&domain.SlotCheck{
		Disponible: true,
		HoraInicio: "18:00",
		HoraFin:    "20:00",
	}, nil)

	w, env := doJSON(t, r, http.MethodGet,
		"/api/v1/disponibilidad/verificar?canchaId="+id+"&fecha=2027-03-15&horaInicio=18:00&duracionHoras=2", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var check domain.SlotCheck
	require.NoError(t, json.Unmarshal(env.Data, &check))
	assert.True(t, check.Disponible)
	assert.Equal(t, "20:00", check.HoraFin)
}

func TestHandler_VerifySlot_DefaultsDuration(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.availability.EXPECT().Verify(mock.Anything, id, "2027-03-15", "18:00", 1).Return(&domain.SlotCheck{
		Disponible: true,
		HoraInicio: "18:00",
		HoraFin:    "19:00",
	}, nil)

	w, _ := doJSON(t, r, http.MethodGet,
		"/api/v1/disponibilidad/verificar?canchaId="+id+"&fecha=2027-03-15&horaInicio=18:00", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_VerifySlot_MissingParams(t *testing.T) {
	_, r := setupRouter(t)

	id := uuid.New().String()
	w, _ := doJSON(t, r, http.MethodGet, "/api/v1/disponibilidad/verificar?canchaId="+id, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Reservas ---

func validReservationBody() dto.CreateReservationRequest {
	return dto.CreateReservationRequest{
		CanchaID:         uuid.New().String(),
		Fecha:            "2027-03-15",
		HoraInicio:       "18:00",
		DuracionHoras:    2,
		NombreCliente:    "Carlos Rodríguez",
		EmailCliente:     "carlos@ejemplo.com",
		TelefonoCliente:  "+57 300 111 2222",
		CantidadPersonas: 8,
	}
}

func TestHandler_CreateReservation(t *testing.T) {
	m, r := setupRouter(t)

	m.reservation.EXPECT().Create(mock.Anything, mock.Anything).Return(&domain.Reservation{
		ID:          uuid.New().String(),
		Estado:      domain.ReservationPendiente,
		PrecioTotal: 110000,
		MontoSena:   33000,
	}, nil)

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/reservas", validReservationBody())

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "reserva creada", env.Message)

	var res domain.Reservation
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, int64(33000), res.MontoSena)
}

func TestHandler_CreateReservation_SlotTaken(t *testing.T) {
	m, r := setupRouter(t)

	m.reservation.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrSlotUnavailable)

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/reservas", validReservationBody())

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, env.Success)
}

func TestHandler_CreateReservation_MissingFields(t *testing.T) {
	_, r := setupRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/reservas", map[string]any{"fecha": "2027-03-15"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListReservations_Pagination(t *testing.T) {
	m, r := setupRouter(t)

	m.reservation.EXPECT().List(mock.Anything, mock.Anything).
		Return([]*domain.Reservation{{ID: "r1"}}, 45, nil)

	w, env := doJSON(t, r, http.MethodGet, "/api/v1/reservas?page=2&limit=10", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var page dto.ReservationPage
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Equal(t, 2, page.Pagination.Page)
	assert.Equal(t, 10, page.Pagination.Limit)
	assert.Equal(t, 45, page.Pagination.Total)
	assert.Equal(t, 5, page.Pagination.TotalPages)
}

func TestHandler_UpdateReservationStatus_InvalidTransition(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.reservation.EXPECT().UpdateStatus(mock.Anything, id, domain.ReservationCompletada).
		Return(nil, domain.ErrInvalidTransition)

	w, _ := doJSON(t, r, http.MethodPatch, "/api/v1/reservas/"+id+"/estado",
		dto.UpdateStatusRequest{Estado: "COMPLETADA"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CancelReservation(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.reservation.EXPECT().Cancel(mock.Anything, id).Return(&domain.Reservation{
		ID:     id,
		Estado: domain.ReservationCancelada,
	}, nil)

	w, env := doJSON(t, r, http.MethodDelete, "/api/v1/reservas/"+id, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "reserva cancelada", env.Message)
}

func TestHandler_RecordPayment(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	metodo := "TRANSFERENCIA"
	m.reservation.EXPECT().RecordPayment(mock.Anything, id, &metodo, (*string)(nil)).
		Return(&domain.Reservation{ID: id, Estado: domain.ReservationConfirmada, PagoCompletado: true}, nil)

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/reservas/"+id+"/pago",
		dto.PaymentRequest{MetodoPago: &metodo})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pago registrado", env.Message)
}

func TestHandler_GetReservation_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.reservation.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrReservationNotFound)

	w, _ := doJSON(t, r, http.MethodGet, "/api/v1/reservas/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Bloqueos ---

func TestHandler_CreateBlock(t *testing.T) {
	m, r := setupRouter(t)

	m.block.EXPECT().Create(mock.Anything, mock.Anything).Return(&domain.Block{
		ID:     uuid.New().String(),
		Motivo: "Mantenimiento programado",
		Activo: true,
	}, nil)

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/bloqueos", dto.CreateBlockRequest{
		CanchaID:   uuid.New().String(),
		Fecha:      "2027-03-15",
		HoraInicio: "16:00",
		HoraFin:    "18:00",
		Motivo:     "Mantenimiento programado",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "bloqueo creado", env.Message)
}

func TestHandler_CreateBlock_Overlap(t *testing.T) {
	m, r := setupRouter(t)

	m.block.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrBlockOverlap)

	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/bloqueos", dto.CreateBlockRequest{
		CanchaID:   uuid.New().String(),
		Fecha:      "2027-03-15",
		HoraInicio: "16:00",
		HoraFin:    "18:00",
		Motivo:     "Mantenimiento programado",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_DeleteBlock(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.block.EXPECT().Deactivate(mock.Anything, id).Return(&domain.Block{ID: id, Activo: false}, nil)

	w, env := doJSON(t, r, http.MethodDelete, "/api/v1/bloqueos/"+id, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "bloqueo desactivado", env.Message)
}

// --- Auth y usuarios ---

func TestHandler_Login(t *testing.T) {
	m, r := setupRouter(t)

	user := &domain.User{ID: "u1", Email: "admin@southpark.com", Role: domain.RoleAdmin, Activo: true}
	m.user.EXPECT().Login(mock.Anything, "admin@southpark.com", "admin123").Return(user, "signed-token", nil)

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/auth/login",
		dto.LoginRequest{Email: "admin@southpark.com", Password: "admin123"})

	assert.Equal(t, http.StatusOK, w.Code)

	var data dto.LoginData
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "signed-token", data.Token)
	assert.Equal(t, "admin@southpark.com", data.Usuario.Email)
}

func TestHandler_Login_BadCredentials(t *testing.T) {
	m, r := setupRouter(t)

	m.user.EXPECT().Login(mock.Anything, "admin@southpark.com", "mala").
		Return(nil, "", domain.ErrInvalidCredentials)

	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/auth/login",
		dto.LoginRequest{Email: "admin@southpark.com", Password: "mala"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_Login_InactiveAccount(t *testing.T) {
	m, r := setupRouter(t)

	m.user.EXPECT().Login(mock.Anything, "ex@southpark.com", "admin123").
		Return(nil, "", domain.ErrUserInactive)

	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/auth/login",
		dto.LoginRequest{Email: "ex@southpark.com", Password: "admin123"})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_Me(t *testing.T) {
	m, r := setupRouter(t)

	m.user.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Email: "admin@southpark.com"}, nil)

	w, env := doJSON(t, r, http.MethodGet, "/api/v1/auth/me", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var user domain.User
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, "u1", user.ID)
}

func TestHandler_CreateUser_EmailTaken(t *testing.T) {
	m, r := setupRouter(t)

	m.user.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/usuarios", dto.CreateUserRequest{
		Email:    "admin@southpark.com",
		Password: "secreta1",
		Nombre:   "Otro Admin",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_InternalError(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.reservation.EXPECT().GetByID(mock.Anything, id).Return(nil, assert.AnError)

	w, env := doJSON(t, r, http.MethodGet, "/api/v1/reservas/"+id, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "error interno del servidor", env.Message)
}
