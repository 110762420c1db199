package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	// Canchas
	ListCourts(c *ginext.Context)
	GetCourt(c *ginext.Context)
	CreateCourt(c *ginext.Context)
	UpdateCourt(c *ginext.Context)
	DeleteCourt(c *ginext.Context)
	SetPriceConfig(c *ginext.Context)
	ListPriceConfigs(c *ginext.Context)

	// Disponibilidad
	GetDaySchedule(c *ginext.Context)
	VerifySlot(c *ginext.Context)

	// Reservas
	CreateReservation(c *ginext.Context)
	ListReservations(c *ginext.Context)
	GetReservation(c *ginext.Context)
	UpdateReservation(c *ginext.Context)
	UpdateReservationStatus(c *ginext.Context)
	CancelReservation(c *ginext.Context)
	RecordPayment(c *ginext.Context)

	// Bloqueos
	CreateBlock(c *ginext.Context)
	ListBlocks(c *ginext.Context)
	GetBlock(c *ginext.Context)
	UpdateBlock(c *ginext.Context)
	DeleteBlock(c *ginext.Context)

	// Auth y usuarios
	Login(c *ginext.Context)
	Me(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	GetUser(c *ginext.Context)
	UpdateUser(c *ginext.Context)
	DeleteUser(c *ginext.Context)
}

// InitRouter wires the API. Public endpoints cover the client-facing flow;
// staff endpoints require a token; admin endpoints additionally require the
// ADMIN role.
func InitRouter(mode string, h Handler, authn, admin ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api/v1")
	{
		// Canchas
		api.GET("/canchas", h.ListCourts)
		api.GET("/canchas/:id", h.GetCourt)
		api.POST("/canchas", authn, admin, h.CreateCourt)
		api.PUT("/canchas/:id", authn, admin, h.UpdateCourt)
		api.DELETE("/canchas/:id", authn, admin, h.DeleteCourt)
		api.POST("/canchas/:id/configuracion", authn, admin, h.SetPriceConfig)
		api.GET("/canchas/:id/configuraciones", authn, admin, h.ListPriceConfigs)

		// Disponibilidad
		api.GET("/disponibilidad/verificar", h.VerifySlot)
		api.GET("/disponibilidad/:canchaId/:fecha", h.GetDaySchedule)

		// Reservas
		api.POST("/reservas", h.CreateReservation)
		api.GET("/reservas", authn, h.ListReservations)
		api.GET("/reservas/:id", authn, h.GetReservation)
		api.PUT("/reservas/:id", authn, admin, h.UpdateReservation)
		api.PATCH("/reservas/:id/estado", authn, h.UpdateReservationStatus)
		api.DELETE("/reservas/:id", authn, h.CancelReservation)
		api.POST("/reservas/:id/pago", authn, h.RecordPayment)

		// Bloqueos
		api.POST("/bloqueos", authn, admin, h.CreateBlock)
		api.GET("/bloqueos", authn, h.ListBlocks)
		api.GET("/bloqueos/:id", authn, h.GetBlock)
		api.PUT("/bloqueos/:id", authn, admin, h.UpdateBlock)
		api.DELETE("/bloqueos/:id", authn, admin, h.DeleteBlock)

		// Auth y usuarios
		api.POST("/auth/login", h.Login)
		api.GET("/auth/me", authn, h.Me)
		api.POST("/usuarios", authn, admin, h.CreateUser)
		api.GET("/usuarios", authn, admin, h.ListUsers)
		api.GET("/usuarios/:id", authn, admin, h.GetUser)
		api.PUT("/usuarios/:id", authn, admin, h.UpdateUser)
		api.DELETE("/usuarios/:id", authn, admin, h.DeleteUser)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.GET("/metrics", func(c *ginext.Context) {
		promhttp.Handler().ServeHTTP(c.Writer, c.Request)
	})

	return router
}
