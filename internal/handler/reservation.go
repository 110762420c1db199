package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/santiagoprado21/southpark-reservas/internal/domain"
	"github.com/santiagoprado21/southpark-reservas/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateReservation(c *ginext.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	input := domain.CreateReservationInput{
		CanchaID:          req.CanchaID,
		Fecha:             req.Fecha,
		HoraInicio:        req.HoraInicio,
		DuracionHoras:     req.DuracionHoras,
		NombreCliente:     req.NombreCliente,
		EmailCliente:      req.EmailCliente,
		TelefonoCliente:   req.TelefonoCliente,
		CantidadPersonas:  req.CantidadPersonas,
		CantidadCircuitos: req.CantidadCircuitos,
		Notas:             req.Notas,
	}

	reservation, err := h.reservationService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Message("reserva creada", reservation))
}

func (h *Handler) ListReservations(c *ginext.Context) {
	filter := domain.ReservationFilter{
		CanchaID: c.Query("canchaId"),
		Fecha:    c.Query("fecha"),
		Estado:   domain.ReservationStatus(c.Query("estado")),
		Email:    c.Query("email"),
		Telefono: c.Query("telefono"),
		Page:     queryInt(c, "page", 1),
		Limit:    queryInt(c, "limit", 20),
	}

	reservations, total, err := h.reservationService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	page := dto.ToReservationPage(reservations, normalizePage(filter.Page), normalizeLimit(filter.Limit), total)
	c.JSON(http.StatusOK, dto.OK(page))
}

func (h *Handler) GetReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		h.badRequest(c, "id de reserva inválido")
		return
	}

	reservation, err := h.reservationService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(reservation))
}

func (h *Handler) UpdateReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		h.badRequest(c, "id de reserva inválido")
		return
	}

	var req dto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	input := domain.UpdateReservationInput{
		CanchaID:          req.CanchaID,
		Fecha:             req.Fecha,
		HoraInicio:        req.HoraInicio,
		DuracionHoras:     req.DuracionHoras,
		CantidadPersonas:  req.CantidadPersonas,
		CantidadCircuitos: req.CantidadCircuitos,
		NombreCliente:     req.NombreCliente,
		EmailCliente:      req.EmailCliente,
		TelefonoCliente:   req.TelefonoCliente,
		Notas:             req.Notas,
	}

	reservation, err := h.reservationService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Message("reserva actualizada", reservation))
}

func (h *Handler) UpdateReservationStatus(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		h.badRequest(c, "id de reserva inválido")
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	reservation, err := h.reservationService.UpdateStatus(c.Request.Context(), id, domain.ReservationStatus(req.Estado))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Message("estado actualizado", reservation))
}

func (h *Handler) CancelReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		h.badRequest(c, "id de reserva inválido")
		return
	}

	reservation, err := h.reservationService.Cancel(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Message("reserva cancelada", reservation))
}

func (h *Handler) RecordPayment(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		h.badRequest(c, "id de reserva inválido")
		return
	}

	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	reservation, err := h.reservationService.RecordPayment(c.Request.Context(), id, req.MetodoPago, req.PagoID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Message("pago registrado", reservation))
}

func queryInt(c *ginext.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// normalizePage and normalizeLimit mirror the service defaults so the
// pagination block reports the values actually used.
func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func normalizeLimit(limit int) int {
	if limit < 1 {
		return 20
	}
	if limit > 100 {
		return 100
	}
	return limit
}
