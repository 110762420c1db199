package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/santiagoprado21/southpark-reservas/internal/domain"
	"github.com/santiagoprado21/southpark-reservas/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) ListCourts(c *ginext.Context) {
	filter := domain.CourtFilter{
		Tipo: domain.CourtType(c.Query("tipo")),
	}
	if raw := c.Query("activa"); raw != "" {
		activa, err := strconv.ParseBool(raw)
		if err != nil {
			h.badRequest(c, "activa debe ser true o false")
			return
		}
		filter.Activa = &activa
	}

	courts, err := h.courtService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if courts == nil {
		courts = []*domain.Court{}
	}

	c.JSON(http.StatusOK, dto.OK(courts))
}

func (h *Handler) GetCourt(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		h.badRequest(c, "id de cancha inválido")
		return
	}

	court, err := h.courtService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(court))
}

func (h *Handler) CreateCourt(c *ginext.Context) {
	var req dto.CreateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	input := domain.CreateCourtInput{
		Nombre:          req.Nombre,
		Tipo:            domain.CourtType(req.Tipo),
		Descripcion:     req.Descripcion,
		CapacidadMaxima: req.CapacidadMaxima,
		DiasOperacion:   req.DiasOperacion,
		HoraApertura:    req.HoraApertura,
		HoraCierre:      req.HoraCierre,
		Orden:           req.Orden,
	}

	court, err := h.courtService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Message("cancha creada", court))
}

func (h *Handler) UpdateCourt(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		h.badRequest(c, "id de cancha inválido")
		return
	}

	var req dto.UpdateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	input := domain.UpdateCourtInput{
		Nombre:          req.Nombre,
		Descripcion:     req.Descripcion,
		CapacidadMaxima: req.CapacidadMaxima,
		DiasOperacion:   req.DiasOperacion,
		HoraApertura:    req.HoraApertura,
		HoraCierre:      req.HoraCierre,
		Orden:           req.Orden,
		Activa:          req.Activa,
	}

	court, err := h.courtService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Message("cancha actualizada", court))
}

func (h *Handler) DeleteCourt(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		h.badRequest(c, "id de cancha inválido")
		return
	}

	if err := h.courtService.Deactivate(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Message("cancha desactivada", nil))
}

func (h *Handler) SetPriceConfig(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		h.badRequest(c, "id de cancha inválido")
		return
	}

	var req dto.PriceConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	input := domain.CreatePriceConfigInput{
		PrecioHora1:          req.PrecioHora1,
		PrecioHora2:          req.PrecioHora2,
		PrecioHora3:          req.PrecioHora3,
		TieneHappyHour:       req.TieneHappyHour,
		HappyHourInicio:      req.HappyHourInicio,
		HappyHourFin:         req.HappyHourFin,
		PrecioHora2HappyHour: req.PrecioHora2HappyHour,

		PrecioPersona1Circuito:  req.PrecioPersona1Circuito,
		PrecioPersona2Circuitos: req.PrecioPersona2Circuitos,
	}

	cfg, err := h.courtService.SetPriceConfig(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Message("configuración de precios activada", cfg))
}

func (h *Handler) ListPriceConfigs(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		h.badRequest(c, "id de cancha inválido")
		return
	}

	configs, err := h.courtService.ListConfigs(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if configs == nil {
		configs = []*domain.PriceConfig{}
	}

	c.JSON(http.StatusOK, dto.OK(configs))
}
