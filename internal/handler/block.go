package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/santiagoprado21/southpark-reservas/internal/domain"
	"github.com/santiagoprado21/southpark-reservas/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateBlock(c *ginext.Context) {
	var req dto.CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	input := domain.CreateBlockInput{
		CanchaID:   req.CanchaID,
		Fecha:      req.Fecha,
		HoraInicio: req.HoraInicio,
		HoraFin:    req.HoraFin,
		Motivo:     req.Motivo,
	}

	block, err := h.blockService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Message("bloqueo creado", block))
}

func (h *Handler) ListBlocks(c *ginext.Context) {
	filter := domain.BlockFilter{
		CanchaID: c.Query("canchaId"),
		Fecha:    c.Query("fecha"),
	}
	if raw := c.Query("activo"); raw != "" {
		activo, err := strconv.ParseBool(raw)
		if err != nil {
			h.badRequest(c, "activo debe ser true o false")
			return
		}
		filter.Activo = &activo
	}

	blocks, err := h.blockService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if blocks == nil {
		blocks = []*domain.Block{}
	}

	c.JSON(http.StatusOK, dto.OK(blocks))
}

func (h *Handler) GetBlock(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		h.badRequest(c, "id de bloqueo inválido")
		return
	}

	block, err := h.blockService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(block))
}

func (h *Handler) UpdateBlock(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		h.badRequest(c, "id de bloqueo inválido")
		return
	}

	var req dto.UpdateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	input := domain.UpdateBlockInput{
		Fecha:      req.Fecha,
		HoraInicio: req.HoraInicio,
		HoraFin:    req.HoraFin,
		Motivo:     req.Motivo,
		Activo:     req.Activo,
	}

	block, err := h.blockService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Message("bloqueo actualizado", block))
}

func (h *Handler) DeleteBlock(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		h.badRequest(c, "id de bloqueo inválido")
		return
	}

	block, err := h.blockService.Deactivate(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Message("bloqueo desactivado", block))
}
