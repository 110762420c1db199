package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/santiagoprado21/southpark-reservas/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) GetDaySchedule(c *ginext.Context) {
	courtID := c.Param("canchaId")
	if _, err := uuid.Parse(courtID); err != nil {
		h.badRequest(c, "id de cancha inválido")
		return
	}
	fecha := c.Param("fecha")

	day, err := h.availabilityService.DaySchedule(c.Request.Context(), courtID, fecha)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(day))
}

func (h *Handler) VerifySlot(c *ginext.Context) {
	courtID := c.Query("canchaId")
	if _, err := uuid.Parse(courtID); err != nil {
		h.badRequest(c, "id de cancha inválido")
		return
	}

	fecha := c.Query("fecha")
	horaInicio := c.Query("horaInicio")
	if fecha == "" || horaInicio == "" {
		h.badRequest(c, "fecha y horaInicio son requeridos")
		return
	}

	duracion := 1
	if raw := c.Query("duracionHoras"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.badRequest(c, "duracionHoras debe ser un número")
			return
		}
		duracion = parsed
	}

	check, err := h.availabilityService.Verify(c.Request.Context(), courtID, fecha, horaInicio, duracion)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(check))
}
