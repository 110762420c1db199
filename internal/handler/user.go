package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/santiagoprado21/southpark-reservas/internal/domain"
	"github.com/santiagoprado21/southpark-reservas/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	user, token, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.LoginData{Usuario: user, Token: token}))
}

// Me returns the authenticated account, resolved from the token claims the
// auth middleware stored in the context.
func (h *Handler) Me(c *ginext.Context) {
	userID := c.GetString("userId")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, dto.Error("token requerido"))
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(user))
}

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	input := domain.CreateUserInput{
		Email:    req.Email,
		Password: req.Password,
		Nombre:   req.Nombre,
		Role:     domain.Role(req.Role),
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Message("usuario creado", user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	filter := domain.UserFilter{
		Role: domain.Role(c.Query("role")),
	}
	if raw := c.Query("activo"); raw != "" {
		activo, err := strconv.ParseBool(raw)
		if err != nil {
			h.badRequest(c, "activo debe ser true o false")
			return
		}
		filter.Activo = &activo
	}

	users, err := h.userService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if users == nil {
		users = []*domain.User{}
	}

	c.JSON(http.StatusOK, dto.OK(users))
}

func (h *Handler) GetUser(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		h.badRequest(c, "id de usuario inválido")
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(user))
}

func (h *Handler) UpdateUser(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		h.badRequest(c, "id de usuario inválido")
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	input := domain.UpdateUserInput{
		Nombre:   req.Nombre,
		Password: req.Password,
		Activo:   req.Activo,
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		input.Role = &role
	}

	user, err := h.userService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Message("usuario actualizado", user))
}

func (h *Handler) DeleteUser(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		h.badRequest(c, "id de usuario inválido")
		return
	}

	if err := h.userService.Deactivate(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Message("usuario desactivado", nil))
}
