// Package handler exposes the HTTP surface of the booking engine.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/santiagoprado21/southpark-reservas/internal/domain"
	"github.com/santiagoprado21/southpark-reservas/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

type CourtSvc interface {
	Create(ctx context.Context, input domain.CreateCourtInput) (*domain.Court, error)
	GetByID(ctx context.Context, id string) (*domain.Court, error)
	List(ctx context.Context, f domain.CourtFilter) ([]*domain.Court, error)
	Update(ctx context.Context, id string, input domain.UpdateCourtInput) (*domain.Court, error)
	Deactivate(ctx context.Context, id string) error
	SetPriceConfig(ctx context.Context, courtID string, input domain.CreatePriceConfigInput) (*domain.PriceConfig, error)
	ListConfigs(ctx context.Context, courtID string) ([]*domain.PriceConfig, error)
}

type AvailabilitySvc interface {
	DaySchedule(ctx context.Context, courtID, fecha string) (*domain.DaySchedule, error)
	Verify(ctx context.Context, courtID, fecha, horaInicio string, duracionHoras int) (*domain.SlotCheck, error)
}

type ReservationSvc interface {
	Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error)
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	List(ctx context.Context, f domain.ReservationFilter) ([]*domain.Reservation, int, error)
	Update(ctx context.Context, id string, input domain.UpdateReservationInput) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id string, estado domain.ReservationStatus) (*domain.Reservation, error)
	Cancel(ctx context.Context, id string) (*domain.Reservation, error)
	RecordPayment(ctx context.Context, id string, metodoPago, pagoID *string) (*domain.Reservation, error)
}

type BlockSvc interface {
	Create(ctx context.Context, input domain.CreateBlockInput) (*domain.Block, error)
	GetByID(ctx context.Context, id string) (*domain.Block, error)
	List(ctx context.Context, f domain.BlockFilter) ([]*domain.Block, error)
	Update(ctx context.Context, id string, input domain.UpdateBlockInput) (*domain.Block, error)
	Deactivate(ctx context.Context, id string) (*domain.Block, error)
}

type UserSvc interface {
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, f domain.UserFilter) ([]*domain.User, error)
	Update(ctx context.Context, id string, input domain.UpdateUserInput) (*domain.User, error)
	Deactivate(ctx context.Context, id string) error
}

type Handler struct {
	courtService        CourtSvc
	availabilityService AvailabilitySvc
	reservationService  ReservationSvc
	blockService        BlockSvc
	userService         UserSvc
	logger              logger.Logger
}

func NewHandler(
	courtService CourtSvc,
	availabilityService AvailabilitySvc,
	reservationService ReservationSvc,
	blockService BlockSvc,
	userService UserSvc,
	log logger.Logger,
) *Handler {
	return &Handler{
		courtService:        courtService,
		availabilityService: availabilityService,
		reservationService:  reservationService,
		blockService:        blockService,
		userService:         userService,
		logger:              log,
	}
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrCourtNotFound),
		errors.Is(err, domain.ErrReservationNotFound),
		errors.Is(err, domain.ErrBlockNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.Error(err.Error()))

	case errors.Is(err, domain.ErrSlotUnavailable),
		errors.Is(err, domain.ErrBlockOverlap),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrAlreadyCancelled),
		errors.Is(err, domain.ErrReservationFinished),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.Error(err.Error()))

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrNoActiveConfig):
		c.JSON(http.StatusBadRequest, dto.Error(err.Error()))

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.Error(err.Error()))

	case errors.Is(err, domain.ErrUserInactive):
		c.JSON(http.StatusForbidden, dto.Error(err.Error()))

	default:
		h.logger.Error("request failed",
			logger.String("path", c.Request.URL.Path),
			logger.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, dto.Error("error interno del servidor"))
	}
}

func (h *Handler) badRequest(c *ginext.Context, msg string) {
	c.JSON(http.StatusBadRequest, dto.Error(msg))
}
