package dto

import "github.com/santiagoprado21/southpark-reservas/internal/domain"

// Response is the wire envelope every endpoint answers with.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

func OK(data any) Response {
	return Response{Success: true, Data: data}
}

func Message(msg string, data any) Response {
	return Response{Success: true, Message: msg, Data: data}
}

func Error(msg string) ErrorResponse {
	return ErrorResponse{Success: false, Message: msg}
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type ReservationPage struct {
	Reservas   []*domain.Reservation `json:"reservas"`
	Pagination Pagination            `json:"pagination"`
}

func ToReservationPage(reservas []*domain.Reservation, page, limit, total int) ReservationPage {
	if reservas == nil {
		reservas = []*domain.Reservation{}
	}
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return ReservationPage{
		Reservas: reservas,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}
}

type LoginData struct {
	Usuario *domain.User `json:"usuario"`
	Token   string       `json:"token"`
}
