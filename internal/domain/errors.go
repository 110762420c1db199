package domain

import "errors"

var (
	ErrCourtNotFound       = errors.New("cancha no encontrada")
	ErrReservationNotFound = errors.New("reserva no encontrada")
	ErrBlockNotFound       = errors.New("bloqueo no encontrado")
	ErrUserNotFound        = errors.New("usuario no encontrado")
)

var (
	ErrSlotUnavailable     = errors.New("el horario ya está reservado")
	ErrBlockOverlap        = errors.New("ya existe un bloqueo en ese horario")
	ErrInvalidTransition   = errors.New("transición de estado no permitida")
	ErrAlreadyCancelled    = errors.New("la reserva ya está cancelada")
	ErrReservationFinished = errors.New("no se puede modificar una reserva completada")
)

var (
	ErrNoActiveConfig = errors.New("cancha sin configuración de precios activa")
	ErrEmailTaken     = errors.New("el email ya está registrado")
)

var (
	ErrValidation         = errors.New("datos inválidos")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrUserInactive       = errors.New("usuario desactivado")
)
