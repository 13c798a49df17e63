package domain

import "errors"

var (
	// ErrNotFound lo devuelven los repos cuando no hay fila.
	ErrNotFound = errors.New("not found")

	// ErrUnresolvedTimezone: el usuario no tiene timezone (o es inválida).
	// Toda consulta que dependa del instante falla cerrada con este error.
	ErrUnresolvedTimezone = errors.New("timezone not set")

	// ErrNoAvailability: se pidió next-available sin ventanas configuradas.
	ErrNoAvailability = errors.New("no availability configured")

	// ErrInvalidWindow: ventana malformada o de largo cero.
	ErrInvalidWindow = errors.New("invalid availability window")

	// ErrInvalidSnooze: el snooze no apunta a un instante futuro del día local.
	ErrInvalidSnooze = errors.New("invalid snooze target")
)
