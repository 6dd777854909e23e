package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
)

// Errores de validación del ajuste de stock. Cada uno se mapea a un mensaje
// distinto para el usuario; el handler nunca los colapsa en un error genérico.
var (
	ErrInvalidAmount     = errors.New("cantidad inválida")
	ErrNonPositiveAmount = errors.New("la cantidad debe ser mayor que cero")
	ErrNegativeTarget    = errors.New("la cantidad objetivo no puede ser negativa")
	ErrInsufficientStock = errors.New("stock insuficiente")
)
