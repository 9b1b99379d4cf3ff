package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrConflict            = errors.New("conflicto con el estado actual")
	ErrAlreadyProcessed    = errors.New("la operación ya fue procesada")
	ErrOperationCanceled   = errors.New("la operación está cancelada")
	ErrTransactionConflict = errors.New("conflicto de transacción, reintentos agotados")
)
