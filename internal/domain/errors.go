package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrIntegrity    = errors.New("violación de integridad referencial")
)
