package domain

import "errors"

// Errores de dominio (sin dependencias externas). La capa HTTP los mapea a
// códigos de estado en un único lugar.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrForbidden         = errors.New("fuera del alcance del usuario autenticado")
	ErrMalformedID       = errors.New("identificador con formato inválido")
	ErrValidation        = errors.New("entrada inválida")
	ErrInvalidReference  = errors.New("referencia a un recurso inexistente")
	ErrInvalidCredential = errors.New("credenciales inválidas")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInternal          = errors.New("fallo de persistencia o transporte")
)
