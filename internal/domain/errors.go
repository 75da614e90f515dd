package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrUserNotFound        = errors.New("usuario no encontrado")
	ErrUsernameTaken       = errors.New("el nombre de usuario ya está registrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrDuplicateDocument   = errors.New("número de documento ya utilizado")
	ErrDocumentOutOfRange  = errors.New("número de documento fuera de los rangos permitidos")
	ErrInvalidRangeBounds  = errors.New("límites de rango inválidos: el inicio debe ser menor que el fin")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
	ErrConflict            = errors.New("conflicto con el estado actual")
)
