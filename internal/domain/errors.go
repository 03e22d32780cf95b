package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	// ErrMalformedResponse indica que el cuerpo del proveedor es JSON pero no
	// trae la secuencia `availabilities` esperada.
	ErrMalformedResponse = errors.New("respuesta del proveedor sin la estructura esperada")
)

// UpstreamHTTPError indica un estado HTTP no exitoso del proveedor de
// disponibilidad. Se propaga tal cual al caller; nunca se reintenta.
type UpstreamHTTPError struct {
	StatusCode int
}

func (e *UpstreamHTTPError) Error() string {
	return fmt.Sprintf("el proveedor de disponibilidad devolvió HTTP %d", e.StatusCode)
}
