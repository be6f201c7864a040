// Package identity genera los identificadores opacos de los registros.
package identity

import "github.com/google/uuid"

// New devuelve un identificador único global. La unicidad es probabilística
// (UUID v4); no hay detección de colisiones.
func New() string {
	return uuid.New().String()
}
