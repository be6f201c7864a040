package entity

import "time"

// Customer representa un cliente del cuaderno de fiados del comerciante.
// El teléfono es opcional; se usa solo para contacto y recibos.
type Customer struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	RegisteredAt time.Time `json:"registered_at"`
}
