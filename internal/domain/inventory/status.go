// Package inventory contiene los servicios de dominio del inventario.
package inventory

import "github.com/tu-usuario/fiado-api/internal/domain/entity"

// Clasificación derivada del stock de un producto. No se persiste: se
// recalcula en cada lectura y alimenta los badges de la interfaz.
const (
	StatusUntracked = "untracked" // sin control de stock
	StatusZeroed    = "zeroed"    // stock en cero
	StatusLow       = "low"       // 0 < stock <= min_stock
	StatusOK        = "ok"
)

// Status clasifica el stock actual de un producto. Lectura pura, idempotente.
func Status(p *entity.Product) string {
	if p == nil || p.Stock == nil {
		return StatusUntracked
	}
	stock := *p.Stock
	min := p.MinStock
	if min <= 0 {
		min = entity.MinStockDefault
	}
	switch {
	case stock <= 0:
		return StatusZeroed
	case stock <= min:
		return StatusLow
	default:
		return StatusOK
	}
}
