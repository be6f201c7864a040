package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MinStockDefault umbral de stock bajo cuando el producto no define uno propio.
// Se normaliza al crear el producto para eliminar la ambigüedad cero-vs-ausente.
const MinStockDefault = 5

// Product representa un producto del catálogo del comerciante.
// Stock es opcional: nil significa "sin control de stock". Cuando está presente,
// solo el ajustador de inventario puede modificarlo (cada cambio deja un StockMovement).
type Product struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Category     string           `json:"category,omitempty"`
	UnitPrice    decimal.Decimal  `json:"unit_price"`
	BoxPrice     *decimal.Decimal `json:"box_price,omitempty"`
	UnitWeight   *decimal.Decimal `json:"unit_weight,omitempty"` // kg por unidad
	UnitsPerBox  *int64           `json:"units_per_box,omitempty"`
	Stock        *int64           `json:"stock,omitempty"`
	MinStock     int64            `json:"min_stock"`
	RegisteredAt time.Time        `json:"registered_at"`
}

// TracksStock indica si el producto controla stock.
func (p *Product) TracksStock() bool {
	return p.Stock != nil
}

// StockOrZero devuelve el stock actual tratando nil como 0.
func (p *Product) StockOrZero() int64 {
	if p.Stock == nil {
		return 0
	}
	return *p.Stock
}
