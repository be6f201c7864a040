package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. InitialStock nil
// significa "sin control de stock"; MinStock nil toma el valor por defecto.
type CreateProductRequest struct {
	Name         string           `json:"name" validate:"required,min=1,max=200"`
	Category     string           `json:"category"`
	UnitPrice    decimal.Decimal  `json:"unit_price"`
	BoxPrice     *decimal.Decimal `json:"box_price,omitempty"`
	UnitWeight   *decimal.Decimal `json:"unit_weight,omitempty"`
	UnitsPerBox  *int64           `json:"units_per_box,omitempty"`
	InitialStock *int64           `json:"initial_stock,omitempty"`
	MinStock     *int64           `json:"min_stock,omitempty"`
}

// UpdateProductRequest entrada para actualizar un producto (sin Stock:
// el stock solo cambia vía movimientos de inventario).
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category    *string          `json:"category"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
	BoxPrice    *decimal.Decimal `json:"box_price"`
	UnitWeight  *decimal.Decimal `json:"unit_weight"`
	UnitsPerBox *int64           `json:"units_per_box"`
	MinStock    *int64           `json:"min_stock"`
}

// ProductResponse salida de un producto. Status es la clasificación derivada
// del stock: untracked, zeroed, low u ok.
type ProductResponse struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Category     string           `json:"category,omitempty"`
	UnitPrice    decimal.Decimal  `json:"unit_price"`
	BoxPrice     *decimal.Decimal `json:"box_price,omitempty"`
	UnitWeight   *decimal.Decimal `json:"unit_weight,omitempty"`
	UnitsPerBox  *int64           `json:"units_per_box,omitempty"`
	Stock        *int64           `json:"stock,omitempty"`
	MinStock     int64            `json:"min_stock"`
	Status       string           `json:"status"`
	RegisteredAt time.Time        `json:"registered_at"`
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
