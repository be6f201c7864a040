package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseItemRequest línea de una compra fiada. UnitPrice es opcional: si
// falta se toma el precio vigente del producto según la unidad de venta.
type PurchaseItemRequest struct {
	ProductID string           `json:"product_id" validate:"required"`
	Quantity  int64            `json:"quantity" validate:"required,min=1"`
	SaleUnit  string           `json:"sale_unit"` // unit | box (por defecto unit)
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
}

// CreatePurchaseRequest entrada para registrar una compra fiada.
// Subtotales y total se recalculan siempre del lado del servidor.
type CreatePurchaseRequest struct {
	CustomerID string                `json:"customer_id" validate:"required"`
	Items      []PurchaseItemRequest `json:"items" validate:"required,min=1"`
	Note       string                `json:"note"`
	Paid       bool                  `json:"paid"` // ventas de contado entran ya pagadas
}

// PurchaseItemResponse línea de compra en respuestas.
type PurchaseItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	SaleUnit    string          `json:"sale_unit"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// PurchaseResponse salida de una compra.
type PurchaseResponse struct {
	ID         string                 `json:"id"`
	CustomerID string                 `json:"customer_id"`
	Items      []PurchaseItemResponse `json:"items"`
	TotalValue decimal.Decimal        `json:"total_value"`
	Date       time.Time              `json:"date"`
	Paid       bool                   `json:"paid"`
	Note       string                 `json:"note,omitempty"`
}

// PurchaseListResponse lista de compras.
type PurchaseListResponse struct {
	Items []PurchaseResponse `json:"items"`
	Total int                `json:"total"`
}
