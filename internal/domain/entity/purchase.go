package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades de venta de una línea de compra.
const (
	SaleUnitUnit = "unit" // venta por unidad
	SaleUnitBox  = "box"  // venta por caja
)

// ValidSaleUnit valida la unidad de venta de una línea.
func ValidSaleUnit(s string) bool {
	return s == SaleUnitUnit || s == SaleUnitBox
}

// PurchaseItem es una línea de una compra fiada. ProductName es una copia
// del nombre al momento de la venta: renombrar el producto no reescribe
// compras históricas.
type PurchaseItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	SaleUnit    string          `json:"sale_unit"` // unit | box
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// Purchase representa una compra fiada de un cliente.
// Invariantes: TotalValue == Σ Items[i].Subtotal y cada Subtotal == Quantity × UnitPrice.
// Una compra pagada es inmutable salvo el toggle de Paid y la eliminación.
type Purchase struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	Items      []PurchaseItem  `json:"items"`
	TotalValue decimal.Decimal `json:"total_value"`
	Date       time.Time       `json:"date"`
	Paid       bool            `json:"paid"`
	Note       string          `json:"note,omitempty"`
}
