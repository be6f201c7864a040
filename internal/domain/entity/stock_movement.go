package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIn     = "in"     // entrada
	MovementTypeOut    = "out"    // salida
	MovementTypeAdjust = "adjust" // ajuste directo al valor final
)

// ValidMovementType valida el tipo de movimiento.
func ValidMovementType(t string) bool {
	return t == MovementTypeIn || t == MovementTypeOut || t == MovementTypeAdjust
}

// StockMovement es el registro de auditoría de un cambio de stock.
// Append-only: nunca se modifica ni se borra individualmente, solo se poda
// en bloque por la política de retención.
// Invariante: StockAfter == StockBefore + Quantity ("in") o StockBefore - Quantity ("out").
type StockMovement struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Type        string    `json:"type"` // in | out | adjust
	Quantity    int64     `json:"quantity"`
	StockBefore int64     `json:"stock_before"`
	StockAfter  int64     `json:"stock_after"`
	Reason      string    `json:"reason"`
	Date        time.Time `json:"date"`
}
