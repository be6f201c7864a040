package dto

import "time"

// StockEntryRequest body para registrar una entrada de stock.
type StockEntryRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,min=1"`
	Reason    string `json:"reason"`
}

// StockExitRequest body para registrar una salida de stock.
type StockExitRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,min=1"`
	Reason    string `json:"reason"`
}

// StockAdjustRequest body para ajustar el stock a un valor final.
type StockAdjustRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	NewStock  int64  `json:"new_stock" validate:"min=0"`
	Reason    string `json:"reason"`
}

// MovementResponse salida de un movimiento del historial.
type MovementResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Type        string    `json:"type"`
	Quantity    int64     `json:"quantity"`
	StockBefore int64     `json:"stock_before"`
	StockAfter  int64     `json:"stock_after"`
	Reason      string    `json:"reason"`
	Date        time.Time `json:"date"`
}

// MovementListResponse historial de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}
