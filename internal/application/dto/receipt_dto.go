package dto

import "time"

// ReceiptResponse payload completo de un recibo: el cliente de la app lo
// renderiza (texto, HTML o impresora); el servidor solo arma los datos.
type ReceiptResponse struct {
	ReceiptNumber string           `json:"receipt_number"`
	Business      ProfileResponse  `json:"business"`
	Customer      CustomerResponse `json:"customer"`
	Purchase      PurchaseResponse `json:"purchase"`
	IssuedAt      time.Time        `json:"issued_at"`
}
