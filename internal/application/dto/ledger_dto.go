package dto

import "github.com/shopspring/decimal"

// DebtorResponse una entrada del ranking de deudores.
type DebtorResponse struct {
	Customer   CustomerResponse `json:"customer"`
	AmountOwed decimal.Decimal  `json:"amount_owed"`
}

// DebtorListResponse ranking de deudores, de mayor a menor deuda.
type DebtorListResponse struct {
	Items []DebtorResponse `json:"items"`
	Total int              `json:"total"`
}

// CustomerStatementResponse estado de cuenta de un cliente: sus compras
// y el saldo pendiente.
type CustomerStatementResponse struct {
	Customer  CustomerResponse   `json:"customer"`
	Purchases []PurchaseResponse `json:"purchases"`
	Balance   decimal.Decimal    `json:"balance"`
}
