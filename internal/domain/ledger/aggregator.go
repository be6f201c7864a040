// Package ledger contiene los cálculos puros sobre las compras fiadas:
// saldo pendiente de un cliente y ranking de deudores. Sin estado y sin
// efectos: las funciones nunca mutan sus entradas y nunca retornan error;
// la validación ocurre en la frontera de escritura, no aquí.
package ledger

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/fiado-api/internal/domain/entity"
)

// DebtorBalance es una entrada del ranking de deudores.
type DebtorBalance struct {
	Customer   entity.Customer `json:"customer"`
	AmountOwed decimal.Decimal `json:"amount_owed"`
}

// OutstandingBalance suma el TotalValue de las compras no pagadas.
// Lista vacía → 0.
func OutstandingBalance(purchases []entity.Purchase) decimal.Decimal {
	total := decimal.Zero
	for _, p := range purchases {
		if !p.Paid {
			total = total.Add(p.TotalValue)
		}
	}
	return total
}

// RankDebtors devuelve los clientes con saldo pendiente > 0, ordenados de
// mayor a menor deuda. Los empates conservan el orden de entrada de la
// lista de clientes (orden de registro).
func RankDebtors(customers []entity.Customer, purchases []entity.Purchase) []DebtorBalance {
	byCustomer := make(map[string]decimal.Decimal, len(customers))
	for _, p := range purchases {
		if p.Paid {
			continue
		}
		byCustomer[p.CustomerID] = byCustomer[p.CustomerID].Add(p.TotalValue)
	}

	debtors := make([]DebtorBalance, 0, len(customers))
	for _, c := range customers {
		owed, ok := byCustomer[c.ID]
		if !ok || !owed.GreaterThan(decimal.Zero) {
			continue
		}
		debtors = append(debtors, DebtorBalance{Customer: c, AmountOwed: owed})
	}
	sort.SliceStable(debtors, func(i, j int) bool {
		return debtors[i].AmountOwed.GreaterThan(debtors[j].AmountOwed)
	})
	return debtors
}
