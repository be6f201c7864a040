package ledger

import (
	"github.com/tu-usuario/fiado-api/internal/application/dto"
	"github.com/tu-usuario/fiado-api/internal/domain"
	"github.com/tu-usuario/fiado-api/internal/domain/entity"
	domledger "github.com/tu-usuario/fiado-api/internal/domain/ledger"
	"github.com/tu-usuario/fiado-api/internal/domain/repository"
)

// LedgerUseCase consultas de saldos y deudores. Lee las colecciones y
// delega el cálculo a las funciones puras del dominio.
type LedgerUseCase struct {
	customerRepo repository.CustomerRepository
	purchaseRepo repository.PurchaseRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(customerRepo repository.CustomerRepository, purchaseRepo repository.PurchaseRepository) *LedgerUseCase {
	return &LedgerUseCase{customerRepo: customerRepo, purchaseRepo: purchaseRepo}
}

// RankDebtors devuelve los clientes con deuda pendiente, de mayor a menor.
func (uc *LedgerUseCase) RankDebtors() (*dto.DebtorListResponse, error) {
	customers, err := uc.customerRepo.List()
	if err != nil {
		return nil, err
	}
	purchases, err := uc.purchaseRepo.List()
	if err != nil {
		return nil, err
	}
	debtors := domledger.RankDebtors(deref(customers), derefPurchases(purchases))
	items := make([]dto.DebtorResponse, 0, len(debtors))
	for _, d := range debtors {
		items = append(items, dto.DebtorResponse{
			Customer: dto.CustomerResponse{
				ID:           d.Customer.ID,
				Name:         d.Customer.Name,
				Phone:        d.Customer.Phone,
				RegisteredAt: d.Customer.RegisteredAt,
			},
			AmountOwed: d.AmountOwed,
		})
	}
	return &dto.DebtorListResponse{Items: items, Total: len(items)}, nil
}

// CustomerStatement devuelve el estado de cuenta de un cliente: compras y
// saldo pendiente.
func (uc *LedgerUseCase) CustomerStatement(customerID string) (*dto.CustomerStatementResponse, error) {
	customer, err := uc.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	purchases, err := uc.purchaseRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	balance := domledger.OutstandingBalance(derefPurchases(purchases))
	return &dto.CustomerStatementResponse{
		Customer: dto.CustomerResponse{
			ID:           customer.ID,
			Name:         customer.Name,
			Phone:        customer.Phone,
			RegisteredAt: customer.RegisteredAt,
		},
		Purchases: toPurchaseListResponse(purchases).Items,
		Balance:   balance,
	}, nil
}

func deref(list []*entity.Customer) []entity.Customer {
	out := make([]entity.Customer, 0, len(list))
	for _, c := range list {
		out = append(out, *c)
	}
	return out
}

func derefPurchases(list []*entity.Purchase) []entity.Purchase {
	out := make([]entity.Purchase, 0, len(list))
	for _, p := range list {
		out = append(out, *p)
	}
	return out
}
