package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/tu-usuario/fiado-api/internal/application/dto"
	"github.com/tu-usuario/fiado-api/internal/domain"
	"github.com/tu-usuario/fiado-api/internal/domain/repository"
)

// ReceiptUseCase arma el payload de un recibo: perfil del negocio, cliente,
// compra y número de recibo. El perfil se lee y se pasa explícitamente en
// cada llamada; no existe caché global de "datos de la empresa". El render
// (texto, HTML, impresora) es responsabilidad del cliente de la app.
type ReceiptUseCase struct {
	purchaseRepo repository.PurchaseRepository
	customerRepo repository.CustomerRepository
	settingsRepo repository.SettingsRepository
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	purchaseRepo repository.PurchaseRepository,
	customerRepo repository.CustomerRepository,
	settingsRepo repository.SettingsRepository,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		purchaseRepo: purchaseRepo,
		customerRepo: customerRepo,
		settingsRepo: settingsRepo,
	}
}

// Build arma el recibo de una compra.
func (uc *ReceiptUseCase) Build(purchaseID string) (*dto.ReceiptResponse, error) {
	purchase, err := uc.purchaseRepo.GetByID(purchaseID)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, domain.ErrNotFound
	}
	customer, err := uc.customerRepo.GetByID(purchase.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	profile, err := uc.settingsRepo.GetProfile()
	if err != nil {
		return nil, err
	}
	return &dto.ReceiptResponse{
		ReceiptNumber: receiptNumber(purchase.ID, purchase.Date),
		Business:      dto.ProfileResponse{Name: profile.Name, Phone: profile.Phone, Address: profile.Address},
		Customer: dto.CustomerResponse{
			ID:           customer.ID,
			Name:         customer.Name,
			Phone:        customer.Phone,
			RegisteredAt: customer.RegisteredAt,
		},
		Purchase: *toPurchaseResponse(purchase),
		IssuedAt: time.Now(),
	}, nil
}

// receiptNumber deriva un número legible y estable de la compra: fecha más
// el primer segmento del ID. Sin contador persistido.
func receiptNumber(purchaseID string, date time.Time) string {
	short := purchaseID
	if i := strings.IndexByte(purchaseID, '-'); i > 0 {
		short = purchaseID[:i]
	}
	return fmt.Sprintf("REC-%s-%s", date.Format("20060102"), strings.ToUpper(short))
}
