package ledger

import (
	"context"

	"github.com/tu-usuario/fiado-api/internal/domain/repository"
)

// PurchaseTxRunner ejecuta el alta de una compra fiada y el descuento de
// stock de sus productos dentro de una sola transacción del almacén.
type PurchaseTxRunner interface {
	RunPurchase(ctx context.Context, fn func(
		purchaseRepo repository.PurchaseRepository,
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}
