package usecase

import (
	"context"

	"github.com/tu-usuario/fiado-api/internal/domain/repository"
)

// CascadeTxRunner ejecuta el borrado de un cliente y la cascada a sus
// compras dentro de una sola transacción del almacén.
type CascadeTxRunner interface {
	RunCascade(ctx context.Context, fn func(
		customerRepo repository.CustomerRepository,
		purchaseRepo repository.PurchaseRepository,
	) error) error
}
