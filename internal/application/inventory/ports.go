package inventory

import (
	"context"

	"github.com/tu-usuario/fiado-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción del almacén,
// pasando repositorios atados a esa transacción. Garantiza que el stock
// nuevo y su registro de auditoría se escriban juntos o no se escriban.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}
