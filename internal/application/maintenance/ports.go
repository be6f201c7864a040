package maintenance

import (
	"context"

	"github.com/tu-usuario/fiado-api/internal/domain/repository"
)

// CleanTxRunner ejecuta el archivado de compras pagadas y la poda de
// movimientos dentro de una sola transacción del almacén.
type CleanTxRunner interface {
	RunClean(ctx context.Context, fn func(
		purchaseRepo repository.PurchaseRepository,
		archiveRepo repository.ArchiveRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}
