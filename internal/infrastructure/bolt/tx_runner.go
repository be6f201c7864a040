package bolt

import (
	"context"

	bbolt "go.etcd.io/bbolt"

	"github.com/tu-usuario/fiado-api/internal/application/inventory"
	"github.com/tu-usuario/fiado-api/internal/application/ledger"
	"github.com/tu-usuario/fiado-api/internal/application/maintenance"
	"github.com/tu-usuario/fiado-api/internal/application/usecase"
	"github.com/tu-usuario/fiado-api/internal/domain/repository"
)

// Ensure TxRunner implements los puertos transaccionales de los casos de uso.
var (
	_ inventory.TxRunner        = (*TxRunner)(nil)
	_ ledger.PurchaseTxRunner   = (*TxRunner)(nil)
	_ usecase.CascadeTxRunner   = (*TxRunner)(nil)
	_ maintenance.CleanTxRunner = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una única transacción bbolt, con los
// repositorios atados a esa transacción. Cierra la ventana de fallo parcial
// del patrón de dos escrituras (stock + auditoría, cliente + compras):
// o se escribe todo o no se escribe nada.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner sobre el almacén.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn con repos de producto y movimientos en una sola transacción
// (ajustes de inventario: stock nuevo + registro de auditoría).
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.run(func(q Querier) error {
		return fn(NewProductRepository(q), NewStockMovementRepository(q))
	})
}

// RunPurchase ejecuta fn con repos de compras, productos y movimientos en una
// sola transacción (alta de compra fiada con descuento de stock).
func (r *TxRunner) RunPurchase(ctx context.Context, fn func(
	purchaseRepo repository.PurchaseRepository,
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.run(func(q Querier) error {
		return fn(NewPurchaseRepository(q), NewProductRepository(q), NewStockMovementRepository(q))
	})
}

// RunCascade ejecuta fn con repos de clientes y compras en una sola
// transacción (borrado de cliente con cascada a sus compras).
func (r *TxRunner) RunCascade(ctx context.Context, fn func(
	customerRepo repository.CustomerRepository,
	purchaseRepo repository.PurchaseRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.run(func(q Querier) error {
		return fn(NewCustomerRepository(q), NewPurchaseRepository(q))
	})
}

// RunClean ejecuta fn con repos de compras, archivo y movimientos en una sola
// transacción (archivado de pagadas + poda de movimientos).
func (r *TxRunner) RunClean(ctx context.Context, fn func(
	purchaseRepo repository.PurchaseRepository,
	archiveRepo repository.ArchiveRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.run(func(q Querier) error {
		return fn(NewPurchaseRepository(q), NewArchiveRepository(q), NewStockMovementRepository(q))
	})
}

// run abre la transacción de escritura; bbolt hace Commit al retornar nil y
// Rollback si fn falla. El error de fn se propaga sin envolver para que los
// sentinelas de dominio lleguen intactos a los handlers.
func (r *TxRunner) run(fn func(q Querier) error) error {
	return r.store.db.Update(func(tx *bbolt.Tx) error {
		return fn(txQuerier{tx: tx})
	})
}
