package repository

import (
	"time"

	"github.com/tu-usuario/fiado-api/internal/domain/entity"
)

// StockMovementRepository define el puerto de persistencia para el historial
// de movimientos (DIP). Append-only: no hay Update ni Delete individual;
// la única eliminación es la poda en bloque por retención.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	List() ([]*entity.StockMovement, error)
	ListByProduct(productID string) ([]*entity.StockMovement, error)
	// PruneBefore elimina los movimientos anteriores a la fecha y devuelve cuántos borró.
	PruneBefore(cutoff time.Time) (int, error)
}
