package bolt

import (
	"time"

	bbolt "go.etcd.io/bbolt"

	"github.com/tu-usuario/fiado-api/internal/domain"
	"github.com/tu-usuario/fiado-api/internal/domain/entity"
	"github.com/tu-usuario/fiado-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación de StockMovementRepository sobre bbolt.
// El historial es append-only: no hay Update ni Delete individual.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador.
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create agrega el movimiento al final del historial. El tipo tiene que ser
// uno de los tres conocidos; el historial nunca admite variantes libres.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	if !entity.ValidMovementType(movement.Type) {
		return domain.ErrInvalidInput
	}
	return r.q.Update(func(tx *bbolt.Tx) error {
		list, err := loadList[entity.StockMovement](tx, bucketMovements)
		if err != nil {
			return err
		}
		list = append(list, *movement)
		return saveList(tx, bucketMovements, list)
	})
}

// List devuelve el historial completo en orden de registro.
func (r *StockMovementRepo) List() ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	err := r.q.View(func(tx *bbolt.Tx) error {
		list, err := loadList[entity.StockMovement](tx, bucketMovements)
		if err != nil {
			return err
		}
		out = make([]*entity.StockMovement, 0, len(list))
		for i := range list {
			m := list[i]
			out = append(out, &m)
		}
		return nil
	})
	return out, err
}

// ListByProduct devuelve los movimientos de un producto en orden de registro.
func (r *StockMovementRepo) ListByProduct(productID string) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	err := r.q.View(func(tx *bbolt.Tx) error {
		list, err := loadList[entity.StockMovement](tx, bucketMovements)
		if err != nil {
			return err
		}
		out = make([]*entity.StockMovement, 0)
		for i := range list {
			if list[i].ProductID == productID {
				m := list[i]
				out = append(out, &m)
			}
		}
		return nil
	})
	return out, err
}

// PruneBefore elimina en bloque los movimientos anteriores a la fecha de
// corte (política de retención). Devuelve cuántos borró.
func (r *StockMovementRepo) PruneBefore(cutoff time.Time) (int, error) {
	removed := 0
	err := r.q.Update(func(tx *bbolt.Tx) error {
		list, err := loadList[entity.StockMovement](tx, bucketMovements)
		if err != nil {
			return err
		}
		kept := list[:0]
		for _, m := range list {
			if m.Date.Before(cutoff) {
				removed++
				continue
			}
			kept = append(kept, m)
		}
		if removed == 0 {
			return nil
		}
		return saveList(tx, bucketMovements, kept)
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}
