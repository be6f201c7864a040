package bolt

import (
	bbolt "go.etcd.io/bbolt"

	"github.com/tu-usuario/fiado-api/internal/domain"
	"github.com/tu-usuario/fiado-api/internal/domain/entity"
	"github.com/tu-usuario/fiado-api/internal/domain/repository"
)

var (
	_ repository.PurchaseRepository = (*PurchaseRepo)(nil)
	_ repository.ArchiveRepository  = (*ArchiveRepo)(nil)
)

// PurchaseRepo implementación de PurchaseRepository sobre bbolt (usable con DB o tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador.
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create agrega la compra al final de la lista.
func (r *PurchaseRepo) Create(purchase *entity.Purchase) error {
	return r.q.Update(func(tx *bbolt.Tx) error {
		list, err := loadList[entity.Purchase](tx, bucketPurchases)
		if err != nil {
			return err
		}
		for _, p := range list {
			if p.ID == purchase.ID {
				return domain.ErrDuplicate
			}
		}
		list = append(list, *purchase)
		return saveList(tx, bucketPurchases, list)
	})
}

// GetByID obtiene una compra por ID. Ausente → (nil, nil).
func (r *PurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	var found *entity.Purchase
	err := r.q.View(func(tx *bbolt.Tx) error {
		list, err := loadList[entity.Purchase](tx, bucketPurchases)
		if err != nil {
			return err
		}
		for i := range list {
			if list[i].ID == id {
				p := list[i]
				found = &p
				return nil
			}
		}
		return nil
	})
	return found, err
}

// List devuelve todas las compras en orden de registro.
func (r *PurchaseRepo) List() ([]*entity.Purchase, error) {
	var out []*entity.Purchase
	err := r.q.View(func(tx *bbolt.Tx) error {
		list, err := loadList[entity.Purchase](tx, bucketPurchases)
		if err != nil {
			return err
		}
		out = make([]*entity.Purchase, 0, len(list))
		for i := range list {
			p := list[i]
			out = append(out, &p)
		}
		return nil
	})
	return out, err
}

// ListByCustomer devuelve las compras de un cliente en orden de registro.
func (r *PurchaseRepo) ListByCustomer(customerID string) ([]*entity.Purchase, error) {
	var out []*entity.Purchase
	err := r.q.View(func(tx *bbolt.Tx) error {
		list, err := loadList[entity.Purchase](tx, bucketPurchases)
		if err != nil {
			return err
		}
		out = make([]*entity.Purchase, 0)
		for i := range list {
			if list[i].CustomerID == customerID {
				p := list[i]
				out = append(out, &p)
			}
		}
		return nil
	})
	return out, err
}

// Update reemplaza la compra con el mismo ID.
func (r *PurchaseRepo) Update(purchase *entity.Purchase) error {
	return r.q.Update(func(tx *bbolt.Tx) error {
		list, err := loadList[entity.Purchase](tx, bucketPurchases)
		if err != nil {
			return err
		}
		for i := range list {
			if list[i].ID == purchase.ID {
				list[i] = *purchase
				return saveList(tx, bucketPurchases, list)
			}
		}
		return domain.ErrNotFound
	})
}

// Delete elimina una compra por ID.
func (r *PurchaseRepo) Delete(id string) error {
	return r.q.Update(func(tx *bbolt.Tx) error {
		list, err := loadList[entity.Purchase](tx, bucketPurchases)
		if err != nil {
			return err
		}
		for i := range list {
			if list[i].ID == id {
				list = append(list[:i], list[i+1:]...)
				return saveList(tx, bucketPurchases, list)
			}
		}
		return domain.ErrNotFound
	})
}

// DeleteByCustomer elimina todas las compras del cliente (cascada al borrar
// el cliente, misma transacción vía TxRunner). Devuelve cuántas borró.
func (r *PurchaseRepo) DeleteByCustomer(customerID string) (int, error) {
	removed := 0
	err := r.q.Update(func(tx *bbolt.Tx) error {
		list, err := loadList[entity.Purchase](tx, bucketPurchases)
		if err != nil {
			return err
		}
		kept := list[:0]
		for _, p := range list {
			if p.CustomerID == customerID {
				removed++
				continue
			}
			kept = append(kept, p)
		}
		if removed == 0 {
			return nil
		}
		return saveList(tx, bucketPurchases, kept)
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// ArchiveRepo guarda las compras pagadas que la limpieza mueve aparte.
type ArchiveRepo struct {
	q Querier
}

// NewArchiveRepository construye el adaptador.
func NewArchiveRepository(q Querier) *ArchiveRepo {
	return &ArchiveRepo{q: q}
}

// Append agrega compras al final del archivo histórico.
func (r *ArchiveRepo) Append(purchases []*entity.Purchase) error {
	if len(purchases) == 0 {
		return nil
	}
	return r.q.Update(func(tx *bbolt.Tx) error {
		list, err := loadList[entity.Purchase](tx, bucketArchive)
		if err != nil {
			return err
		}
		for _, p := range purchases {
			list = append(list, *p)
		}
		return saveList(tx, bucketArchive, list)
	})
}

// List devuelve el archivo histórico completo.
func (r *ArchiveRepo) List() ([]*entity.Purchase, error) {
	var out []*entity.Purchase
	err := r.q.View(func(tx *bbolt.Tx) error {
		list, err := loadList[entity.Purchase](tx, bucketArchive)
		if err != nil {
			return err
		}
		out = make([]*entity.Purchase, 0, len(list))
		for i := range list {
			p := list[i]
			out = append(out, &p)
		}
		return nil
	})
	return out, err
}
