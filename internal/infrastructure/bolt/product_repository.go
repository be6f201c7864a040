package bolt

import (
	"strings"

	bbolt "go.etcd.io/bbolt"

	"github.com/tu-usuario/fiado-api/internal/domain"
	"github.com/tu-usuario/fiado-api/internal/domain/entity"
	"github.com/tu-usuario/fiado-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre bbolt (usable con DB o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create agrega el producto al final de la lista.
func (r *ProductRepo) Create(product *entity.Product) error {
	return r.q.Update(func(tx *bbolt.Tx) error {
		list, err := loadList[entity.Product](tx, bucketProducts)
		if err != nil {
			return err
		}
		for _, p := range list {
			if p.ID == product.ID {
				return domain.ErrDuplicate
			}
		}
		list = append(list, *product)
		return saveList(tx, bucketProducts, list)
	})
}

// GetByID obtiene un producto por ID. Ausente → (nil, nil).
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	var found *entity.Product
	err := r.q.View(func(tx *bbolt.Tx) error {
		list, err := loadList[entity.Product](tx, bucketProducts)
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

// GetByName busca un producto por nombre exacto (sin distinguir mayúsculas).
func (r *ProductRepo) GetByName(name string) (*entity.Product, error) {
	var found *entity.Product
	err := r.q.View(func(tx *bbolt.Tx) error {
		list, err := loadList[entity.Product](tx, bucketProducts)
		if err != nil {
			return err
		}
		for i := range list {
			if strings.EqualFold(list[i].Name, name) {
				p := list[i]
				found = &p
				return nil
			}
		}
		return nil
	})
	return found, err
}

// List devuelve todos los productos en orden de registro.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	var out []*entity.Product
	err := r.q.View(func(tx *bbolt.Tx) error {
		list, err := loadList[entity.Product](tx, bucketProducts)
		if err != nil {
			return err
		}
		out = make([]*entity.Product, 0, len(list))
		for i := range list {
			p := list[i]
			out = append(out, &p)
		}
		return nil
	})
	return out, err
}

// Update reemplaza el producto con el mismo ID. El campo Stock se preserva
// tal como está en el almacén: solo UpdateStock puede cambiarlo.
func (r *ProductRepo) Update(product *entity.Product) error {
	return r.q.Update(func(tx *bbolt.Tx) error {
		list, err := loadList[entity.Product](tx, bucketProducts)
		if err != nil {
			return err
		}
		for i := range list {
			if list[i].ID == product.ID {
				updated := *product
				updated.Stock = list[i].Stock
				list[i] = updated
				return saveList(tx, bucketProducts, list)
			}
		}
		return domain.ErrNotFound
	})
}

// UpdateStock escribe el nuevo valor de stock. Único camino que muta Stock;
// el ajustador de inventario lo invoca junto con el alta del movimiento,
// dentro de la misma transacción.
func (r *ProductRepo) UpdateStock(productID string, stock int64) error {
	return r.q.Update(func(tx *bbolt.Tx) error {
		list, err := loadList[entity.Product](tx, bucketProducts)
		if err != nil {
			return err
		}
		for i := range list {
			if list[i].ID == productID {
				s := stock
				list[i].Stock = &s
				return saveList(tx, bucketProducts, list)
			}
		}
		return domain.ErrNotFound
	})
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	return r.q.Update(func(tx *bbolt.Tx) error {
		list, err := loadList[entity.Product](tx, bucketProducts)
		if err != nil {
			return err
		}
		for i := range list {
			if list[i].ID == id {
				list = append(list[:i], list[i+1:]...)
				return saveList(tx, bucketProducts, list)
			}
		}
		return domain.ErrNotFound
	})
}
