package bolt

import (
	bbolt "go.etcd.io/bbolt"

	"github.com/tu-usuario/fiado-api/internal/domain"
	"github.com/tu-usuario/fiado-api/internal/domain/entity"
	"github.com/tu-usuario/fiado-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository sobre bbolt (usable con DB o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar Store.Querier() o una tx (vía TxRunner).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create agrega el cliente al final de la lista.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	return r.q.Update(func(tx *bbolt.Tx) error {
		list, err := loadList[entity.Customer](tx, bucketCustomers)
		if err != nil {
			return err
		}
		for _, c := range list {
			if c.ID == customer.ID {
				return domain.ErrDuplicate
			}
		}
		list = append(list, *customer)
		return saveList(tx, bucketCustomers, list)
	})
}

// GetByID obtiene un cliente por ID. Ausente → (nil, nil).
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	var found *entity.Customer
	err := r.q.View(func(tx *bbolt.Tx) error {
		list, err := loadList[entity.Customer](tx, bucketCustomers)
		if err != nil {
			return err
		}
		for i := range list {
			if list[i].ID == id {
				c := list[i]
				found = &c
				return nil
			}
		}
		return nil
	})
	return found, err
}

// List devuelve todos los clientes en orden de registro.
func (r *CustomerRepo) List() ([]*entity.Customer, error) {
	var out []*entity.Customer
	err := r.q.View(func(tx *bbolt.Tx) error {
		list, err := loadList[entity.Customer](tx, bucketCustomers)
		if err != nil {
			return err
		}
		out = make([]*entity.Customer, 0, len(list))
		for i := range list {
			c := list[i]
			out = append(out, &c)
		}
		return nil
	})
	return out, err
}

// Update reemplaza el cliente con el mismo ID.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	return r.q.Update(func(tx *bbolt.Tx) error {
		list, err := loadList[entity.Customer](tx, bucketCustomers)
		if err != nil {
			return err
		}
		for i := range list {
			if list[i].ID == customer.ID {
				list[i] = *customer
				return saveList(tx, bucketCustomers, list)
			}
		}
		return domain.ErrNotFound
	})
}

// Delete elimina un cliente por ID.
func (r *CustomerRepo) Delete(id string) error {
	return r.q.Update(func(tx *bbolt.Tx) error {
		list, err := loadList[entity.Customer](tx, bucketCustomers)
		if err != nil {
			return err
		}
		for i := range list {
			if list[i].ID == id {
				list = append(list[:i], list[i+1:]...)
				return saveList(tx, bucketCustomers, list)
			}
		}
		return domain.ErrNotFound
	})
}
