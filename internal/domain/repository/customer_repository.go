package repository

import "github.com/tu-usuario/fiado-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer (DIP).
// El almacén trabaja con la lista completa: cada mutación lee, modifica y
// reescribe la colección entera.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	List() ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
}
