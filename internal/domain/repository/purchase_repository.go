package repository

import "github.com/tu-usuario/fiado-api/internal/domain/entity"

// PurchaseRepository define el puerto de persistencia para Purchase (DIP).
type PurchaseRepository interface {
	Create(purchase *entity.Purchase) error
	GetByID(id string) (*entity.Purchase, error)
	List() ([]*entity.Purchase, error)
	ListByCustomer(customerID string) ([]*entity.Purchase, error)
	Update(purchase *entity.Purchase) error
	Delete(id string) error
	// DeleteByCustomer elimina todas las compras del cliente y devuelve cuántas borró.
	DeleteByCustomer(customerID string) (int, error)
}

// ArchiveRepository guarda las compras pagadas que la limpieza mueve aparte.
type ArchiveRepository interface {
	Append(purchases []*entity.Purchase) error
	List() ([]*entity.Purchase, error)
}
