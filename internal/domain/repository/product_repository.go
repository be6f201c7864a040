package repository

import "github.com/tu-usuario/fiado-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// UpdateStock existe aparte de Update para que el ajustador de inventario
// sea el único camino que toca el campo Stock.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(productID string, stock int64) error
	Delete(id string) error
}
