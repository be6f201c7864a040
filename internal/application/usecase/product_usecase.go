package usecase

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/fiado-api/internal/application/dto"
	"github.com/tu-usuario/fiado-api/internal/domain"
	"github.com/tu-usuario/fiado-api/internal/domain/entity"
	"github.com/tu-usuario/fiado-api/internal/domain/inventory"
	"github.com/tu-usuario/fiado-api/internal/domain/repository"
	"github.com/tu-usuario/fiado-api/pkg/identity"
)

// ProductUseCase casos de uso CRUD para productos. El Stock se maneja solo
// vía movimientos de inventario; aquí únicamente se fija el valor inicial.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto. MinStock ausente toma el valor por defecto;
// InitialStock nil deja el producto sin control de stock.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	minStock := int64(entity.MinStockDefault)
	if in.MinStock != nil && *in.MinStock > 0 {
		minStock = *in.MinStock
	}
	product := &entity.Product{
		ID:           identity.New(),
		Name:         name,
		Category:     strings.TrimSpace(in.Category),
		UnitPrice:    in.UnitPrice,
		BoxPrice:     in.BoxPrice,
		UnitWeight:   in.UnitWeight,
		UnitsPerBox:  in.UnitsPerBox,
		Stock:        in.InitialStock,
		MinStock:     minStock,
		RegisteredAt: time.Now(),
	}
	if in.InitialStock != nil && *in.InitialStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. No permite modificar Stock (se maneja vía
// movimientos); renombrar no reescribe compras históricas.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = name
	}
	if in.Category != nil {
		product.Category = strings.TrimSpace(*in.Category)
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.UnitPrice = *in.UnitPrice
	}
	if in.BoxPrice != nil {
		product.BoxPrice = in.BoxPrice
	}
	if in.UnitWeight != nil {
		product.UnitWeight = in.UnitWeight
	}
	if in.UnitsPerBox != nil {
		product.UnitsPerBox = in.UnitsPerBox
	}
	if in.MinStock != nil {
		if *in.MinStock <= 0 {
			return nil, domain.ErrInvalidInput
		}
		product.MinStock = *in.MinStock
	}
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	// Releer: Update preserva el Stock almacenado.
	updated, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(updated), nil
}

// List lista todos los productos en orden de registro.
func (uc *ProductUseCase) List() (*dto.ProductListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Category:     p.Category,
		UnitPrice:    p.UnitPrice,
		BoxPrice:     p.BoxPrice,
		UnitWeight:   p.UnitWeight,
		UnitsPerBox:  p.UnitsPerBox,
		Stock:        p.Stock,
		MinStock:     p.MinStock,
		Status:       inventory.Status(p),
		RegisteredAt: p.RegisteredAt,
	}
}
