package ledger

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/fiado-api/internal/application/dto"
	"github.com/tu-usuario/fiado-api/internal/domain"
	"github.com/tu-usuario/fiado-api/internal/domain/entity"
	"github.com/tu-usuario/fiado-api/internal/domain/repository"
	"github.com/tu-usuario/fiado-api/pkg/identity"
)

// PurchaseUseCase registra y administra las compras fiadas. Los subtotales
// y el total se recalculan siempre del lado del servidor; el descuento de
// stock de productos controlados ocurre en la misma transacción del alta.
type PurchaseUseCase struct {
	txRunner     PurchaseTxRunner
	purchaseRepo repository.PurchaseRepository
	customerRepo repository.CustomerRepository
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(
	txRunner PurchaseTxRunner,
	purchaseRepo repository.PurchaseRepository,
	customerRepo repository.CustomerRepository,
) *PurchaseUseCase {
	return &PurchaseUseCase{
		txRunner:     txRunner,
		purchaseRepo: purchaseRepo,
		customerRepo: customerRepo,
	}
}

// Create registra una compra fiada. Valida cliente e ítems, recalcula los
// montos y descuenta stock de los productos controlados; todo o nada.
func (uc *PurchaseUseCase) Create(ctx context.Context, in dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	if in.CustomerID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if item.SaleUnit != "" && !entity.ValidSaleUnit(item.SaleUnit) {
			return nil, domain.ErrInvalidInput
		}
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	purchase := &entity.Purchase{
		ID:         identity.New(),
		CustomerID: in.CustomerID,
		Date:       now,
		Paid:       in.Paid,
		Note:       in.Note,
	}

	err = uc.txRunner.RunPurchase(ctx, func(
		purchaseRepo repository.PurchaseRepository,
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
	) error {
		total := decimal.Zero
		for _, itemIn := range in.Items {
			product, err := productRepo.GetByID(itemIn.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			saleUnit := itemIn.SaleUnit
			if saleUnit == "" {
				saleUnit = entity.SaleUnitUnit
			}
			unitPrice := resolvePrice(product, saleUnit, itemIn.UnitPrice)
			subtotal := unitPrice.Mul(decimal.NewFromInt(itemIn.Quantity))
			purchase.Items = append(purchase.Items, entity.PurchaseItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    itemIn.Quantity,
				SaleUnit:    saleUnit,
				UnitPrice:   unitPrice,
				Subtotal:    subtotal,
			})
			total = total.Add(subtotal)

			// Productos con control de stock: salida en la misma transacción.
			if product.TracksStock() {
				units := itemIn.Quantity
				if saleUnit == entity.SaleUnitBox && product.UnitsPerBox != nil {
					units = itemIn.Quantity * *product.UnitsPerBox
				}
				before := product.StockOrZero()
				if before < units {
					return domain.ErrInsufficientStock
				}
				after := before - units
				if err := productRepo.UpdateStock(product.ID, after); err != nil {
					return err
				}
				mov := &entity.StockMovement{
					ID:          identity.New(),
					ProductID:   product.ID,
					ProductName: product.Name,
					Type:        entity.MovementTypeOut,
					Quantity:    units,
					StockBefore: before,
					StockAfter:  after,
					Reason:      "venta " + purchase.ID,
					Date:        now,
				}
				if err := movRepo.Create(mov); err != nil {
					return err
				}
			}
		}
		purchase.TotalValue = total
		return purchaseRepo.Create(purchase)
	})
	if err != nil {
		return nil, err
	}
	return toPurchaseResponse(purchase), nil
}

// GetByID obtiene una compra por ID. Ausente → (nil, nil).
func (uc *PurchaseUseCase) GetByID(id string) (*dto.PurchaseResponse, error) {
	purchase, err := uc.purchaseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, nil
	}
	return toPurchaseResponse(purchase), nil
}

// List lista todas las compras en orden de registro.
func (uc *PurchaseUseCase) List() (*dto.PurchaseListResponse, error) {
	list, err := uc.purchaseRepo.List()
	if err != nil {
		return nil, err
	}
	return toPurchaseListResponse(list), nil
}

// ListByCustomer lista las compras de un cliente.
func (uc *PurchaseUseCase) ListByCustomer(customerID string) (*dto.PurchaseListResponse, error) {
	list, err := uc.purchaseRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	return toPurchaseListResponse(list), nil
}

// TogglePaid invierte el estado de pago. Es la única mutación permitida
// sobre una compra aparte de la eliminación.
func (uc *PurchaseUseCase) TogglePaid(id string) (*dto.PurchaseResponse, error) {
	purchase, err := uc.purchaseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, domain.ErrNotFound
	}
	purchase.Paid = !purchase.Paid
	if err := uc.purchaseRepo.Update(purchase); err != nil {
		return nil, err
	}
	return toPurchaseResponse(purchase), nil
}

// Delete elimina una compra. No repone stock: el historial de movimientos
// conserva la salida original.
func (uc *PurchaseUseCase) Delete(id string) error {
	return uc.purchaseRepo.Delete(id)
}

// resolvePrice determina el precio unitario de la línea: el enviado por el
// cliente si viene, o el precio vigente del producto según la unidad.
func resolvePrice(product *entity.Product, saleUnit string, override *decimal.Decimal) decimal.Decimal {
	if override != nil && override.GreaterThanOrEqual(decimal.Zero) {
		return *override
	}
	if saleUnit == entity.SaleUnitBox {
		if product.BoxPrice != nil {
			return *product.BoxPrice
		}
		if product.UnitsPerBox != nil {
			return product.UnitPrice.Mul(decimal.NewFromInt(*product.UnitsPerBox))
		}
	}
	return product.UnitPrice
}

func toPurchaseResponse(p *entity.Purchase) *dto.PurchaseResponse {
	if p == nil {
		return nil
	}
	items := make([]dto.PurchaseItemResponse, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, dto.PurchaseItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			SaleUnit:    it.SaleUnit,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		})
	}
	return &dto.PurchaseResponse{
		ID:         p.ID,
		CustomerID: p.CustomerID,
		Items:      items,
		TotalValue: p.TotalValue,
		Date:       p.Date,
		Paid:       p.Paid,
		Note:       p.Note,
	}
}

func toPurchaseListResponse(list []*entity.Purchase) *dto.PurchaseListResponse {
	items := make([]dto.PurchaseResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPurchaseResponse(p))
	}
	return &dto.PurchaseListResponse{Items: items, Total: len(items)}
}
