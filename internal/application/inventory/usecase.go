package inventory

import (
	"context"
	"time"

	"github.com/tu-usuario/fiado-api/internal/application/dto"
	"github.com/tu-usuario/fiado-api/internal/domain"
	"github.com/tu-usuario/fiado-api/internal/domain/entity"
	"github.com/tu-usuario/fiado-api/internal/domain/repository"
	"github.com/tu-usuario/fiado-api/pkg/identity"
)

// AdjustStockUseCase es el único camino permitido para cambiar el Stock de
// un producto. Cada cambio escribe el producto actualizado y exactamente un
// StockMovement, en la misma transacción.
type AdjustStockUseCase struct {
	txRunner TxRunner
	movRepo  repository.StockMovementRepository
}

// NewAdjustStockUseCase construye el caso de uso.
func NewAdjustStockUseCase(txRunner TxRunner, movRepo repository.StockMovementRepository) *AdjustStockUseCase {
	return &AdjustStockUseCase{txRunner: txRunner, movRepo: movRepo}
}

// RegisterEntry registra una entrada: stock += quantity. Un producto sin
// control de stock arranca desde 0 y queda controlado tras la primera entrada.
func (uc *AdjustStockUseCase) RegisterEntry(ctx context.Context, in dto.StockEntryRequest) (*dto.MovementResponse, error) {
	if in.ProductID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	return uc.apply(ctx, in.ProductID, entity.MovementTypeIn, in.Quantity, in.Reason)
}

// RegisterExit registra una salida: stock -= quantity. Falla con
// ErrInsufficientStock si la salida dejaría el stock en negativo y con
// ErrStockNotTracked si el producto no controla stock.
func (uc *AdjustStockUseCase) RegisterExit(ctx context.Context, in dto.StockExitRequest) (*dto.MovementResponse, error) {
	if in.ProductID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	return uc.apply(ctx, in.ProductID, entity.MovementTypeOut, in.Quantity, in.Reason)
}

// Adjust fija el stock en un valor final y registra la diferencia.
func (uc *AdjustStockUseCase) Adjust(ctx context.Context, in dto.StockAdjustRequest) (*dto.MovementResponse, error) {
	if in.ProductID == "" || in.NewStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	var out *dto.MovementResponse
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
	) error {
		product, err := productRepo.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		before := product.StockOrZero()
		mov := &entity.StockMovement{
			ID:          identity.New(),
			ProductID:   product.ID,
			ProductName: product.Name,
			Type:        entity.MovementTypeAdjust,
			Quantity:    in.NewStock - before,
			StockBefore: before,
			StockAfter:  in.NewStock,
			Reason:      in.Reason,
			Date:        time.Now(),
		}
		if err := productRepo.UpdateStock(product.ID, in.NewStock); err != nil {
			return err
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		out = toMovementResponse(mov)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// apply lee el producto, calcula el stock resultante según el tipo y escribe
// producto + movimiento en una sola transacción.
func (uc *AdjustStockUseCase) apply(ctx context.Context, productID, movType string, quantity int64, reason string) (*dto.MovementResponse, error) {
	var out *dto.MovementResponse
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
	) error {
		product, err := productRepo.GetByID(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		before := product.StockOrZero()
		var after int64
		switch movType {
		case entity.MovementTypeIn:
			after = before + quantity
		case entity.MovementTypeOut:
			if !product.TracksStock() {
				return domain.ErrStockNotTracked
			}
			if before < quantity {
				return domain.ErrInsufficientStock
			}
			after = before - quantity
		default:
			return domain.ErrInvalidInput
		}
		mov := &entity.StockMovement{
			ID:          identity.New(),
			ProductID:   product.ID,
			ProductName: product.Name,
			Type:        movType,
			Quantity:    quantity,
			StockBefore: before,
			StockAfter:  after,
			Reason:      reason,
			Date:        time.Now(),
		}
		if err := productRepo.UpdateStock(product.ID, after); err != nil {
			return err
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		out = toMovementResponse(mov)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListMovements devuelve el historial, opcionalmente filtrado por producto.
func (uc *AdjustStockUseCase) ListMovements(productID string) (*dto.MovementListResponse, error) {
	var (
		list []*entity.StockMovement
		err  error
	)
	if productID != "" {
		list, err = uc.movRepo.ListByProduct(productID)
	} else {
		list, err = uc.movRepo.List()
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{Items: items, Total: len(items)}, nil
}

func toMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Type:        m.Type,
		Quantity:    m.Quantity,
		StockBefore: m.StockBefore,
		StockAfter:  m.StockAfter,
		Reason:      m.Reason,
		Date:        m.Date,
	}
}
