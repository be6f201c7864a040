// Package maintenance implementa la limpieza del cuaderno: archiva compras
// pagadas viejas y poda el historial de movimientos según la retención
// configurada. Puede dispararse a mano o por el scheduler si auto_clean
// está activo.
package maintenance

import (
	"context"
	"time"

	"github.com/tu-usuario/fiado-api/internal/application/dto"
	"github.com/tu-usuario/fiado-api/internal/domain/entity"
	"github.com/tu-usuario/fiado-api/internal/domain/repository"
)

// MaintenanceUseCase ejecuta las pasadas de limpieza.
type MaintenanceUseCase struct {
	txRunner     CleanTxRunner
	settingsRepo repository.SettingsRepository
}

// NewMaintenanceUseCase construye el caso de uso.
func NewMaintenanceUseCase(txRunner CleanTxRunner, settingsRepo repository.SettingsRepository) *MaintenanceUseCase {
	return &MaintenanceUseCase{txRunner: txRunner, settingsRepo: settingsRepo}
}

// Clean ejecuta una pasada con los ajustes vigentes: mueve al archivo las
// compras pagadas anteriores al corte y, si keep_movements está apagado,
// poda los movimientos anteriores al mismo corte. Una sola transacción.
func (uc *MaintenanceUseCase) Clean(ctx context.Context) (*dto.CleanResultResponse, error) {
	settings, err := uc.settingsRepo.GetSettings()
	if err != nil {
		return nil, err
	}
	return uc.clean(ctx, settings)
}

// RunAutoClean es el punto de entrada del scheduler: no hace nada si
// auto_clean está apagado.
func (uc *MaintenanceUseCase) RunAutoClean(ctx context.Context) (*dto.CleanResultResponse, error) {
	settings, err := uc.settingsRepo.GetSettings()
	if err != nil {
		return nil, err
	}
	if !settings.AutoClean {
		return &dto.CleanResultResponse{}, nil
	}
	return uc.clean(ctx, settings)
}

func (uc *MaintenanceUseCase) clean(ctx context.Context, settings entity.AppSettings) (*dto.CleanResultResponse, error) {
	cutoff := time.Now().AddDate(0, 0, -settings.RetentionDays)
	result := &dto.CleanResultResponse{}
	err := uc.txRunner.RunClean(ctx, func(
		purchaseRepo repository.PurchaseRepository,
		archiveRepo repository.ArchiveRepository,
		movRepo repository.StockMovementRepository,
	) error {
		purchases, err := purchaseRepo.List()
		if err != nil {
			return err
		}
		var toArchive []*entity.Purchase
		for _, p := range purchases {
			if p.Paid && p.Date.Before(cutoff) {
				toArchive = append(toArchive, p)
			}
		}
		if err := archiveRepo.Append(toArchive); err != nil {
			return err
		}
		for _, p := range toArchive {
			if err := purchaseRepo.Delete(p.ID); err != nil {
				return err
			}
		}
		result.ArchivedPurchases = len(toArchive)

		if !settings.KeepMovements {
			pruned, err := movRepo.PruneBefore(cutoff)
			if err != nil {
				return err
			}
			result.PrunedMovements = pruned
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
