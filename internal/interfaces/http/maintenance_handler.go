package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/fiado-api/internal/application/dto"
	"github.com/tu-usuario/fiado-api/internal/application/maintenance"
)

// MaintenanceHandler expone la limpieza manual del historial (protegido).
type MaintenanceHandler struct {
	uc *maintenance.MaintenanceUseCase
}

// NewMaintenanceHandler construye el handler.
func NewMaintenanceHandler(uc *maintenance.MaintenanceUseCase) *MaintenanceHandler {
	return &MaintenanceHandler{uc: uc}
}

// Clean POST /api/maintenance/clean — archiva las compras pagadas más
// antiguas que la retención y poda los movimientos según la configuración.
func (h *MaintenanceHandler) Clean(c *fiber.Ctx) error {
	result, err := h.uc.Clean(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(result)
}
