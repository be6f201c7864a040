package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/fiado-api/internal/application/dto"
	"github.com/tu-usuario/fiado-api/internal/application/ledger"
	"github.com/tu-usuario/fiado-api/internal/domain"
)

// LedgerHandler expone las consultas agregadas del fiado: ranking de
// deudores y estado de cuenta por cliente (protegido).
type LedgerHandler struct {
	uc *ledger.LedgerUseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *ledger.LedgerUseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// Debtors GET /api/ledger/debtors — clientes con saldo pendiente, de mayor
// a menor deuda.
func (h *LedgerHandler) Debtors(c *fiber.Ctx) error {
	list, err := h.uc.RankDebtors()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Statement GET /api/ledger/customers/:id — compras y saldo de un cliente.
func (h *LedgerHandler) Statement(c *fiber.Ctx) error {
	statement, err := h.uc.CustomerStatement(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(statement)
}
