package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/fiado-api/internal/application/auth"
	"github.com/tu-usuario/fiado-api/internal/application/dto"
	"github.com/tu-usuario/fiado-api/internal/domain"
)

// AuthHandler maneja el ciclo de vida del PIN y la apertura de sesión.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Status godoc
// @Summary      Estado del candado por PIN
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.AuthStatusResponse
// @Router       /api/auth/status [get]
func (h *AuthHandler) Status(c *fiber.Ctx) error {
	out, err := h.uc.Status()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SetupPin godoc
// @Summary      Configurar PIN por primera vez
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetupPinRequest  true  "pin y confirm"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/pin [post]
func (h *AuthHandler) SetupPin(c *fiber.Ctx) error {
	var in dto.SetupPinRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.SetupPin(in); err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el PIN debe tener entre 4 y 8 dígitos"})
		}
		if err == domain.ErrPinMismatch {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "PIN_MISMATCH", Message: "la confirmación no coincide"})
		}
		if err == domain.ErrConflict {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PIN_EXISTS", Message: "ya hay un PIN configurado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "PIN configurado"})
}

// Login godoc
// @Summary      Abrir sesión con el PIN
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "pin y device"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		if err == domain.ErrPinMismatch {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "PIN incorrecto"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ChangePin godoc
// @Summary      Cambiar el PIN
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChangePinRequest  true  "current, new y confirm"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/pin [put]
func (h *AuthHandler) ChangePin(c *fiber.Ctx) error {
	var in dto.ChangePinRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.ChangePin(in); err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el PIN debe tener entre 4 y 8 dígitos"})
		case domain.ErrPinMismatch:
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "PIN_MISMATCH", Message: "PIN actual incorrecto o confirmación no coincide"})
		case domain.ErrPinNotConfigured:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "PIN_NOT_SET", Message: "no hay PIN configurado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "PIN actualizado"})
}

// DisablePin godoc
// @Summary      Desactivar el candado por PIN
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "pin actual"
// @Success      200   {object}  dto.MessageResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/pin [delete]
func (h *AuthHandler) DisablePin(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.DisablePin(in.Pin); err != nil {
		switch err {
		case domain.ErrPinMismatch:
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "PIN incorrecto"})
		case domain.ErrPinNotConfigured:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "PIN_NOT_SET", Message: "no hay PIN configurado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "candado desactivado"})
}
