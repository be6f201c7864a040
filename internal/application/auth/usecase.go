package auth

import (
	"github.com/tu-usuario/fiado-api/internal/application/dto"
	"github.com/tu-usuario/fiado-api/internal/domain"
	"github.com/tu-usuario/fiado-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// Claves dentro del almacén de secretos.
const (
	secretKeyPinHash = "pin_hash"
	secretKeyEnabled = "auth_enabled"
)

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase ciclo de vida del PIN y apertura de sesión.
type AuthUseCase struct {
	secrets SecretStore
	jwtCfg  JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(secrets SecretStore, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{secrets: secrets, jwtCfg: jwtCfg}
}

// Status indica si el candado por PIN está activo.
func (uc *AuthUseCase) Status() (*dto.AuthStatusResponse, error) {
	enabled, err := uc.secrets.GetSecret(secretKeyEnabled)
	if err != nil {
		return nil, err
	}
	return &dto.AuthStatusResponse{Enabled: enabled == "true"}, nil
}

// SetupPin configura el PIN por primera vez: valida la confirmación, hashea
// con bcrypt y activa el candado. Falla si ya hay un PIN configurado.
func (uc *AuthUseCase) SetupPin(in dto.SetupPinRequest) error {
	if len(in.Pin) < 4 || len(in.Pin) > 8 {
		return domain.ErrInvalidInput
	}
	if in.Pin != in.Confirm {
		return domain.ErrPinMismatch
	}
	existing, err := uc.secrets.GetSecret(secretKeyPinHash)
	if err != nil {
		return err
	}
	if existing != "" {
		return domain.ErrConflict
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Pin), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := uc.secrets.SetSecret(secretKeyPinHash, string(hash)); err != nil {
		return err
	}
	return uc.secrets.SetSecret(secretKeyEnabled, "true")
}

// Login verifica el PIN y genera el token de sesión. Con el candado
// desactivado (sin PIN configurado) la sesión se abre directo.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	hash, err := uc.secrets.GetSecret(secretKeyPinHash)
	if err != nil {
		return nil, err
	}
	if hash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(in.Pin)); err != nil {
			return nil, domain.ErrPinMismatch
		}
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, in.Device, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token}, nil
}

// ChangePin reemplaza el PIN verificando primero el actual.
func (uc *AuthUseCase) ChangePin(in dto.ChangePinRequest) error {
	if len(in.New) < 4 || len(in.New) > 8 {
		return domain.ErrInvalidInput
	}
	if in.New != in.Confirm {
		return domain.ErrPinMismatch
	}
	hash, err := uc.secrets.GetSecret(secretKeyPinHash)
	if err != nil {
		return err
	}
	if hash == "" {
		return domain.ErrPinNotConfigured
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(in.Current)); err != nil {
		return domain.ErrPinMismatch
	}
	newHash, err := bcrypt.GenerateFromPassword([]byte(in.New), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.secrets.SetSecret(secretKeyPinHash, string(newHash))
}

// DisablePin apaga el candado y borra la credencial, verificando el PIN actual.
func (uc *AuthUseCase) DisablePin(pin string) error {
	hash, err := uc.secrets.GetSecret(secretKeyPinHash)
	if err != nil {
		return err
	}
	if hash == "" {
		return domain.ErrPinNotConfigured
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)); err != nil {
		return domain.ErrPinMismatch
	}
	if err := uc.secrets.DeleteSecret(secretKeyPinHash); err != nil {
		return err
	}
	return uc.secrets.DeleteSecret(secretKeyEnabled)
}
