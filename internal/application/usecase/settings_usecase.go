package usecase

import (
	"strings"

	"github.com/tu-usuario/fiado-api/internal/application/dto"
	"github.com/tu-usuario/fiado-api/internal/domain"
	"github.com/tu-usuario/fiado-api/internal/domain/entity"
	"github.com/tu-usuario/fiado-api/internal/domain/repository"
)

// SettingsUseCase ajustes de limpieza, perfil del negocio y tema.
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// GetSettings devuelve los ajustes vigentes (o los por defecto).
func (uc *SettingsUseCase) GetSettings() (*dto.SettingsResponse, error) {
	s, err := uc.repo.GetSettings()
	if err != nil {
		return nil, err
	}
	return toSettingsResponse(s), nil
}

// UpdateSettings aplica cambios parciales a los ajustes.
func (uc *SettingsUseCase) UpdateSettings(in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	s, err := uc.repo.GetSettings()
	if err != nil {
		return nil, err
	}
	if in.RetentionDays != nil {
		if *in.RetentionDays < 1 {
			return nil, domain.ErrInvalidInput
		}
		s.RetentionDays = *in.RetentionDays
	}
	if in.AutoClean != nil {
		s.AutoClean = *in.AutoClean
	}
	if in.KeepMovements != nil {
		s.KeepMovements = *in.KeepMovements
	}
	if err := uc.repo.SaveSettings(s); err != nil {
		return nil, err
	}
	return toSettingsResponse(s), nil
}

// GetProfile devuelve el perfil del negocio.
func (uc *SettingsUseCase) GetProfile() (*dto.ProfileResponse, error) {
	p, err := uc.repo.GetProfile()
	if err != nil {
		return nil, err
	}
	return &dto.ProfileResponse{Name: p.Name, Phone: p.Phone, Address: p.Address}, nil
}

// UpdateProfile guarda el perfil del negocio. El nombre es obligatorio.
func (uc *SettingsUseCase) UpdateProfile(in dto.ProfileRequest) (*dto.ProfileResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	p := entity.BusinessProfile{
		Name:    name,
		Phone:   strings.TrimSpace(in.Phone),
		Address: strings.TrimSpace(in.Address),
	}
	if err := uc.repo.SaveProfile(p); err != nil {
		return nil, err
	}
	return &dto.ProfileResponse{Name: p.Name, Phone: p.Phone, Address: p.Address}, nil
}

// GetTheme devuelve el modo de tema vigente.
func (uc *SettingsUseCase) GetTheme() (*dto.ThemeResponse, error) {
	t, err := uc.repo.GetTheme()
	if err != nil {
		return nil, err
	}
	return &dto.ThemeResponse{Theme: t}, nil
}

// SetTheme guarda el modo de tema. Solo acepta light, dark o auto.
func (uc *SettingsUseCase) SetTheme(in dto.ThemeRequest) (*dto.ThemeResponse, error) {
	if !entity.ValidTheme(in.Theme) {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.SaveTheme(in.Theme); err != nil {
		return nil, err
	}
	return &dto.ThemeResponse{Theme: in.Theme}, nil
}

func toSettingsResponse(s entity.AppSettings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		RetentionDays: s.RetentionDays,
		AutoClean:     s.AutoClean,
		KeepMovements: s.KeepMovements,
	}
}
