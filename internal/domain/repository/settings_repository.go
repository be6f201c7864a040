package repository

import "github.com/tu-usuario/fiado-api/internal/domain/entity"

// SettingsRepository define el puerto de persistencia para la configuración
// de la aplicación: ajustes de limpieza, perfil del negocio y tema.
type SettingsRepository interface {
	GetSettings() (entity.AppSettings, error)
	SaveSettings(s entity.AppSettings) error
	GetProfile() (entity.BusinessProfile, error)
	SaveProfile(p entity.BusinessProfile) error
	GetTheme() (string, error)
	SaveTheme(theme string) error
}
