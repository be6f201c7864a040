package bolt

import (
	"encoding/json"
	"fmt"

	bbolt "go.etcd.io/bbolt"

	"github.com/tu-usuario/fiado-api/internal/domain/entity"
	"github.com/tu-usuario/fiado-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// Claves dentro del bucket de configuración.
var (
	keySettings = []byte("settings")
	keyProfile  = []byte("business_profile")
	keyTheme    = []byte("theme_mode")
)

// SettingsRepo implementación de SettingsRepository sobre bbolt.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador.
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// GetSettings lee los ajustes; ausentes → valores por defecto.
func (r *SettingsRepo) GetSettings() (entity.AppSettings, error) {
	settings := entity.DefaultSettings()
	err := r.q.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(bucketSettings).Get(keySettings)
		if len(raw) == 0 {
			return nil
		}
		return json.Unmarshal(raw, &settings)
	})
	if err != nil {
		return entity.DefaultSettings(), fmt.Errorf("leer ajustes: %w", err)
	}
	return settings, nil
}

// SaveSettings sobreescribe los ajustes.
func (r *SettingsRepo) SaveSettings(s entity.AppSettings) error {
	return r.q.Update(func(tx *bbolt.Tx) error {
		raw, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("serializar ajustes: %w", err)
		}
		return tx.Bucket(bucketSettings).Put(keySettings, raw)
	})
}

// GetProfile lee el perfil del negocio; ausente → perfil vacío.
func (r *SettingsRepo) GetProfile() (entity.BusinessProfile, error) {
	var profile entity.BusinessProfile
	err := r.q.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(bucketSettings).Get(keyProfile)
		if len(raw) == 0 {
			return nil
		}
		return json.Unmarshal(raw, &profile)
	})
	if err != nil {
		return entity.BusinessProfile{}, fmt.Errorf("leer perfil: %w", err)
	}
	return profile, nil
}

// SaveProfile sobreescribe el perfil del negocio.
func (r *SettingsRepo) SaveProfile(p entity.BusinessProfile) error {
	return r.q.Update(func(tx *bbolt.Tx) error {
		raw, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("serializar perfil: %w", err)
		}
		return tx.Bucket(bucketSettings).Put(keyProfile, raw)
	})
}

// GetTheme lee el modo de tema; ausente → "auto".
func (r *SettingsRepo) GetTheme() (string, error) {
	theme := entity.ThemeAuto
	err := r.q.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(bucketSettings).Get(keyTheme)
		if len(raw) > 0 {
			theme = string(raw)
		}
		return nil
	})
	return theme, err
}

// SaveTheme guarda el modo de tema.
func (r *SettingsRepo) SaveTheme(theme string) error {
	return r.q.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSettings).Put(keyTheme, []byte(theme))
	})
}
