package dto

// SettingsResponse ajustes de limpieza y retención.
type SettingsResponse struct {
	RetentionDays int  `json:"retention_days"`
	AutoClean     bool `json:"auto_clean"`
	KeepMovements bool `json:"keep_movements"`
}

// UpdateSettingsRequest entrada para actualizar los ajustes.
type UpdateSettingsRequest struct {
	RetentionDays *int  `json:"retention_days" validate:"omitempty,min=1"`
	AutoClean     *bool `json:"auto_clean"`
	KeepMovements *bool `json:"keep_movements"`
}

// ProfileRequest entrada para actualizar el perfil del negocio.
type ProfileRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ProfileResponse perfil del negocio (encabezado de los recibos).
type ProfileResponse struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// ThemeRequest entrada para cambiar el modo de tema.
type ThemeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark auto"`
}

// ThemeResponse modo de tema vigente.
type ThemeResponse struct {
	Theme string `json:"theme"`
}
