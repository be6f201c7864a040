package entity

// Modos de tema de la interfaz (preferencia persistida, opaca para el core).
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
	ThemeAuto  = "auto"
)

// ValidTheme valida el modo de tema.
func ValidTheme(t string) bool {
	return t == ThemeLight || t == ThemeDark || t == ThemeAuto
}

// AppSettings configuración de limpieza y retención del cuaderno.
type AppSettings struct {
	RetentionDays int  `json:"retention_days"` // compras pagadas más viejas se archivan
	AutoClean     bool `json:"auto_clean"`     // ejecutar la limpieza automáticamente
	KeepMovements bool `json:"keep_movements"` // no podar movimientos en la limpieza
}

// DefaultSettings valores por defecto cuando no hay configuración guardada.
func DefaultSettings() AppSettings {
	return AppSettings{RetentionDays: 90, AutoClean: false, KeepMovements: true}
}

// BusinessProfile datos del negocio que encabezan los recibos.
// Se obtiene y se pasa explícitamente a quien lo necesite; no hay caché global.
type BusinessProfile struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}
