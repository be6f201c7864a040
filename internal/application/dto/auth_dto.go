package dto

// SetupPinRequest entrada para configurar el PIN por primera vez.
type SetupPinRequest struct {
	Pin     string `json:"pin" validate:"required,min=4,max=8"`
	Confirm string `json:"confirm" validate:"required"`
}

// LoginRequest entrada para abrir sesión con el PIN.
type LoginRequest struct {
	Pin    string `json:"pin" validate:"required"`
	Device string `json:"device"`
}

// LoginResponse token de sesión tras verificar el PIN.
type LoginResponse struct {
	Token string `json:"token"`
}

// ChangePinRequest entrada para cambiar el PIN.
type ChangePinRequest struct {
	Current string `json:"current" validate:"required"`
	New     string `json:"new" validate:"required,min=4,max=8"`
	Confirm string `json:"confirm" validate:"required"`
}

// AuthStatusResponse indica si el candado por PIN está activo.
type AuthStatusResponse struct {
	Enabled bool `json:"enabled"`
}
