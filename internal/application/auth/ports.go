package auth

// SecretStore guarda credenciales fuera de las colecciones normales del
// almacén. Aquí solo viajan hashes y flags; el PIN en claro nunca se persiste.
type SecretStore interface {
	SetSecret(key, value string) error
	GetSecret(key string) (string, error)
	DeleteSecret(key string) error
}
