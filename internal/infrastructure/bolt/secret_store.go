package bolt

import (
	bbolt "go.etcd.io/bbolt"
)

// SecretStore guarda credenciales en un bucket aparte del resto de
// colecciones. Aquí solo se almacenan hashes bcrypt y flags, nunca el PIN
// en claro; el hashing vive en el caso de uso de auth.
type SecretStore struct {
	q Querier
}

// NewSecretStore construye el adaptador.
func NewSecretStore(q Querier) *SecretStore {
	return &SecretStore{q: q}
}

// SetSecret guarda un valor bajo la clave.
func (s *SecretStore) SetSecret(key, value string) error {
	return s.q.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSecrets).Put([]byte(key), []byte(value))
	})
}

// GetSecret lee un valor; ausente → cadena vacía, sin error.
func (s *SecretStore) GetSecret(key string) (string, error) {
	var value string
	err := s.q.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(bucketSecrets).Get([]byte(key))
		if raw != nil {
			value = string(raw)
		}
		return nil
	})
	return value, err
}

// DeleteSecret elimina la clave.
func (s *SecretStore) DeleteSecret(key string) error {
	return s.q.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSecrets).Delete([]byte(key))
	})
}
