package bolt

import (
	"encoding/json"
	"fmt"

	bbolt "go.etcd.io/bbolt"
)

// loadList deserializa la lista completa de un bucket. Colección ausente o
// vacía → slice vacío, nunca error.
func loadList[T any](tx *bbolt.Tx, bucket []byte) ([]T, error) {
	b := tx.Bucket(bucket)
	if b == nil {
		return []T{}, nil
	}
	raw := b.Get(keyList)
	if len(raw) == 0 {
		return []T{}, nil
	}
	var list []T
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("deserializar %s: %w", bucket, err)
	}
	return list, nil
}

// saveList serializa y sobreescribe la lista completa del bucket.
func saveList[T any](tx *bbolt.Tx, bucket []byte, list []T) error {
	b := tx.Bucket(bucket)
	if b == nil {
		var err error
		if b, err = tx.CreateBucketIfNotExists(bucket); err != nil {
			return fmt.Errorf("bucket %s: %w", bucket, err)
		}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("serializar %s: %w", bucket, err)
	}
	return b.Put(keyList, raw)
}
