// Package bolt implementa la persistencia local del cuaderno sobre bbolt.
//
// Cada colección vive en su propio bucket y la lista completa se serializa
// como JSON bajo una única clave: toda mutación es leer-modificar-reescribir
// la colección entera, nunca un delta. Las transacciones de bbolt dan la
// atomicidad entre colecciones (producto + movimiento, cliente + compras)
// que un almacén clave-valor plano no ofrece.
package bolt

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	bbolt "go.etcd.io/bbolt"
)

// Buckets del almacén (uno por colección lógica).
var (
	bucketCustomers = []byte("customers")
	bucketPurchases = []byte("purchases")
	bucketProducts  = []byte("products")
	bucketMovements = []byte("stock_movements")
	bucketArchive   = []byte("archived_purchases")
	bucketSettings  = []byte("app_settings")
	bucketSecrets   = []byte("secrets")
)

// keyList clave única bajo la que vive la lista completa de cada colección.
var keyList = []byte("list")

// Store envuelve la base bbolt y garantiza que los buckets existan.
type Store struct {
	db *bbolt.DB
}

// Open abre (o crea) el archivo de datos y asegura los buckets.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("crear directorio de datos: %w", err)
		}
	}
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("abrir almacén: %w", err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{
			bucketCustomers, bucketPurchases, bucketProducts,
			bucketMovements, bucketArchive, bucketSettings, bucketSecrets,
		} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("inicializar buckets: %w", err)
	}
	return &Store{db: db}, nil
}

// Close cierra el archivo de datos.
func (s *Store) Close() error {
	return s.db.Close()
}

// Querier abstrae el acceso al almacén: *bbolt.DB (transacción propia por
// operación) o una transacción ya abierta (vía TxRunner). Mismo patrón que
// un repo usable con pool o tx.
type Querier interface {
	Update(fn func(*bbolt.Tx) error) error
	View(fn func(*bbolt.Tx) error) error
}

// Querier devuelve el acceso directo a la base (transacción por operación).
func (s *Store) Querier() Querier {
	return s.db
}

// txQuerier ata las operaciones a una transacción existente. bbolt no
// permite anidar transacciones, así que Update y View ejecutan fn sobre
// la tx del TxRunner directamente.
type txQuerier struct {
	tx *bbolt.Tx
}

func (q txQuerier) Update(fn func(*bbolt.Tx) error) error { return fn(q.tx) }
func (q txQuerier) View(fn func(*bbolt.Tx) error) error   { return fn(q.tx) }
