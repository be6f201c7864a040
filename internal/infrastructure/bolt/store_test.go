package bolt_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/fiado-api/internal/domain"
	"github.com/tu-usuario/fiado-api/internal/domain/entity"
	"github.com/tu-usuario/fiado-api/internal/domain/repository"
	"github.com/tu-usuario/fiado-api/internal/infrastructure/bolt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// openTestStore abre un almacén sobre un archivo temporal que el framework
// limpia al terminar el test.
func openTestStore(t *testing.T) *bolt.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fiado-test.db")
	store, err := bolt.Open(path)
	require.NoError(t, err, "debe abrirse el almacén temporal")
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func int64Ptr(v int64) *int64 { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomerRepo_CicloCompleto(t *testing.T) {
	store := openTestStore(t)
	repo := bolt.NewCustomerRepository(store.Querier())

	ana := &entity.Customer{ID: "c1", Name: "Ana", Phone: "3001234567", RegisteredAt: time.Now()}
	require.NoError(t, repo.Create(ana))

	// GetByID devuelve lo guardado
	got, err := repo.GetByID("c1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ana", got.Name)
	assert.Equal(t, "3001234567", got.Phone)

	// Update reemplaza
	ana.Phone = "3009999999"
	require.NoError(t, repo.Update(ana))
	got, err = repo.GetByID("c1")
	require.NoError(t, err)
	assert.Equal(t, "3009999999", got.Phone)

	// Delete elimina
	require.NoError(t, repo.Delete("c1"))
	got, err = repo.GetByID("c1")
	require.NoError(t, err)
	assert.Nil(t, got, "tras borrar, GetByID debe devolver nil sin error")
}

func TestCustomerRepo_ListConservaOrdenDeRegistro(t *testing.T) {
	store := openTestStore(t)
	repo := bolt.NewCustomerRepository(store.Querier())

	for _, id := range []string{"c1", "c2", "c3"} {
		require.NoError(t, repo.Create(&entity.Customer{ID: id, Name: "Cliente " + id}))
	}

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "c1", list[0].ID)
	assert.Equal(t, "c2", list[1].ID)
	assert.Equal(t, "c3", list[2].ID)
}

func TestCustomerRepo_CreateDuplicadoFalla(t *testing.T) {
	store := openTestStore(t)
	repo := bolt.NewCustomerRepository(store.Querier())

	require.NoError(t, repo.Create(&entity.Customer{ID: "c1", Name: "Ana"}))
	err := repo.Create(&entity.Customer{ID: "c1", Name: "Otra Ana"})
	assert.Equal(t, domain.ErrDuplicate, err)
}

func TestCustomerRepo_DeleteInexistenteFalla(t *testing.T) {
	store := openTestStore(t)
	repo := bolt.NewCustomerRepository(store.Querier())
	assert.Equal(t, domain.ErrNotFound, repo.Delete("no-existe"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

// Update nunca toca el stock almacenado: solo UpdateStock puede cambiarlo.
func TestProductRepo_UpdatePreservaStock(t *testing.T) {
	store := openTestStore(t)
	repo := bolt.NewProductRepository(store.Querier())

	require.NoError(t, repo.Create(&entity.Product{
		ID:        "p1",
		Name:      "Arroz",
		UnitPrice: decimal.NewFromInt(3500),
		Stock:     int64Ptr(12),
		MinStock:  5,
	}))

	// Editar precio con un stock distinto "de contrabando" en la entidad
	require.NoError(t, repo.Update(&entity.Product{
		ID:        "p1",
		Name:      "Arroz Premium",
		UnitPrice: decimal.NewFromInt(4200),
		Stock:     int64Ptr(999),
		MinStock:  5,
	}))

	got, err := repo.GetByID("p1")
	require.NoError(t, err)
	assert.Equal(t, "Arroz Premium", got.Name)
	require.NotNil(t, got.Stock)
	assert.Equal(t, int64(12), *got.Stock, "Update no debe cambiar el stock almacenado")

	// UpdateStock sí lo cambia
	require.NoError(t, repo.UpdateStock("p1", 7))
	got, err = repo.GetByID("p1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), *got.Stock)
}

func TestProductRepo_GetByNameIgnoraMayusculas(t *testing.T) {
	store := openTestStore(t)
	repo := bolt.NewProductRepository(store.Querier())

	require.NoError(t, repo.Create(&entity.Product{ID: "p1", Name: "Panela"}))

	got, err := repo.GetByName("PANELA")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "p1", got.ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Compras
// ──────────────────────────────────────────────────────────────────────────────

func TestPurchaseRepo_DeleteByCustomer(t *testing.T) {
	store := openTestStore(t)
	repo := bolt.NewPurchaseRepository(store.Querier())

	for i, cid := range []string{"ana", "ana", "beto"} {
		require.NoError(t, repo.Create(&entity.Purchase{
			ID:         "p" + string(rune('1'+i)),
			CustomerID: cid,
			TotalValue: decimal.NewFromInt(10),
		}))
	}

	removed, err := repo.DeleteByCustomer("ana")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "beto", list[0].CustomerID)
}

// El dinero sobrevive el viaje por JSON sin perder precisión.
func TestPurchaseRepo_MontosDecimalesExactos(t *testing.T) {
	store := openTestStore(t)
	repo := bolt.NewPurchaseRepository(store.Querier())

	total := decimal.RequireFromString("12345.67")
	require.NoError(t, repo.Create(&entity.Purchase{
		ID:         "p1",
		CustomerID: "ana",
		TotalValue: total,
	}))

	got, err := repo.GetByID("p1")
	require.NoError(t, err)
	assert.True(t, total.Equal(got.TotalValue),
		"el total debe conservarse exacto, obtuvo %s", got.TotalValue)
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos
// ──────────────────────────────────────────────────────────────────────────────

func TestMovementRepo_PruneBefore(t *testing.T) {
	store := openTestStore(t)
	repo := bolt.NewStockMovementRepository(store.Querier())

	now := time.Now()
	old := now.AddDate(0, 0, -100)
	require.NoError(t, repo.Create(&entity.StockMovement{ID: "m1", ProductID: "p1", Type: entity.MovementTypeIn, Date: old}))
	require.NoError(t, repo.Create(&entity.StockMovement{ID: "m2", ProductID: "p1", Type: entity.MovementTypeOut, Date: old}))
	require.NoError(t, repo.Create(&entity.StockMovement{ID: "m3", ProductID: "p1", Type: entity.MovementTypeIn, Date: now}))

	pruned, err := repo.PruneBefore(now.AddDate(0, 0, -90))
	require.NoError(t, err)
	assert.Equal(t, 2, pruned)

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "m3", list[0].ID)
}

func TestMovementRepo_ListByProductFiltra(t *testing.T) {
	store := openTestStore(t)
	repo := bolt.NewStockMovementRepository(store.Querier())

	require.NoError(t, repo.Create(&entity.StockMovement{ID: "m1", ProductID: "arroz", Type: entity.MovementTypeIn}))
	require.NoError(t, repo.Create(&entity.StockMovement{ID: "m2", ProductID: "panela", Type: entity.MovementTypeIn}))
	require.NoError(t, repo.Create(&entity.StockMovement{ID: "m3", ProductID: "arroz", Type: entity.MovementTypeOut}))

	list, err := repo.ListByProduct("arroz")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "m1", list[0].ID)
	assert.Equal(t, "m3", list[1].ID)
}

// El historial solo admite los tres tipos conocidos de movimiento.
func TestMovementRepo_TipoDesconocidoRechazado(t *testing.T) {
	store := openTestStore(t)
	repo := bolt.NewStockMovementRepository(store.Querier())

	err := repo.Create(&entity.StockMovement{ID: "m1", ProductID: "p1", Type: "transfer"})
	assert.Equal(t, domain.ErrInvalidInput, err)

	err = repo.Create(&entity.StockMovement{ID: "m2", ProductID: "p1"})
	assert.Equal(t, domain.ErrInvalidInput, err, "el tipo vacío tampoco es válido")

	list, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, list, "nada quedó registrado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Ajustes y secretos
// ──────────────────────────────────────────────────────────────────────────────

func TestSettingsRepo_DefaultsYRoundTrip(t *testing.T) {
	store := openTestStore(t)
	repo := bolt.NewSettingsRepository(store.Querier())

	// Sin nada guardado → defaults
	settings, err := repo.GetSettings()
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultSettings(), settings)

	theme, err := repo.GetTheme()
	require.NoError(t, err)
	assert.Equal(t, entity.ThemeAuto, theme)

	// Guardar y releer
	settings.RetentionDays = 30
	settings.AutoClean = true
	require.NoError(t, repo.SaveSettings(settings))
	require.NoError(t, repo.SaveTheme(entity.ThemeDark))
	require.NoError(t, repo.SaveProfile(entity.BusinessProfile{Name: "Tienda Doña Rosa"}))

	settings, err = repo.GetSettings()
	require.NoError(t, err)
	assert.Equal(t, 30, settings.RetentionDays)
	assert.True(t, settings.AutoClean)

	theme, err = repo.GetTheme()
	require.NoError(t, err)
	assert.Equal(t, entity.ThemeDark, theme)

	profile, err := repo.GetProfile()
	require.NoError(t, err)
	assert.Equal(t, "Tienda Doña Rosa", profile.Name)
}

func TestSecretStore_AusenteDevuelveVacio(t *testing.T) {
	store := openTestStore(t)
	secrets := bolt.NewSecretStore(store.Querier())

	value, err := secrets.GetSecret("pin_hash")
	require.NoError(t, err)
	assert.Empty(t, value)

	require.NoError(t, secrets.SetSecret("pin_hash", "$2a$10$hash"))
	value, err = secrets.GetSecret("pin_hash")
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$hash", value)

	require.NoError(t, secrets.DeleteSecret("pin_hash"))
	value, err = secrets.GetSecret("pin_hash")
	require.NoError(t, err)
	assert.Empty(t, value)
}

// ──────────────────────────────────────────────────────────────────────────────
// TxRunner — atomicidad
// ──────────────────────────────────────────────────────────────────────────────

// Si el callback falla a mitad de camino, ninguna de las escrituras queda.
func TestTxRunner_RollbackEnError(t *testing.T) {
	store := openTestStore(t)
	productRepo := bolt.NewProductRepository(store.Querier())
	require.NoError(t, productRepo.Create(&entity.Product{
		ID: "p1", Name: "Arroz", Stock: int64Ptr(10),
	}))

	runner := bolt.NewTxRunner(store)
	boom := errors.New("boom")
	err := runner.Run(context.Background(), func(
		pr repository.ProductRepository,
		mr repository.StockMovementRepository,
	) error {
		if err := pr.UpdateStock("p1", 3); err != nil {
			return err
		}
		return boom // fallar después de escribir el stock
	})
	require.Equal(t, boom, err, "el error del callback debe propagarse sin envolver")

	got, err := productRepo.GetByID("p1")
	require.NoError(t, err)
	assert.Equal(t, int64(10), *got.Stock, "el rollback debe dejar el stock intacto")
}

func TestTxRunner_ContextoCanceladoNoEjecuta(t *testing.T) {
	store := openTestStore(t)
	runner := bolt.NewTxRunner(store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := runner.Run(ctx, func(
		pr repository.ProductRepository,
		mr repository.StockMovementRepository,
	) error {
		called = true
		return nil
	})
	assert.Error(t, err)
	assert.False(t, called, "con contexto cancelado el callback no debe correr")
}
