package ledger_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/fiado-api/internal/application/dto"
	appledger "github.com/tu-usuario/fiado-api/internal/application/ledger"
	"github.com/tu-usuario/fiado-api/internal/domain"
	"github.com/tu-usuario/fiado-api/internal/domain/entity"
	"github.com/tu-usuario/fiado-api/internal/infrastructure/bolt"
)

func newReceiptEnv(t *testing.T) (*testEnv, *appledger.ReceiptUseCase, *bolt.SettingsRepo) {
	t.Helper()
	store, err := bolt.Open(filepath.Join(t.TempDir(), "fiado-test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	q := store.Querier()
	customerRepo := bolt.NewCustomerRepository(q)
	productRepo := bolt.NewProductRepository(q)
	purchaseRepo := bolt.NewPurchaseRepository(q)
	settingsRepo := bolt.NewSettingsRepository(q)
	runner := bolt.NewTxRunner(store)
	env := &testEnv{
		store:        store,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		purchaseRepo: purchaseRepo,
		movRepo:      bolt.NewStockMovementRepository(q),
		purchaseUC:   appledger.NewPurchaseUseCase(runner, purchaseRepo, customerRepo),
	}
	return env, appledger.NewReceiptUseCase(purchaseRepo, customerRepo, settingsRepo), settingsRepo
}

// El recibo lleva el perfil del negocio leído en el momento de armarlo,
// el cliente y la compra completa.
func TestReceipt_ArmaPayloadCompleto(t *testing.T) {
	env, receiptUC, settingsRepo := newReceiptEnv(t)
	env.seedCustomer(t, "ana", "Ana")
	env.seedProduct(t, entity.Product{ID: "arroz", Name: "Arroz", UnitPrice: decimal.NewFromInt(3500)})
	require.NoError(t, settingsRepo.SaveProfile(entity.BusinessProfile{
		Name:  "Tienda Doña Rosa",
		Phone: "3001234567",
	}))

	purchase, err := env.purchaseUC.Create(context.Background(), dto.CreatePurchaseRequest{
		CustomerID: "ana",
		Items:      []dto.PurchaseItemRequest{{ProductID: "arroz", Quantity: 2}},
	})
	require.NoError(t, err)

	receipt, err := receiptUC.Build(purchase.ID)
	require.NoError(t, err)

	assert.Equal(t, "Tienda Doña Rosa", receipt.Business.Name)
	assert.Equal(t, "Ana", receipt.Customer.Name)
	assert.Equal(t, purchase.ID, receipt.Purchase.ID)
	assert.True(t, decimal.NewFromInt(7000).Equal(receipt.Purchase.TotalValue))
	assert.Contains(t, receipt.ReceiptNumber, "REC-"+time.Now().Format("20060102"))
	assert.False(t, receipt.IssuedAt.IsZero())
}

// Si el perfil cambia, el próximo recibo sale con el perfil nuevo: no hay
// caché entre llamadas.
func TestReceipt_PerfilSiempreFresco(t *testing.T) {
	env, receiptUC, settingsRepo := newReceiptEnv(t)
	env.seedCustomer(t, "ana", "Ana")
	env.seedProduct(t, entity.Product{ID: "arroz", Name: "Arroz", UnitPrice: decimal.NewFromInt(3500)})

	purchase, err := env.purchaseUC.Create(context.Background(), dto.CreatePurchaseRequest{
		CustomerID: "ana",
		Items:      []dto.PurchaseItemRequest{{ProductID: "arroz", Quantity: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, settingsRepo.SaveProfile(entity.BusinessProfile{Name: "Nombre Viejo"}))
	first, err := receiptUC.Build(purchase.ID)
	require.NoError(t, err)
	assert.Equal(t, "Nombre Viejo", first.Business.Name)

	require.NoError(t, settingsRepo.SaveProfile(entity.BusinessProfile{Name: "Nombre Nuevo"}))
	second, err := receiptUC.Build(purchase.ID)
	require.NoError(t, err)
	assert.Equal(t, "Nombre Nuevo", second.Business.Name)
}

func TestReceipt_CompraInexistenteFalla(t *testing.T) {
	_, receiptUC, _ := newReceiptEnv(t)
	_, err := receiptUC.Build("no-existe")
	assert.Equal(t, domain.ErrNotFound, err)
}

// El número de recibo es estable: armar el recibo dos veces da el mismo número.
func TestReceipt_NumeroEstable(t *testing.T) {
	env, receiptUC, _ := newReceiptEnv(t)
	env.seedCustomer(t, "ana", "Ana")
	env.seedProduct(t, entity.Product{ID: "arroz", Name: "Arroz", UnitPrice: decimal.NewFromInt(3500)})

	purchase, err := env.purchaseUC.Create(context.Background(), dto.CreatePurchaseRequest{
		CustomerID: "ana",
		Items:      []dto.PurchaseItemRequest{{ProductID: "arroz", Quantity: 1}},
	})
	require.NoError(t, err)

	first, err := receiptUC.Build(purchase.ID)
	require.NoError(t, err)
	second, err := receiptUC.Build(purchase.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ReceiptNumber, second.ReceiptNumber)
}
