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
	"github.com/tu-usuario/fiado-api/internal/application/usecase"
	"github.com/tu-usuario/fiado-api/internal/domain"
	"github.com/tu-usuario/fiado-api/internal/domain/entity"
	"github.com/tu-usuario/fiado-api/internal/infrastructure/bolt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	store        *bolt.Store
	customerRepo *bolt.CustomerRepo
	productRepo  *bolt.ProductRepo
	purchaseRepo *bolt.PurchaseRepo
	movRepo      *bolt.StockMovementRepo
	purchaseUC   *appledger.PurchaseUseCase
	ledgerUC     *appledger.LedgerUseCase
	customerUC   *usecase.CustomerUseCase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store, err := bolt.Open(filepath.Join(t.TempDir(), "fiado-test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	q := store.Querier()
	customerRepo := bolt.NewCustomerRepository(q)
	productRepo := bolt.NewProductRepository(q)
	purchaseRepo := bolt.NewPurchaseRepository(q)
	runner := bolt.NewTxRunner(store)
	return &testEnv{
		store:        store,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		purchaseRepo: purchaseRepo,
		movRepo:      bolt.NewStockMovementRepository(q),
		purchaseUC:   appledger.NewPurchaseUseCase(runner, purchaseRepo, customerRepo),
		ledgerUC:     appledger.NewLedgerUseCase(customerRepo, purchaseRepo),
		customerUC:   usecase.NewCustomerUseCase(customerRepo, runner),
	}
}

func (e *testEnv) seedCustomer(t *testing.T, id, name string) {
	t.Helper()
	require.NoError(t, e.customerRepo.Create(&entity.Customer{
		ID: id, Name: name, RegisteredAt: time.Now(),
	}))
}

func (e *testEnv) seedProduct(t *testing.T, p entity.Product) {
	t.Helper()
	require.NoError(t, e.productRepo.Create(&p))
}

func int64Ptr(v int64) *int64 { return &v }

func decPtr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta de compras
// ──────────────────────────────────────────────────────────────────────────────

// Los subtotales y el total se recalculan siempre en el servidor:
// subtotal = precio × cantidad, total = suma de subtotales.
func TestCreate_RecalculaMontos(t *testing.T) {
	env := newTestEnv(t)
	env.seedCustomer(t, "ana", "Ana")
	env.seedProduct(t, entity.Product{ID: "arroz", Name: "Arroz", UnitPrice: decimal.NewFromInt(3500)})
	env.seedProduct(t, entity.Product{ID: "panela", Name: "Panela", UnitPrice: decimal.NewFromInt(2000)})

	purchase, err := env.purchaseUC.Create(context.Background(), dto.CreatePurchaseRequest{
		CustomerID: "ana",
		Items: []dto.PurchaseItemRequest{
			{ProductID: "arroz", Quantity: 2},
			{ProductID: "panela", Quantity: 3},
		},
	})

	require.NoError(t, err)
	require.Len(t, purchase.Items, 2)
	assert.True(t, decimal.NewFromInt(7000).Equal(purchase.Items[0].Subtotal))
	assert.True(t, decimal.NewFromInt(6000).Equal(purchase.Items[1].Subtotal))
	assert.True(t, decimal.NewFromInt(13000).Equal(purchase.TotalValue),
		"el total debe ser la suma de subtotales, obtuvo %s", purchase.TotalValue)
	assert.False(t, purchase.Paid, "una compra fiada nace pendiente")
	assert.Equal(t, "Arroz", purchase.Items[0].ProductName,
		"el nombre del producto queda copiado en la línea")
}

// El precio enviado por la app prevalece sobre el precio vigente del producto.
func TestCreate_PrecioManualPrevalece(t *testing.T) {
	env := newTestEnv(t)
	env.seedCustomer(t, "ana", "Ana")
	env.seedProduct(t, entity.Product{ID: "arroz", Name: "Arroz", UnitPrice: decimal.NewFromInt(3500)})

	purchase, err := env.purchaseUC.Create(context.Background(), dto.CreatePurchaseRequest{
		CustomerID: "ana",
		Items: []dto.PurchaseItemRequest{
			{ProductID: "arroz", Quantity: 2, UnitPrice: decPtr("3000")},
		},
	})

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(3000).Equal(purchase.Items[0].UnitPrice))
	assert.True(t, decimal.NewFromInt(6000).Equal(purchase.TotalValue))
}

// Vender por caja usa el precio de caja y descuenta unidades × unidades/caja.
func TestCreate_VentaPorCaja(t *testing.T) {
	env := newTestEnv(t)
	env.seedCustomer(t, "ana", "Ana")
	env.seedProduct(t, entity.Product{
		ID:          "gaseosa",
		Name:        "Gaseosa",
		UnitPrice:   decimal.NewFromInt(2500),
		BoxPrice:    decPtr("27000"),
		UnitsPerBox: int64Ptr(12),
		Stock:       int64Ptr(30),
	})

	purchase, err := env.purchaseUC.Create(context.Background(), dto.CreatePurchaseRequest{
		CustomerID: "ana",
		Items: []dto.PurchaseItemRequest{
			{ProductID: "gaseosa", Quantity: 2, SaleUnit: entity.SaleUnitBox},
		},
	})

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(54000).Equal(purchase.TotalValue))

	product, err := env.productRepo.GetByID("gaseosa")
	require.NoError(t, err)
	assert.Equal(t, int64(6), *product.Stock, "2 cajas de 12 descuentan 24 unidades")
}

// La compra de un producto controlado descuenta stock y deja el movimiento
// de salida, todo en la misma transacción.
func TestCreate_DescuentaStockYDejaMovimiento(t *testing.T) {
	env := newTestEnv(t)
	env.seedCustomer(t, "ana", "Ana")
	env.seedProduct(t, entity.Product{
		ID: "arroz", Name: "Arroz", UnitPrice: decimal.NewFromInt(3500), Stock: int64Ptr(10),
	})

	purchase, err := env.purchaseUC.Create(context.Background(), dto.CreatePurchaseRequest{
		CustomerID: "ana",
		Items:      []dto.PurchaseItemRequest{{ProductID: "arroz", Quantity: 4}},
	})
	require.NoError(t, err)

	product, err := env.productRepo.GetByID("arroz")
	require.NoError(t, err)
	assert.Equal(t, int64(6), *product.Stock)

	movements, err := env.movRepo.ListByProduct("arroz")
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, entity.MovementTypeOut, movements[0].Type)
	assert.Equal(t, int64(4), movements[0].Quantity)
	assert.Contains(t, movements[0].Reason, purchase.ID)
}

// Si una línea no tiene stock suficiente, la compra entera se rechaza y
// ninguna línea anterior queda descontada.
func TestCreate_StockInsuficienteRevierteTodo(t *testing.T) {
	env := newTestEnv(t)
	env.seedCustomer(t, "ana", "Ana")
	env.seedProduct(t, entity.Product{
		ID: "arroz", Name: "Arroz", UnitPrice: decimal.NewFromInt(3500), Stock: int64Ptr(10),
	})
	env.seedProduct(t, entity.Product{
		ID: "panela", Name: "Panela", UnitPrice: decimal.NewFromInt(2000), Stock: int64Ptr(1),
	})

	_, err := env.purchaseUC.Create(context.Background(), dto.CreatePurchaseRequest{
		CustomerID: "ana",
		Items: []dto.PurchaseItemRequest{
			{ProductID: "arroz", Quantity: 2},  // alcanzaría
			{ProductID: "panela", Quantity: 5}, // no alcanza
		},
	})
	assert.Equal(t, domain.ErrInsufficientStock, err)

	arroz, err := env.productRepo.GetByID("arroz")
	require.NoError(t, err)
	assert.Equal(t, int64(10), *arroz.Stock, "la línea anterior debe revertirse")

	purchases, err := env.purchaseRepo.List()
	require.NoError(t, err)
	assert.Empty(t, purchases, "la compra rechazada no debe existir")

	movements, err := env.movRepo.List()
	require.NoError(t, err)
	assert.Empty(t, movements, "la compra rechazada no deja movimientos")
}

// Un producto sin control de stock se vende sin tocar inventario.
func TestCreate_ProductoSinControlNoTocaInventario(t *testing.T) {
	env := newTestEnv(t)
	env.seedCustomer(t, "ana", "Ana")
	env.seedProduct(t, entity.Product{ID: "hielo", Name: "Hielo", UnitPrice: decimal.NewFromInt(500)})

	_, err := env.purchaseUC.Create(context.Background(), dto.CreatePurchaseRequest{
		CustomerID: "ana",
		Items:      []dto.PurchaseItemRequest{{ProductID: "hielo", Quantity: 100}},
	})
	require.NoError(t, err)

	movements, err := env.movRepo.List()
	require.NoError(t, err)
	assert.Empty(t, movements)
}

func TestCreate_ClienteInexistenteFalla(t *testing.T) {
	env := newTestEnv(t)
	env.seedProduct(t, entity.Product{ID: "arroz", Name: "Arroz", UnitPrice: decimal.NewFromInt(3500)})

	_, err := env.purchaseUC.Create(context.Background(), dto.CreatePurchaseRequest{
		CustomerID: "fantasma",
		Items:      []dto.PurchaseItemRequest{{ProductID: "arroz", Quantity: 1}},
	})
	assert.Equal(t, domain.ErrNotFound, err)
}

func TestCreate_SinItemsFalla(t *testing.T) {
	env := newTestEnv(t)
	env.seedCustomer(t, "ana", "Ana")

	_, err := env.purchaseUC.Create(context.Background(), dto.CreatePurchaseRequest{CustomerID: "ana"})
	assert.Equal(t, domain.ErrInvalidInput, err)
}

// Una venta de contado entra ya pagada y no suma al saldo del cliente.
func TestCreate_VentaDeContado(t *testing.T) {
	env := newTestEnv(t)
	env.seedCustomer(t, "ana", "Ana")
	env.seedProduct(t, entity.Product{ID: "arroz", Name: "Arroz", UnitPrice: decimal.NewFromInt(3500)})

	purchase, err := env.purchaseUC.Create(context.Background(), dto.CreatePurchaseRequest{
		CustomerID: "ana",
		Paid:       true,
		Items:      []dto.PurchaseItemRequest{{ProductID: "arroz", Quantity: 1}},
	})
	require.NoError(t, err)
	assert.True(t, purchase.Paid)

	statement, err := env.ledgerUC.CustomerStatement("ana")
	require.NoError(t, err)
	assert.True(t, statement.Balance.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Pago y eliminación
// ──────────────────────────────────────────────────────────────────────────────

func TestTogglePaid_InvierteElEstado(t *testing.T) {
	env := newTestEnv(t)
	env.seedCustomer(t, "ana", "Ana")
	env.seedProduct(t, entity.Product{ID: "arroz", Name: "Arroz", UnitPrice: decimal.NewFromInt(3500)})

	created, err := env.purchaseUC.Create(context.Background(), dto.CreatePurchaseRequest{
		CustomerID: "ana",
		Items:      []dto.PurchaseItemRequest{{ProductID: "arroz", Quantity: 1}},
	})
	require.NoError(t, err)

	paid, err := env.purchaseUC.TogglePaid(created.ID)
	require.NoError(t, err)
	assert.True(t, paid.Paid)

	unpaid, err := env.purchaseUC.TogglePaid(created.ID)
	require.NoError(t, err)
	assert.False(t, unpaid.Paid, "volver a marcar deja la compra pendiente otra vez")
}

func TestTogglePaid_InexistenteFalla(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.purchaseUC.TogglePaid("no-existe")
	assert.Equal(t, domain.ErrNotFound, err)
}

// Eliminar una compra no repone stock: el movimiento de salida queda.
func TestDelete_NoReponeStock(t *testing.T) {
	env := newTestEnv(t)
	env.seedCustomer(t, "ana", "Ana")
	env.seedProduct(t, entity.Product{
		ID: "arroz", Name: "Arroz", UnitPrice: decimal.NewFromInt(3500), Stock: int64Ptr(10),
	})

	created, err := env.purchaseUC.Create(context.Background(), dto.CreatePurchaseRequest{
		CustomerID: "ana",
		Items:      []dto.PurchaseItemRequest{{ProductID: "arroz", Quantity: 4}},
	})
	require.NoError(t, err)

	require.NoError(t, env.purchaseUC.Delete(created.ID))

	product, err := env.productRepo.GetByID("arroz")
	require.NoError(t, err)
	assert.Equal(t, int64(6), *product.Stock, "el stock no se repone al borrar la compra")

	movements, err := env.movRepo.ListByProduct("arroz")
	require.NoError(t, err)
	assert.Len(t, movements, 1, "el movimiento de salida sobrevive")
}

// ──────────────────────────────────────────────────────────────────────────────
// Cascada al borrar cliente
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteCustomer_ArrastraSusCompras(t *testing.T) {
	env := newTestEnv(t)
	env.seedCustomer(t, "ana", "Ana")
	env.seedCustomer(t, "beto", "Beto")
	env.seedProduct(t, entity.Product{ID: "arroz", Name: "Arroz", UnitPrice: decimal.NewFromInt(3500)})

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := env.purchaseUC.Create(ctx, dto.CreatePurchaseRequest{
			CustomerID: "ana",
			Items:      []dto.PurchaseItemRequest{{ProductID: "arroz", Quantity: 1}},
		})
		require.NoError(t, err)
	}
	_, err := env.purchaseUC.Create(ctx, dto.CreatePurchaseRequest{
		CustomerID: "beto",
		Items:      []dto.PurchaseItemRequest{{ProductID: "arroz", Quantity: 1}},
	})
	require.NoError(t, err)

	result, err := env.customerUC.Delete(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, 3, result.DeletedPurchases)

	remaining, err := env.purchaseRepo.List()
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "beto", remaining[0].CustomerID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ranking y estado de cuenta (vía casos de uso)
// ──────────────────────────────────────────────────────────────────────────────

func TestRankDebtors_EndToEnd(t *testing.T) {
	env := newTestEnv(t)
	env.seedCustomer(t, "ana", "Ana")
	env.seedCustomer(t, "beto", "Beto")
	env.seedProduct(t, entity.Product{ID: "arroz", Name: "Arroz", UnitPrice: decimal.NewFromInt(1000)})

	ctx := context.Background()
	_, err := env.purchaseUC.Create(ctx, dto.CreatePurchaseRequest{
		CustomerID: "ana",
		Items:      []dto.PurchaseItemRequest{{ProductID: "arroz", Quantity: 2}},
	})
	require.NoError(t, err)
	_, err = env.purchaseUC.Create(ctx, dto.CreatePurchaseRequest{
		CustomerID: "beto",
		Items:      []dto.PurchaseItemRequest{{ProductID: "arroz", Quantity: 5}},
	})
	require.NoError(t, err)

	debtors, err := env.ledgerUC.RankDebtors()
	require.NoError(t, err)
	require.Equal(t, 2, debtors.Total)
	assert.Equal(t, "Beto", debtors.Items[0].Customer.Name)
	assert.True(t, decimal.NewFromInt(5000).Equal(debtors.Items[0].AmountOwed))
}

func TestCustomerStatement_SumaSoloPendientes(t *testing.T) {
	env := newTestEnv(t)
	env.seedCustomer(t, "ana", "Ana")
	env.seedProduct(t, entity.Product{ID: "arroz", Name: "Arroz", UnitPrice: decimal.NewFromInt(1000)})

	ctx := context.Background()
	first, err := env.purchaseUC.Create(ctx, dto.CreatePurchaseRequest{
		CustomerID: "ana",
		Items:      []dto.PurchaseItemRequest{{ProductID: "arroz", Quantity: 50}},
	})
	require.NoError(t, err)
	_, err = env.purchaseUC.Create(ctx, dto.CreatePurchaseRequest{
		CustomerID: "ana",
		Items:      []dto.PurchaseItemRequest{{ProductID: "arroz", Quantity: 30}},
	})
	require.NoError(t, err)

	// Pagar la primera: el saldo baja de 80000 a 30000
	_, err = env.purchaseUC.TogglePaid(first.ID)
	require.NoError(t, err)

	statement, err := env.ledgerUC.CustomerStatement("ana")
	require.NoError(t, err)
	assert.Len(t, statement.Purchases, 2)
	assert.True(t, decimal.NewFromInt(30000).Equal(statement.Balance),
		"el saldo debe ignorar las compras pagadas, obtuvo %s", statement.Balance)
}

func TestCustomerStatement_ClienteInexistenteFalla(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.ledgerUC.CustomerStatement("fantasma")
	assert.Equal(t, domain.ErrNotFound, err)
}
