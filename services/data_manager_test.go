package services_test

import (
	"fmt"
	"testing"
	"time"

	"kifkif-backend/config"
	"kifkif-backend/models"
	"kifkif-backend/services"
	"kifkif-backend/store"
	"kifkif-backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() (*services.DataManager, *store.MemoryStore) {
	ms := store.NewMemoryStore()
	dm := services.NewDataManager(ms, "kifkif_", config.DefaultSeedCatalog())
	return dm, ms
}

func TestSeedsCatalogOnFirstRun(t *testing.T) {
	dm, _ := newTestManager()

	products := dm.GetProducts()
	require.Len(t, products, 8)
	assert.Equal(t, "Performance Tank", products[0].Name)
	assert.Equal(t, "Wrist Wraps", products[7].Name)
}

func TestReinitializationKeepsExistingProducts(t *testing.T) {
	dm, ms := newTestManager()

	dm.SetProducts([]models.Product{{ID: 42, Name: "Lone Item", Stock: 3}})

	// A second manager over the same store must not re-seed
	dm2 := services.NewDataManager(ms, "kifkif_", config.DefaultSeedCatalog())
	products := dm2.GetProducts()
	require.Len(t, products, 1)
	assert.Equal(t, "Lone Item", products[0].Name)
}

func TestAddProductAssignsIDAndForcesDefaults(t *testing.T) {
	dm, _ := newTestManager()

	created := dm.AddProduct(models.Product{
		ID:    999,
		Name:  "Headband",
		Price: 19.99,
		Stock: 50,
		Color: "#000000",
		Emoji: "🎩",
	})

	assert.Equal(t, 9, created.ID) // seed ids run 1..8
	assert.Equal(t, 0, created.Stock)
	assert.Equal(t, "#667eea", created.Color)
	assert.Equal(t, "👕", created.Emoji)

	products := dm.GetProducts()
	require.Len(t, products, 9)
	assert.Equal(t, created, products[8])
}

func TestDeleteProduct(t *testing.T) {
	dm, _ := newTestManager()

	created := dm.AddProduct(models.Product{Name: "Headband"})
	require.True(t, dm.DeleteProduct(created.ID))

	for _, p := range dm.GetProducts() {
		assert.NotEqual(t, created.ID, p.ID)
	}

	assert.False(t, dm.DeleteProduct(created.ID))
}

func TestUpdateProductMergesOnlySuppliedFields(t *testing.T) {
	dm, _ := newTestManager()

	price := 59.99
	require.True(t, dm.UpdateProduct(1, services.ProductPatch{Price: &price}))

	products := dm.GetProducts()
	assert.Equal(t, 59.99, products[0].Price)
	assert.Equal(t, "Performance Tank", products[0].Name)
	assert.Equal(t, 50, products[0].Stock)

	assert.False(t, dm.UpdateProduct(12345, services.ProductPatch{Price: &price}))
}

func TestAddOrderGeneratesSequentialIDs(t *testing.T) {
	dm, _ := newTestManager()

	for i := 1; i <= 12; i++ {
		order := dm.AddOrder(services.OrderInput{
			Name:  "Jo",
			Email: fmt.Sprintf("jo%d@example.com", i),
			Total: 10,
		})
		assert.Equal(t, fmt.Sprintf("ORD%03d", i), order.ID)
	}

	orders := dm.GetOrders()
	require.Len(t, orders, 12)
	assert.Equal(t, "ORD001", orders[0].ID)
	assert.Equal(t, "ORD012", orders[11].ID)
}

func TestAddOrderForcesPendingStatusAndDate(t *testing.T) {
	dm, _ := newTestManager()

	order := dm.AddOrder(services.OrderInput{Name: "Jo", Email: "jo@example.com", Total: 80})
	assert.Equal(t, "pending", order.Status)
	assert.Equal(t, utils.FormatDate(time.Now()), order.Date)
}

func TestAddOrderDecrementsStock(t *testing.T) {
	dm, _ := newTestManager()

	// Seed product 4 (Gym Shorts) starts with 20 in stock
	dm.AddOrder(services.OrderInput{
		Items: []models.OrderItem{{ID: 4, Quantity: 3}},
		Name:  "Jo",
		Email: "jo@example.com",
		Total: 269.97,
	})

	products := dm.GetProducts()
	assert.Equal(t, 17, products[3].Stock)
}

func TestAddOrderClampsStockAtZero(t *testing.T) {
	dm, _ := newTestManager()

	// Training Jacket (id 6) has only 2 in stock
	dm.AddOrder(services.OrderInput{
		Items: []models.OrderItem{{ID: 6, Quantity: 10}},
		Name:  "Jo",
		Email: "jo@example.com",
		Total: 1999.90,
	})

	products := dm.GetProducts()
	assert.Equal(t, 0, products[5].Stock)
}

func TestAddOrderIgnoresUnknownItems(t *testing.T) {
	dm, _ := newTestManager()

	dm.AddOrder(services.OrderInput{
		Items: []models.OrderItem{{ID: 9999, Quantity: 1}},
		Name:  "Jo",
		Email: "jo@example.com",
		Total: 10,
	})

	require.Len(t, dm.GetOrders(), 1)
}

func TestUpdateOrderStatus(t *testing.T) {
	dm, _ := newTestManager()

	order := dm.AddOrder(services.OrderInput{Name: "Jo", Email: "jo@example.com", Total: 100})
	require.True(t, dm.UpdateOrderStatus(order.ID, "completed"))
	assert.Equal(t, "completed", dm.GetOrders()[0].Status)

	assert.False(t, dm.UpdateOrderStatus("ORD999", "completed"))
}

func TestCustomerAggregation(t *testing.T) {
	dm, _ := newTestManager()

	dm.AddOrder(services.OrderInput{Name: "Ash", Email: "ash@example.com", Phone: "555-0001", Total: 100})
	dm.AddOrder(services.OrderInput{Name: "Ash", Email: "ash@example.com", Total: 50.5})
	dm.AddOrder(services.OrderInput{Name: "Sam", Email: "sam@example.com", Total: 75})

	customers := dm.GetCustomers()
	require.Len(t, customers, 2)

	assert.Equal(t, "Ash", customers[0].Name)
	assert.Equal(t, 2, customers[0].OrderCount)
	assert.InDelta(t, 150.5, customers[0].TotalSpent, 1e-9)

	assert.Equal(t, "sam@example.com", customers[1].Email)
	assert.Equal(t, 1, customers[1].OrderCount)
	assert.Equal(t, 75.0, customers[1].TotalSpent)
}

func TestCustomerEmailMatchIsExact(t *testing.T) {
	dm, _ := newTestManager()

	dm.AddOrder(services.OrderInput{Name: "Ash", Email: "ash@example.com", Total: 100})
	dm.AddOrder(services.OrderInput{Name: "Ash", Email: "Ash@example.com", Total: 100})

	assert.Len(t, dm.GetCustomers(), 2)
}

func TestGetInventoryProjection(t *testing.T) {
	dm, _ := newTestManager()

	inventory := dm.GetInventory()
	require.Len(t, inventory, 8)
	assert.Equal(t, models.InventoryItem{
		ID:       1,
		Name:     "Performance Tank",
		Category: "tops",
		Price:    79.99,
		Stock:    50,
	}, inventory[0])
}

func TestUpdateStockClampsNegativeValues(t *testing.T) {
	dm, _ := newTestManager()

	require.True(t, dm.UpdateStock(1, -5))
	assert.Equal(t, 0, dm.GetProducts()[0].Stock)

	require.True(t, dm.UpdateStock(1, 25))
	assert.Equal(t, 25, dm.GetProducts()[0].Stock)

	assert.False(t, dm.UpdateStock(12345, 10))
}

func TestLowStockThresholdIsStrict(t *testing.T) {
	dm, _ := newTestManager()

	dm.UpdateStock(1, 9)
	dm.UpdateStock(2, 10)

	low := dm.GetLowStockItems()
	ids := make([]int, 0, len(low))
	for _, p := range low {
		ids = append(ids, p.ID)
	}
	assert.Contains(t, ids, 1)
	assert.NotContains(t, ids, 2)
}

func TestTotalRevenueCountsOnlyCompletedOrders(t *testing.T) {
	dm, _ := newTestManager()

	first := dm.AddOrder(services.OrderInput{Name: "Jo", Email: "jo@example.com", Total: 100})
	dm.AddOrder(services.OrderInput{Name: "Jo", Email: "jo@example.com", Total: 40})
	second := dm.AddOrder(services.OrderInput{Name: "Jo", Email: "jo@example.com", Total: 60})

	assert.Equal(t, 0.0, dm.GetTotalRevenue())

	dm.UpdateOrderStatus(first.ID, "completed")
	dm.UpdateOrderStatus(second.ID, "completed")
	assert.InDelta(t, 160.0, dm.GetTotalRevenue(), 1e-9)
}

func TestClearAllDataResetsToSeed(t *testing.T) {
	dm, _ := newTestManager()

	dm.AddProduct(models.Product{Name: "Headband"})
	dm.AddOrder(services.OrderInput{Name: "Jo", Email: "jo@example.com", Total: 100})

	dm.ClearAllData()

	assert.Empty(t, dm.GetOrders())
	assert.Empty(t, dm.GetCustomers())

	products := dm.GetProducts()
	require.Len(t, products, 8)
	assert.Equal(t, "Performance Tank", products[0].Name)
	assert.Equal(t, 50, products[0].Stock)
}

func TestCorruptCollectionDegradesToEmpty(t *testing.T) {
	dm, ms := newTestManager()

	require.NoError(t, ms.Set("kifkif_orders", "{not json"))
	assert.Empty(t, dm.GetOrders())

	require.NoError(t, ms.Set("kifkif_products", "also not json"))
	assert.Empty(t, dm.GetProducts())
}
