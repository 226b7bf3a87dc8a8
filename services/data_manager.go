// services/data_manager.go
package services

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"kifkif-backend/models"
	"kifkif-backend/store"
	"kifkif-backend/utils"
)

const (
	keyProducts  = "products"
	keyOrders    = "orders"
	keyCustomers = "customers"

	defaultProductColor = "#667eea"
	defaultProductEmoji = "👕"

	lowStockThreshold = 10
)

// ProductPatch carries the fields an update may change. Nil fields are left
// untouched, matching the admin panel's partial edit forms.
type ProductPatch struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Size        *string  `json:"size"`
	Color       *string  `json:"color"`
	Emoji       *string  `json:"emoji"`
	Description *string  `json:"description"`
	Stock       *int     `json:"stock"`
}

// OrderInput is the checkout payload submitted by the storefront.
type OrderInput struct {
	Items []models.OrderItem `json:"items" binding:"required"`
	Name  string             `json:"name" binding:"required"`
	Email string             `json:"email" binding:"required"`
	Phone string             `json:"phone"`
	Total float64            `json:"total"`
}

// DataManager owns the three persisted collections (products, orders,
// customers) and every read-modify-write cycle against them. Each public
// method runs as one atomic unit under the manager's lock; the store itself
// holds no other shared state.
type DataManager struct {
	mu     sync.Mutex
	store  store.Store
	prefix string
	seed   []models.Product
}

// NewDataManager wires a manager over the given store and seeds the product
// catalog if it is absent or empty. Orders and customers start implicitly
// empty via the accessors' fallback.
func NewDataManager(st store.Store, prefix string, seed []models.Product) *DataManager {
	dm := &DataManager{
		store:  st,
		prefix: prefix,
		seed:   seed,
	}
	dm.mu.Lock()
	dm.initializeDefaults()
	dm.mu.Unlock()
	return dm
}

func (dm *DataManager) initializeDefaults() {
	products := dm.loadProducts()
	if len(products) == 0 {
		dm.saveProducts(dm.seed)
	}
}

// Products

func (dm *DataManager) GetProducts() []models.Product {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	return dm.loadProducts()
}

// SetProducts replaces the whole catalog in a single write.
func (dm *DataManager) SetProducts(products []models.Product) {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	dm.saveProducts(products)
}

// AddProduct appends a new product. The id is assigned as max existing id + 1
// and stock, color and emoji are forced to their defaults regardless of what
// the caller supplied. Returns the stored record.
func (dm *DataManager) AddProduct(product models.Product) models.Product {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	products := dm.loadProducts()
	maxID := 0
	for _, p := range products {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	product.ID = maxID + 1
	product.Stock = 0
	product.Color = defaultProductColor
	product.Emoji = defaultProductEmoji

	products = append(products, product)
	dm.saveProducts(products)
	return product
}

// UpdateProduct shallow-merges the patch over the first product with the
// given id. Returns false when no product matches; the miss is not an error.
func (dm *DataManager) UpdateProduct(id int, patch ProductPatch) bool {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	return dm.updateProduct(id, patch)
}

func (dm *DataManager) updateProduct(id int, patch ProductPatch) bool {
	products := dm.loadProducts()
	for i := range products {
		if products[i].ID != id {
			continue
		}
		if patch.Name != nil {
			products[i].Name = *patch.Name
		}
		if patch.Price != nil {
			products[i].Price = *patch.Price
		}
		if patch.Category != nil {
			products[i].Category = *patch.Category
		}
		if patch.Size != nil {
			products[i].Size = *patch.Size
		}
		if patch.Color != nil {
			products[i].Color = *patch.Color
		}
		if patch.Emoji != nil {
			products[i].Emoji = *patch.Emoji
		}
		if patch.Description != nil {
			products[i].Description = *patch.Description
		}
		if patch.Stock != nil {
			products[i].Stock = *patch.Stock
		}
		dm.saveProducts(products)
		return true
	}
	return false
}

// DeleteProduct removes every product with the given id. Returns false when
// nothing matched.
func (dm *DataManager) DeleteProduct(id int) bool {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	products := dm.loadProducts()
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(products) {
		return false
	}
	dm.saveProducts(kept)
	return true
}

// Orders

func (dm *DataManager) GetOrders() []models.Order {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	return dm.loadOrders()
}

// AddOrder creates an order from the checkout payload. The id is positional
// ("ORD" + order count + 1, zero-padded to three digits — orders are never
// deleted, so the sequence never collides), status starts as pending and the
// date is the current day. Stock for each ordered item is decremented,
// clamped at zero: a quantity above the available stock empties the shelf
// rather than failing the order. Customer aggregates are updated last.
func (dm *DataManager) AddOrder(input OrderInput) models.Order {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	orders := dm.loadOrders()
	order := models.Order{
		ID:     fmt.Sprintf("ORD%03d", len(orders)+1),
		Items:  input.Items,
		Name:   input.Name,
		Email:  input.Email,
		Phone:  input.Phone,
		Total:  input.Total,
		Status: "pending",
		Date:   utils.FormatDate(time.Now()),
	}

	products := dm.loadProducts()
	for _, item := range order.Items {
		for i := range products {
			if products[i].ID == item.ID {
				products[i].Stock = max(0, products[i].Stock-item.Quantity)
				break
			}
		}
	}
	dm.saveProducts(products)

	orders = append(orders, order)
	dm.saveOrders(orders)

	dm.updateCustomerData(order)
	return order
}

// UpdateOrderStatus sets the status of the first order with the given id.
// Returns false when no order matches.
func (dm *DataManager) UpdateOrderStatus(orderID, status string) bool {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	orders := dm.loadOrders()
	for i := range orders {
		if orders[i].ID == orderID {
			orders[i].Status = status
			dm.saveOrders(orders)
			return true
		}
	}
	return false
}

// Customers

func (dm *DataManager) GetCustomers() []models.Customer {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	return dm.loadCustomers()
}

// updateCustomerData folds an order into the customer aggregates. Customers
// are keyed by the exact email string on the order. Caller holds the lock.
func (dm *DataManager) updateCustomerData(order models.Order) {
	customers := dm.loadCustomers()
	for i := range customers {
		if customers[i].Email == order.Email {
			customers[i].OrderCount++
			customers[i].TotalSpent += order.Total
			customers[i].LastOrder = order.Date
			dm.saveCustomers(customers)
			return
		}
	}
	customers = append(customers, models.Customer{
		Name:       order.Name,
		Email:      order.Email,
		Phone:      order.Phone,
		OrderCount: 1,
		TotalSpent: order.Total,
		LastOrder:  order.Date,
	})
	dm.saveCustomers(customers)
}

// Inventory and reporting

func (dm *DataManager) GetInventory() []models.InventoryItem {
	products := dm.GetProducts()
	inventory := make([]models.InventoryItem, 0, len(products))
	for _, p := range products {
		inventory = append(inventory, models.InventoryItem{
			ID:       p.ID,
			Name:     p.Name,
			Category: p.Category,
			Price:    p.Price,
			Stock:    p.Stock,
		})
	}
	return inventory
}

// UpdateStock sets a product's stock, clamped at zero.
func (dm *DataManager) UpdateStock(productID, newStock int) bool {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	stock := max(0, newStock)
	return dm.updateProduct(productID, ProductPatch{Stock: &stock})
}

// GetLowStockItems lists products with fewer than ten units left.
func (dm *DataManager) GetLowStockItems() []models.Product {
	products := dm.GetProducts()
	low := []models.Product{}
	for _, p := range products {
		if p.Stock < lowStockThreshold {
			low = append(low, p)
		}
	}
	return low
}

// GetTotalRevenue sums the totals of completed orders only.
func (dm *DataManager) GetTotalRevenue() float64 {
	orders := dm.GetOrders()
	var revenue float64
	for _, o := range orders {
		if o.Status == "completed" {
			revenue += o.Total
		}
	}
	return revenue
}

// ClearAllData drops all three collections and re-seeds the catalog.
func (dm *DataManager) ClearAllData() {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	for _, name := range []string{keyProducts, keyOrders, keyCustomers} {
		if err := dm.store.Delete(dm.prefix + name); err != nil {
			log.Printf("Failed to delete %s: %v", name, err)
		}
	}
	dm.initializeDefaults()
}

// Store boundary. Absent keys and undecodable values degrade to an empty
// collection; nothing at this layer raises.

func (dm *DataManager) loadProducts() []models.Product {
	var products []models.Product
	if !dm.loadCollection(keyProducts, &products) {
		return []models.Product{}
	}
	return products
}

func (dm *DataManager) loadOrders() []models.Order {
	var orders []models.Order
	if !dm.loadCollection(keyOrders, &orders) {
		return []models.Order{}
	}
	return orders
}

func (dm *DataManager) loadCustomers() []models.Customer {
	var customers []models.Customer
	if !dm.loadCollection(keyCustomers, &customers) {
		return []models.Customer{}
	}
	return customers
}

func (dm *DataManager) loadCollection(name string, out interface{}) bool {
	raw, ok := dm.store.Get(dm.prefix + name)
	if !ok {
		return false
	}
	return json.Unmarshal([]byte(raw), out) == nil
}

func (dm *DataManager) saveProducts(products []models.Product) {
	dm.saveCollection(keyProducts, products)
}

func (dm *DataManager) saveOrders(orders []models.Order) {
	dm.saveCollection(keyOrders, orders)
}

func (dm *DataManager) saveCustomers(customers []models.Customer) {
	dm.saveCollection(keyCustomers, customers)
}

func (dm *DataManager) saveCollection(name string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("Failed to encode %s: %v", name, err)
		return
	}
	if err := dm.store.Set(dm.prefix+name, string(raw)); err != nil {
		log.Printf("Failed to persist %s: %v", name, err)
	}
}
