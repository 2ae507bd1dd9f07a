package repository

import (
	"sync"

	"github.com/shopspring/decimal"

	"ordify/internal/domain"
)

// Memory holds the whole restaurant state in process. One mutex guards
// every operation: the HTTP layer serves concurrent requests, so each
// mutation (and each multi-step read) must be serialized to avoid lost
// stock updates.
//
// State is never persisted; a restart reseeds users and inventory and
// drops all tables and orders.
type Memory struct {
	mu sync.Mutex

	users     map[string]domain.User
	inventory map[string]map[string]*domain.InventoryItem
	tables    []domain.Table
	orders    []domain.Order
}

// NewMemory returns a store seeded with the static user directory and
// the initial inventory.
func NewMemory() *Memory {
	return &Memory{
		users:     seedUsers(),
		inventory: seedInventory(),
	}
}

func (m *Memory) UserByPIN(pin string) (domain.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[pin]
	return u, ok
}

func (m *Memory) Product(category, name string) (domain.InventoryItem, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cat, ok := m.inventory[category]
	if !ok {
		return domain.InventoryItem{}, false
	}
	item, ok := cat[name]
	if !ok {
		return domain.InventoryItem{}, false
	}
	return *item, true
}

// SetPrice changes a product's current price. Bills always read the
// current price, so this retroactively affects open tables.
func (m *Memory) SetPrice(category, name string, price decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cat, ok := m.inventory[category]
	if !ok {
		return domain.ErrProductNotFound
	}
	item, ok := cat[name]
	if !ok {
		return domain.ErrProductNotFound
	}
	item.Price = price
	return nil
}

func (m *Memory) ListInventory() []domain.InventoryCategory {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.InventoryCategory, 0, len(domain.Categories))
	for _, cat := range domain.Categories {
		products := m.inventory[cat]
		view := domain.InventoryCategory{Category: cat}
		for _, name := range seedProductOrder[cat] {
			p := products[name]
			view.Products = append(view.Products, domain.InventoryProduct{
				Name:  p.Name,
				Stock: p.Stock,
				Price: p.Price,
			})
		}
		out = append(out, view)
	}
	return out
}

func (m *Memory) AddTable(t domain.Table) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.tables {
		if existing.Number == t.Number {
			return domain.ErrDuplicateTable
		}
	}
	if t.Status == "" {
		t.Status = domain.TableActive
	}
	m.tables = append(m.tables, t)
	return nil
}

func (m *Memory) TableByNumber(number int) (domain.Table, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.tables {
		if t.Number == number {
			return t, true
		}
	}
	return domain.Table{}, false
}

func (m *Memory) ListTables() []domain.Table {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Table, len(m.tables))
	copy(out, m.tables)
	return out
}

func (m *Memory) RemoveTable(number int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, t := range m.tables {
		if t.Number == number {
			m.tables = append(m.tables[:i], m.tables[i+1:]...)
			return true
		}
	}
	return false
}

// CreateOrder is the one compound mutation: stock check, stock
// decrement and ledger append happen under a single lock so a failed
// line leaves every other line's stock untouched.
func (m *Memory) CreateOrder(tableNumber int, items []domain.OrderItem, creator string) (domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Validate every line before touching stock. Quantities are summed
	// per product first, so duplicate lines for the same product cannot
	// pass individually and then drive stock negative together.
	requested := make(map[string]map[string]int)
	for _, it := range items {
		if it.Quantity < 1 {
			return domain.Order{}, domain.ErrInvalidQuantity
		}
		cat, ok := m.inventory[it.Category]
		if !ok {
			return domain.Order{}, domain.ErrProductNotFound
		}
		product, ok := cat[it.Product]
		if !ok {
			return domain.Order{}, domain.ErrProductNotFound
		}
		if requested[it.Category] == nil {
			requested[it.Category] = make(map[string]int)
		}
		requested[it.Category][it.Product] += it.Quantity
		if requested[it.Category][it.Product] > product.Stock {
			return domain.Order{}, domain.ErrInsufficientStock
		}
	}

	stationStatus := make(map[string]domain.StationStatus)
	for _, it := range items {
		m.inventory[it.Category][it.Product].Stock -= it.Quantity
		if _, seen := stationStatus[it.Category]; !seen {
			stationStatus[it.Category] = domain.StationPending
		}
	}

	order := domain.Order{
		ID:            m.nextOrderID(),
		TableNumber:   tableNumber,
		Items:         append([]domain.OrderItem(nil), items...),
		Status:        domain.OrderPending,
		CreatedBy:     creator,
		StationStatus: stationStatus,
	}
	m.orders = append(m.orders, order)
	return copyOrder(order), nil
}

// nextOrderID assigns max existing id + 1, starting at 1. Deleting the
// newest order therefore frees its id for reuse. Caller holds the lock.
func (m *Memory) nextOrderID() int {
	max := 0
	for _, o := range m.orders {
		if o.ID > max {
			max = o.ID
		}
	}
	return max + 1
}

func (m *Memory) OrderByID(id int) (domain.Order, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.orders {
		if m.orders[i].ID == id {
			return copyOrder(m.orders[i]), true
		}
	}
	return domain.Order{}, false
}

// ListOrders returns the ledger in insertion order.
func (m *Memory) ListOrders() []domain.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Order, 0, len(m.orders))
	for i := range m.orders {
		out = append(out, copyOrder(m.orders[i]))
	}
	return out
}

func (m *Memory) RemoveOrder(id int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.orders {
		if m.orders[i].ID == id {
			m.orders = append(m.orders[:i], m.orders[i+1:]...)
			return true
		}
	}
	return false
}

// SetStationStatus overwrites the station entry unconditionally, so
// repeating a "sent" mark is a no-op rather than an error.
func (m *Memory) SetStationStatus(id int, category string, status domain.StationStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.orders {
		if m.orders[i].ID == id {
			if _, ok := m.orders[i].StationStatus[category]; !ok {
				return domain.ErrUnknownCategory
			}
			m.orders[i].StationStatus[category] = status
			return nil
		}
	}
	return domain.ErrOrderNotFound
}

// SetOrderStatus moves an order to a new status. Delivered and
// cancelled are terminal: nothing transitions out of them.
func (m *Memory) SetOrderStatus(id int, status domain.OrderStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.orders {
		if m.orders[i].ID != id {
			continue
		}
		cur := m.orders[i].Status
		if cur != domain.OrderPending && cur != status {
			return domain.ErrTerminalStatus
		}
		m.orders[i].Status = status
		return nil
	}
	return domain.ErrOrderNotFound
}

func copyOrder(o domain.Order) domain.Order {
	c := o
	c.Items = append([]domain.OrderItem(nil), o.Items...)
	c.StationStatus = make(map[string]domain.StationStatus, len(o.StationStatus))
	for k, v := range o.StationStatus {
		c.StationStatus[k] = v
	}
	return c
}
