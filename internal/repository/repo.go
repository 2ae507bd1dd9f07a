package repository

import "ordify/internal/domain"

type UserRepositoryInterface interface {
	UserByPIN(pin string) (domain.User, bool)
}

type InventoryRepositoryInterface interface {
	Product(category, name string) (domain.InventoryItem, bool)
	ListInventory() []domain.InventoryCategory
}

type TableRepositoryInterface interface {
	AddTable(t domain.Table) error
	TableByNumber(number int) (domain.Table, bool)
	ListTables() []domain.Table
	RemoveTable(number int) bool
}

type OrderRepositoryInterface interface {
	// CreateOrder validates every line against current stock and either
	// decrements all of them and appends the order, or mutates nothing.
	CreateOrder(tableNumber int, items []domain.OrderItem, creator string) (domain.Order, error)
	OrderByID(id int) (domain.Order, bool)
	ListOrders() []domain.Order
	RemoveOrder(id int) bool
	SetStationStatus(id int, category string, status domain.StationStatus) error
	SetOrderStatus(id int, status domain.OrderStatus) error
}
