package domain

import "github.com/shopspring/decimal"

type Role string

const (
	RoleAdmin       Role = "admin"
	RoleServer      Role = "server"
	RoleChefItalian Role = "chef_italian"
	RoleChefMexican Role = "chef_mexican"
	RoleBarista     Role = "barista"
)

// Inventory category keys double as station identifiers.
const (
	CategoryItalian = "italian_food"
	CategoryMexican = "mexican_food"
	CategoryDrinks  = "drinks"
)

// Categories lists every category in menu order.
var Categories = []string{CategoryItalian, CategoryMexican, CategoryDrinks}

// StationForRole maps a kitchen/bar role to the category it fulfills.
// Admin and server roles have no station.
func StationForRole(r Role) (string, bool) {
	switch r {
	case RoleChefItalian:
		return CategoryItalian, true
	case RoleChefMexican:
		return CategoryMexican, true
	case RoleBarista:
		return CategoryDrinks, true
	default:
		return "", false
	}
}

// ValidCategory reports whether cat is a known inventory category.
func ValidCategory(cat string) bool {
	for _, c := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

type User struct {
	PIN  string
	Role Role
	Name string
}

type TableStatus string

const (
	TableActive TableStatus = "active"
	TableClosed TableStatus = "closed"
)

type Table struct {
	Number    int
	PartySize int
	Status    TableStatus
}

type InventoryItem struct {
	Name  string
	Stock int
	Price decimal.Decimal
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderDelivered OrderStatus = "delivered"
	// OrderCancelled is honored by the billing and table filters but no
	// operation currently sets it.
	OrderCancelled OrderStatus = "cancelled"
)

type StationStatus string

const (
	StationPending StationStatus = "pending"
	StationSent    StationStatus = "sent"
)

type OrderItem struct {
	Category string
	Product  string
	Quantity int
}

type Order struct {
	ID          int
	TableNumber int
	Items       []OrderItem
	Status      OrderStatus
	CreatedBy   string
	// StationStatus holds exactly the distinct categories present in
	// Items, each starting at "pending".
	StationStatus map[string]StationStatus
}

// Stations returns the order's categories in first-seen item order.
func (o *Order) Stations() []string {
	seen := make(map[string]bool, len(o.StationStatus))
	var out []string
	for _, it := range o.Items {
		if !seen[it.Category] {
			seen[it.Category] = true
			out = append(out, it.Category)
		}
	}
	return out
}

// HasCategory reports whether at least one item belongs to cat.
func (o *Order) HasCategory(cat string) bool {
	for _, it := range o.Items {
		if it.Category == cat {
			return true
		}
	}
	return false
}
