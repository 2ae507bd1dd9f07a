package repository

import (
	"github.com/shopspring/decimal"

	"ordify/internal/domain"
)

// Static user directory keyed by PIN.
func seedUsers() map[string]domain.User {
	return map[string]domain.User{
		"000000": {PIN: "000000", Role: domain.RoleAdmin, Name: "Administrator"},
		"111111": {PIN: "111111", Role: domain.RoleServer, Name: "Server"},
		"222222": {PIN: "222222", Role: domain.RoleChefItalian, Name: "Italian Chef"},
		"333333": {PIN: "333333", Role: domain.RoleChefMexican, Name: "Mexican Chef"},
		"444444": {PIN: "444444", Role: domain.RoleBarista, Name: "Barista"},
	}
}

// seedProductOrder keeps inventory listings in menu order; map
// iteration would shuffle them per request.
var seedProductOrder = map[string][]string{
	domain.CategoryItalian: {"Pizza Margherita", "Lasagna"},
	domain.CategoryMexican: {"Tacos", "Burrito"},
	domain.CategoryDrinks:  {"Coffee", "Fresh Juice"},
}

// Initial stock and prices. There is no restock path: stock only ever
// goes down, until the process restarts.
func seedInventory() map[string]map[string]*domain.InventoryItem {
	price := decimal.RequireFromString
	return map[string]map[string]*domain.InventoryItem{
		domain.CategoryItalian: {
			"Pizza Margherita": {Name: "Pizza Margherita", Stock: 15, Price: price("12.99")},
			"Lasagna":          {Name: "Lasagna", Stock: 8, Price: price("14.50")},
		},
		domain.CategoryMexican: {
			"Tacos":   {Name: "Tacos", Stock: 20, Price: price("10.99")},
			"Burrito": {Name: "Burrito", Stock: 12, Price: price("11.50")},
		},
		domain.CategoryDrinks: {
			"Coffee":      {Name: "Coffee", Stock: 50, Price: price("3.99")},
			"Fresh Juice": {Name: "Fresh Juice", Stock: 25, Price: price("4.50")},
		},
	}
}
