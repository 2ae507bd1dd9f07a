package domain

import "github.com/shopspring/decimal"

type LoginRequest struct {
	PIN string `json:"pin"`
}

type LoginResponse struct {
	Name    string `json:"name"`
	Role    Role   `json:"role"`
	Station string `json:"station,omitempty"`
}

type CreateTableRequest struct {
	Number    int `json:"number"`
	PartySize int `json:"party_size"`
}

type TableView struct {
	Number    int         `json:"number"`
	PartySize int         `json:"party_size"`
	Status    TableStatus `json:"status"`
}

type CreateOrderItem struct {
	Category string `json:"category"`
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

type CreateOrderRequest struct {
	TableNumber int               `json:"table_number"`
	Creator     string            `json:"creator"`
	Items       []CreateOrderItem `json:"items"`
}

type OrderItemView struct {
	Category string `json:"category"`
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

type OrderView struct {
	ID            int                      `json:"id"`
	TableNumber   int                      `json:"table_number"`
	Status        OrderStatus              `json:"status"`
	CreatedBy     string                   `json:"created_by"`
	Items         []OrderItemView          `json:"items"`
	StationStatus map[string]StationStatus `json:"station_status"`
	Total         decimal.Decimal          `json:"total"`
}

// StationTicket is one station's slice of an order: only the items that
// station produces, priced at current inventory prices.
type StationTicket struct {
	OrderID     int             `json:"order_id"`
	TableNumber int             `json:"table_number"`
	Category    string          `json:"category"`
	CreatedBy   string          `json:"created_by"`
	Status      StationStatus   `json:"status"`
	Lines       []BillLine      `json:"lines"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// BillLine is one priced row of a table bill or station ticket. Unit
// price is the current inventory price, not a snapshot at order time.
type BillLine struct {
	OrderID   int             `json:"order_id"`
	Category  string          `json:"category"`
	Product   string          `json:"product"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type Bill struct {
	TableNumber int             `json:"table_number"`
	PartySize   int             `json:"party_size"`
	Lines       []BillLine      `json:"lines"`
	Total       decimal.Decimal `json:"total"`
}

type InventoryProduct struct {
	Name  string          `json:"name"`
	Stock int             `json:"stock"`
	Price decimal.Decimal `json:"price"`
}

type InventoryCategory struct {
	Category string             `json:"category"`
	Products []InventoryProduct `json:"products"`
}
