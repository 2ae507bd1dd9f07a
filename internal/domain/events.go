package domain

import "time"

// Event types published to the notifications exchange.
const (
	EventOrderCreated   = "order.created"
	EventStationSent    = "station.sent"
	EventOrderDelivered = "order.delivered"
	EventOrderDeleted   = "order.deleted"
	EventTableClosed    = "table.closed"
)

// Event is the message body for every order-lifecycle notification.
// Consumers key off Type; the remaining fields are filled as relevant.
type Event struct {
	Type        string    `json:"type"`
	OrderID     int       `json:"order_id,omitempty"`
	TableNumber int       `json:"table_number,omitempty"`
	Station     string    `json:"station,omitempty"`
	CreatedBy   string    `json:"created_by,omitempty"`
	Total       string    `json:"total,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}
