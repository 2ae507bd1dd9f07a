package domain

import "errors"

// Every failure the core can signal. All are recoverable: the operation
// is rejected and state is left unchanged.
var (
	ErrInvalidPin        = errors.New("pin must be exactly 6 digits")
	ErrUnknownPin        = errors.New("no user matches the given pin")
	ErrUnrecognizedRole  = errors.New("role is not mapped to a station")
	ErrDuplicateTable    = errors.New("a table with that number already exists")
	ErrTableNotFound     = errors.New("table not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrEmptyOrder        = errors.New("order must contain at least one item")
	ErrProductNotFound   = errors.New("product not found in inventory")
	ErrInsufficientStock = errors.New("requested quantity exceeds available stock")
	ErrEmptyBill         = errors.New("table has no billable orders")
	ErrUnknownCategory   = errors.New("unknown inventory category")
	ErrInvalidTable      = errors.New("table number and party size must be positive")
	ErrInvalidQuantity   = errors.New("item quantity must be at least 1")
	ErrTerminalStatus    = errors.New("delivered and cancelled orders cannot change status")
)
