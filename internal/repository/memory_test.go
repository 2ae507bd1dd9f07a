package repository

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordify/internal/domain"
)

func pizza(qty int) domain.OrderItem {
	return domain.OrderItem{Category: domain.CategoryItalian, Product: "Pizza Margherita", Quantity: qty}
}

func coffee(qty int) domain.OrderItem {
	return domain.OrderItem{Category: domain.CategoryDrinks, Product: "Coffee", Quantity: qty}
}

func TestSeededStore(t *testing.T) {
	m := NewMemory()

	u, ok := m.UserByPIN("000000")
	require.True(t, ok)
	assert.Equal(t, domain.RoleAdmin, u.Role)

	_, ok = m.UserByPIN("999999")
	assert.False(t, ok)

	p, ok := m.Product(domain.CategoryItalian, "Pizza Margherita")
	require.True(t, ok)
	assert.Equal(t, 15, p.Stock)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("12.99")))
}

func TestOrderIDsStrictlyIncreasingFromOne(t *testing.T) {
	m := NewMemory()
	for i := 1; i <= 5; i++ {
		o, err := m.CreateOrder(1, []domain.OrderItem{coffee(1)}, "Server")
		require.NoError(t, err)
		assert.Equal(t, i, o.ID)
	}
}

func TestCreateOrderDecrementsStock(t *testing.T) {
	m := NewMemory()

	_, err := m.CreateOrder(1, []domain.OrderItem{pizza(2)}, "Server")
	require.NoError(t, err)

	p, _ := m.Product(domain.CategoryItalian, "Pizza Margherita")
	assert.Equal(t, 13, p.Stock)

	// Two orders for q1+q2 <= stock leave stock0 - q1 - q2.
	_, err = m.CreateOrder(1, []domain.OrderItem{pizza(3)}, "Server")
	require.NoError(t, err)
	p, _ = m.Product(domain.CategoryItalian, "Pizza Margherita")
	assert.Equal(t, 10, p.Stock)
}

func TestCreateOrderAllOrNothing(t *testing.T) {
	m := NewMemory()

	// Second line exceeds stock: first line's stock must stay intact.
	_, err := m.CreateOrder(1, []domain.OrderItem{pizza(2), coffee(100)}, "Server")
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	p, _ := m.Product(domain.CategoryItalian, "Pizza Margherita")
	assert.Equal(t, 15, p.Stock)
	c, _ := m.Product(domain.CategoryDrinks, "Coffee")
	assert.Equal(t, 50, c.Stock)
	assert.Empty(t, m.ListOrders())
}

func TestCreateOrderSumsDuplicateLines(t *testing.T) {
	m := NewMemory()

	// Each line alone fits the stock of 15, together they do not.
	_, err := m.CreateOrder(1, []domain.OrderItem{pizza(10), pizza(10)}, "Server")
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	p, _ := m.Product(domain.CategoryItalian, "Pizza Margherita")
	assert.Equal(t, 15, p.Stock)
	assert.Empty(t, m.ListOrders())

	// Duplicate lines that do fit are all applied.
	o, err := m.CreateOrder(1, []domain.OrderItem{pizza(10), pizza(5)}, "Server")
	require.NoError(t, err)
	require.Len(t, o.Items, 2)
	p, _ = m.Product(domain.CategoryItalian, "Pizza Margherita")
	assert.Equal(t, 0, p.Stock)
}

func TestCreateOrderRejectsNonPositiveQuantity(t *testing.T) {
	m := NewMemory()

	for _, qty := range []int{0, -3} {
		_, err := m.CreateOrder(1, []domain.OrderItem{pizza(1), coffee(qty)}, "Server")
		require.ErrorIs(t, err, domain.ErrInvalidQuantity)
	}

	// A negative quantity must never restock inventory.
	p, _ := m.Product(domain.CategoryItalian, "Pizza Margherita")
	assert.Equal(t, 15, p.Stock)
	c, _ := m.Product(domain.CategoryDrinks, "Coffee")
	assert.Equal(t, 50, c.Stock)
	assert.Empty(t, m.ListOrders())
}

func TestCreateOrderUnknownProduct(t *testing.T) {
	m := NewMemory()

	_, err := m.CreateOrder(1, []domain.OrderItem{
		{Category: domain.CategoryItalian, Product: "Carbonara", Quantity: 1},
	}, "Server")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = m.CreateOrder(1, []domain.OrderItem{
		{Category: "sushi", Product: "Nigiri", Quantity: 1},
	}, "Server")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestStationStatusSeededPerCategory(t *testing.T) {
	m := NewMemory()

	o, err := m.CreateOrder(1, []domain.OrderItem{pizza(1), pizza(1), coffee(2)}, "Server")
	require.NoError(t, err)

	require.Len(t, o.StationStatus, 2)
	assert.Equal(t, domain.StationPending, o.StationStatus[domain.CategoryItalian])
	assert.Equal(t, domain.StationPending, o.StationStatus[domain.CategoryDrinks])
	_, hasMexican := o.StationStatus[domain.CategoryMexican]
	assert.False(t, hasMexican)
}

func TestSetStationStatus(t *testing.T) {
	m := NewMemory()
	o, err := m.CreateOrder(1, []domain.OrderItem{pizza(1)}, "Server")
	require.NoError(t, err)

	require.NoError(t, m.SetStationStatus(o.ID, domain.CategoryItalian, domain.StationSent))
	got, _ := m.OrderByID(o.ID)
	assert.Equal(t, domain.StationSent, got.StationStatus[domain.CategoryItalian])

	// A station the order never touched is rejected to keep the
	// status map's keys matching the items.
	assert.ErrorIs(t, m.SetStationStatus(o.ID, domain.CategoryDrinks, domain.StationSent), domain.ErrUnknownCategory)
	assert.ErrorIs(t, m.SetStationStatus(404, domain.CategoryItalian, domain.StationSent), domain.ErrOrderNotFound)
}

func TestTerminalStatusesStayTerminal(t *testing.T) {
	m := NewMemory()
	o, err := m.CreateOrder(1, []domain.OrderItem{coffee(1)}, "Server")
	require.NoError(t, err)

	require.NoError(t, m.SetOrderStatus(o.ID, domain.OrderCancelled))
	assert.ErrorIs(t, m.SetOrderStatus(o.ID, domain.OrderDelivered), domain.ErrTerminalStatus)

	got, _ := m.OrderByID(o.ID)
	assert.Equal(t, domain.OrderCancelled, got.Status)

	// Re-marking the same terminal status stays a no-op.
	assert.NoError(t, m.SetOrderStatus(o.ID, domain.OrderCancelled))
}

func TestDuplicateTableRejected(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.AddTable(domain.Table{Number: 1, PartySize: 2}))

	err := m.AddTable(domain.Table{Number: 1, PartySize: 6})
	assert.ErrorIs(t, err, domain.ErrDuplicateTable)

	tables := m.ListTables()
	require.Len(t, tables, 1)
	assert.Equal(t, 2, tables[0].PartySize)
}

func TestRemoveTableLeavesOrders(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.AddTable(domain.Table{Number: 1, PartySize: 2}))
	o, err := m.CreateOrder(1, []domain.OrderItem{pizza(1)}, "Server")
	require.NoError(t, err)

	assert.True(t, m.RemoveTable(1))
	assert.False(t, m.RemoveTable(1))

	// The ledger keeps the order with a now-dangling table number.
	got, ok := m.OrderByID(o.ID)
	require.True(t, ok)
	assert.Equal(t, 1, got.TableNumber)
}

func TestRemoveOrderFreesNewestID(t *testing.T) {
	m := NewMemory()
	first, _ := m.CreateOrder(1, []domain.OrderItem{coffee(1)}, "Server")
	second, _ := m.CreateOrder(1, []domain.OrderItem{coffee(1)}, "Server")
	require.Equal(t, 2, second.ID)

	require.True(t, m.RemoveOrder(second.ID))
	third, _ := m.CreateOrder(1, []domain.OrderItem{coffee(1)}, "Server")
	assert.Equal(t, 2, third.ID)

	_, ok := m.OrderByID(second.ID)
	assert.True(t, ok) // id was reused by third
	assert.Equal(t, 1, first.ID)
}

func TestListOrdersCopiesState(t *testing.T) {
	m := NewMemory()
	_, err := m.CreateOrder(1, []domain.OrderItem{pizza(1)}, "Server")
	require.NoError(t, err)

	out := m.ListOrders()
	out[0].StationStatus[domain.CategoryItalian] = domain.StationSent
	out[0].Items[0].Quantity = 99

	fresh := m.ListOrders()
	assert.Equal(t, domain.StationPending, fresh[0].StationStatus[domain.CategoryItalian])
	assert.Equal(t, 1, fresh[0].Items[0].Quantity)
}

func TestSetPrice(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.SetPrice(domain.CategoryDrinks, "Coffee", decimal.RequireFromString("5.25")))
	p, _ := m.Product(domain.CategoryDrinks, "Coffee")
	assert.True(t, p.Price.Equal(decimal.RequireFromString("5.25")))

	assert.ErrorIs(t, m.SetPrice(domain.CategoryDrinks, "Mate", decimal.Zero), domain.ErrProductNotFound)
}
