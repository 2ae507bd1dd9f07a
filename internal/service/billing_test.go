package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordify/internal/domain"
)

func TestBillTableExample(t *testing.T) {
	store, svc := newFixture(t)

	_, err := svc.Orders.Create(orderReq(1, item(domain.CategoryItalian, "Pizza Margherita", 2)))
	require.NoError(t, err)

	p, _ := store.Product(domain.CategoryItalian, "Pizza Margherita")
	assert.Equal(t, 13, p.Stock)

	bill, err := svc.Billing.BillTable(1)
	require.NoError(t, err)
	assert.Equal(t, "25.98", bill.Total.String())
	require.Len(t, bill.Lines, 1)
	assert.Equal(t, 1, bill.Lines[0].OrderID)
	assert.Equal(t, "Pizza Margherita", bill.Lines[0].Product)
	assert.Equal(t, 2, bill.Lines[0].Quantity)
	assert.Equal(t, "12.99", bill.Lines[0].UnitPrice.String())
	assert.Equal(t, "25.98", bill.Lines[0].Subtotal.String())
	assert.Equal(t, 4, bill.PartySize)
}

func TestBillUsesCurrentPriceNotSnapshot(t *testing.T) {
	store, svc := newFixture(t)

	_, err := svc.Orders.Create(orderReq(1, item(domain.CategoryItalian, "Pizza Margherita", 2)))
	require.NoError(t, err)

	require.NoError(t, store.SetPrice(domain.CategoryItalian, "Pizza Margherita", decimal.RequireFromString("20.00")))

	bill, err := svc.Billing.BillTable(1)
	require.NoError(t, err)
	assert.True(t, bill.Total.Equal(decimal.RequireFromString("40.00")), "got %s", bill.Total)
}

func TestBillSpansMultipleOrders(t *testing.T) {
	_, svc := newFixture(t)

	_, err := svc.Orders.Create(orderReq(1, item(domain.CategoryMexican, "Tacos", 3)))
	require.NoError(t, err)
	_, err = svc.Orders.Create(orderReq(1, item(domain.CategoryDrinks, "Fresh Juice", 2)))
	require.NoError(t, err)

	bill, err := svc.Billing.BillTable(1)
	require.NoError(t, err)
	require.Len(t, bill.Lines, 2)
	assert.Equal(t, "41.97", bill.Total.String()) // 3*10.99 + 2*4.50
}

func TestBillExcludesCancelledOrders(t *testing.T) {
	store, svc := newFixture(t)

	first, err := svc.Orders.Create(orderReq(1, item(domain.CategoryDrinks, "Coffee", 1)))
	require.NoError(t, err)
	_, err = svc.Orders.Create(orderReq(1, item(domain.CategoryDrinks, "Coffee", 2)))
	require.NoError(t, err)

	// No operation cancels an order; force the reserved status to
	// check the filter.
	require.NoError(t, store.SetOrderStatus(first.ID, domain.OrderCancelled))

	bill, err := svc.Billing.BillTable(1)
	require.NoError(t, err)
	require.Len(t, bill.Lines, 1)
	assert.Equal(t, "7.98", bill.Total.String())

	orders := svc.Tables.Orders(1)
	require.Len(t, orders, 1)
	assert.Equal(t, 2, orders[0].ID)
}

func TestBillErrors(t *testing.T) {
	_, svc := newFixture(t)

	_, err := svc.Billing.BillTable(9)
	assert.ErrorIs(t, err, domain.ErrTableNotFound)

	_, err = svc.Billing.BillTable(1)
	assert.ErrorIs(t, err, domain.ErrEmptyBill)
}
