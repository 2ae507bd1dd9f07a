package service

import (
	"github.com/shopspring/decimal"

	"ordify/internal/domain"
	"ordify/internal/repository"
)

// priceOrder prices every line of an order at the current inventory
// price. Prices are never snapshotted at order time: repricing a
// product reprices every open bill.
func priceOrder(inv repository.InventoryRepositoryInterface, o domain.Order) ([]domain.BillLine, decimal.Decimal, error) {
	lines := make([]domain.BillLine, 0, len(o.Items))
	total := decimal.Zero
	for _, it := range o.Items {
		product, ok := inv.Product(it.Category, it.Product)
		if !ok {
			return nil, decimal.Zero, domain.ErrProductNotFound
		}
		subtotal := product.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		lines = append(lines, domain.BillLine{
			OrderID:   o.ID,
			Category:  it.Category,
			Product:   it.Product,
			Quantity:  it.Quantity,
			UnitPrice: product.Price,
			Subtotal:  subtotal,
		})
		total = total.Add(subtotal)
	}
	return lines, total, nil
}

func orderView(inv repository.InventoryRepositoryInterface, o domain.Order) domain.OrderView {
	items := make([]domain.OrderItemView, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, domain.OrderItemView{Category: it.Category, Product: it.Product, Quantity: it.Quantity})
	}
	_, total, err := priceOrder(inv, o)
	if err != nil {
		total = decimal.Zero
	}
	return domain.OrderView{
		ID:            o.ID,
		TableNumber:   o.TableNumber,
		Status:        o.Status,
		CreatedBy:     o.CreatedBy,
		Items:         items,
		StationStatus: o.StationStatus,
		Total:         total,
	}
}
