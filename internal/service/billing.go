package service

import (
	"github.com/shopspring/decimal"

	"ordify/internal/domain"
	"ordify/internal/repository"
)

type BillingServiceInterface interface {
	BillTable(number int) (domain.Bill, error)
}

type BillingService struct {
	tables    repository.TableRepositoryInterface
	orders    repository.OrderRepositoryInterface
	inventory repository.InventoryRepositoryInterface
}

func NewBillingService(
	tables repository.TableRepositoryInterface,
	orders repository.OrderRepositoryInterface,
	inventory repository.InventoryRepositoryInterface,
) BillingServiceInterface {
	return &BillingService{tables: tables, orders: orders, inventory: inventory}
}

// BillTable sums every non-cancelled order of the table at current
// inventory prices. Delivered orders are still billable; only a
// cancelled order drops off the bill.
func (s *BillingService) BillTable(number int) (domain.Bill, error) {
	t, ok := s.tables.TableByNumber(number)
	if !ok {
		return domain.Bill{}, domain.ErrTableNotFound
	}

	bill := domain.Bill{TableNumber: t.Number, PartySize: t.PartySize, Total: decimal.Zero}
	for _, o := range s.orders.ListOrders() {
		if o.TableNumber != number || o.Status == domain.OrderCancelled {
			continue
		}
		lines, total, err := priceOrder(s.inventory, o)
		if err != nil {
			return domain.Bill{}, err
		}
		bill.Lines = append(bill.Lines, lines...)
		bill.Total = bill.Total.Add(total)
	}
	if len(bill.Lines) == 0 {
		return domain.Bill{}, domain.ErrEmptyBill
	}
	return bill, nil
}
