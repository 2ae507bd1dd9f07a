package service

import (
	"ordify/internal/domain"
	"ordify/internal/notify"
	"ordify/internal/repository"
)

type TableServiceInterface interface {
	Create(number, partySize int) (domain.TableView, error)
	List() []domain.TableView
	Orders(number int) []domain.OrderView
	Close(number int) error
	Delete(number int) error
}

type TableService struct {
	tables    repository.TableRepositoryInterface
	orders    repository.OrderRepositoryInterface
	inventory repository.InventoryRepositoryInterface
	pub       notify.PublisherInterface
}

func NewTableService(
	tables repository.TableRepositoryInterface,
	orders repository.OrderRepositoryInterface,
	inventory repository.InventoryRepositoryInterface,
	pub notify.PublisherInterface,
) TableServiceInterface {
	return &TableService{tables: tables, orders: orders, inventory: inventory, pub: pub}
}

func (s *TableService) Create(number, partySize int) (domain.TableView, error) {
	if number <= 0 || partySize <= 0 {
		return domain.TableView{}, domain.ErrInvalidTable
	}
	t := domain.Table{Number: number, PartySize: partySize, Status: domain.TableActive}
	if err := s.tables.AddTable(t); err != nil {
		return domain.TableView{}, err
	}
	return tableView(t), nil
}

func (s *TableService) List() []domain.TableView {
	var out []domain.TableView
	for _, t := range s.tables.ListTables() {
		out = append(out, tableView(t))
	}
	return out
}

// Orders lists a table's non-cancelled orders. No existence check: a
// closed table's orders are still reachable here by number.
func (s *TableService) Orders(number int) []domain.OrderView {
	var out []domain.OrderView
	for _, o := range s.orders.ListOrders() {
		if o.TableNumber != number || o.Status == domain.OrderCancelled {
			continue
		}
		out = append(out, orderView(s.inventory, o))
	}
	return out
}

// Close removes the table from the registry after payment. The table's
// orders deliberately stay in the ledger with a dangling table number.
func (s *TableService) Close(number int) error {
	if !s.tables.RemoveTable(number) {
		return domain.ErrTableNotFound
	}
	s.pub.Publish(domain.Event{Type: domain.EventTableClosed, TableNumber: number})
	return nil
}

// Delete is the admin removal; same effect as Close, no payment step.
func (s *TableService) Delete(number int) error {
	if !s.tables.RemoveTable(number) {
		return domain.ErrTableNotFound
	}
	return nil
}

func tableView(t domain.Table) domain.TableView {
	return domain.TableView{Number: t.Number, PartySize: t.PartySize, Status: t.Status}
}
