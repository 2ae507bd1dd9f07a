package service

import (
	"ordify/internal/domain"
	"ordify/internal/notify"
	"ordify/internal/repository"
)

type OrderServiceInterface interface {
	Create(req domain.CreateOrderRequest) (domain.OrderView, error)
	Get(id int) (domain.OrderView, error)
	Active() []domain.OrderView
	PendingForStation(category string) ([]domain.OrderView, error)
	StationTicket(id int, category string) (domain.StationTicket, error)
	MarkStationSent(id int, category string) error
	MarkDelivered(id int) error
	Delete(id int) error
}

type OrderService struct {
	orders    repository.OrderRepositoryInterface
	tables    repository.TableRepositoryInterface
	inventory repository.InventoryRepositoryInterface
	pub       notify.PublisherInterface
}

func NewOrderService(
	orders repository.OrderRepositoryInterface,
	tables repository.TableRepositoryInterface,
	inventory repository.InventoryRepositoryInterface,
	pub notify.PublisherInterface,
) OrderServiceInterface {
	return &OrderService{orders: orders, tables: tables, inventory: inventory, pub: pub}
}

// Create places an order for an existing table. All lines are checked
// before any stock moves, so a bad line rejects the whole order with
// inventory unchanged.
func (s *OrderService) Create(req domain.CreateOrderRequest) (domain.OrderView, error) {
	if len(req.Items) == 0 {
		return domain.OrderView{}, domain.ErrEmptyOrder
	}
	if _, ok := s.tables.TableByNumber(req.TableNumber); !ok {
		return domain.OrderView{}, domain.ErrTableNotFound
	}
	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		if it.Quantity < 1 {
			return domain.OrderView{}, domain.ErrInvalidQuantity
		}
		if !domain.ValidCategory(it.Category) {
			return domain.OrderView{}, domain.ErrProductNotFound
		}
		items = append(items, domain.OrderItem{Category: it.Category, Product: it.Product, Quantity: it.Quantity})
	}

	order, err := s.orders.CreateOrder(req.TableNumber, items, req.Creator)
	if err != nil {
		return domain.OrderView{}, err
	}

	view := orderView(s.inventory, order)
	s.pub.Publish(domain.Event{
		Type:        domain.EventOrderCreated,
		OrderID:     order.ID,
		TableNumber: order.TableNumber,
		CreatedBy:   order.CreatedBy,
		Total:       view.Total.String(),
	})
	return view, nil
}

func (s *OrderService) Get(id int) (domain.OrderView, error) {
	o, ok := s.orders.OrderByID(id)
	if !ok {
		return domain.OrderView{}, domain.ErrOrderNotFound
	}
	return orderView(s.inventory, o), nil
}

// Active lists every order not yet delivered, in ledger order.
// Delivered orders drop out of this view but stay billable.
func (s *OrderService) Active() []domain.OrderView {
	var out []domain.OrderView
	for _, o := range s.orders.ListOrders() {
		if o.Status == domain.OrderDelivered {
			continue
		}
		out = append(out, orderView(s.inventory, o))
	}
	return out
}

// PendingForStation returns orders whose station entry is still
// pending. The item-membership check is redundant given how station
// maps are seeded, but it is kept as a guard against a drifted ledger.
func (s *OrderService) PendingForStation(category string) ([]domain.OrderView, error) {
	if !domain.ValidCategory(category) {
		return nil, domain.ErrUnknownCategory
	}
	var out []domain.OrderView
	for _, o := range s.orders.ListOrders() {
		if o.StationStatus[category] != domain.StationPending {
			continue
		}
		if !o.HasCategory(category) {
			continue
		}
		out = append(out, orderView(s.inventory, o))
	}
	return out, nil
}

// StationTicket narrows an order to one station's items with a
// station-only subtotal, for the kitchen/bar detail view.
func (s *OrderService) StationTicket(id int, category string) (domain.StationTicket, error) {
	if !domain.ValidCategory(category) {
		return domain.StationTicket{}, domain.ErrUnknownCategory
	}
	o, ok := s.orders.OrderByID(id)
	if !ok {
		return domain.StationTicket{}, domain.ErrOrderNotFound
	}
	status, ok := o.StationStatus[category]
	if !ok {
		return domain.StationTicket{}, domain.ErrUnknownCategory
	}
	lines, _, err := priceOrder(s.inventory, o)
	if err != nil {
		return domain.StationTicket{}, err
	}
	ticket := domain.StationTicket{
		OrderID:     o.ID,
		TableNumber: o.TableNumber,
		Category:    category,
		CreatedBy:   o.CreatedBy,
		Status:      status,
	}
	for _, ln := range lines {
		if ln.Category != category {
			continue
		}
		ticket.Lines = append(ticket.Lines, ln)
		ticket.Subtotal = ticket.Subtotal.Add(ln.Subtotal)
	}
	return ticket, nil
}

// MarkStationSent flips one station's entry to sent. Repeating the call
// is harmless; the overall order status and other stations are
// untouched.
func (s *OrderService) MarkStationSent(id int, category string) error {
	if err := s.orders.SetStationStatus(id, category, domain.StationSent); err != nil {
		return err
	}
	s.pub.Publish(domain.Event{Type: domain.EventStationSent, OrderID: id, Station: category})
	return nil
}

func (s *OrderService) MarkDelivered(id int) error {
	if err := s.orders.SetOrderStatus(id, domain.OrderDelivered); err != nil {
		return err
	}
	s.pub.Publish(domain.Event{Type: domain.EventOrderDelivered, OrderID: id})
	return nil
}

func (s *OrderService) Delete(id int) error {
	if !s.orders.RemoveOrder(id) {
		return domain.ErrOrderNotFound
	}
	s.pub.Publish(domain.Event{Type: domain.EventOrderDeleted, OrderID: id})
	return nil
}
