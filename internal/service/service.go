package service

import (
	"ordify/internal/notify"
	"ordify/internal/repository"
)

type Service struct {
	Auth      AuthServiceInterface
	Tables    TableServiceInterface
	Orders    OrderServiceInterface
	Billing   BillingServiceInterface
	Inventory InventoryServiceInterface
}

func New(store *repository.Memory, pub notify.PublisherInterface) *Service {
	return &Service{
		Auth:      NewAuthService(store),
		Tables:    NewTableService(store, store, store, pub),
		Orders:    NewOrderService(store, store, store, pub),
		Billing:   NewBillingService(store, store, store),
		Inventory: NewInventoryService(store),
	}
}
