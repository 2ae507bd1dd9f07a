package handlers

import (
	"ordify/internal/common/logger"
	"ordify/internal/service"
)

type Handler struct {
	Auth      *AuthHandler
	Tables    *TableHandler
	Orders    *OrderHandler
	Stations  *StationHandler
	Inventory *InventoryHandler
}

func New(svc *service.Service, lg *logger.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(svc.Auth, lg),
		Tables:    NewTableHandler(svc.Tables, svc.Billing, lg),
		Orders:    NewOrderHandler(svc.Orders, lg),
		Stations:  NewStationHandler(svc.Orders, lg),
		Inventory: NewInventoryHandler(svc.Inventory),
	}
}
