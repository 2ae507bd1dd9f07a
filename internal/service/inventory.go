package service

import (
	"ordify/internal/domain"
	"ordify/internal/repository"
)

type InventoryServiceInterface interface {
	List() []domain.InventoryCategory
}

type InventoryService struct {
	inventory repository.InventoryRepositoryInterface
}

func NewInventoryService(inventory repository.InventoryRepositoryInterface) InventoryServiceInterface {
	return &InventoryService{inventory: inventory}
}

// List is the read-only inventory view: no restock or price edit
// operation exists on this surface.
func (s *InventoryService) List() []domain.InventoryCategory {
	return s.inventory.ListInventory()
}
