package handlers

import (
	"net/http"

	"ordify/internal/service"
)

type InventoryHandler struct {
	inventory service.InventoryServiceInterface
}

func NewInventoryHandler(inventory service.InventoryServiceInterface) *InventoryHandler {
	return &InventoryHandler{inventory: inventory}
}

func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"categories": h.inventory.List()})
}
