package handlers

import (
	"encoding/json"
	"net/http"

	"ordify/internal/common/logger"
	"ordify/internal/domain"
	"ordify/internal/service"
)

type OrderHandler struct {
	orders service.OrderServiceInterface
	lg     *logger.Logger
}

func NewOrderHandler(orders service.OrderServiceInterface, lg *logger.Logger) *OrderHandler {
	return &OrderHandler{orders: orders, lg: lg}
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	view, err := h.orders.Create(req)
	if err != nil {
		writeError(w, err)
		return
	}
	h.lg.Info("order_created", map[string]any{
		"order_id": view.ID,
		"table":    view.TableNumber,
		"total":    view.Total.String(),
	})
	writeJSON(w, http.StatusCreated, view)
}

// Active lists every order not yet delivered.
func (h *OrderHandler) Active(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"orders": h.orders.Active()})
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		writeProblem(w, http.StatusBadRequest, "bad_request", "order id must be numeric")
		return
	}
	view, err := h.orders.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *OrderHandler) MarkDelivered(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		writeProblem(w, http.StatusBadRequest, "bad_request", "order id must be numeric")
		return
	}
	if err := h.orders.MarkDelivered(id); err != nil {
		writeError(w, err)
		return
	}
	h.lg.Info("order_delivered", map[string]any{"order_id": id})
	w.WriteHeader(http.StatusNoContent)
}

func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		writeProblem(w, http.StatusBadRequest, "bad_request", "order id must be numeric")
		return
	}
	if err := h.orders.Delete(id); err != nil {
		writeError(w, err)
		return
	}
	h.lg.Info("order_deleted", map[string]any{"order_id": id})
	w.WriteHeader(http.StatusNoContent)
}
