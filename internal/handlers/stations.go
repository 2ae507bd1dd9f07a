package handlers

import (
	"net/http"

	"ordify/internal/common/logger"
	"ordify/internal/service"
)

type StationHandler struct {
	orders service.OrderServiceInterface
	lg     *logger.Logger
}

func NewStationHandler(orders service.OrderServiceInterface, lg *logger.Logger) *StationHandler {
	return &StationHandler{orders: orders, lg: lg}
}

// Pending is the station queue: orders whose slice of work is not yet
// sent out.
func (h *StationHandler) Pending(w http.ResponseWriter, r *http.Request) {
	category := param(r, "category")
	orders, err := h.orders.PendingForStation(category)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"station": category, "orders": orders})
}

func (h *StationHandler) Ticket(w http.ResponseWriter, r *http.Request) {
	category := param(r, "category")
	id, ok := intParam(r, "id")
	if !ok {
		writeProblem(w, http.StatusBadRequest, "bad_request", "order id must be numeric")
		return
	}
	ticket, err := h.orders.StationTicket(id, category)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ticket)
}

func (h *StationHandler) MarkSent(w http.ResponseWriter, r *http.Request) {
	category := param(r, "category")
	id, ok := intParam(r, "id")
	if !ok {
		writeProblem(w, http.StatusBadRequest, "bad_request", "order id must be numeric")
		return
	}
	if err := h.orders.MarkStationSent(id, category); err != nil {
		writeError(w, err)
		return
	}
	h.lg.Info("station_sent", map[string]any{"order_id": id, "station": category})
	w.WriteHeader(http.StatusNoContent)
}
