package handlers

import (
	"encoding/json"
	"net/http"

	"ordify/internal/common/logger"
	"ordify/internal/domain"
	"ordify/internal/service"
)

type TableHandler struct {
	tables  service.TableServiceInterface
	billing service.BillingServiceInterface
	lg      *logger.Logger
}

func NewTableHandler(tables service.TableServiceInterface, billing service.BillingServiceInterface, lg *logger.Logger) *TableHandler {
	return &TableHandler{tables: tables, billing: billing, lg: lg}
}

func (h *TableHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateTableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	t, err := h.tables.Create(req.Number, req.PartySize)
	if err != nil {
		writeError(w, err)
		return
	}
	h.lg.Info("table_created", map[string]any{"table": t.Number, "party_size": t.PartySize})
	writeJSON(w, http.StatusCreated, t)
}

func (h *TableHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"tables": h.tables.List()})
}

func (h *TableHandler) Orders(w http.ResponseWriter, r *http.Request) {
	number, ok := intParam(r, "number")
	if !ok {
		writeProblem(w, http.StatusBadRequest, "bad_request", "table number must be numeric")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"table_number": number, "orders": h.tables.Orders(number)})
}

func (h *TableHandler) Bill(w http.ResponseWriter, r *http.Request) {
	number, ok := intParam(r, "number")
	if !ok {
		writeProblem(w, http.StatusBadRequest, "bad_request", "table number must be numeric")
		return
	}
	bill, err := h.billing.BillTable(number)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bill)
}

func (h *TableHandler) Close(w http.ResponseWriter, r *http.Request) {
	number, ok := intParam(r, "number")
	if !ok {
		writeProblem(w, http.StatusBadRequest, "bad_request", "table number must be numeric")
		return
	}
	if err := h.tables.Close(number); err != nil {
		writeError(w, err)
		return
	}
	h.lg.Info("table_closed", map[string]any{"table": number})
	w.WriteHeader(http.StatusNoContent)
}

func (h *TableHandler) Delete(w http.ResponseWriter, r *http.Request) {
	number, ok := intParam(r, "number")
	if !ok {
		writeProblem(w, http.StatusBadRequest, "bad_request", "table number must be numeric")
		return
	}
	if err := h.tables.Delete(number); err != nil {
		writeError(w, err)
		return
	}
	h.lg.Info("table_deleted", map[string]any{"table": number})
	w.WriteHeader(http.StatusNoContent)
}
