package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"ordify/internal/domain"
)

// writeJSON emits a JSON body with the given status.
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeProblem is the single error format (simplified RFC7807
// problem+json): machine-readable type, human title, status, detail.
func writeProblem(w http.ResponseWriter, code int, typ, detail string) {
	writeJSON(w, code, map[string]any{
		"type":   typ,
		"title":  http.StatusText(code),
		"status": code,
		"detail": detail,
	})
}

// writeError maps a core error to its problem code and HTTP status.
func writeError(w http.ResponseWriter, err error) {
	type mapping struct {
		status int
		typ    string
	}
	table := []struct {
		err error
		mapping
	}{
		{domain.ErrInvalidPin, mapping{http.StatusBadRequest, "invalid_pin"}},
		{domain.ErrUnknownPin, mapping{http.StatusUnauthorized, "unknown_pin"}},
		{domain.ErrUnrecognizedRole, mapping{http.StatusBadRequest, "unrecognized_role"}},
		{domain.ErrDuplicateTable, mapping{http.StatusConflict, "duplicate_table"}},
		{domain.ErrTableNotFound, mapping{http.StatusNotFound, "table_not_found"}},
		{domain.ErrOrderNotFound, mapping{http.StatusNotFound, "order_not_found"}},
		{domain.ErrEmptyOrder, mapping{http.StatusBadRequest, "empty_order"}},
		{domain.ErrInvalidQuantity, mapping{http.StatusBadRequest, "invalid_quantity"}},
		{domain.ErrInvalidTable, mapping{http.StatusBadRequest, "invalid_table"}},
		{domain.ErrProductNotFound, mapping{http.StatusNotFound, "product_not_found"}},
		{domain.ErrInsufficientStock, mapping{http.StatusConflict, "insufficient_stock"}},
		{domain.ErrEmptyBill, mapping{http.StatusConflict, "empty_bill"}},
		{domain.ErrUnknownCategory, mapping{http.StatusNotFound, "unknown_category"}},
		{domain.ErrTerminalStatus, mapping{http.StatusConflict, "terminal_status"}},
	}
	for _, m := range table {
		if errors.Is(err, m.err) {
			writeProblem(w, m.status, m.typ, err.Error())
			return
		}
	}
	writeProblem(w, http.StatusInternalServerError, "internal", err.Error())
}

// param fetches a path value from the route pattern.
func param(r *http.Request, key string) string {
	return r.PathValue(key)
}

// intParam parses a numeric path value; ok is false on junk.
func intParam(r *http.Request, key string) (int, bool) {
	n, err := strconv.Atoi(param(r, key))
	if err != nil {
		return 0, false
	}
	return n, true
}
