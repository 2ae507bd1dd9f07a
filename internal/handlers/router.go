package handlers

import "net/http"

func Router(h *Handler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/auth/login", h.Auth.Login)
	mux.HandleFunc("GET /api/v1/roles/{role}/station", h.Auth.RoleStation)

	mux.HandleFunc("GET /api/v1/inventory", h.Inventory.List)

	mux.HandleFunc("POST /api/v1/tables", h.Tables.Create)
	mux.HandleFunc("GET /api/v1/tables", h.Tables.List)
	mux.HandleFunc("GET /api/v1/tables/{number}/orders", h.Tables.Orders)
	mux.HandleFunc("GET /api/v1/tables/{number}/bill", h.Tables.Bill)
	mux.HandleFunc("POST /api/v1/tables/{number}/close", h.Tables.Close)
	mux.HandleFunc("DELETE /api/v1/tables/{number}", h.Tables.Delete)

	mux.HandleFunc("POST /api/v1/orders", h.Orders.Create)
	mux.HandleFunc("GET /api/v1/orders", h.Orders.Active)
	mux.HandleFunc("GET /api/v1/orders/{id}", h.Orders.Get)
	mux.HandleFunc("POST /api/v1/orders/{id}/delivered", h.Orders.MarkDelivered)
	mux.HandleFunc("DELETE /api/v1/orders/{id}", h.Orders.Delete)
	mux.HandleFunc("POST /api/v1/orders/{id}/stations/{category}/sent", h.Stations.MarkSent)

	mux.HandleFunc("GET /api/v1/stations/{category}/orders", h.Stations.Pending)
	mux.HandleFunc("GET /api/v1/stations/{category}/orders/{id}", h.Stations.Ticket)

	return mux
}
