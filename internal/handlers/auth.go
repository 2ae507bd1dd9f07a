package handlers

import (
	"encoding/json"
	"net/http"

	"ordify/internal/common/logger"
	"ordify/internal/domain"
	"ordify/internal/service"
)

type AuthHandler struct {
	auth service.AuthServiceInterface
	lg   *logger.Logger
}

func NewAuthHandler(auth service.AuthServiceInterface, lg *logger.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, lg: lg}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	resp, err := h.auth.Authenticate(req.PIN)
	if err != nil {
		writeError(w, err)
		return
	}
	h.lg.Info("user_authenticated", map[string]any{"name": resp.Name, "role": resp.Role})
	writeJSON(w, http.StatusOK, resp)
}

// RoleStation resolves the fulfillment queue for a kitchen/bar role.
func (h *AuthHandler) RoleStation(w http.ResponseWriter, r *http.Request) {
	role := domain.Role(param(r, "role"))
	station, err := h.auth.Station(role)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"role": role, "station": station})
}
