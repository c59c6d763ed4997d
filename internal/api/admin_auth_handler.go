package api

import (
	"encoding/json"
	"net/http"

	"phillymounting/internal/service"
)

type AdminAuthHandler struct {
	Service *service.AdminAuthService
}

func NewAdminAuthHandler(svc *service.AdminAuthService) *AdminAuthHandler {
	return &AdminAuthHandler{Service: svc}
}

func (h *AdminAuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	token, err := h.Service.Login(req.Username, req.Password)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
		return
	}
	writeJSON(w, http.StatusOK, LoginResponse{Success: true, Token: token})
}
