package handlers

import (
	"encoding/json"
	"net/http"

	"trace-backend/internal/models"
	"trace-backend/internal/services"
	"trace-backend/pkg/utils"
)

type AuthHandler struct {
	Service *services.UserService
}

func NewAuthHandler(s *services.UserService) *AuthHandler {
	return &AuthHandler{Service: s}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.Service.Login(r.Context(), &req)
	if err != nil {
		// Credential failures come back as validation errors; report them
		// uniformly as 401 without leaking which field was wrong.
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	utils.JSON(w, http.StatusOK, resp)
}
