package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"trace-backend/internal/models"
	"trace-backend/internal/services"
	"trace-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type FarmHandler struct {
	Service *services.FarmService
}

func NewFarmHandler(s *services.FarmService) *FarmHandler {
	return &FarmHandler{Service: s}
}

func (h *FarmHandler) CreateFarm(w http.ResponseWriter, r *http.Request) {
	var req models.CreateFarmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	farm, err := h.Service.CreateFarm(r.Context(), &req)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, farm)
}

func (h *FarmHandler) GetFarm(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	farm, err := h.Service.GetFarm(r.Context(), id)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, farm)
}

// SearchByCode handles GET /api/farms/search?code=FA-001
func (h *FarmHandler) SearchByCode(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "code parameter is required", http.StatusBadRequest)
		return
	}

	farm, err := h.Service.GetFarmByCode(r.Context(), code)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, farm)
}

func (h *FarmHandler) ListFarms(w http.ResponseWriter, r *http.Request) {
	farms, err := h.Service.ListFarms(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, farms)
}

func (h *FarmHandler) UpdateFarm(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.UpdateFarmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	farm, err := h.Service.UpdateFarm(r.Context(), id, &req)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, farm)
}

func (h *FarmHandler) DeleteFarm(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Service.DeleteFarm(r.Context(), id); err != nil {
		utils.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
