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

type InventoryHandler struct {
	Service *services.InventoryService
}

func NewInventoryHandler(s *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{Service: s}
}

func (h *InventoryHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req models.CreateInventoryItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	item, err := h.Service.CreateItem(r.Context(), &req)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, item)
}

func (h *InventoryHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	item, err := h.Service.GetItem(r.Context(), id)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, item)
}

// ListItems handles GET /api/inventory with optional warehouse_id / lot_id filters
func (h *InventoryHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	var (
		items []*models.InventoryItem
		err   error
	)

	switch {
	case r.URL.Query().Get("warehouse_id") != "":
		warehouseID, _ := strconv.Atoi(r.URL.Query().Get("warehouse_id"))
		items, err = h.Service.ListByWarehouse(r.Context(), warehouseID)
	case r.URL.Query().Get("lot_id") != "":
		lotID, _ := strconv.Atoi(r.URL.Query().Get("lot_id"))
		items, err = h.Service.ListByLot(r.Context(), lotID)
	default:
		items, err = h.Service.ListItems(r.Context())
	}
	if err != nil {
		utils.Error(w, err)
		return
	}
	if items == nil {
		items = []*models.InventoryItem{}
	}

	utils.JSON(w, http.StatusOK, items)
}

func (h *InventoryHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.UpdateInventoryItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	item, err := h.Service.UpdateItem(r.Context(), id, &req)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, item)
}

func (h *InventoryHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Service.DeleteItem(r.Context(), id); err != nil {
		utils.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
