package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"trace-backend/internal/cache"
	"trace-backend/internal/models"
	"trace-backend/internal/services"
	"trace-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type LotHandler struct {
	Service   *services.LotService
	Documents *services.DocumentService
}

func NewLotHandler(s *services.LotService, documents *services.DocumentService) *LotHandler {
	return &LotHandler{Service: s, Documents: documents}
}

func (h *LotHandler) CreateLot(w http.ResponseWriter, r *http.Request) {
	var req models.CreateLotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	lot, err := h.Service.CreateLot(r.Context(), &req)
	if err != nil {
		utils.Error(w, err)
		return
	}
	cache.InvalidateLotStats(r.Context())

	utils.JSON(w, http.StatusCreated, lot)
}

func (h *LotHandler) GetLot(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	lot, err := h.Service.GetLot(r.Context(), id)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, lot)
}

// SearchByNumber handles GET /api/lots/search?lot_number=AV-240301-001
func (h *LotHandler) SearchByNumber(w http.ResponseWriter, r *http.Request) {
	lotNumber := r.URL.Query().Get("lot_number")
	if lotNumber == "" {
		http.Error(w, "lot_number parameter is required", http.StatusBadRequest)
		return
	}

	lot, err := h.Service.GetLotByNumber(r.Context(), lotNumber)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, lot)
}

func (h *LotHandler) ListLots(w http.ResponseWriter, r *http.Request) {
	lots, err := h.Service.ListLots(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, lots)
}

func (h *LotHandler) UpdateLot(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.UpdateLotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	lot, err := h.Service.UpdateLot(r.Context(), id, &req)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, lot)
}

// GetStats handles GET /api/lots/stats (dashboard tiles)
func (h *LotHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	if stats, hit := cache.GetCachedLotStats(r.Context()); hit {
		utils.JSON(w, http.StatusOK, stats)
		return
	}

	stats, err := h.Service.Stats(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}
	cache.CacheLotStats(r.Context(), stats)

	utils.JSON(w, http.StatusOK, stats)
}

// GetBarcode handles GET /api/lots/{id}/barcode
func (h *LotHandler) GetBarcode(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	resp, err := h.Documents.RenderBarcode(r.Context(), id)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, resp)
}

// GetPDF handles GET /api/lots/{id}/pdf
func (h *LotHandler) GetPDF(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	data, filename, err := h.Documents.RenderPDF(r.Context(), id)
	if err != nil {
		utils.Error(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Write(data)
}
