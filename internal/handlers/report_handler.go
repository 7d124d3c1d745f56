package handlers

import (
	"fmt"
	"net/http"

	"trace-backend/internal/services"
	"trace-backend/internal/timeutil"
	"trace-backend/pkg/utils"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(s *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: s}
}

// ExportLotsCSV handles GET /api/reports/lots/csv?status=shipped
func (h *ReportHandler) ExportLotsCSV(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("status")

	data, err := h.Service.GenerateLotsCSV(r.Context(), filter)
	if err != nil {
		utils.Error(w, err)
		return
	}

	filename := fmt.Sprintf("lots-%s.csv", timeutil.Now().Format("20060102"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
