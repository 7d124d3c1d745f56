package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"trace-backend/internal/cache"
	"trace-backend/internal/models"
	"trace-backend/internal/services"
	"trace-backend/pkg/utils"

	"github.com/gorilla/mux"
)

// maxAttachmentSize caps uploads at 10 MiB, plenty for crate photos.
const maxAttachmentSize = 10 << 20

type ActivityHandler struct {
	Service     *services.LotService
	Attachments *services.AttachmentService
}

func NewActivityHandler(s *services.LotService, attachments *services.AttachmentService) *ActivityHandler {
	return &ActivityHandler{Service: s, Attachments: attachments}
}

// RecordActivity handles POST /api/lots/{id}/activities
func (h *ActivityHandler) RecordActivity(w http.ResponseWriter, r *http.Request) {
	lotID, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.RecordActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	activity, err := h.Service.RecordActivity(r.Context(), lotID, &req)
	if err != nil {
		utils.Error(w, err)
		return
	}
	cache.InvalidateLotStats(r.Context())

	utils.JSON(w, http.StatusCreated, activity)
}

// ListActivities handles GET /api/lots/{id}/activities
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	lotID, _ := strconv.Atoi(mux.Vars(r)["id"])

	activities, err := h.Service.ListActivities(r.Context(), lotID)
	if err != nil {
		utils.Error(w, err)
		return
	}
	if activities == nil {
		activities = []*models.LotActivity{}
	}

	utils.JSON(w, http.StatusOK, activities)
}

// UploadAttachment handles POST /api/activities/{id}/attachments (multipart)
func (h *ActivityHandler) UploadAttachment(w http.ResponseWriter, r *http.Request) {
	activityID, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := r.ParseMultipartForm(maxAttachmentSize); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key, err := h.Attachments.Upload(r.Context(), activityID, header.Filename, contentType, file)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, map[string]string{"key": key})
}

// DownloadAttachment handles GET /api/activities/{id}/attachments/{index}
func (h *ActivityHandler) DownloadAttachment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	activityID, _ := strconv.Atoi(vars["id"])
	index, err := strconv.Atoi(vars["index"])
	if err != nil {
		http.Error(w, "Invalid attachment index", http.StatusBadRequest)
		return
	}

	body, contentType, err := h.Attachments.Download(r.Context(), activityID, index)
	if err != nil {
		utils.Error(w, err)
		return
	}
	defer body.Close()

	w.Header().Set("Content-Type", contentType)
	io.Copy(w, body)
}
