package http

import (
	"net/http"

	"trace-backend/internal/events"
	"trace-backend/internal/handlers"
	"trace-backend/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	totpHandler *handlers.TOTPHandler,
	farmHandler *handlers.FarmHandler,
	lotHandler *handlers.LotHandler,
	activityHandler *handlers.ActivityHandler,
	warehouseHandler *handlers.WarehouseHandler,
	inventoryHandler *handlers.InventoryHandler,
	systemSettingHandler *handlers.SystemSettingHandler,
	reportHandler *handlers.ReportHandler,
	healthHandler *handlers.HealthHandler,
	hub *events.Hub,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Public API routes - Authentication
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Protected API routes - Farms
	farmsAPI := r.PathPrefix("/api/farms").Subrouter()
	farmsAPI.Use(authMiddleware.Authenticate)
	farmsAPI.HandleFunc("", farmHandler.ListFarms).Methods("GET")
	farmsAPI.HandleFunc("", farmHandler.CreateFarm).Methods("POST")
	farmsAPI.HandleFunc("/search", farmHandler.SearchByCode).Methods("GET")
	farmsAPI.HandleFunc("/{id}", farmHandler.GetFarm).Methods("GET")
	farmsAPI.HandleFunc("/{id}", farmHandler.UpdateFarm).Methods("PUT")
	farmsAPI.HandleFunc("/{id}", authMiddleware.RequireRole("admin")(http.HandlerFunc(farmHandler.DeleteFarm)).ServeHTTP).Methods("DELETE")

	// Protected API routes - Lots
	lotsAPI := r.PathPrefix("/api/lots").Subrouter()
	lotsAPI.Use(authMiddleware.Authenticate)
	lotsAPI.HandleFunc("", lotHandler.ListLots).Methods("GET")
	lotsAPI.HandleFunc("", lotHandler.CreateLot).Methods("POST")
	lotsAPI.HandleFunc("/stats", lotHandler.GetStats).Methods("GET")
	lotsAPI.HandleFunc("/search", lotHandler.SearchByNumber).Methods("GET")
	lotsAPI.HandleFunc("/{id}", lotHandler.GetLot).Methods("GET")
	lotsAPI.HandleFunc("/{id}", lotHandler.UpdateLot).Methods("PUT")
	lotsAPI.HandleFunc("/{id}/activities", activityHandler.ListActivities).Methods("GET")
	lotsAPI.HandleFunc("/{id}/activities", activityHandler.RecordActivity).Methods("POST")
	lotsAPI.HandleFunc("/{id}/barcode", lotHandler.GetBarcode).Methods("GET")
	lotsAPI.HandleFunc("/{id}/pdf", lotHandler.GetPDF).Methods("GET")

	// Protected API routes - Activity attachments
	activitiesAPI := r.PathPrefix("/api/activities").Subrouter()
	activitiesAPI.Use(authMiddleware.Authenticate)
	activitiesAPI.HandleFunc("/{id}/attachments", activityHandler.UploadAttachment).Methods("POST")
	activitiesAPI.HandleFunc("/{id}/attachments/{index}", activityHandler.DownloadAttachment).Methods("GET")

	// Protected API routes - Warehouses
	warehousesAPI := r.PathPrefix("/api/warehouses").Subrouter()
	warehousesAPI.Use(authMiddleware.Authenticate)
	warehousesAPI.HandleFunc("", warehouseHandler.ListWarehouses).Methods("GET")
	warehousesAPI.HandleFunc("", warehouseHandler.CreateWarehouse).Methods("POST")
	warehousesAPI.HandleFunc("/{id}", warehouseHandler.GetWarehouse).Methods("GET")
	warehousesAPI.HandleFunc("/{id}", warehouseHandler.UpdateWarehouse).Methods("PUT")
	warehousesAPI.HandleFunc("/{id}", authMiddleware.RequireRole("admin")(http.HandlerFunc(warehouseHandler.DeleteWarehouse)).ServeHTTP).Methods("DELETE")

	// Protected API routes - Inventory
	inventoryAPI := r.PathPrefix("/api/inventory").Subrouter()
	inventoryAPI.Use(authMiddleware.Authenticate)
	inventoryAPI.HandleFunc("", inventoryHandler.ListItems).Methods("GET")
	inventoryAPI.HandleFunc("", inventoryHandler.CreateItem).Methods("POST")
	inventoryAPI.HandleFunc("/{id}", inventoryHandler.GetItem).Methods("GET")
	inventoryAPI.HandleFunc("/{id}", inventoryHandler.UpdateItem).Methods("PUT")
	inventoryAPI.HandleFunc("/{id}", inventoryHandler.DeleteItem).Methods("DELETE")

	// Protected API routes - Users (admin only)
	usersAPI := r.PathPrefix("/api/users").Subrouter()
	usersAPI.Use(authMiddleware.RequireRole("admin"))
	usersAPI.HandleFunc("", userHandler.ListUsers).Methods("GET")
	usersAPI.HandleFunc("", userHandler.CreateUser).Methods("POST")
	usersAPI.HandleFunc("/{id}", userHandler.GetUser).Methods("GET")
	usersAPI.HandleFunc("/{id}", userHandler.UpdateUser).Methods("PUT")
	usersAPI.HandleFunc("/{id}", userHandler.DeleteUser).Methods("DELETE")

	// Protected API routes - TOTP enrollment (admin accounts)
	totpAPI := r.PathPrefix("/api/auth/totp").Subrouter()
	totpAPI.Use(authMiddleware.RequireRole("admin"))
	totpAPI.HandleFunc("/setup", totpHandler.Setup).Methods("POST")
	totpAPI.HandleFunc("/verify", totpHandler.Verify).Methods("POST")
	totpAPI.HandleFunc("/disable", totpHandler.Disable).Methods("POST")

	// Protected API routes - System Settings
	settingsAPI := r.PathPrefix("/api/settings").Subrouter()
	settingsAPI.Use(authMiddleware.Authenticate)
	settingsAPI.HandleFunc("", systemSettingHandler.ListSettings).Methods("GET")
	settingsAPI.HandleFunc("/{key}", systemSettingHandler.GetSetting).Methods("GET")
	settingsAPI.HandleFunc("/{key}", authMiddleware.RequireRole("admin")(http.HandlerFunc(systemSettingHandler.UpdateSetting)).ServeHTTP).Methods("PUT")

	// Protected API routes - Reports
	reportsAPI := r.PathPrefix("/api/reports").Subrouter()
	reportsAPI.Use(authMiddleware.Authenticate)
	reportsAPI.HandleFunc("/lots/csv", reportHandler.ExportLotsCSV).Methods("GET")

	// Live activity feed for the dashboard
	r.HandleFunc("/api/events/stream", hub.ServeWS).Methods("GET")

	// Health endpoints (no auth required - for Kubernetes probes)
	r.HandleFunc("/health", healthHandler.Basic).Methods("GET")
	r.HandleFunc("/health/detailed", healthHandler.Detailed).Methods("GET")

	// Metrics endpoint (Prometheus format)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
