package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"trace-backend/internal/auth"
	"trace-backend/internal/cache"
	"trace-backend/internal/config"
	"trace-backend/internal/database"
	"trace-backend/internal/db"
	"trace-backend/internal/events"
	"trace-backend/internal/handlers"
	"trace-backend/internal/health"
	h "trace-backend/internal/http"
	"trace-backend/internal/middleware"
	"trace-backend/internal/repositories"
	"trace-backend/internal/services"
	"trace-backend/internal/storage"
	"trace-backend/migrations"

	barcodepkg "trace-backend/internal/barcode"
)

func main() {
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	// Load configuration
	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	// Connect to PostgreSQL
	pool := db.Connect(cfg)
	defer pool.Close()
	log.Println("[DB] Connected successfully")

	// Initialize Redis cache (optional - graceful fallback if unavailable)
	if err := cache.Init(); err != nil {
		log.Printf("[Redis] Cache unavailable: %v (barcodes and stats render uncached)", err)
	} else {
		log.Println("[Redis] Cache connected successfully")
	}

	// Run database migrations from the embedded filesystem
	log.Println("Running database migrations...")
	migrator := database.NewMigratorWithFS(pool, migrations.FS, ".")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := migrator.RunMigrations(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize health checker
	healthChecker := health.NewHealthChecker(pool)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg)

	// Initialize repositories
	farmRepo := repositories.NewFarmRepository(pool)
	lotRepo := repositories.NewLotRepository(pool)
	activityRepo := repositories.NewLotActivityRepository(pool)
	warehouseRepo := repositories.NewWarehouseRepository(pool)
	inventoryRepo := repositories.NewInventoryRepository(pool)
	userRepo := repositories.NewUserRepository(pool)
	systemSettingRepo := repositories.NewSystemSettingRepository(pool)

	// Initialize attachment storage (optional - graceful fallback if unset)
	var objectStore services.ObjectStore
	if store, err := storage.New(cfg); err != nil {
		if errors.Is(err, storage.ErrNotConfigured) {
			log.Println("[Storage] Attachment storage not configured, uploads disabled")
		} else {
			log.Printf("[Storage] Failed to initialize: %v (uploads disabled)", err)
		}
	} else {
		objectStore = store
		log.Println("[Storage] Attachment storage ready")
	}

	// Live activity feed for dashboard clients
	hub := events.NewHub()

	// Initialize services
	lotService := services.NewLotService(lotRepo, activityRepo, farmRepo)
	lotService.SetPublisher(hub)
	farmService := services.NewFarmService(farmRepo)
	documentService := services.NewDocumentService(lotRepo, activityRepo, farmRepo, barcodepkg.NewRenderer())
	documentService.SetSettings(systemSettingRepo)
	warehouseService := services.NewWarehouseService(warehouseRepo)
	inventoryService := services.NewInventoryService(inventoryRepo, lotRepo, warehouseRepo)
	userService := services.NewUserService(userRepo, jwtManager)
	totpService := services.NewTOTPService(userRepo)
	attachmentService := services.NewAttachmentService(activityRepo, objectStore)
	reportService := services.NewReportService(lotRepo, activityRepo)
	systemSettingService := services.NewSystemSettingService(systemSettingRepo)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo)
	corsMiddleware := middleware.NewCORS(cfg)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	totpHandler := handlers.NewTOTPHandler(totpService)
	farmHandler := handlers.NewFarmHandler(farmService)
	lotHandler := handlers.NewLotHandler(lotService, documentService)
	activityHandler := handlers.NewActivityHandler(lotService, attachmentService)
	warehouseHandler := handlers.NewWarehouseHandler(warehouseService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	systemSettingHandler := handlers.NewSystemSettingHandler(systemSettingService)
	reportHandler := handlers.NewReportHandler(reportService)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	router := h.NewRouter(
		authHandler,
		userHandler,
		totpHandler,
		farmHandler,
		lotHandler,
		activityHandler,
		warehouseHandler,
		inventoryHandler,
		systemSettingHandler,
		reportHandler,
		healthHandler,
		hub,
		authMiddleware,
	)

	// Wrap with panic recovery and metrics middleware
	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
