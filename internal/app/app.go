package app

import (
	"context"
	"errors"
	"fmt"

	"pawmatch_backend/database"
	"pawmatch_backend/internal/config"
	"pawmatch_backend/internal/email"
	"pawmatch_backend/internal/handlers"
	"pawmatch_backend/internal/logger"
	"pawmatch_backend/internal/middleware"
	"pawmatch_backend/internal/models"
	"pawmatch_backend/internal/routes"
	"pawmatch_backend/internal/services"
	"pawmatch_backend/internal/storage"
	"pawmatch_backend/internal/validator"
	"pawmatch_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}
	if err := seedServiceCatalog(gormDB); err != nil {
		logger.Fatal("Failed to seed service catalog", "error", err)
	}

	ginRouter, serviceContainer := SetupRouter(cfg, gormDB)

	// Background housekeeping: overdue bookings and expired tokens.
	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()
	bookingWorker := workers.NewBookingWorker(serviceContainer.BookingRepo, serviceContainer.UserRepo)
	bookingWorker.Start(workerCtx)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires storage, services, handlers and routes into a gin engine.
// Tests call it directly with their own config and database.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) (*gin.Engine, *services.ServiceContainer) {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		BaseURL:    cfg.Storage.BaseURL,
		Bucket:     cfg.Storage.Bucket,
		Region:     cfg.Storage.Region,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Endpoint:   cfg.Storage.Endpoint,
		UseSSL:     cfg.Storage.UseSSL,
		PublicRead: cfg.Storage.PublicRead,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	mailer := initializeMailer(cfg)

	serviceContainer := services.NewServiceContainer(gormDB, storageInstance, mailer)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter, serviceContainer
}

// initializeMailer returns a real SMTP provider when credentials are
// configured, and a logging mock otherwise (development, tests).
func initializeMailer(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPHost == "" || cfg.Email.SMTPUsername == "" {
		logger.Warn("SMTP is not configured; using mock email provider")
		return &MockEmailProvider{renderer: email.NewTemplateManager()}
	}

	return email.NewSMTPProvider(&email.SMTPConfig{
		Host:     cfg.Email.SMTPHost,
		Port:     cfg.Email.SMTPPort,
		Username: cfg.Email.SMTPUsername,
		Password: cfg.Email.SMTPPassword,
		From:     cfg.Email.FromEmail,
		FromName: cfg.Email.FromName,
		UseTLS:   cfg.Email.UseTLS,
	}, email.NewTemplateManager())
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:      handlers.NewAuthHandler(baseHandler, container.Auth),
		UserHandler:      handlers.NewUserHandler(baseHandler, container.User),
		PetHandler:       handlers.NewPetHandler(baseHandler, container.Pet),
		CaregiverHandler: handlers.NewCaregiverHandler(baseHandler, container.Caregiver),
		CatalogHandler:   handlers.NewCatalogHandler(baseHandler, container.Catalog),
		BookingHandler:   handlers.NewBookingHandler(baseHandler, container.Booking),
		ReviewHandler:    handlers.NewReviewHandler(baseHandler, container.Review),
		SearchHandler:    handlers.NewSearchHandler(baseHandler, container.Search),
		UploadHandler:    handlers.NewUploadHandler(baseHandler, container.Upload),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("First admin credentials are not configured. Skipping admin seeding.")
		return nil
	}

	tx := db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	defer tx.Rollback()

	var adminUser models.User
	result := tx.Where("email = ?", adminEmail).First(&adminUser)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		tx.Rollback()
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Email:        adminEmail,
		PasswordHash: string(hashedPassword),
		Name:         "Administrator",
		Role:         models.UserRoleAdmin,
		Status:       models.UserStatusActive,
		IsVerified:   true,
	}
	if err := tx.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user in database: %w", err)
	}

	logger.Info("Successfully created first admin user", "email", adminEmail)
	return tx.Commit().Error
}

// seedServiceCatalog inserts the default service catalog on first boot.
func seedServiceCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Service{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count services: %w", err)
	}
	if count > 0 {
		return nil
	}

	defaults := []models.Service{
		{Name: "Dog walking", Description: "A walk around the neighborhood", MinDurationMinutes: 30, MaxDurationMinutes: 240},
		{Name: "Pet sitting", Description: "In-home visits with feeding and play", MinDurationMinutes: 30, MaxDurationMinutes: 720},
		{Name: "Boarding", Description: "Overnight care at the caregiver's home", MinDurationMinutes: 720, MaxDurationMinutes: 20160},
		{Name: "Home visit", Description: "A short check-in visit", MinDurationMinutes: 15, MaxDurationMinutes: 120},
	}

	if err := db.Create(&defaults).Error; err != nil {
		return fmt.Errorf("failed to seed service catalog: %w", err)
	}

	logger.Info("Seeded default service catalog", "count", len(defaults))
	return nil
}
