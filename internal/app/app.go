package app

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/parths301/aib-hub/database"
	"github.com/parths301/aib-hub/internal/auth"
	"github.com/parths301/aib-hub/internal/cache"
	"github.com/parths301/aib-hub/internal/config"
	"github.com/parths301/aib-hub/internal/email"
	"github.com/parths301/aib-hub/internal/handlers"
	"github.com/parths301/aib-hub/internal/logger"
	"github.com/parths301/aib-hub/internal/middleware"
	"github.com/parths301/aib-hub/internal/models"
	"github.com/parths301/aib-hub/internal/repositories"
	"github.com/parths301/aib-hub/internal/routes"
	"github.com/parths301/aib-hub/internal/services"
	"github.com/parths301/aib-hub/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	auth.Configure(cfg.JWT.Secret, cfg.JWT.TTL)

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
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	// Expired refresh tokens accumulate between deploys; sweep them here
	// rather than carrying a background job for it.
	if err := repositories.NewUserRepository(gormDB).CleanExpiredRefreshTokens(); err != nil {
		logger.Warn("Failed to clean expired refresh tokens", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg, gormDB)

	customValidator := validator.New()
	appHandlers := handlers.NewAppHandlers(serviceContainer, customValidator)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	emailProvider := initializeEmailProvider(cfg)
	cityCache := initializeCityCache(cfg)

	return services.NewServiceContainer(gormDB, emailProvider, cityCache)
}

// initializeEmailProvider wires SMTP when configured and falls back to
// the mock provider otherwise, so local setups need no mail server.
func initializeEmailProvider(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP is not configured, outbound email is mocked")
		return &MockEmailProvider{}
	}

	renderer := email.NewTemplateManager()
	if err := renderer.RegisterDefaultTemplates(); err != nil {
		logger.Fatal("Failed to register email templates", "error", err)
	}

	provider := email.NewSMTPProvider(&email.SMTPConfig{
		Host:     cfg.Email.SMTPHost,
		Port:     cfg.Email.SMTPPort,
		Username: cfg.Email.SMTPUsername,
		Password: cfg.Email.SMTPPassword,
		From:     cfg.Email.FromEmail,
		FromName: cfg.Email.FromName,
	}, renderer)

	logger.Info("SMTP email provider initialized", "host", cfg.Email.SMTPHost)
	return provider
}

func initializeCityCache(cfg *config.Config) *cache.CityCache {
	if !cfg.Redis.Enabled {
		return cache.NewCityCache(nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	logger.Info("Redis city cache enabled", "addr", cfg.Redis.Addr)
	return cache.NewCityCache(client)
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

// seedFirstAdmin bootstraps the first admin account from config. The
// user and linked creator row are created in one transaction.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var adminUser models.User
		result := tx.Where("email = ?", adminEmail).First(&adminUser)
		if result.Error == nil {
			logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
			return nil
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check for admin user: %w", result.Error)
		}

		logger.Warn("No admin user found. Creating first admin...", "email", adminEmail)

		hash, err := auth.HashPassword(adminPassword)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}

		newAdmin := &models.User{
			Email:        adminEmail,
			PasswordHash: hash,
			Role:         models.UserRoleAdmin,
		}
		if err := tx.Create(newAdmin).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		adminCreator := &models.Creator{
			LinkedUserID: &newAdmin.ID,
			FullName:     "Administrator",
			Email:        adminEmail,
			Tier:         models.TierBase,
			Status:       models.CreatorStatusApproved,
		}
		if err := tx.Create(adminCreator).Error; err != nil {
			return fmt.Errorf("failed to create admin profile: %w", err)
		}

		logger.Info("First admin created", "email", adminEmail)
		return nil
	})
}
