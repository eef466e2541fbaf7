package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"smartadmin_backend/internal/auth"
	"smartadmin_backend/internal/config"
	"smartadmin_backend/internal/email"
	"smartadmin_backend/internal/handlers"
	"smartadmin_backend/internal/logger"
	"smartadmin_backend/internal/middleware"
	"smartadmin_backend/internal/models"
	chatmodels "smartadmin_backend/internal/models/chat"
	"smartadmin_backend/internal/repositories"
	chatrepo "smartadmin_backend/internal/repositories/chat"
	"smartadmin_backend/internal/routes"
	"smartadmin_backend/internal/services"
	"smartadmin_backend/internal/validator"
	"smartadmin_backend/ws"
)

func Run() {
	// .env нужен только для локальной разработки, отсутствие не ошибка
	_ = godotenv.Load()

	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	if err := gormDB.AutoMigrate(
		&models.Admin{},
		&models.Member{},
		&models.Payment{},
		&models.Review{},
		&models.Cost{},
		&models.Package{},
		&chatmodels.Message{},
	); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}
	logger.Info("Database connected")

	rdb, err := newRedisClient(cfg.Redis.URL)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", "error", err)
	}

	if err := seedFirstAdmin(gormDB); err != nil {
		logger.Fatal("Failed to seed first admin", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB, rdb)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func newRedisClient(url string) (*redis.Client, error) {
	if url == "" {
		url = "redis://localhost:6379"
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return redis.NewClient(opts), nil
}

// SetupRouter собирает весь граф зависимостей и возвращает готовый роутер.
// Вынесен отдельно, чтобы интеграционные тесты поднимали приложение без Run.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB, rdb *redis.Client) *gin.Engine {
	validator.RegisterGinBindings()

	jwtManager := auth.NewJWTManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLHours)*time.Hour)
	notifier := email.NewSMTPNotifier(cfg.Email)

	// Репозитории
	adminRepo := repositories.NewAdminRepository(gormDB)
	memberRepo := repositories.NewMemberRepository(gormDB)
	paymentRepo := repositories.NewPaymentRepository(gormDB)
	reviewRepo := repositories.NewReviewRepository(gormDB)
	costRepo := repositories.NewCostRepository(gormDB)
	packageRepo := repositories.NewPackageRepository(gormDB)
	messageRepo := chatrepo.NewMessageRepository(gormDB)

	// Сервисы
	authService := services.NewAuthService(adminRepo, jwtManager, rdb)
	memberService := services.NewMemberService(memberRepo, notifier)
	revenueService := services.NewRevenueService(paymentRepo)
	reviewService := services.NewReviewService(reviewRepo)
	costService := services.NewCostService(costRepo)
	packageService := services.NewPackageService(packageRepo)
	dashboardService := services.NewDashboardService(memberRepo, paymentRepo, reviewRepo, messageRepo)
	chatService := services.NewChatService(messageRepo, cfg.Chat.HistoryLimit, cfg.Chat.RoomScanLimit)

	// Хэндлеры
	base := handlers.NewBaseHandler(validator.New())
	appHandlers := &handlers.AppHandlers{
		AuthHandler:      handlers.NewAuthHandler(base, authService),
		DashboardHandler: handlers.NewDashboardHandler(base, dashboardService),
		MemberHandler:    handlers.NewMemberHandler(base, memberService),
		RevenueHandler:   handlers.NewRevenueHandler(base, revenueService),
		ReviewHandler:    handlers.NewReviewHandler(base, reviewService),
		CostHandler:      handlers.NewCostHandler(base, costService),
		PricingHandler:   handlers.NewPricingHandler(base, packageService),
		ChatHandler:      handlers.NewChatHandler(base, chatService),
	}

	// WebSocket
	wsManager := ws.NewManager(chatService)
	go wsManager.Run()
	wsHandler := ws.NewHandler(wsManager)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(ginRouter, appHandlers, wsHandler, jwtManager, authService)

	return ginRouter
}

// seedFirstAdmin создаёт стартовый аккаунт, если база пустая.
// Пароль нужно сменить после первого входа.
func seedFirstAdmin(gormDB *gorm.DB) error {
	adminRepo := repositories.NewAdminRepository(gormDB)

	_, err := adminRepo.FindAny()
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := auth.HashPassword("admin1234")
	if err != nil {
		return err
	}

	admin := &models.Admin{
		Email:        "admin@smart-admin.com",
		PasswordHash: hash,
		Name:         "Administrator",
		Role:         models.AdminRoleSuper,
		IsActive:     true,
	}
	if err := adminRepo.Create(admin); err != nil {
		return err
	}

	logger.Info("Seeded first admin account", "email", admin.Email)
	return nil
}
