package config

import (
	"wallet-service/src/internal/delivery/http"
	"wallet-service/src/internal/delivery/http/middleware"
	"wallet-service/src/internal/delivery/http/route"
	"wallet-service/src/internal/repository"
	"wallet-service/src/internal/usecase"
	"wallet-service/src/pkg/log"
	"wallet-service/src/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
)

type BootstrapConfig struct {
	Store    *repository.Store
	App      *fiber.App
	Log      log.Log
	Validate *validator.Validate
	Config   *viper.Viper
	Metrics  *metrics.Collector
}

func Bootstrap(config *BootstrapConfig) {
	// setup repositories
	sessionRepository := repository.NewSessionRepository(config.Store)
	userRepository := repository.NewUserRepository(config.Store)
	walletRepository := repository.NewWalletRepository(config.Store)
	notificationRepository := repository.NewNotificationRepository(config.Store)
	settingsRepository := repository.NewSettingsRepository(config.Store)

	// setup use cases
	notificationUseCase := usecase.NewNotificationUseCase(
		config.Log,
		notificationRepository,
		config.Metrics,
		config.Config.GetInt("notifications.max"),
	)
	seedUseCase := usecase.NewSeedUseCase(config.Log, userRepository, walletRepository)
	walletUseCase := usecase.NewWalletUseCase(
		config.Log,
		config.Validate,
		walletRepository,
		settingsRepository,
		notificationUseCase,
		config.Metrics,
	)
	authUseCase := usecase.NewAuthUseCase(
		config.Log,
		config.Validate,
		sessionRepository,
		userRepository,
		seedUseCase,
		notificationUseCase,
		config.Metrics,
	)
	adminUseCase := usecase.NewAdminUseCase(
		config.Log,
		config.Validate,
		config.Store,
		userRepository,
		walletRepository,
		settingsRepository,
		notificationUseCase,
	)

	// seed default records once per start; a no-op when data already exists
	if err := seedUseCase.InitializeIfAbsent(); err != nil {
		config.Log.Error("Bootstrap", err.Error(), "seed", "")
	}

	// setup controllers
	authController := http.NewAuthController(authUseCase, config.Log)
	walletController := http.NewWalletController(walletUseCase, config.Log)
	adminController := http.NewAdminController(adminUseCase, walletUseCase, config.Log)
	notificationController := http.NewNotificationController(notificationUseCase, config.Log)

	routeConfig := route.RouteConfig{
		App:                    config.App,
		AuthController:         authController,
		WalletController:       walletController,
		AdminController:        adminController,
		NotificationController: notificationController,
		AuthMiddleware:         middleware.VerifyAuth(sessionRepository),
		Metrics:                config.Metrics,
	}
	routeConfig.Setup()
}
