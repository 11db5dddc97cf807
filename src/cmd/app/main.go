package main

import (
	"fmt"
	"os"
	"os/signal"

	"wallet-service/src/internal/config"
	"wallet-service/src/internal/delivery/http/middleware"
	"wallet-service/src/pkg/log"
	"wallet-service/src/pkg/metrics"
)

func main() {
	viperConfig := config.NewViper()
	viperConfig.SetDefault("log.level", "DEBUG")
	viperConfig.SetDefault("app.name", "WALLET_SERVICE")
	viperConfig.SetDefault("web.port", 8080)
	viperConfig.SetDefault("storage.dir", "data")
	viperConfig.SetDefault("notifications.max", 100)

	logger := log.InitLogger(viperConfig)
	store := config.NewStore(viperConfig, logger)
	if store == nil {
		os.Exit(1)
	}
	validate := config.NewValidator()
	collector := metrics.NewCollector()

	app := config.NewFiber(viperConfig)
	app.Use(middleware.NewLogger(logger))

	config.Bootstrap(&config.BootstrapConfig{
		Store:    store,
		App:      app,
		Log:      logger,
		Validate: validate,
		Config:   viperConfig,
		Metrics:  collector,
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	go func() {
		<-quit
		logger.Info("main", "Server wallet-service is shutting down...", "graceful", "")
		if err := app.Shutdown(); err != nil {
			logger.Error("main", fmt.Sprintf("Error during shutdown: %v", err), "graceful", "")
		}
	}()

	webPort := viperConfig.GetInt("web.port")
	if err := app.Listen(fmt.Sprintf(":%d", webPort)); err != nil {
		logger.Error("main", fmt.Sprintf("Failed to start server: %v", err), "main", "")
		os.Exit(1)
	}

	logger.Info("main", fmt.Sprintf("Server %s stopped", viperConfig.GetString("app.name")), "graceful", "")
}
