package main

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"localconnect/internal/geolocation"
	"localconnect/internal/handler"
	"localconnect/internal/repositories"
	"localconnect/internal/router"
	"localconnect/internal/scheduler"
	"localconnect/internal/service"
	"localconnect/pkg/envconfig"
	"localconnect/pkg/flags"
	"localconnect/pkg/kvstore"
	"localconnect/pkg/logger"
	"localconnect/pkg/shutdownsetup"
)

func main() {
	// Parse command-line flags
	flagConfig := flags.Parse()

	// Validate flag configuration
	if err := flagConfig.Validate(); err != nil {
		fmt.Printf("Configuration error: %v\n", err)
		return
	}

	envErr := envconfig.LoadEnvFile(".env")

	loggerConfig := logger.Config{
		Level:        envconfig.GetLogLevel(),
		Format:       envconfig.GetEnv("LOG_FORMAT", "json"),
		Output:       envconfig.GetEnv("LOG_OUTPUT", "stdout"),
		EnableCaller: envconfig.GetEnv("LOG_ENABLE_CALLER", "true") == "true",
		Environment:  envconfig.GetEnv("ENVIRONMENT", "development"),
	}

	appLogger := logger.New(loggerConfig)

	if envErr != nil {
		appLogger.Warn("Failed to load .env file", "error", envErr)
	} else {
		appLogger.Debug(".env file loaded successfully")
	}

	appConfig, err := envconfig.LoadAppConfig(flagConfig.ConfigFile)
	if err != nil {
		appLogger.Warn("Failed to load config file, using defaults",
			"path", flagConfig.ConfigFile,
			"error", err)
	}

	appLogger.Info("Starting Local Connect marketplace",
		"environment", loggerConfig.Environment,
		"log_level", loggerConfig.Level,
		"storage_backend", appConfig.Storage.Backend)

	// Catalog persistence backend
	store := openCatalogStore(appConfig, appLogger)
	defer func() {
		if err := store.Close(); err != nil {
			appLogger.Error("Failed to close catalog store", "error", err)
		}
	}()

	// Initialize repositories with logger and catalog store
	productRepo := repositories.NewProductRepository(store, appLogger)
	orderRepo := repositories.NewOrderRepository(appLogger)
	cartRepo := repositories.NewCartRepository(appLogger)
	preOrderRepo := repositories.NewPreOrderRepository(appLogger)
	favoritesRepo := repositories.NewFavoritesRepository(appLogger)

	locator := geolocation.NewSimulatedLocator(appConfig.Geolocation.Latency)

	// Initialize services with logger
	catalogService := service.NewCatalogService(productRepo, appLogger)
	cartService := service.NewCartService(cartRepo, productRepo, appLogger)
	checkoutService := service.NewCheckoutService(cartRepo, orderRepo, locator, appConfig.Geolocation.Timeout, appLogger)
	orderService := service.NewOrderService(orderRepo, appLogger)
	preOrderService := service.NewPreOrderService(preOrderRepo, productRepo, appLogger)
	favoritesService := service.NewFavoritesService(favoritesRepo, productRepo, appLogger)
	recipeService := service.NewRecipeService(cartRepo, 500*time.Millisecond, appLogger)
	authService := service.NewAuthService(appLogger)
	earningsService := service.NewEarningsService(orderRepo, appLogger)

	// Delivery lifecycle scheduler
	deliveryScheduler := scheduler.NewDeliveryScheduler(orderRepo, appConfig.Scheduler.Interval, nil, appLogger)
	deliveryScheduler.Start(context.Background())
	defer deliveryScheduler.Stop()

	// Initialize handlers with logger
	handlers := router.Handlers{
		Product:   handler.NewProductHandler(catalogService, appLogger),
		Cart:      handler.NewCartHandler(cartService, appLogger),
		Checkout:  handler.NewCheckoutHandler(checkoutService, appLogger),
		Order:     handler.NewOrderHandler(orderService, appLogger),
		PreOrder:  handler.NewPreOrderHandler(preOrderService, appLogger),
		Favorites: handler.NewFavoritesHandler(favoritesService, appLogger),
		Recipe:    handler.NewRecipeHandler(recipeService, appLogger),
		Auth:      handler.NewAuthHandler(authService, appLogger),
		Earnings:  handler.NewEarningsHandler(earningsService, appLogger),
	}

	apiHandler := router.New(handlers, appLogger)

	initialPort := flagConfig.Port
	if initialPort == "" {
		initialPort = envconfig.GetEnv("PORT", "8080")
	}
	host := envconfig.GetEnv("HOST", "localhost")

	port := initialPort

	server := &http.Server{
		Handler:      apiHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		server.Addr = host + ":" + port

		go func() {
			appLogger.Info("Starting HTTP server",
				"host", host,
				"port", port,
				"address", server.Addr)

			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				appLogger.Error("Server error", "error", err)
				serverErrors <- err
			}
		}()

		select {
		case err := <-serverErrors:
			if strings.Contains(err.Error(), "address already in use") && i < maxRetries-1 {
				portNum := 8080 + i + 1
				port = fmt.Sprintf("%d", portNum)
				appLogger.Warn("Port already in use, trying alternative port",
					"current_port", server.Addr,
					"next_port", port)
				continue
			} else {
				appLogger.Error("Failed to start server after retries", "error", err)
				return
			}
		case <-time.After(200 * time.Millisecond):
			appLogger.Info("Server started successfully", "port", port)
		}

		break
	}

	select {
	case err := <-serverErrors:
		appLogger.Error("Could not start server", "error", err)
		return
	default:
		shutdownsetup.SetupGracefulShutdown(server, appLogger)
	}
}

// openCatalogStore builds the configured persistence backend, falling back
// to the in-memory store when the backend cannot be reached. The catalog
// then still works for the session, it just does not survive restarts.
func openCatalogStore(appConfig envconfig.AppConfig, appLogger *logger.Logger) kvstore.Store {
	switch appConfig.Storage.Backend {
	case "redis":
		store, err := kvstore.NewRedisStore(kvstore.RedisOptions{
			RedisURL:  envconfig.GetEnv("REDIS_URL", appConfig.Storage.RedisURL),
			Namespace: "localconnect",
		}, appLogger)
		if err != nil {
			appLogger.Error("Failed to connect to Redis, falling back to in-memory store", "error", err)
			return kvstore.NewMemoryStore()
		}
		return store

	case "postgres":
		config := kvstore.DefaultPostgresConfig()
		config.Host = envconfig.GetEnv("DB_HOST", config.Host)
		if portStr := envconfig.GetEnv("DB_PORT", ""); portStr != "" {
			if parsedPort, err := strconv.Atoi(portStr); err == nil {
				config.Port = parsedPort
			}
		}
		config.User = envconfig.GetEnv("DB_USER", config.User)
		config.Password = envconfig.GetEnv("DB_PASSWORD", config.Password)
		config.DBName = envconfig.GetEnv("DB_NAME", config.DBName)
		config.SSLMode = envconfig.GetEnv("DB_SSL_MODE", config.SSLMode)

		store, err := kvstore.NewPostgresStore(config, appLogger)
		if err != nil {
			appLogger.Error("Failed to connect to PostgreSQL, falling back to in-memory store", "error", err)
			return kvstore.NewMemoryStore()
		}
		if err := store.HealthCheck(); err != nil {
			appLogger.Error("Database health check failed", "error", err)
		} else {
			appLogger.Info("Database health check passed")
		}
		return store

	case "memory":
		return kvstore.NewMemoryStore()

	default:
		store, err := kvstore.NewFileStore(appConfig.Storage.Path, appLogger)
		if err != nil {
			appLogger.Error("Failed to open file store, falling back to in-memory store", "error", err)
			return kvstore.NewMemoryStore()
		}
		return store
	}
}
