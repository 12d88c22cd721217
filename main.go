// File: reservas/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"reservas/config"
	"reservas/database"
	agencyRepoPkg "reservas/database/repository/agency"
	serviceRepoPkg "reservas/database/repository/service"
	"reservas/handlers"
	"reservas/middleware"
	"reservas/routes"
	"reservas/services/availability"
	"reservas/services/schedule"
	"reservas/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	agencyRepo := agencyRepoPkg.NewMongoAgencyRepo()
	serviceRepo := serviceRepoPkg.NewMongoAgencyServiceRepo()
	if mongoRepo, ok := serviceRepo.(*serviceRepoPkg.MongoAgencyServiceRepo); ok {
		if err := mongoRepo.EnsureIndexes(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure service indexes: %v", err)
		}
	}

	// services.
	validator := schedule.NewValidator()
	catalogCache := &availability.RedisCatalogCache{Client: utils.GetCacheClient()}
	catalogTTL := time.Duration(config.AppConfig.CatalogCacheTTL) * time.Second
	catalog := availability.NewCatalog(serviceRepo, catalogCache, catalogTTL, logger)
	resolver := availability.NewResolver(logger)

	// handlers.
	availabilityHandler := handlers.NewAvailabilityHandler(catalog, resolver, logger)
	agencyServiceHandler := handlers.NewAgencyServiceHandler(validator, serviceRepo, agencyRepo, catalog, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Booking endpoints.
		GetAvailableServices: availabilityHandler.GetAvailableServices,

		// Admin agency-service endpoints.
		SaveAgencyService:       agencyServiceHandler.SaveAgencyService,
		GetAgencyService:        agencyServiceHandler.GetAgencyService,
		DeactivateAgencyService: agencyServiceHandler.DeactivateAgencyService,
		ListAgencyServices:      agencyServiceHandler.ListAgencyServices,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
