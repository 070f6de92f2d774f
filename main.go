// File: fixwork/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fixwork/config"
	"fixwork/database"
	jobRepoPkg "fixwork/database/repository/job"
	serviceRepoPkg "fixwork/database/repository/service"
	"fixwork/handlers"
	"fixwork/middleware"
	"fixwork/routes"
	"fixwork/services/catalog"
	"fixwork/services/jobs"
	"fixwork/services/reporting"
	"fixwork/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	client, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	db := client.Database(config.AppConfig.DatabaseName)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	svcRepo := serviceRepoPkg.NewMongoServiceRepo(db)
	jobsRepo := jobRepoPkg.NewMongoJobRepo(db)

	// services.
	catalogService := &catalog.DefaultCatalogService{
		Repo: svcRepo,
	}
	jobService := &jobs.DefaultJobService{
		Repo: jobsRepo,
	}
	reportingService := &reporting.DefaultReportingService{
		Jobs:     jobsRepo,
		Services: svcRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Catalog:   handlers.NewCatalogHandler(catalogService, logger),
		Jobs:      handlers.NewJobHandler(jobService, logger),
		Reporting: handlers.NewReportingHandler(reportingService, logger),
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

	if err := database.Disconnect(client, 5*time.Second); err != nil {
		logger.Sugar().Warnf("main: failed to close MongoDB connection: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
