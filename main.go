// File: bookportal/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookportal/config"
	"bookportal/handlers"
	"bookportal/middleware"
	"bookportal/parseserver"
	"bookportal/routes"
	"bookportal/services/payment"
	"bookportal/services/portal"
	"bookportal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitCache()

	imageResolver, err := utils.NewImageResolver()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize image resolver: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.Default())

	// backend client and services.
	parseClient := parseserver.NewClient(
		config.AppConfig.ParseServerURL,
		config.AppConfig.ParseApplicationID,
		logger,
	)
	bootstrapService := portal.NewService(parseClient, imageResolver, logger)
	stripeVerifier := payment.NewStripeVerifier(config.AppConfig.StripeSecretKey, logger)

	portalHandler := handlers.NewPortalHandler(bootstrapService, logger)
	var verifier payment.Verifier
	if stripeVerifier != nil {
		verifier = stripeVerifier
	}
	bookingHandler := handlers.NewBookingHandler(parseClient, utils.GetCacheClient(), verifier, logger)

	routes.RegisterRoutes(router, portalHandler, bookingHandler)

	utils.StartHealthMonitor(utils.GetCacheClient(), parseClient)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("booking portal listening on :%s", config.AppConfig.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: forced shutdown: %v", err)
	}
}
