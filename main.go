// File: courtside/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"courtside/config"
	"courtside/cron"
	"courtside/database"
	bookingRepo "courtside/database/repository/booking"
	coachRepo "courtside/database/repository/coach"
	ruleRepo "courtside/database/repository/rule"
	"courtside/handlers"
	"courtside/middleware"
	"courtside/routes"
	"courtside/services/coach"
	"courtside/services/schedule"
	"courtside/utils"

	"github.com/gin-contrib/cors"
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
	router.Use(cors.Default())

	// repositories.
	coaches := coachRepo.NewMongoCoachRepo()
	rules := ruleRepo.NewMongoRuleRepo()
	bookings := bookingRepo.NewMongoBookingRepo()

	for name, ensure := range map[string]func() error{
		"coaches":  coaches.EnsureIndexes,
		"rules":    rules.EnsureIndexes,
		"bookings": bookings.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure %s indexes: %v", name, err)
		}
	}

	// The slot engine: every screen's availability view and the reservation
	// command route through this one instance.
	engine := schedule.NewEngine(coaches, rules, bookings,
		schedule.GeneratorOptions{LeadingBuffer: config.AppConfig.LeadingBuffer}, logger)
	engine.Cache = utils.GetCacheClient()
	engine.CacheTTL = time.Duration(config.AppConfig.SlotCacheTTLSecs) * time.Second

	coachService := &coach.DefaultCoachService{
		Repo:    coaches,
		Rules:   rules,
		Engine:  engine,
		Refresh: cron.NewEnqueuer(),
	}

	availabilityHandler := handlers.NewAvailabilityHandler(engine, logger)
	bookingHandler := handlers.NewBookingHandler(engine, bookings, logger)
	coachHandler := handlers.NewCoachHandler(coachService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		GetSlotsHandler:             availabilityHandler.GetSlotsHandler,
		GetMonthAvailabilityHandler: availabilityHandler.GetMonthAvailabilityHandler,

		ReserveHandler:           bookingHandler.ReserveHandler,
		CancelBookingHandler:     bookingHandler.CancelBookingHandler,
		GetCoachBookingsHandler:  bookingHandler.GetCoachBookingsHandler,
		GetPlayerBookingsHandler: bookingHandler.GetPlayerBookingsHandler,

		CreateCoachHandler:   coachHandler.CreateCoachHandler,
		GetCoachHandler:      coachHandler.GetCoachHandler,
		DeleteCoachHandler:   coachHandler.DeleteCoachHandler,
		AddServiceHandler:    coachHandler.AddServiceHandler,
		RemoveServiceHandler: coachHandler.RemoveServiceHandler,
		CreateRuleHandler:    coachHandler.CreateRuleHandler,
		ListRulesHandler:     coachHandler.ListRulesHandler,
		DeleteRuleHandler:    coachHandler.DeleteRuleHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background cache rewarm worker and dependency health monitor.
	cron.InitAvailabilityWorker(engine, coaches)
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

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
