// File: bookify/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"bookify/config"
	"bookify/cron"
	"bookify/database"
	bookingRepo "bookify/database/repository/booking"
	notificationRepo "bookify/database/repository/notification"
	reviewRepo "bookify/database/repository/review"
	serviceRepo "bookify/database/repository/service"
	timeslotRepo "bookify/database/repository/timeslot"
	"bookify/handlers"
	"bookify/middleware"
	"bookify/routes"
	"bookify/services/availability"
	"bookify/services/booking"
	"bookify/services/catalog"
	"bookify/services/notification"
	"bookify/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Repositories.
	slotRepo := timeslotRepo.NewMongoTimeSlotRepo()
	bkRepo := bookingRepo.NewMongoBookingRepo()
	notifRepo := notificationRepo.NewMongoNotificationRepo()
	revRepo := reviewRepo.NewMongoReviewRepo()
	svcRepo := serviceRepo.NewMongoServiceRepo()

	indexed := []struct {
		name string
		fn   func() error
	}{
		{"timeslots", slotRepo.EnsureIndexes},
		{"bookings", bkRepo.EnsureIndexes},
		{"notifications", notifRepo.EnsureIndexes},
	}
	for _, ix := range indexed {
		if err := ix.fn(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure %s indexes: %v", ix.name, err)
		}
	}

	// Push queue client feeding the asynq worker.
	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queueClient.Close()
	sink := notification.NewAsynqSink(queueClient, logger)

	// Services.
	catalogService := &catalog.DefaultCatalogService{Repo: svcRepo}
	availabilityService := &availability.DefaultAvailabilityService{
		Slots:    slotRepo,
		Bookings: bkRepo,
		Clock:    utils.RealClock{},
	}
	bookingService := &booking.DefaultBookingService{
		Repo:    bkRepo,
		Slots:   slotRepo,
		Catalog: catalogService,
		Reviews: revRepo,
		Sink:    sink,
		Clock:   utils.RealClock{},
	}

	// Reconciliation sweeper.
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	sweeper := &cron.Sweeper{
		Bookings: bkRepo,
		Ledger:   bookingService,
		Notifs:   notifRepo,
		Sink:     sink,
		Cache:    utils.GetCacheClient(),
		Clock:    utils.RealClock{},
		Logger:   logger,
		Grace:    time.Duration(config.AppConfig.BookingGraceMinutes) * time.Minute,
		Window:   time.Hour,
	}
	go sweeper.Start(sweepCtx, time.Duration(config.AppConfig.SweepIntervalMinutes)*time.Minute)

	// Push delivery worker.
	cron.InitPushWorker(logger)

	// HTTP surface.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	handlerBundle := &routes.HandlerBundle{
		Booking:      handlers.NewBookingHandler(bookingService),
		TimeSlot:     handlers.NewTimeSlotHandler(availabilityService),
		Notification: handlers.NewNotificationHandler(notifRepo),
		Service:      handlers.NewServiceHandler(catalogService),
	}
	routes.RegisterRoutes(router, handlerBundle)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	stopSweep()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
