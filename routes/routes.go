// File: routes/routes.go
package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"bookify/handlers"
	"bookify/middleware"
	"bookify/utils"
)

// HandlerBundle collects the handler groups the router wires up.
type HandlerBundle struct {
	Booking      *handlers.BookingHandler
	TimeSlot     *handlers.TimeSlotHandler
	Notification *handlers.NotificationHandler
	Service      *handlers.ServiceHandler
}

// RegisterRoutes mounts every endpoint group onto the engine.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterTimeslotRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
}

// RegisterHealthRoute registers the health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if !status.Mongo || !status.Redis {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"mongo": status.Mongo, "redis": status.Redis})
	})
}

// RegisterBookingRoutes sets up the booking ledger endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	api.Use(middleware.AuthMiddleware())
	{
		api.GET("", hb.Booking.ListHandler)
		api.GET("/stats", hb.Booking.StatsHandler)
		api.GET("/:id", hb.Booking.GetHandler)
		api.PATCH("/:id/status", hb.Booking.UpdateStatusHandler)
		api.POST("/:id/cancel", hb.Booking.CancelHandler)

		users := api.Group("")
		users.Use(middleware.RequireUser())
		users.POST("", hb.Booking.CreateHandler)

		providers := api.Group("")
		providers.Use(middleware.RequireProvider())
		providers.GET("/calendar", hb.Booking.CalendarHandler)
		providers.POST("/:id/accept", hb.Booking.AcceptHandler)
		providers.POST("/:id/reject", hb.Booking.RejectHandler)
		providers.DELETE("/:id", hb.Booking.DeleteHandler)
	}
}

// RegisterTimeslotRoutes sets up availability management endpoints.
func RegisterTimeslotRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/timeslots")
	api.Use(middleware.AuthMiddleware())
	{
		// Customer-facing availability derivation.
		api.GET("/available/:providerID", hb.TimeSlot.AvailableTimesHandler)

		providers := api.Group("")
		providers.Use(middleware.RequireProvider())
		providers.PUT("", hb.TimeSlot.UpsertSlotHandler)
		providers.PUT("/bulk", hb.TimeSlot.BulkUpsertHandler)
		providers.POST("/pattern", hb.TimeSlot.ApplyPatternHandler)
		providers.GET("", hb.TimeSlot.QueryRangeHandler)
		providers.GET("/booking", hb.TimeSlot.SlotBookingHandler)
		providers.DELETE("", hb.TimeSlot.DeleteSlotHandler)
	}
}

// RegisterNotificationRoutes sets up notification feed endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/notifications")
	api.Use(middleware.AuthMiddleware())
	{
		api.GET("", hb.Notification.ListHandler)
		api.PATCH("/:id/read", hb.Notification.MarkReadHandler)
	}
}

// RegisterCatalogRoutes sets up read-only service catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/services")
	api.Use(middleware.AuthMiddleware())
	{
		api.GET("/:id", hb.Service.GetHandler)
		api.GET("/provider/:providerID", hb.Service.ListByProviderHandler)
	}
}
