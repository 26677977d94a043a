package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/Synquic/zenyourlife-sub004/internal/api"
	"github.com/Synquic/zenyourlife-sub004/internal/auth"
	"github.com/Synquic/zenyourlife-sub004/internal/availability"
	"github.com/Synquic/zenyourlife-sub004/internal/booking"
	"github.com/Synquic/zenyourlife-sub004/internal/catalog"
	"github.com/Synquic/zenyourlife-sub004/internal/config"
	"github.com/Synquic/zenyourlife-sub004/internal/email"
	"github.com/Synquic/zenyourlife-sub004/internal/property"
	"github.com/Synquic/zenyourlife-sub004/internal/schedule"
	"github.com/Synquic/zenyourlife-sub004/internal/testimonial"
	"github.com/Synquic/zenyourlife-sub004/internal/user"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
	email  *email.Service
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	api.RegisterValidators()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestIDMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())

	scheduleRepo := schedule.NewRepository(db)
	bookingRepo := booking.NewRepository(db)
	userRepo := user.NewRepository(db)
	catalogRepo := catalog.NewRepository(db)
	propertyRepo := property.NewRepository(db)
	testimonialRepo := testimonial.NewRepository(db)

	resolver := availability.NewResolver(scheduleRepo, bookingRepo, cfg.DefaultTimeSlots, cfg.Location)

	scheduleService := schedule.NewService(scheduleRepo, cfg.Location)
	bookingService := booking.NewService(bookingRepo, resolver, emailService,
		booking.Status(cfg.BookingInitialStatus), cfg.Location)
	userService := user.NewService(userRepo, cfg.JWTSecret)
	catalogService := catalog.NewService(catalogRepo)
	propertyService := property.NewService(propertyRepo)

	availabilityHandler := availability.NewHandler(resolver)
	scheduleHandler := schedule.NewHandler(scheduleService)
	bookingHandler := booking.NewHandler(bookingService)
	userHandler := user.NewHandler(userService)
	catalogHandler := catalog.NewHandler(catalogService)
	propertyHandler := property.NewHandler(propertyService)
	testimonialHandler := testimonial.NewHandler(testimonialRepo)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", userHandler.Register)
		authGroup.POST("/login", userHandler.Login)
		authGroup.POST("/refresh", userHandler.RefreshToken)
	}

	// Public booking surface. Creation is rate limited per client IP to
	// keep one misbehaving visitor from hammering the slot index.
	router.GET("/availability", availabilityHandler.GetDay)
	router.GET("/availability/range", availabilityHandler.GetRange)
	router.POST("/bookings", RateLimitMiddleware(1, 5), bookingHandler.Create)
	router.GET("/bookings/booked-slots", bookingHandler.BookedSlots)

	router.GET("/treatments", catalogHandler.ListActive)
	router.GET("/treatments/:id", catalogHandler.GetByID)
	router.GET("/properties", propertyHandler.ListActive)
	router.GET("/properties/:id", propertyHandler.GetByID)
	router.GET("/testimonials", testimonialHandler.ListApproved)
	router.POST("/testimonials", RateLimitMiddleware(0.2, 3), testimonialHandler.Create)

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.GetMe)
	}

	admin := router.Group("/admin")
	admin.Use(authMiddleware, auth.RequireRole("admin"))
	{
		admin.GET("/schedule", scheduleHandler.GetWeek)
		admin.PUT("/schedule/:weekday", scheduleHandler.UpdateDay)

		admin.POST("/blocked-dates", scheduleHandler.CreateBlockedDate)
		admin.GET("/blocked-dates", scheduleHandler.ListBlockedDates)
		admin.GET("/blocked-dates/:id", scheduleHandler.GetBlockedDate)
		admin.PUT("/blocked-dates/:id", scheduleHandler.UpdateBlockedDate)
		admin.DELETE("/blocked-dates/:id", scheduleHandler.DeactivateBlockedDate)

		admin.GET("/bookings", bookingHandler.List)
		admin.GET("/bookings/:id", bookingHandler.GetByID)
		admin.POST("/bookings/:id/confirm", bookingHandler.Confirm)
		admin.POST("/bookings/:id/cancel", bookingHandler.Cancel)
		admin.POST("/bookings/:id/complete", bookingHandler.Complete)

		admin.GET("/treatments", catalogHandler.ListAll)
		admin.POST("/treatments", catalogHandler.Create)
		admin.PUT("/treatments/:id", catalogHandler.Update)
		admin.DELETE("/treatments/:id", catalogHandler.Delete)

		admin.GET("/properties", propertyHandler.ListAll)
		admin.POST("/properties", propertyHandler.Create)
		admin.PUT("/properties/:id", propertyHandler.Update)
		admin.DELETE("/properties/:id", propertyHandler.Delete)

		admin.GET("/testimonials", testimonialHandler.ListAll)
		admin.POST("/testimonials/:id/approve", testimonialHandler.Approve)
		admin.DELETE("/testimonials/:id", testimonialHandler.Delete)

		admin.GET("/test-email", TestEmail(emailService))
	}

	router.GET("/health", Health)
	router.GET("/ready", Ready(db))
	router.GET("/metrics", Metrics())

	return &Server{
		router: router,
		db:     db,
		config: cfg,
		email:  emailService,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:              ":" + port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
