package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"resort-booking-backend/config"
	"resort-booking-backend/internal/auth"
	"resort-booking-backend/internal/calendar"
	"resort-booking-backend/internal/mw"
	"resort-booking-backend/internal/payment"
	"resort-booking-backend/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(s store.Store, sessions *auth.Sessions, cfg *config.Config) *gin.Engine {
	registerValidators()

	r := gin.Default()

	providers := payment.NewRegistry(cfg.Payment.Providers)
	handler := NewHandler(s, sessions, providers, cfg.Auth.BcryptCost)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitBurst)

	cacheTTL := time.Duration(cfg.Server.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.POST("/auth/register", handler.Register)
		api.POST("/auth/login", handler.Login)
		api.POST("/auth/logout", handler.RequireAuth, handler.Logout)
		api.GET("/auth/me", handler.RequireAuth, handler.Me)

		api.GET("/rooms", caching, handler.ListRooms)
		api.GET("/rooms/:room_id/capacity", caching, handler.RoomCapacity)
		api.GET("/rooms/:room_id/blocked-dates", caching, handler.BlockedDates)
		// Availability is consulted right before booking; serving a cached
		// answer here would invite avoidable conflicts.
		api.GET("/rooms/:room_id/availability", handler.CheckAvailability)

		api.POST("/bookings", handler.RequireAuth, handler.CreateBooking)
		api.GET("/bookings", handler.RequireAuth, handler.GetUserBookings)
	}

	return r
}

// registerValidators adds the calendar-date rule used by binding tags.
func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("bookdate", func(fl validator.FieldLevel) bool {
			_, err := calendar.Parse(fl.Field().String())
			return err == nil
		})
	}
}
