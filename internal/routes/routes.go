package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tomasbaksys/Pet-Barbershop/internal/audit"
	"github.com/tomasbaksys/Pet-Barbershop/internal/catalog"
	"github.com/tomasbaksys/Pet-Barbershop/internal/config"
	"github.com/tomasbaksys/Pet-Barbershop/internal/handlers"
	infraRepo "github.com/tomasbaksys/Pet-Barbershop/internal/infra/repository"
	"github.com/tomasbaksys/Pet-Barbershop/internal/middleware"
	ucBooking "github.com/tomasbaksys/Pet-Barbershop/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log *zap.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db, cfg.StoreTimeout)
	catalogReader := catalog.NewReader(catalog.NewGormReader(db), rdb, cfg.CatalogCacheTTL)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		catalogReader,
		auditDispatcher,
	)

	listBookingsUC := ucBooking.NewListBookingsForUser(
		bookingRepo,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	salonHandler := handlers.NewSalonHandler(db, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		listBookingsUC,
		cancelBookingUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.RateLimitMiddleware(log))
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PUBLIC CATALOG
		// ------------------------------
		api.GET("/salons/:id/services", serviceHandler.ListBySalon)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.POST("/salons", salonHandler.Create)
			secured.PATCH("/salons/:id", salonHandler.Update)
			secured.GET("/salons/:id/audit-logs", auditLogsHandler.List)

			secured.POST("/services", serviceHandler.Create)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings", bookingHandler.ListMine)
			secured.POST("/bookings/:id/cancel", bookingHandler.Cancel)
		}
	}
}
