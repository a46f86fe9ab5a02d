package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/graindock/grain-scheduler/internal/audit"
	"github.com/graindock/grain-scheduler/internal/cache"
	"github.com/graindock/grain-scheduler/internal/config"
	"github.com/graindock/grain-scheduler/internal/handlers"
	infraRepo "github.com/graindock/grain-scheduler/internal/infra/repository"
	"github.com/graindock/grain-scheduler/internal/logger"
	"github.com/graindock/grain-scheduler/internal/middleware"
	"github.com/graindock/grain-scheduler/internal/models"
	ucBooking "github.com/graindock/grain-scheduler/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	responseCache *cache.Cache,
	cfg *config.Config,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, logger.L())

	// ======================================================
	// USE CASES — BOOKING
	// ======================================================
	generateSlotsUC := ucBooking.NewGenerateSlots(bookingRepo, logger.L())
	getAvailabilityUC := ucBooking.NewGetAvailability(bookingRepo)
	bookSlotUC := ucBooking.NewBookSlot(bookingRepo, auditDispatcher)
	acceptUC := ucBooking.NewAcceptAppointment(bookingRepo, auditDispatcher)
	refuseUC := ucBooking.NewRefuseAppointment(bookingRepo, auditDispatcher)
	cancelUC := ucBooking.NewCancelAppointment(bookingRepo, auditDispatcher)
	confirmUC := ucBooking.NewConfirmAttendance(bookingRepo, auditDispatcher)
	listAppointmentsUC := ucBooking.NewListAppointments(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	warehouseHandler := handlers.NewWarehouseHandler(db, responseCache)
	zoneHandler := handlers.NewZoneHandler(db)
	grainHandler := handlers.NewGrainHandler(db)
	templateHandler := handlers.NewTemplateHandler(db)
	timeslotHandler := handlers.NewTimeSlotHandler(db, getAvailabilityUC, generateSlotsUC)
	deliveryHandler := handlers.NewDeliveryHandler(db, auditDispatcher)
	adminHandler := handlers.NewAdminHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		bookSlotUC,
		acceptUC,
		refuseUC,
		cancelUC,
		confirmUC,
		listAppointmentsUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// WAREHOUSES
			// ------------------------------
			secured.GET("/warehouses", warehouseHandler.List)
			secured.GET("/warehouses/nearest", warehouseHandler.Nearest)
			secured.GET("/warehouses/:id", warehouseHandler.Get)

			adminOnly := middleware.RequireRole(models.RoleWarehouseAdmin, models.RoleAdmin)

			secured.POST("/warehouses", adminOnly, warehouseHandler.Create)
			secured.PATCH("/warehouses/:id", adminOnly, warehouseHandler.Update)
			secured.DELETE("/warehouses/:id", adminOnly, warehouseHandler.Delete)

			// ------------------------------
			// STORAGE ZONES
			// ------------------------------
			secured.GET("/zones", zoneHandler.List)
			secured.GET("/zones/:id", zoneHandler.Get)
			secured.POST("/zones", adminOnly, zoneHandler.Create)
			secured.PATCH("/zones/:id", adminOnly, zoneHandler.Update)
			secured.DELETE("/zones/:id", adminOnly, zoneHandler.Delete)

			// ------------------------------
			// GRAINS
			// ------------------------------
			secured.GET("/grains", grainHandler.List)
			secured.GET("/grains/:id", grainHandler.Get)
			secured.POST("/grains", adminOnly, grainHandler.Create)
			secured.PATCH("/grains/:id", adminOnly, grainHandler.Update)
			secured.DELETE("/grains/:id", adminOnly, grainHandler.Delete)

			// ------------------------------
			// TEMPLATES
			// ------------------------------
			secured.GET("/templates", templateHandler.List)
			secured.GET("/templates/:id", templateHandler.Get)
			secured.POST("/templates", adminOnly, templateHandler.Create)
			secured.PATCH("/templates/:id", adminOnly, templateHandler.Update)
			secured.DELETE("/templates/:id", adminOnly, templateHandler.Delete)

			// ------------------------------
			// TIME SLOTS
			// ------------------------------
			secured.GET("/zones/:id/timeslots", timeslotHandler.ListByZone)
			secured.GET("/zones/:id/timeslots/available", timeslotHandler.ListAvailable)
			secured.GET("/timeslots/:id", timeslotHandler.Get)
			secured.POST("/timeslots/generate", adminOnly, timeslotHandler.Generate)
			secured.DELETE("/timeslots/:id", adminOnly, timeslotHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PATCH("/appointments/:id/accept", adminOnly, appointmentHandler.Accept)
			secured.PATCH("/appointments/:id/refuse", adminOnly, appointmentHandler.Refuse)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/appointments/:id/confirm-attendance", adminOnly, appointmentHandler.ConfirmAttendance)

			// ------------------------------
			// DELIVERIES
			// ------------------------------
			secured.POST("/deliveries", adminOnly, deliveryHandler.Create)
			secured.GET("/deliveries", deliveryHandler.List)
			secured.GET("/deliveries/:id", deliveryHandler.Get)

			// ------------------------------
			// ADMIN
			// ------------------------------
			secured.GET("/admin/statistics", middleware.RequireRole(models.RoleAdmin), adminHandler.Statistics)
			secured.GET("/audit-logs", adminOnly, auditLogsHandler.List)
		}
	}
}
