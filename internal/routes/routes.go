package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-agenda/internal/audit"
	"github.com/BruksfildServices01/barber-agenda/internal/cache"
	"github.com/BruksfildServices01/barber-agenda/internal/config"
	"github.com/BruksfildServices01/barber-agenda/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-agenda/internal/infra/repository"
	"github.com/BruksfildServices01/barber-agenda/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/barber-agenda/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewScheduleGormRepository(db)
	availabilityCache := cache.NewAvailabilityCache(cfg.RedisURL)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	getAvailabilityUC := ucAppointment.NewGetAvailability(
		repo,
		availabilityCache,
	)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		repo,
		availabilityCache,
		auditDispatcher,
	)

	listByDateUC := ucAppointment.NewListAppointmentsByDate(repo)

	updateStatusUC := ucAppointment.NewUpdateAppointmentStatus(
		repo,
		availabilityCache,
		auditDispatcher,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(
		getAvailabilityUC,
		createAppointmentUC,
	)

	adminHandler := handlers.NewAdminHandler(
		cfg,
		repo,
		availabilityCache,
		auditDispatcher,
		listByDateUC,
		updateStatusUC,
	)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		api.GET("/horarios", publicHandler.Horarios)
		api.POST("/agendar", publicHandler.Agendar)

		// ------------------------------
		// 🔐 ADMIN
		// ------------------------------
		api.POST("/admin/login", adminHandler.Login)

		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuthMiddleware(cfg))
		{
			admin.GET("/barbeiros", adminHandler.ListBarbers)
			admin.POST("/barbeiros", adminHandler.CreateBarber)
			admin.PUT("/barbeiros/:id/agenda", adminHandler.UpdateWeekdaySchedules)

			admin.GET("/agendamentos", adminHandler.ListAppointments)
			admin.PATCH("/agendamentos/:id", adminHandler.UpdateStatus)

			admin.GET("/bloqueios", adminHandler.ListBlackouts)
			admin.POST("/bloqueios", adminHandler.CreateBlackout)
			admin.DELETE("/bloqueios/:id", adminHandler.DeleteBlackout)
		}
	}
}
