package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cutqueue/booking-api/internal/cache"
	"github.com/cutqueue/booking-api/internal/config"
	"github.com/cutqueue/booking-api/internal/handlers"
	infraRepo "github.com/cutqueue/booking-api/internal/infra/repository"
	"github.com/cutqueue/booking-api/internal/middleware"
	"github.com/cutqueue/booking-api/internal/models"
	"github.com/cutqueue/booking-api/internal/notify"
	ucAppointment "github.com/cutqueue/booking-api/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	notifyLogger := notify.New(db)
	notifyDispatcher := notify.NewDispatcher(notifyLogger)

	// The redis advisory lock is best effort; without redis the
	// transactional conflict check still guards every write.
	var slotLock ucAppointment.SlotLocker
	if lock, err := cache.NewSlotLock(cfg.RedisURL); err != nil {
		log.Printf("slot lock disabled: %v", err)
	} else {
		slotLock = lock
	}

	// ======================================================
	// USE CASES
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo)

	createUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		notifyDispatcher,
		slotLock,
	)
	rescheduleUC := ucAppointment.NewReschedule(appointmentRepo, notifyDispatcher)

	confirmUC := ucAppointment.NewConfirmAppointment(appointmentRepo, notifyDispatcher)
	cancelUC := ucAppointment.NewCancelAppointment(appointmentRepo, notifyDispatcher)
	completeUC := ucAppointment.NewCompleteAppointment(appointmentRepo, notifyDispatcher)
	noShowUC := ucAppointment.NewMarkNoShow(appointmentRepo, notifyDispatcher)

	listByDateUC := ucAppointment.NewListAppointmentsByDate(appointmentRepo)
	listByMonthUC := ucAppointment.NewListAppointmentsByMonth(appointmentRepo)
	daySummaryUC := ucAppointment.NewDaySummary(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	serviceHandler := handlers.NewServiceHandler(db)
	scheduleHandler := handlers.NewScheduleHandler(db)
	blockedTimeHandler := handlers.NewBlockedTimeHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		confirmUC,
		cancelUC,
		completeUC,
		noShowUC,
		rescheduleUC,
		listByDateUC,
		listByMonthUC,
		daySummaryUC,
	)

	bookingHandler := handlers.NewBookingHandler(db, createUC, cancelUC, rescheduleUC)
	publicHandler := handlers.NewPublicHandler(db, availabilityUC)
	notificationHandler := handlers.NewNotificationHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/barbers", publicHandler.ListBarbers)
			publicAPI.GET("/barbers/:id/services", publicHandler.ListBarberServices)
			publicAPI.GET("/barbers/:id/availability", publicHandler.GetAvailability)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)

			secured.GET("/me/notifications", notificationHandler.List)
			secured.PATCH("/me/notifications/:id/read", notificationHandler.MarkRead)

			// ------------------------------
			// BARBER
			// ------------------------------
			barber := secured.Group("/me")
			barber.Use(middleware.RequireRole(models.RoleBarber))
			{
				barber.GET("/services", serviceHandler.List)
				barber.POST("/services", serviceHandler.Create)
				barber.PATCH("/services/:id", serviceHandler.Update)
				barber.DELETE("/services/:id", serviceHandler.Delete)

				barber.GET("/schedule", scheduleHandler.Get)
				barber.PUT("/schedule", scheduleHandler.Update)

				barber.GET("/blocked-times", blockedTimeHandler.List)
				barber.POST("/blocked-times", blockedTimeHandler.Create)
				barber.DELETE("/blocked-times/:id", blockedTimeHandler.Delete)

				barber.GET("/appointments", appointmentHandler.ListByDate)
				barber.GET("/appointments/month", appointmentHandler.ListByMonth)
				barber.GET("/appointments/summary", appointmentHandler.DaySummary)

				barber.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
				barber.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
				barber.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
				barber.PATCH("/appointments/:id/no-show", appointmentHandler.NoShow)
				barber.PATCH("/appointments/:id/reschedule", appointmentHandler.Reschedule)
			}

			// ------------------------------
			// CUSTOMER
			// ------------------------------
			customer := secured.Group("/bookings")
			customer.Use(middleware.RequireRole(models.RoleCustomer))
			{
				customer.POST("", bookingHandler.Create)
				customer.GET("", bookingHandler.ListMine)
				customer.PATCH("/:id/cancel", bookingHandler.Cancel)
				customer.PATCH("/:id/reschedule", bookingHandler.Reschedule)
			}
		}
	}
}
