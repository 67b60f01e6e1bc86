package routes

import (
	"github.com/gin-gonic/gin"

	"ondoctor-server/internal/config"
	"ondoctor-server/internal/handlers"
	"ondoctor-server/internal/middleware"
)

// Handlers bundles the constructed handlers SetupRoutes wires up.
type Handlers struct {
	Auth        *handlers.AuthHandler
	Directory   *handlers.DirectoryHandler
	Appointment *handlers.AppointmentHandler
	AI          *handlers.AIHandler
	Alarm       *handlers.AlarmHandler
	Device      *handlers.DeviceHandler
}

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, h Handlers, cfg *config.Config) {
	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		authRoutes := public.Group("/auth")
		{
			authRoutes.POST("/register", h.Auth.Register)
			authRoutes.POST("/login", h.Auth.Login)
			authRoutes.POST("/refresh-token", h.Auth.RefreshToken)
			authRoutes.POST("/logout", h.Auth.Logout)
		}

		// Browsing the catalog and checking slot availability needs no login.
		public.GET("/doctors", h.Directory.GetDoctors)
		public.GET("/doctors/:id", h.Directory.GetDoctorByID)
		public.GET("/doctors/:id/slots", h.Appointment.GetTimeSlots)
		public.GET("/departments", h.Directory.GetDepartments)
		public.GET("/surgeries", h.Directory.GetSurgeries)
		public.GET("/health-concerns", h.Directory.GetHealthConcerns)

		// Generative AI endpoints sit behind a shared rate limit; the
		// upstream quota is metered.
		aiRoutes := public.Group("/ai")
		aiRoutes.Use(middleware.NewRateLimiterMiddleware(middleware.RateLimiterConfig{
			RequestsPerMinute: cfg.AIRequestsPerMinute,
			Burst:             cfg.AIBurst,
		}))
		{
			aiRoutes.POST("/meal-plan", h.AI.GenerateMealPlan)
			aiRoutes.POST("/eprescription", h.AI.GenerateEprescription)
			aiRoutes.POST("/chat", h.AI.Chat)
		}
	}

	// Authenticated routes
	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(cfg))
	{
		authRoutesPrivate := private.Group("/auth")
		{
			authRoutesPrivate.GET("/profile", h.Auth.GetProfile)
			authRoutesPrivate.PUT("/profile", h.Auth.UpdateProfile)
		}

		appointmentRoutes := private.Group("/appointments")
		{
			appointmentRoutes.POST("", h.Appointment.CreateAppointment)
			appointmentRoutes.GET("", h.Appointment.ListAppointments)
			appointmentRoutes.GET("/:id", h.Appointment.GetAppointmentByID)
			appointmentRoutes.PATCH("/:id/cancel", h.Appointment.CancelAppointment)
		}

		alarmRoutes := private.Group("/medicine-alarms")
		{
			alarmRoutes.POST("", h.Alarm.CreateAlarm)
			alarmRoutes.GET("", h.Alarm.ListAlarms)
			alarmRoutes.PUT("/:id", h.Alarm.UpdateAlarm)
			alarmRoutes.DELETE("/:id", h.Alarm.DeleteAlarm)
		}

		private.GET("/health-devices", h.Device.ListDevices)
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
