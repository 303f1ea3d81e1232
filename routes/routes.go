package routes

import (
	"github.com/campus-voice/api-go/controllers"
	"github.com/campus-voice/api-go/middleware"
	"github.com/campus-voice/api-go/models"
	"github.com/campus-voice/api-go/notify"
	"github.com/campus-voice/api-go/realtime"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, hub *realtime.Hub, broker *realtime.Broker, notifier *notify.Notifier, logger *zap.Logger) {
	// Initialize controllers
	authController := controllers.NewAuthController(db)
	complaintController := controllers.NewComplaintController(db, broker, notifier)
	commentController := controllers.NewCommentController(db, broker, notifier)
	notificationController := controllers.NewNotificationController(db)
	analyticsController := controllers.NewAnalyticsController(db)
	exportController := controllers.NewExportController(db)
	uploadController := controllers.NewUploadController(db, broker)
	validationController := controllers.NewValidationController(db)
	realtimeController := controllers.NewRealtimeController(hub, logger)

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/register", authController.Register)
		public.POST("/login", authController.Login)
		public.POST("/auth/google", authController.GoogleLogin)

		// Registration forms use these before a token exists.
		SetupValidationRoutes(public, validationController)
	}

	// The websocket feed authenticates itself from the token query param.
	r.GET("/ws", realtimeController.ServeWS)

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/logout", authController.Logout)
		protected.POST("/refresh-token", authController.RefreshToken)
		protected.GET("/profile", authController.GetProfile)
		protected.PUT("/profile", authController.UpdateProfile)
		protected.PUT("/users/:id/profile", middleware.RequireRole(models.RoleAdmin), authController.AdminUpdateProfile)

		// Setup other routes within the protected group
		SetupComplaintRoutes(protected, complaintController, commentController)
		SetupNotificationRoutes(protected, notificationController)
		SetupAnalyticsRoutes(protected, analyticsController, exportController)
		SetupUploadRoutes(protected, uploadController)
	}
}
