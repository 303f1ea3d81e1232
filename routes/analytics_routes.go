package routes

import (
	"github.com/campus-voice/api-go/controllers"
	"github.com/campus-voice/api-go/middleware"
	"github.com/campus-voice/api-go/models"
	"github.com/gin-gonic/gin"
)

func SetupAnalyticsRoutes(protected *gin.RouterGroup, analyticsController *controllers.AnalyticsController, exportController *controllers.ExportController) {
	analytics := protected.Group("/analytics")
	{
		analytics.GET("/stats", analyticsController.GetStats)
		analytics.GET("/trend", analyticsController.GetTrend)
	}

	protected.GET("/export/complaints",
		middleware.RequireRole(models.RoleFaculty, models.RoleAdmin),
		exportController.ExportComplaints)
}
