package routes

import (
	"github.com/campus-voice/api-go/controllers"
	"github.com/campus-voice/api-go/middleware"
	"github.com/campus-voice/api-go/models"
	"github.com/gin-gonic/gin"
)

func SetupUploadRoutes(protected *gin.RouterGroup, uploadController *controllers.UploadController) {
	upload := protected.Group("/upload")
	upload.Use(middleware.RequireRole(models.RoleStudent))
	{
		// Presigned PUT URL for a single attachment
		upload.POST("/presigned-url", uploadController.GetPresignedURL)

		// Confirm uploads and write the URLs onto the complaint
		upload.POST("/attach", uploadController.AttachFiles)
	}
}
