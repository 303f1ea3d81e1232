package routes

import (
	"github.com/campus-voice/api-go/controllers"
	"github.com/campus-voice/api-go/middleware"
	"github.com/campus-voice/api-go/models"
	"github.com/gin-gonic/gin"
)

func SetupComplaintRoutes(protected *gin.RouterGroup, complaintController *controllers.ComplaintController, commentController *controllers.CommentController) {
	complaints := protected.Group("/complaints")
	{
		complaints.POST("", complaintController.CreateComplaint)
		complaints.GET("", complaintController.ListComplaints)
		complaints.GET("/check-duplicates", complaintController.CheckDuplicates)
		complaints.GET("/:id", complaintController.GetComplaint)

		// Triage actions
		complaints.PUT("/:id/assign", middleware.RequireRole(models.RoleAdmin), complaintController.AssignDepartment)
		complaints.PUT("/:id/status", middleware.RequireRole(models.RoleFaculty, models.RoleAdmin), complaintController.UpdateStatus)
		complaints.PUT("/:id/priority", middleware.RequireRole(models.RoleFaculty, models.RoleAdmin), complaintController.UpdatePriority)

		complaints.POST("/:id/feedback", complaintController.SubmitFeedback)

		// Discussion thread
		complaints.GET("/:id/comments", commentController.ListComments)
		complaints.POST("/:id/comments", commentController.AddComment)
	}
}
