package controllers

import (
	"net/http"

	"github.com/campus-voice/api-go/complaints"
	"github.com/campus-voice/api-go/models"
	"github.com/campus-voice/api-go/notify"
	"github.com/campus-voice/api-go/realtime"
	"github.com/campus-voice/api-go/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CommentController struct {
	DB       *gorm.DB
	Broker   *realtime.Broker
	Notifier *notify.Notifier
}

func NewCommentController(db *gorm.DB, broker *realtime.Broker, notifier *notify.Notifier) *CommentController {
	return &CommentController{DB: db, Broker: broker, Notifier: notifier}
}

// CommentResponse carries the comment with the commenter's display name
// resolved from profiles.
type CommentResponse struct {
	models.ComplaintComment
	UserName string `json:"user_name"`
}

func (cmc *CommentController) visibleComplaint(c *gin.Context) (*models.Complaint, complaints.Actor, bool) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return nil, complaints.Actor{}, false
	}
	actor, err := complaints.LoadActor(cmc.DB, user.UserID)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "No role assigned"})
		return nil, complaints.Actor{}, false
	}

	var complaint models.Complaint
	if err := cmc.DB.First(&complaint, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Complaint not found"})
		return nil, actor, false
	}

	if !complaints.CanComment(actor, &complaint) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return nil, actor, false
	}
	return &complaint, actor, true
}

// ListComments returns the complaint's discussion in posting order.
func (cmc *CommentController) ListComments(c *gin.Context) {
	complaint, _, ok := cmc.visibleComplaint(c)
	if !ok {
		return
	}

	var comments []models.ComplaintComment
	if err := cmc.DB.Where("complaint_id = ?", complaint.ID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ids := make([]uint, 0, len(comments))
	seen := make(map[uint]bool)
	for _, cm := range comments {
		if !seen[cm.UserID] {
			seen[cm.UserID] = true
			ids = append(ids, cm.UserID)
		}
	}
	names := make(map[uint]string)
	if len(ids) > 0 {
		var profiles []models.Profile
		if err := cmc.DB.Where("user_id IN ?", ids).Find(&profiles).Error; err == nil {
			for _, p := range profiles {
				names[p.UserID] = p.Name
			}
		}
	}

	responses := make([]CommentResponse, 0, len(comments))
	for _, cm := range comments {
		responses = append(responses, CommentResponse{
			ComplaintComment: cm,
			UserName:         names[cm.UserID],
		})
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: responses})
}

// AddComment appends a discussion entry. Anyone who can see the complaint can
// comment; entries are never edited or deleted.
func (cmc *CommentController) AddComment(c *gin.Context) {
	complaint, actor, ok := cmc.visibleComplaint(c)
	if !ok {
		return
	}

	var input struct {
		Comment string `json:"comment" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	comment := models.ComplaintComment{
		ComplaintID: complaint.ID,
		UserID:      actor.UserID,
		Comment:     input.Comment,
	}
	if err := cmc.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add comment"})
		return
	}

	cmc.Notifier.ComplaintCommented(c.Request.Context(), complaint, actor.UserID)
	cmc.Broker.Publish(c.Request.Context(), realtime.ChangeEvent{
		Entity:   realtime.EntityComment,
		EntityID: complaint.ID,
		Kind:     realtime.KindComment,
	})

	c.JSON(http.StatusCreated, StandardResponse{
		Success: true,
		Data:    comment,
		Message: "Comment added successfully",
	})
}
