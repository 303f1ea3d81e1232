package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/campus-voice/api-go/complaints"
	"github.com/campus-voice/api-go/models"
	"github.com/campus-voice/api-go/notify"
	"github.com/campus-voice/api-go/realtime"
	"github.com/campus-voice/api-go/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ComplaintController struct {
	DB       *gorm.DB
	Broker   *realtime.Broker
	Notifier *notify.Notifier
}

func NewComplaintController(db *gorm.DB, broker *realtime.Broker, notifier *notify.Notifier) *ComplaintController {
	return &ComplaintController{DB: db, Broker: broker, Notifier: notifier}
}

// ComplaintResponse is a complaint as rendered for a particular viewer:
// identity fields already shaped by the anonymity policy.
type ComplaintResponse struct {
	models.Complaint
	StudentName string `json:"student_name"`
}

func (cc *ComplaintController) loadActor(c *gin.Context) (complaints.Actor, bool) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return complaints.Actor{}, false
	}
	actor, err := complaints.LoadActor(cc.DB, user.UserID)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "No role assigned"})
		return complaints.Actor{}, false
	}
	return actor, true
}

// CreateComplaint files a new complaint for the calling student. The row
// always starts pending and unassigned; attachments arrive later through the
// upload flow.
func (cc *ComplaintController) CreateComplaint(c *gin.Context) {
	actor, ok := cc.loadActor(c)
	if !ok {
		return
	}
	if actor.Role != models.RoleStudent {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only students can file complaints"})
		return
	}

	var input struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description" binding:"required"`
		Category    string `json:"category"`
		Priority    string `json:"priority"`
		IsAnonymous bool   `json:"is_anonymous"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	priority := input.Priority
	if priority == "" {
		priority = complaints.PriorityMedium
	}
	if !complaints.ValidPriority(priority) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority", "success": false})
		return
	}

	complaint := models.Complaint{
		StudentID:   actor.UserID,
		IsAnonymous: input.IsAnonymous,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Priority:    priority,
		Status:      complaints.StatusPending,
	}

	if err := cc.DB.Create(&complaint).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to file complaint", "success": false})
		return
	}

	cc.Broker.Publish(c.Request.Context(), realtime.ChangeEvent{
		Entity:   realtime.EntityComplaint,
		EntityID: complaint.ID,
		Kind:     realtime.KindCreated,
	})

	c.JSON(http.StatusCreated, StandardResponse{
		Success: true,
		Data:    complaint,
		Message: "Complaint filed successfully",
	})
}

// ListComplaints returns the caller's visible set, newest first: students see
// their own, faculty their department's, admins everything.
func (cc *ComplaintController) ListComplaints(c *gin.Context) {
	actor, ok := cc.loadActor(c)
	if !ok {
		return
	}

	rows, err := cc.scopedComplaints(actor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    cc.shapeForViewer(actor, rows),
	})
}

// scopedComplaints builds the visibility scope into the query itself; this is
// the enforcement point, not client-side filtering.
func (cc *ComplaintController) scopedComplaints(actor complaints.Actor) ([]models.Complaint, error) {
	var rows []models.Complaint
	query := cc.DB.Order("created_at DESC")

	switch actor.Role {
	case models.RoleStudent:
		query = query.Where("student_id = ?", actor.UserID)
	case models.RoleFaculty:
		if actor.Department == "" {
			return []models.Complaint{}, nil
		}
		query = query.Where("department = ?", actor.Department)
	case models.RoleAdmin:
		// unrestricted
	default:
		return []models.Complaint{}, nil
	}

	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// shapeForViewer resolves submitter names and applies the anonymity policy
// for the viewer. The stored rows are never modified.
func (cc *ComplaintController) shapeForViewer(actor complaints.Actor, rows []models.Complaint) []ComplaintResponse {
	names := cc.profileNames(rows)
	responses := make([]ComplaintResponse, 0, len(rows))
	for _, row := range rows {
		shaped := complaints.Anonymize(actor, row)
		responses = append(responses, ComplaintResponse{
			Complaint:   shaped,
			StudentName: complaints.DisplayName(actor, &row, names[row.StudentID]),
		})
	}
	return responses
}

func (cc *ComplaintController) profileNames(rows []models.Complaint) map[uint]string {
	ids := make([]uint, 0, len(rows))
	seen := make(map[uint]bool)
	for _, row := range rows {
		if !seen[row.StudentID] {
			seen[row.StudentID] = true
			ids = append(ids, row.StudentID)
		}
	}

	names := make(map[uint]string)
	if len(ids) == 0 {
		return names
	}
	var profiles []models.Profile
	if err := cc.DB.Where("user_id IN ?", ids).Find(&profiles).Error; err != nil {
		return names
	}
	for _, p := range profiles {
		names[p.UserID] = p.Name
	}
	return names
}

// GetComplaint returns a single complaint with its history, subject to the
// same visibility policy as the list.
func (cc *ComplaintController) GetComplaint(c *gin.Context) {
	actor, ok := cc.loadActor(c)
	if !ok {
		return
	}

	var complaint models.Complaint
	if err := cc.DB.First(&complaint, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Complaint not found"})
		return
	}

	if !complaints.CanRead(actor, &complaint) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	var history []models.ComplaintHistory
	cc.DB.Where("complaint_id = ?", complaint.ID).Order("changed_at ASC").Find(&history)

	shaped := cc.shapeForViewer(actor, []models.Complaint{complaint})

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data: gin.H{
			"complaint": shaped[0],
			"history":   history,
		},
	})
}

// AssignDepartment routes a complaint to a department. Admin only; the
// department must come from the fixed list; department and assigned_by are
// set together, exactly once. Status is untouched.
func (cc *ComplaintController) AssignDepartment(c *gin.Context) {
	actor, ok := cc.loadActor(c)
	if !ok {
		return
	}

	var input struct {
		Department string `json:"department" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please select a department", "success": false})
		return
	}

	// Admin-only transition: confirm the role against user_roles, not just
	// the token.
	isAdmin, err := models.HasRole(cc.DB, actor.UserID, models.RoleAdmin)
	if err != nil || !isAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only admins can assign departments"})
		return
	}

	var complaint models.Complaint
	if err := cc.DB.First(&complaint, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Complaint not found"})
		return
	}

	if !complaints.CanAssign(actor, &complaint, input.Department) {
		if !complaints.ValidDepartment(input.Department) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown department", "success": false})
			return
		}
		c.JSON(http.StatusConflict, gin.H{"error": "Complaint is already assigned", "success": false})
		return
	}

	tx := cc.DB.Begin()

	if err := tx.Model(&complaint).Updates(map[string]interface{}{
		"department":  input.Department,
		"assigned_by": actor.UserID,
	}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign complaint"})
		return
	}

	history := models.ComplaintHistory{
		ComplaintID:  complaint.ID,
		FieldChanged: "department",
		OldValue:     "",
		NewValue:     input.Department,
		ChangedBy:    actor.UserID,
	}
	if err := tx.Create(&history).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record history"})
		return
	}

	tx.Commit()

	cc.Notifier.ComplaintAssigned(c.Request.Context(), &complaint, input.Department)
	cc.Broker.Publish(c.Request.Context(), realtime.ChangeEvent{
		Entity:   realtime.EntityComplaint,
		EntityID: complaint.ID,
		Kind:     realtime.KindAssigned,
	})

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Message: "Complaint assigned successfully",
	})
}

// UpdateStatus moves a complaint through its lifecycle. Faculty of the
// assigned department or admin; pending is never a target. Completing stamps
// resolved_at; every change appends a history entry.
func (cc *ComplaintController) UpdateStatus(c *gin.Context) {
	actor, ok := cc.loadActor(c)
	if !ok {
		return
	}

	var input struct {
		Status              string     `json:"status" binding:"required"`
		EstimatedCompletion *time.Time `json:"estimated_completion"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please select a status", "success": false})
		return
	}

	var complaint models.Complaint
	if err := cc.DB.First(&complaint, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Complaint not found"})
		return
	}

	if !complaints.CanSetStatus(actor, &complaint) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}
	if !complaints.CanTransition(complaint.Status, input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   fmt.Sprintf("Cannot move complaint from %s to %s", complaint.Status, input.Status),
			"success": false,
		})
		return
	}

	oldStatus := complaint.Status

	updates := map[string]interface{}{"status": input.Status}
	if input.Status == complaints.StatusCompleted {
		updates["resolved_at"] = time.Now()
	}
	if input.EstimatedCompletion != nil {
		updates["estimated_completion"] = *input.EstimatedCompletion
	}

	tx := cc.DB.Begin()

	if err := tx.Model(&complaint).Updates(updates).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	history := models.ComplaintHistory{
		ComplaintID:  complaint.ID,
		FieldChanged: "status",
		OldValue:     oldStatus,
		NewValue:     input.Status,
		ChangedBy:    actor.UserID,
	}
	if err := tx.Create(&history).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record history"})
		return
	}

	tx.Commit()

	cc.Notifier.ComplaintStatusChanged(c.Request.Context(), &complaint, input.Status)
	cc.Broker.Publish(c.Request.Context(), realtime.ChangeEvent{
		Entity:   realtime.EntityComplaint,
		EntityID: complaint.ID,
		Kind:     realtime.KindStatus,
	})

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Message: "Complaint status updated",
	})
}

// UpdatePriority reclassifies a complaint. Same actor set as UpdateStatus;
// the change is reportable and lands in the history.
func (cc *ComplaintController) UpdatePriority(c *gin.Context) {
	actor, ok := cc.loadActor(c)
	if !ok {
		return
	}

	var input struct {
		Priority string `json:"priority" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}
	if !complaints.ValidPriority(input.Priority) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority", "success": false})
		return
	}

	var complaint models.Complaint
	if err := cc.DB.First(&complaint, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Complaint not found"})
		return
	}

	if !complaints.CanSetPriority(actor, &complaint) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}
	if complaint.Priority == input.Priority {
		c.JSON(http.StatusOK, StandardResponse{Success: true, Message: "Priority unchanged"})
		return
	}

	oldPriority := complaint.Priority

	tx := cc.DB.Begin()

	if err := tx.Model(&complaint).Update("priority", input.Priority).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update priority"})
		return
	}

	history := models.ComplaintHistory{
		ComplaintID:  complaint.ID,
		FieldChanged: "priority",
		OldValue:     oldPriority,
		NewValue:     input.Priority,
		ChangedBy:    actor.UserID,
	}
	if err := tx.Create(&history).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record history"})
		return
	}

	tx.Commit()

	cc.Broker.Publish(c.Request.Context(), realtime.ChangeEvent{
		Entity:   realtime.EntityComplaint,
		EntityID: complaint.ID,
		Kind:     realtime.KindPriority,
	})

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Message: "Complaint priority updated",
	})
}

// SubmitFeedback records the owning student's rating and optional comment.
// Rating must be 1-5; there is no status guard on when feedback is allowed.
func (cc *ComplaintController) SubmitFeedback(c *gin.Context) {
	actor, ok := cc.loadActor(c)
	if !ok {
		return
	}

	var input struct {
		Rating  int    `json:"rating" binding:"required"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please select a rating", "success": false})
		return
	}
	if !complaints.ValidRating(input.Rating) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5", "success": false})
		return
	}

	var complaint models.Complaint
	if err := cc.DB.First(&complaint, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Complaint not found"})
		return
	}

	if !complaints.CanRate(actor, &complaint) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	if err := cc.DB.Model(&complaint).Updates(map[string]interface{}{
		"feedback_rating":  input.Rating,
		"feedback_comment": input.Comment,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit rating"})
		return
	}

	cc.Broker.Publish(c.Request.Context(), realtime.ChangeEvent{
		Entity:   realtime.EntityComplaint,
		EntityID: complaint.ID,
		Kind:     realtime.KindFeedback,
	})

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Message: "Thank you for your feedback",
	})
}

// CheckDuplicates surfaces up to three existing complaints whose titles share
// tokens with the candidate title. Purely advisory: submission is never
// blocked.
func (cc *ComplaintController) CheckDuplicates(c *gin.Context) {
	if _, ok := cc.loadActor(c); !ok {
		return
	}

	title := c.Query("title")
	if len(title) < complaints.MinDuplicateTitleLen {
		c.JSON(http.StatusOK, StandardResponse{Success: true, Data: []gin.H{}})
		return
	}

	where, args := complaints.DuplicateQuery(title)
	if where == "" {
		c.JSON(http.StatusOK, StandardResponse{Success: true, Data: []gin.H{}})
		return
	}

	var rows []models.Complaint
	if err := cc.DB.Select("id", "title", "status", "created_at").
		Where(where, args...).
		Order("created_at DESC").
		Limit(complaints.DuplicateLimit).
		Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	matches := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		matches = append(matches, gin.H{
			"id":         row.ID,
			"title":      row.Title,
			"status":     row.Status,
			"created_at": row.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: matches})
}

func parseDaysParam(c *gin.Context, fallback int) int {
	raw := c.Query("days")
	if raw == "" {
		return fallback
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days < 1 || days > 365 {
		return fallback
	}
	return days
}
