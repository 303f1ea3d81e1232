package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/campus-voice/api-go/complaints"
	"github.com/campus-voice/api-go/models"
	"github.com/campus-voice/api-go/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ExportController struct {
	DB *gorm.DB
}

func NewExportController(db *gorm.DB) *ExportController {
	return &ExportController{DB: db}
}

// ExportComplaints streams the caller's visible complaint set as CSV
// (default) or JSON. Faculty exports are scoped to their department and show
// "Anonymous" for anonymous rows; admin exports carry real names.
func (ec *ExportController) ExportComplaints(c *gin.Context) {
	user := utils.GetUser(c)
	actor, err := complaints.LoadActor(ec.DB, user.UserID)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "No role assigned"})
		return
	}
	if actor.Role != models.RoleAdmin && actor.Role != models.RoleFaculty {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	var rows []models.Complaint
	query := ec.DB.Order("created_at DESC")
	if actor.Role == models.RoleFaculty {
		query = query.Where("department = ?", actor.Department)
	}
	if err := query.Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	names := make(map[uint]string)
	{
		ids := make([]uint, 0, len(rows))
		seen := make(map[uint]bool)
		for _, row := range rows {
			if !seen[row.StudentID] {
				seen[row.StudentID] = true
				ids = append(ids, row.StudentID)
			}
		}
		if len(ids) > 0 {
			var profiles []models.Profile
			if err := ec.DB.Where("user_id IN ?", ids).Find(&profiles).Error; err == nil {
				for _, p := range profiles {
					names[p.UserID] = p.Name
				}
			}
		}
	}

	exportRows := make([]utils.ComplaintExportRow, 0, len(rows))
	for _, row := range rows {
		department := ""
		if row.Department != nil {
			department = *row.Department
		}
		exportRows = append(exportRows, utils.ComplaintExportRow{
			ID:          row.ID,
			Title:       row.Title,
			Description: row.Description,
			Category:    row.Category,
			Priority:    row.Priority,
			Status:      row.Status,
			Department:  department,
			CreatedAt:   row.CreatedAt,
			StudentName: complaints.DisplayName(actor, &row, names[row.StudentID]),
			IsAnonymous: row.IsAnonymous,
		})
	}

	filename := fmt.Sprintf("complaints_%s", time.Now().Format("2006-01-02"))

	switch c.DefaultQuery("format", "csv") {
	case "json":
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.json", filename))
		c.JSON(http.StatusOK, exportRows)
	case "csv":
		data, err := utils.ComplaintsToCSV(exportRows)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build export"})
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", filename))
		c.Data(http.StatusOK, "text/csv", data)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown export format"})
	}
}
