package controllers

import (
	"net/http"
	"time"

	"github.com/campus-voice/api-go/complaints"
	"github.com/campus-voice/api-go/models"
	"github.com/campus-voice/api-go/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AnalyticsController struct {
	DB *gorm.DB
}

func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{DB: db}
}

const defaultTrendDays = 14

// scope narrows a complaints query to the caller's visible set, mirroring
// ListComplaints.
func (ac *AnalyticsController) scope(query *gorm.DB, actor complaints.Actor) *gorm.DB {
	switch actor.Role {
	case models.RoleStudent:
		return query.Where("student_id = ?", actor.UserID)
	case models.RoleFaculty:
		return query.Where("department = ?", actor.Department)
	default:
		return query
	}
}

// GetStats returns complaint counts by status plus a total, over the
// caller's visible set. Feeds the dashboard stat cards and the status
// distribution chart.
func (ac *AnalyticsController) GetStats(c *gin.Context) {
	user := utils.GetUser(c)
	actor, err := complaints.LoadActor(ac.DB, user.UserID)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "No role assigned"})
		return
	}

	type statusCount struct {
		Status string
		Count  int64
	}
	var counts []statusCount
	query := ac.scope(ac.DB.Model(&models.Complaint{}), actor)
	if err := query.Select("status, COUNT(*) as count").
		Group("status").
		Scan(&counts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	byStatus := gin.H{
		complaints.StatusPending:    int64(0),
		complaints.StatusInProgress: int64(0),
		complaints.StatusCompleted:  int64(0),
		complaints.StatusIssued:     int64(0),
	}
	var total int64
	for _, sc := range counts {
		byStatus[sc.Status] = sc.Count
		total += sc.Count
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data: gin.H{
			"total":     total,
			"by_status": byStatus,
		},
	})
}

// GetTrend returns per-day complaint counts for the last N days (default 14),
// over the caller's visible set. Days without complaints appear with a zero
// count so the chart axis stays continuous.
func (ac *AnalyticsController) GetTrend(c *gin.Context) {
	user := utils.GetUser(c)
	actor, err := complaints.LoadActor(ac.DB, user.UserID)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "No role assigned"})
		return
	}

	days := parseDaysParam(c, defaultTrendDays)
	since := time.Now().AddDate(0, 0, -days+1).Truncate(24 * time.Hour)

	type dayCount struct {
		Day   time.Time
		Count int64
	}
	var rows []dayCount
	query := ac.scope(ac.DB.Model(&models.Complaint{}), actor)
	if err := query.Select("DATE_TRUNC('day', created_at) as day, COUNT(*) as count").
		Where("created_at >= ?", since).
		Group("day").
		Order("day ASC").
		Scan(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Day.Format("2006-01-02")] = row.Count
	}

	trend := make([]gin.H, 0, days)
	for i := 0; i < days; i++ {
		date := since.AddDate(0, 0, i).Format("2006-01-02")
		trend = append(trend, gin.H{"date": date, "count": counts[date]})
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: trend})
}
