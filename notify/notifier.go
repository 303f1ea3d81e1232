package notify

import (
	"context"
	"fmt"

	"github.com/campus-voice/api-go/models"
	"github.com/campus-voice/api-go/realtime"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Notifier creates notification rows and pushes the matching change event so
// the target user's open dashboards refresh their notification list.
type Notifier struct {
	DB     *gorm.DB
	Broker *realtime.Broker
	Logger *zap.Logger
}

func NewNotifier(db *gorm.DB, broker *realtime.Broker, logger *zap.Logger) *Notifier {
	return &Notifier{DB: db, Broker: broker, Logger: logger}
}

// Create inserts one notification for userID. A failed insert is logged and
// returned but never rolls back the mutation that triggered it.
func (n *Notifier) Create(ctx context.Context, userID uint, message, notifType string, complaintID *string) error {
	notification := models.Notification{
		UserID:      userID,
		Message:     message,
		Type:        notifType,
		ComplaintID: complaintID,
	}
	if err := n.DB.Create(&notification).Error; err != nil {
		n.Logger.Error("failed to create notification",
			zap.Uint("user_id", userID),
			zap.String("type", notifType),
			zap.Error(err))
		return err
	}

	if n.Broker != nil {
		n.Broker.Publish(ctx, realtime.ChangeEvent{
			Entity:   realtime.EntityNotification,
			EntityID: fmt.Sprintf("%d", notification.ID),
			Kind:     realtime.KindNotified,
			UserID:   userID,
		})
	}
	return nil
}

// ComplaintAssigned tells the owning student their complaint was routed.
func (n *Notifier) ComplaintAssigned(ctx context.Context, c *models.Complaint, department string) {
	msg := fmt.Sprintf("Your complaint %q has been assigned to %s", c.Title, department)
	n.Create(ctx, c.StudentID, msg, models.NotificationTypeAssignment, &c.ID)
}

// ComplaintStatusChanged tells the owning student about a status move.
func (n *Notifier) ComplaintStatusChanged(ctx context.Context, c *models.Complaint, newStatus string) {
	msg := fmt.Sprintf("Your complaint %q is now %s", c.Title, StatusLabel(newStatus))
	n.Create(ctx, c.StudentID, msg, models.NotificationTypeStatus, &c.ID)
}

// ComplaintCommented tells the owning student someone joined the discussion.
// The owner's own comments produce nothing.
func (n *Notifier) ComplaintCommented(ctx context.Context, c *models.Complaint, commenterID uint) {
	if commenterID == c.StudentID {
		return
	}
	msg := fmt.Sprintf("New comment on your complaint %q", c.Title)
	n.Create(ctx, c.StudentID, msg, models.NotificationTypeComment, &c.ID)
}

// StatusLabel renders a status value for human-facing messages.
func StatusLabel(status string) string {
	switch status {
	case "in_progress":
		return "in progress"
	default:
		return status
	}
}
