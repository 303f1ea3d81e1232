package realtime

// Change kinds published on the feed.
const (
	KindCreated  = "created"
	KindAssigned = "assigned"
	KindStatus   = "status_changed"
	KindPriority = "priority_changed"
	KindFeedback = "feedback"
	KindComment  = "comment"
	KindNotified = "notification"
)

// Entity names published on the feed.
const (
	EntityComplaint    = "complaint"
	EntityComment      = "complaint_comment"
	EntityNotification = "notification"
)

// ChangeEvent is a cache-invalidation hint: which entity changed and how.
// It carries no row data; subscribers re-fetch through the scoped REST reads,
// so the policy layer still decides what each viewer gets. UserID, when set,
// targets the event at a single user's connections.
type ChangeEvent struct {
	Entity   string `json:"entity"`
	EntityID string `json:"entity_id"`
	Kind     string `json:"kind"`
	UserID   uint   `json:"user_id,omitempty"`
}
