package complaints

// Statuses of the complaint lifecycle. A complaint always starts at pending;
// issued marks an escalated/returned complaint and is reachable from any
// non-terminal state.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusIssued     = "issued"
)

const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

// Departments is the fixed list complaints can be routed to. Assignment to
// anything outside this list is rejected.
var Departments = []string{
	"IT",
	"Maintenance",
	"Administration",
	"Security",
	"HR",
	"Hostel Management",
}

func ValidDepartment(name string) bool {
	for _, d := range Departments {
		if d == name {
			return true
		}
	}
	return false
}

func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusIssued:
		return true
	}
	return false
}

// CanTransition reports whether a status change from -> to is allowed through
// the API. Only the system sets pending, at creation; everything else moves
// forward to in_progress/completed or sideways to issued. Completed is
// terminal: feedback on a completed complaint is not a status transition.
func CanTransition(from, to string) bool {
	if !ValidStatus(from) || !ValidStatus(to) {
		return false
	}
	if to == StatusPending || from == to {
		return false
	}
	if from == StatusCompleted {
		return false
	}
	return true
}

// ValidRating bounds the student feedback score. Zero means "not selected"
// and is rejected before any request reaches the store.
func ValidRating(score int) bool {
	return score >= 1 && score <= 5
}
