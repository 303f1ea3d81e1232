package complaints

import (
	"github.com/campus-voice/api-go/models"
)

// Actor is the authenticated caller a policy decision is evaluated against:
// identity, role, and (for faculty) home department, all resolved server-side.
// The decision never trusts anything the client sent beyond the verified
// token subject.
type Actor struct {
	UserID     uint
	Role       string
	Department string
}

// CanRead applies the visibility rules: students see their own complaints,
// faculty see their department's, admins see everything.
func CanRead(a Actor, c *models.Complaint) bool {
	switch a.Role {
	case models.RoleAdmin:
		return true
	case models.RoleFaculty:
		return c.Department != nil && *c.Department == a.Department
	case models.RoleStudent:
		return c.StudentID == a.UserID
	}
	return false
}

// CanAssign gates the assign(department) transition: admin only, a department
// from the fixed list, and only while the complaint is still unassigned.
// Department and assigned_by are set together, exactly once.
func CanAssign(a Actor, c *models.Complaint, department string) bool {
	if a.Role != models.RoleAdmin {
		return false
	}
	if !ValidDepartment(department) {
		return false
	}
	return c.Department == nil
}

// CanSetStatus gates status transitions: faculty belonging to the complaint's
// assigned department, or admin. The target status itself is checked by
// CanTransition.
func CanSetStatus(a Actor, c *models.Complaint) bool {
	switch a.Role {
	case models.RoleAdmin:
		return true
	case models.RoleFaculty:
		return c.Department != nil && *c.Department == a.Department
	}
	return false
}

// CanSetPriority mirrors CanSetStatus: priority is a triage field owned by
// the working department and the admins.
func CanSetPriority(a Actor, c *models.Complaint) bool {
	return CanSetStatus(a, c)
}

// CanRate allows only the owning student to submit feedback. There is no
// status guard: the observed behavior is ratable-at-any-state.
func CanRate(a Actor, c *models.Complaint) bool {
	return a.Role == models.RoleStudent && c.StudentID == a.UserID
}

// CanComment matches complaint visibility: anyone who can see the complaint
// can take part in its discussion.
func CanComment(a Actor, c *models.Complaint) bool {
	return CanRead(a, c)
}

// Anonymize withholds the submitter's identity from faculty views of
// anonymous complaints. This is presentation-level only: the stored row keeps
// student_id, and admins always see it.
func Anonymize(a Actor, c models.Complaint) models.Complaint {
	if a.Role == models.RoleFaculty && c.IsAnonymous {
		c.StudentID = 0
	}
	return c
}

// DisplayName resolves the submitter name shown to a viewer, honoring the
// anonymity flag for everyone below admin.
func DisplayName(a Actor, c *models.Complaint, profileName string) string {
	if c.IsAnonymous && a.Role != models.RoleAdmin {
		return "Anonymous"
	}
	if profileName == "" {
		return "Anonymous"
	}
	return profileName
}
