package complaints

import (
	"testing"

	"github.com/campus-voice/api-go/models"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func complaintFixture(studentID uint, department *string, anonymous bool) *models.Complaint {
	return &models.Complaint{
		ID:          "c-1",
		StudentID:   studentID,
		IsAnonymous: anonymous,
		Title:       "Broken projector in LH-3",
		Status:      StatusPending,
		Priority:    PriorityMedium,
		Department:  department,
	}
}

func TestCanRead(t *testing.T) {
	owner := Actor{UserID: 10, Role: models.RoleStudent}
	otherStudent := Actor{UserID: 11, Role: models.RoleStudent}
	itFaculty := Actor{UserID: 20, Role: models.RoleFaculty, Department: "IT"}
	hrFaculty := Actor{UserID: 21, Role: models.RoleFaculty, Department: "HR"}
	admin := Actor{UserID: 30, Role: models.RoleAdmin}

	unassigned := complaintFixture(10, nil, false)
	assignedIT := complaintFixture(10, strPtr("IT"), false)

	assert.True(t, CanRead(owner, unassigned))
	assert.False(t, CanRead(otherStudent, unassigned))
	assert.True(t, CanRead(admin, unassigned))

	// Faculty only see complaints once routed to their department.
	assert.False(t, CanRead(itFaculty, unassigned))
	assert.True(t, CanRead(itFaculty, assignedIT))
	assert.False(t, CanRead(hrFaculty, assignedIT))
}

func TestCanAssign(t *testing.T) {
	admin := Actor{UserID: 30, Role: models.RoleAdmin}
	faculty := Actor{UserID: 20, Role: models.RoleFaculty, Department: "IT"}
	student := Actor{UserID: 10, Role: models.RoleStudent}

	unassigned := complaintFixture(10, nil, false)
	assigned := complaintFixture(10, strPtr("IT"), false)

	assert.True(t, CanAssign(admin, unassigned, "Hostel Management"))
	assert.True(t, CanAssign(admin, unassigned, "IT"))

	assert.False(t, CanAssign(faculty, unassigned, "IT"), "only admins assign")
	assert.False(t, CanAssign(student, unassigned, "IT"))
	assert.False(t, CanAssign(admin, unassigned, "Catering"), "unknown department")
	assert.False(t, CanAssign(admin, assigned, "HR"), "assignment happens exactly once")
}

func TestCanSetStatusAndPriority(t *testing.T) {
	admin := Actor{UserID: 30, Role: models.RoleAdmin}
	itFaculty := Actor{UserID: 20, Role: models.RoleFaculty, Department: "IT"}
	hrFaculty := Actor{UserID: 21, Role: models.RoleFaculty, Department: "HR"}
	owner := Actor{UserID: 10, Role: models.RoleStudent}

	unassigned := complaintFixture(10, nil, false)
	assignedIT := complaintFixture(10, strPtr("IT"), false)

	assert.True(t, CanSetStatus(admin, unassigned))
	assert.True(t, CanSetStatus(itFaculty, assignedIT))
	assert.False(t, CanSetStatus(hrFaculty, assignedIT))
	assert.False(t, CanSetStatus(itFaculty, unassigned))
	assert.False(t, CanSetStatus(owner, assignedIT), "owners cannot drive the workflow")

	assert.Equal(t, CanSetStatus(itFaculty, assignedIT), CanSetPriority(itFaculty, assignedIT))
	assert.Equal(t, CanSetStatus(hrFaculty, assignedIT), CanSetPriority(hrFaculty, assignedIT))
}

func TestCanRate(t *testing.T) {
	owner := Actor{UserID: 10, Role: models.RoleStudent}
	otherStudent := Actor{UserID: 11, Role: models.RoleStudent}
	admin := Actor{UserID: 30, Role: models.RoleAdmin}

	c := complaintFixture(10, strPtr("IT"), false)
	c.Status = StatusCompleted

	assert.True(t, CanRate(owner, c))
	assert.False(t, CanRate(otherStudent, c))
	assert.False(t, CanRate(admin, c))

	// No status guard: feedback is accepted in any state.
	c.Status = StatusPending
	assert.True(t, CanRate(owner, c))
}

func TestAnonymize(t *testing.T) {
	itFaculty := Actor{UserID: 20, Role: models.RoleFaculty, Department: "IT"}
	admin := Actor{UserID: 30, Role: models.RoleAdmin}

	anonymous := complaintFixture(10, strPtr("IT"), true)
	named := complaintFixture(10, strPtr("IT"), false)

	shaped := Anonymize(itFaculty, *anonymous)
	assert.Zero(t, shaped.StudentID, "faculty must not see the submitter of an anonymous complaint")

	// The stored row is untouched; only the copy handed to the view changes.
	assert.Equal(t, uint(10), anonymous.StudentID)

	assert.Equal(t, uint(10), Anonymize(admin, *anonymous).StudentID, "admins always see identity")
	assert.Equal(t, uint(10), Anonymize(itFaculty, *named).StudentID)
}

func TestDisplayName(t *testing.T) {
	student := Actor{UserID: 11, Role: models.RoleStudent}
	faculty := Actor{UserID: 20, Role: models.RoleFaculty, Department: "IT"}
	admin := Actor{UserID: 30, Role: models.RoleAdmin}

	anonymous := complaintFixture(10, strPtr("IT"), true)
	named := complaintFixture(10, strPtr("IT"), false)

	assert.Equal(t, "Anonymous", DisplayName(faculty, anonymous, "Ayşe Yılmaz"))
	assert.Equal(t, "Anonymous", DisplayName(student, anonymous, "Ayşe Yılmaz"))
	assert.Equal(t, "Ayşe Yılmaz", DisplayName(admin, anonymous, "Ayşe Yılmaz"))
	assert.Equal(t, "Ayşe Yılmaz", DisplayName(faculty, named, "Ayşe Yılmaz"))
	assert.Equal(t, "Anonymous", DisplayName(admin, named, ""), "missing profile falls back")
}
