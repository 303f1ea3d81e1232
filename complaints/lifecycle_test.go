package complaints

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		allowed bool
	}{
		{"pending to in_progress", StatusPending, StatusInProgress, true},
		{"pending to completed", StatusPending, StatusCompleted, true},
		{"pending to issued", StatusPending, StatusIssued, true},
		{"in_progress to completed", StatusInProgress, StatusCompleted, true},
		{"in_progress to issued", StatusInProgress, StatusIssued, true},
		{"issued to in_progress", StatusIssued, StatusInProgress, true},
		{"issued to completed", StatusIssued, StatusCompleted, true},
		{"nothing returns to pending", StatusInProgress, StatusPending, false},
		{"no self transition", StatusInProgress, StatusInProgress, false},
		{"completed is terminal", StatusCompleted, StatusInProgress, false},
		{"completed cannot be issued", StatusCompleted, StatusIssued, false},
		{"unknown target", StatusPending, "archived", false},
		{"unknown source", "draft", StatusInProgress, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestValidDepartment(t *testing.T) {
	for _, d := range Departments {
		assert.True(t, ValidDepartment(d), d)
	}
	assert.False(t, ValidDepartment("Catering"))
	assert.False(t, ValidDepartment(""))
	assert.False(t, ValidDepartment("it"), "department names are case sensitive")
}

func TestValidPriority(t *testing.T) {
	assert.True(t, ValidPriority(PriorityLow))
	assert.True(t, ValidPriority(PriorityMedium))
	assert.True(t, ValidPriority(PriorityHigh))
	assert.True(t, ValidPriority(PriorityCritical))
	assert.False(t, ValidPriority("urgent"))
	assert.False(t, ValidPriority(""))
}

func TestValidRating(t *testing.T) {
	assert.False(t, ValidRating(0))
	for score := 1; score <= 5; score++ {
		assert.True(t, ValidRating(score))
	}
	assert.False(t, ValidRating(6))
	assert.False(t, ValidRating(-1))
}
