package utils

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplaintsToCSV(t *testing.T) {
	createdAt := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	rows := []ComplaintExportRow{
		{
			ID:          "c-1",
			Title:       "Broken projector in LH-3",
			Category:    "Infrastructure",
			Priority:    "high",
			Status:      "in_progress",
			Department:  "IT",
			CreatedAt:   createdAt,
			StudentName: "Ayşe Yılmaz",
		},
		{
			ID:          "c-2",
			Title:       "Noise after curfew",
			Priority:    "medium",
			Status:      "pending",
			CreatedAt:   createdAt,
			StudentName: "Anonymous",
		},
	}

	data, err := ComplaintsToCSV(rows)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t,
		[]string{"ID", "Title", "Category", "Priority", "Status", "Department", "Created At", "Student Name"},
		records[0])

	assert.Equal(t,
		[]string{"c-1", "Broken projector in LH-3", "Infrastructure", "high", "in_progress", "IT", "2025-03-14 09:30", "Ayşe Yılmaz"},
		records[1])

	// Empty category and department fall back to placeholders.
	assert.Equal(t, "N/A", records[2][2])
	assert.Equal(t, "Unassigned", records[2][5])
	assert.Equal(t, "Anonymous", records[2][7])
}

func TestComplaintsToCSVEmpty(t *testing.T) {
	data, err := ComplaintsToCSV(nil)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "header only")
}
