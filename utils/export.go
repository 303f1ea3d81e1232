package utils

import (
	"bytes"
	"encoding/csv"
	"time"
)

// ComplaintExportRow is one flattened complaint as it appears in CSV/JSON
// exports. StudentName is already anonymity-shaped for the caller.
type ComplaintExportRow struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	Department  string    `json:"department"`
	CreatedAt   time.Time `json:"created_at"`
	StudentName string    `json:"student_name"`
	IsAnonymous bool      `json:"is_anonymous"`
}

var exportCSVHeader = []string{
	"ID", "Title", "Category", "Priority", "Status", "Department", "Created At", "Student Name",
}

// ComplaintsToCSV renders export rows with the dashboard's column set.
func ComplaintsToCSV(rows []ComplaintExportRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportCSVHeader); err != nil {
		return nil, err
	}
	for _, r := range rows {
		category := r.Category
		if category == "" {
			category = "N/A"
		}
		department := r.Department
		if department == "" {
			department = "Unassigned"
		}
		record := []string{
			r.ID,
			r.Title,
			category,
			r.Priority,
			r.Status,
			department,
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.StudentName,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
