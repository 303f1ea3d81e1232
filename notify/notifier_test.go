package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "in progress", StatusLabel("in_progress"))
	assert.Equal(t, "completed", StatusLabel("completed"))
	assert.Equal(t, "pending", StatusLabel("pending"))
	assert.Equal(t, "issued", StatusLabel("issued"))
}
