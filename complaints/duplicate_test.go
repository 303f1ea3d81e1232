package complaints

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleTokens(t *testing.T) {
	assert.Equal(t,
		[]string{"broken", "projector", "in", "lh-3"},
		TitleTokens("Broken projector in LH-3"))

	assert.Equal(t,
		[]string{"wifi", "down"},
		TitleTokens("  WiFi   down!  "))

	assert.Empty(t, TitleTokens(""))
	assert.Empty(t, TitleTokens("a ? !"), "single characters and punctuation are dropped")
}

func TestDuplicateQuery(t *testing.T) {
	where, args := DuplicateQuery("Broken projector")
	assert.Equal(t, "title ILIKE ? OR title ILIKE ?", where)
	assert.Equal(t, []interface{}{"%broken%", "%projector%"}, args)

	where, args = DuplicateQuery("")
	assert.Empty(t, where)
	assert.Nil(t, args)
}
