package seed

import (
	"strings"
	"testing"
	"unicode/utf8"

	"warbler/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestTruncateText(t *testing.T) {
	t.Run("Short Text Unchanged", func(t *testing.T) {
		assert.Equal(t, "a warble", truncateText("a warble", models.MaxMessageLength))
	})

	t.Run("Counts Runes Not Bytes", func(t *testing.T) {
		// Two bytes per rune; a byte slice at the limit would split one
		long := strings.Repeat("é", models.MaxMessageLength+10)

		got := truncateText(long, models.MaxMessageLength)
		assert.Equal(t, models.MaxMessageLength, utf8.RuneCountInString(got))
		assert.True(t, utf8.ValidString(got))
	})

	t.Run("Exactly At Limit", func(t *testing.T) {
		exact := strings.Repeat("x", models.MaxMessageLength)
		assert.Equal(t, exact, truncateText(exact, models.MaxMessageLength))
	})
}
