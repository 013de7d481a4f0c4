package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinColumns(t *testing.T) {
	t.Run("Joins blocks line by line", func(t *testing.T) {
		// Given: two blocks of equal height
		left := "ab\ncd"
		right := "12\n34"

		// When: joining them
		joined := JoinColumns(" | ", left, right)

		// Then: each line is joined with the separator
		assert.Equal(t, "ab | 12\ncd | 34", joined)
	})

	t.Run("Truncates to the shortest block", func(t *testing.T) {
		joined := JoinColumns("-", "a\nb\nc", "1\n2")

		assert.Equal(t, "a-1\nb-2", joined)
	})

	t.Run("No blocks", func(t *testing.T) {
		assert.Empty(t, JoinColumns("-"))
	})

	t.Run("Default separator is ten spaces", func(t *testing.T) {
		assert.Len(t, ColumnSeparator, 10)
	})
}

func TestGenerateMatchID(t *testing.T) {
	first := GenerateMatchID()
	second := GenerateMatchID()

	assert.Len(t, first, matchIDLength)
	assert.NotEqual(t, first, second)
}
