package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/triviahub/trivia-api/internal/question"
)

func poolOf(ids ...int) []question.Question {
	pool := make([]question.Question, 0, len(ids))
	for _, id := range ids {
		pool = append(pool, question.Question{ID: id, Category: 3})
	}
	return pool
}

func TestPick_EmptyPoolIsExhausted(t *testing.T) {
	_, ok := Pick(nil, nil)
	assert.False(t, ok)
}

func TestPick_AllAskedIsExhausted(t *testing.T) {
	pool := poolOf(1, 2, 3)

	_, ok := Pick(pool, []int{1, 2, 3})
	assert.False(t, ok)
}

func TestPick_NeverRepeats(t *testing.T) {
	pool := poolOf(1, 2, 3, 4, 5, 6, 7, 8)
	asked := []int{2, 4, 6, 8}

	for i := 0; i < 200; i++ {
		picked, ok := Pick(pool, asked)

		assert.True(t, ok)
		assert.NotContains(t, asked, picked.ID)
	}
}

func TestPick_SingleRemainingIsDeterministic(t *testing.T) {
	// 12 questions in the category, 11 already asked: the 12th must come
	// back every time.
	pool := poolOf(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12)
	asked := []int{1, 2, 3, 4, 5, 6, 8, 9, 10, 11, 12}

	for i := 0; i < 50; i++ {
		picked, ok := Pick(pool, asked)

		assert.True(t, ok)
		assert.Equal(t, 7, picked.ID)
	}
}

func TestPick_AskedIDsOutsidePoolAreIgnored(t *testing.T) {
	pool := poolOf(1, 2)

	picked, ok := Pick(pool, []int{99, 100})

	assert.True(t, ok)
	assert.Contains(t, []int{1, 2}, picked.ID)
}

func TestPick_DuplicateEntriesKeepPositionalWeight(t *testing.T) {
	// Two copies of id 1 and one of id 2: id 1 should win roughly two
	// draws in three. A loose band is enough to catch deduplication.
	pool := poolOf(1, 1, 2)

	hits := 0
	const draws = 3000
	for i := 0; i < draws; i++ {
		picked, ok := Pick(pool, nil)
		assert.True(t, ok)
		if picked.ID == 1 {
			hits++
		}
	}

	ratio := float64(hits) / draws
	assert.Greater(t, ratio, 0.55)
	assert.Less(t, ratio, 0.78)
}
