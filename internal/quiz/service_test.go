package quiz

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/triviahub/trivia-api/internal/question"
)

type stubPoolStore struct {
	list       func(ctx context.Context) ([]question.Question, error)
	byCategory func(ctx context.Context, categoryID int) ([]question.Question, error)
	maxID      func(ctx context.Context) (int, error)
}

func (s *stubPoolStore) ListQuestions(ctx context.Context) ([]question.Question, error) {
	return s.list(ctx)
}

func (s *stubPoolStore) ListQuestionsByCategory(ctx context.Context, categoryID int) ([]question.Question, error) {
	return s.byCategory(ctx, categoryID)
}

func (s *stubPoolStore) MaxQuestionID(ctx context.Context) (int, error) {
	return s.maxID(ctx)
}

func storeWith(questions []question.Question) *stubPoolStore {
	return &stubPoolStore{
		list: func(context.Context) ([]question.Question, error) { return questions, nil },
		byCategory: func(_ context.Context, categoryID int) ([]question.Question, error) {
			var matched []question.Question
			for _, q := range questions {
				if q.Category == categoryID {
					matched = append(matched, q)
				}
			}
			return matched, nil
		},
		maxID: func(context.Context) (int, error) {
			if len(questions) == 0 {
				return 0, question.ErrNotFound
			}
			return questions[len(questions)-1].ID, nil
		},
	}
}

func TestNextQuestion_AllCategories(t *testing.T) {
	pool := []question.Question{
		{ID: 1, Category: 1}, {ID: 2, Category: 2}, {ID: 5, Category: 3},
	}
	svc := NewService(storeWith(pool), zerolog.Nop())

	picked, err := svc.NextQuestion(context.Background(), AllCategories, []int{1, 5})

	assert.NoError(t, err)
	if assert.NotNil(t, picked) {
		assert.Equal(t, 2, picked.ID)
	}
}

func TestNextQuestion_EmptyTableIsNoData(t *testing.T) {
	svc := NewService(storeWith(nil), zerolog.Nop())

	_, err := svc.NextQuestion(context.Background(), AllCategories, nil)

	assert.ErrorIs(t, err, ErrNoData)
}

func TestNextQuestion_CategoryScoped(t *testing.T) {
	pool := []question.Question{
		{ID: 1, Category: 1}, {ID: 2, Category: 3}, {ID: 3, Category: 3},
	}
	svc := NewService(storeWith(pool), zerolog.Nop())

	for i := 0; i < 50; i++ {
		picked, err := svc.NextQuestion(context.Background(), 3, nil)

		assert.NoError(t, err)
		if assert.NotNil(t, picked) {
			assert.Equal(t, 3, picked.Category)
		}
	}
}

func TestNextQuestion_CategoryExhaustionReturnsNil(t *testing.T) {
	pool := []question.Question{
		{ID: 1, Category: 3}, {ID: 2, Category: 3},
	}
	svc := NewService(storeWith(pool), zerolog.Nop())

	picked, err := svc.NextQuestion(context.Background(), 3, []int{1, 2})

	assert.NoError(t, err)
	assert.Nil(t, picked)
}

func TestNextQuestion_UnknownCategoryIsExhaustedImmediately(t *testing.T) {
	pool := []question.Question{{ID: 1, Category: 3}}
	svc := NewService(storeWith(pool), zerolog.Nop())

	picked, err := svc.NextQuestion(context.Background(), 42, nil)

	assert.NoError(t, err)
	assert.Nil(t, picked)
}

func TestNextQuestion_GappedIDsTerminate(t *testing.T) {
	// Deletions leave holes in the id space; the pool draw must not care.
	pool := []question.Question{
		{ID: 3, Category: 1}, {ID: 900, Category: 2}, {ID: 901, Category: 2},
	}
	svc := NewService(storeWith(pool), zerolog.Nop())

	picked, err := svc.NextQuestion(context.Background(), AllCategories, []int{3, 900})

	assert.NoError(t, err)
	if assert.NotNil(t, picked) {
		assert.Equal(t, 901, picked.ID)
	}
}
