package quiz

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/triviahub/trivia-api/internal/question"
)

// AllCategories is the category id clients send to draw from every category.
const AllCategories = 0

// ErrNoData reports an unscoped quiz request against an empty question table.
var ErrNoData = errors.New("no questions available")

// PoolStore is the slice of the question store the quiz flow needs.
type PoolStore interface {
	ListQuestions(ctx context.Context) ([]question.Question, error)
	ListQuestionsByCategory(ctx context.Context, categoryID int) ([]question.Question, error)
	MaxQuestionID(ctx context.Context) (int, error)
}

// Service assembles the candidate pool for a quiz draw. The pool is
// re-queried on every pick, so concurrent creates and deletes are visible
// immediately; no session state lives on the server.
type Service struct {
	store  PoolStore
	logger zerolog.Logger
}

// NewService builds a quiz service.
func NewService(store PoolStore, logger zerolog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger.With().Str("component", "quiz_service").Logger(),
	}
}

// NextQuestion picks a question the session has not seen, scoped to
// categoryID unless it is AllCategories. A nil question with a nil error
// means the pool is exhausted for this session.
func (s *Service) NextQuestion(ctx context.Context, categoryID int, previous []int) (*question.Question, error) {
	var pool []question.Question
	var err error

	if categoryID == AllCategories {
		// An empty table is fatal for the unscoped draw: there is no pool
		// to exhaust, only nothing to serve.
		if _, err := s.store.MaxQuestionID(ctx); err != nil {
			if errors.Is(err, question.ErrNotFound) {
				return nil, ErrNoData
			}
			return nil, fmt.Errorf("max question id: %w", err)
		}
		pool, err = s.store.ListQuestions(ctx)
	} else {
		pool, err = s.store.ListQuestionsByCategory(ctx, categoryID)
	}
	if err != nil {
		return nil, fmt.Errorf("assemble quiz pool: %w", err)
	}

	picked, ok := Pick(pool, previous)
	if !ok {
		s.logger.Debug().Int("category_id", categoryID).Int("pool", len(pool)).Msg("quiz pool exhausted")
		return nil, nil
	}
	return &picked, nil
}
