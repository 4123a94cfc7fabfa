package question

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Store is the persistence contract the service consumes. Listings are
// ordered by id; single-row lookups return ErrNotFound when absent.
type Store interface {
	ListQuestions(ctx context.Context) ([]Question, error)
	CountQuestions(ctx context.Context) (int, error)
	ListQuestionsByCategory(ctx context.Context, categoryID int) ([]Question, error)
	MaxQuestionID(ctx context.Context) (int, error)
	GetQuestion(ctx context.Context, id int) (Question, error)
	InsertQuestion(ctx context.Context, params InsertParams) (Question, error)
	DeleteQuestion(ctx context.Context, id int) error
	SearchQuestions(ctx context.Context, term string) ([]Question, error)
	ListCategories(ctx context.Context) ([]Category, error)
}

// CategoryCache defines cache behavior for the category list (implemented
// by the Redis-backed Cache). A nil slice from Get means miss.
type CategoryCache interface {
	Get(ctx context.Context) ([]Category, error)
	Set(ctx context.Context, categories []Category) error
}

// Service orchestrates question listing, search and mutation on top of the
// store, with the category list served through the cache.
type Service struct {
	store  Store
	cache  CategoryCache
	logger zerolog.Logger
}

// NewService builds a question service. cache may be nil in tests.
func NewService(store Store, cache CategoryCache, logger zerolog.Logger) *Service {
	return &Service{
		store:  store,
		cache:  cache,
		logger: logger.With().Str("component", "question_service").Logger(),
	}
}

// Page bundles one listing window with the totals the client renders
// alongside it.
type Page struct {
	Questions  []Question
	Total      int
	Categories []Category
}

// ListPage returns the requested page of the full question listing plus the
// overall count and category list. An empty window is ErrNotFound.
func (s *Service) ListPage(ctx context.Context, page int) (Page, error) {
	all, err := s.store.ListQuestions(ctx)
	if err != nil {
		return Page{}, fmt.Errorf("list questions: %w", err)
	}

	window := Paginate(all, page)
	if len(window) == 0 {
		return Page{}, ErrNotFound
	}

	total, err := s.store.CountQuestions(ctx)
	if err != nil {
		return Page{}, fmt.Errorf("count questions: %w", err)
	}

	categories, err := s.Categories(ctx)
	if err != nil {
		return Page{}, err
	}

	return Page{Questions: window, Total: total, Categories: categories}, nil
}

// Categories returns every category ordered by id, preferring the cache.
func (s *Service) Categories(ctx context.Context) ([]Category, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx); err == nil && cached != nil {
			return cached, nil
		} else if err != nil {
			s.logger.Warn().Err(err).Msg("category cache read failed")
		}
	}

	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	if s.cache != nil {
		// Categories never change through this API, so a stale entry only
		// ever lives until its TTL. Writes are best effort.
		_ = s.cache.Set(ctx, categories)
	}
	return categories, nil
}

// ByCategory returns every question in the category, ordered by id. An
// empty result is ErrNotFound; the category id itself is never validated
// against the categories table (loose reference).
func (s *Service) ByCategory(ctx context.Context, categoryID int) ([]Question, error) {
	qs, err := s.store.ListQuestionsByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list questions by category: %w", err)
	}
	if len(qs) == 0 {
		return nil, ErrNotFound
	}
	return qs, nil
}

// Search returns every question whose text contains term, case-insensitive.
// An empty term matches everything.
func (s *Service) Search(ctx context.Context, term string) ([]Question, error) {
	qs, err := s.store.SearchQuestions(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	if qs == nil {
		qs = []Question{}
	}
	return qs, nil
}

// Create inserts a new question and returns its assigned id. Store
// failures surface as ErrUnprocessable.
func (s *Service) Create(ctx context.Context, params InsertParams) (int, error) {
	created, err := s.store.InsertQuestion(ctx, params)
	if err != nil {
		s.logger.Warn().Err(err).Msg("question insert failed")
		return 0, fmt.Errorf("%w: %v", ErrUnprocessable, err)
	}
	return created.ID, nil
}

// Delete removes the question with the given id. A missing question is
// ErrNotFound; a delete that fails on an existing row is ErrUnprocessable,
// so a second delete of the same id reports 404 consistently.
func (s *Service) Delete(ctx context.Context, id int) error {
	if _, err := s.store.GetQuestion(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("get question: %w", err)
	}
	if err := s.store.DeleteQuestion(ctx, id); err != nil {
		s.logger.Warn().Err(err).Int("question_id", id).Msg("question delete failed")
		return fmt.Errorf("%w: %v", ErrUnprocessable, err)
	}
	return nil
}
