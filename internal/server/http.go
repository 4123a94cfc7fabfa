package server

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/triviahub/trivia-api/internal/config"
	"github.com/triviahub/trivia-api/internal/question"
	"github.com/triviahub/trivia-api/internal/quiz"
	httperrors "github.com/triviahub/trivia-api/pkg/http/errors"
)

// NewHTTPServer wires the trivia REST surface plus health and metrics
// routes. Method checks live inside the handlers so wrong verbs get the
// JSON error envelope instead of the mux default.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, pool *pgxpool.Pool, rdb *redis.Client, questions *question.Handlers, quizzes *quiz.Handler) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := pingDependencies(r.Context(), pool, rdb); err != nil {
			logger.Error().Err(err).Msg("dependency ping failed")
			http.Error(w, "upstream error", http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/categories", questions.HandleCategories)
	mux.HandleFunc("/categories/{id}/questions", questions.HandleCategoryQuestions)
	mux.HandleFunc("/questions", questions.HandleQuestions)
	mux.HandleFunc("/questions/search", questions.HandleSearch)
	mux.HandleFunc("/questions/{id}", questions.HandleQuestionByID)
	mux.HandleFunc("/quizzes", quizzes.HandleQuiz)

	// Unknown routes still answer with the JSON envelope.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		httperrors.RespondNotFound(w)
	})

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: Chain(mux, cfg, logger),
	}
}

func pingDependencies(ctx context.Context, pool *pgxpool.Pool, rdb *redis.Client) error {
	if err := pool.Ping(ctx); err != nil {
		return err
	}
	return rdb.Ping(ctx).Err()
}
