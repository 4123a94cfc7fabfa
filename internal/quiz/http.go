package quiz

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/triviahub/trivia-api/internal/question"
	httperrors "github.com/triviahub/trivia-api/pkg/http/errors"
)

type quizRequest struct {
	PreviousQuestions []int              `json:"previous_questions"`
	QuizCategory      *question.Category `json:"quiz_category"`
}

// Handler serves the quiz endpoint.
type Handler struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHandler constructs the quiz HTTP handler.
func NewHandler(svc *Service, logger zerolog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger.With().Str("component", "quiz_http").Logger(),
	}
}

// HandleQuiz handles POST /quizzes. An exhausted pool responds with
// question: null and status 200; the client treats that as end of game.
func (h *Handler) HandleQuiz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	var req quizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w)
		return
	}
	if req.QuizCategory == nil {
		httperrors.RespondBadRequest(w)
		return
	}

	picked, err := h.svc.NextQuestion(r.Context(), req.QuizCategory.ID, req.PreviousQuestions)
	if err != nil {
		h.logger.Error().Err(err).Int("category_id", req.QuizCategory.ID).Msg("quiz pick failed")
		httperrors.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]interface{}{"question": picked}); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
