package question

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	httperrors "github.com/triviahub/trivia-api/pkg/http/errors"
)

// Handlers exposes the question and category REST endpoints.
type Handlers struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHandlers constructs the question HTTP handlers.
func NewHandlers(svc *Service, logger zerolog.Logger) *Handlers {
	return &Handlers{
		svc:    svc,
		logger: logger.With().Str("component", "question_http").Logger(),
	}
}

// HandleCategories handles GET /categories.
func (h *Handlers) HandleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	categories, err := h.svc.Categories(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("category listing failed")
		httperrors.RespondInternalError(w)
		return
	}

	writeJSON(w, map[string]interface{}{
		"success":    true,
		"categories": categories,
	})
}

// HandleQuestions routes GET (paginated listing) and POST (create) on
// /questions.
func (h *Handlers) HandleQuestions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listQuestions(w, r)
	case http.MethodPost:
		h.createQuestion(w, r)
	default:
		httperrors.RespondMethodNotAllowed(w)
	}
}

// listQuestions handles GET /questions?page=N. A missing page reads as
// page one; a non-numeric or non-positive page is a client error rather
// than a silent default.
func (h *Handlers) listQuestions(w http.ResponseWriter, r *http.Request) {
	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			httperrors.RespondBadRequest(w)
			return
		}
		page = parsed
	}

	result, err := h.svc.ListPage(r.Context(), page)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httperrors.RespondNotFound(w)
			return
		}
		h.logger.Error().Err(err).Int("page", page).Msg("question listing failed")
		httperrors.RespondInternalError(w)
		return
	}

	writeJSON(w, map[string]interface{}{
		"success":         true,
		"questions":       result.Questions,
		"total_questions": result.Total,
		"categories":      result.Categories,
	})
}

// createQuestionRequest uses pointer fields so an absent field is
// distinguishable from a zero value.
type createQuestionRequest struct {
	Question   *string `json:"question"`
	Answer     *string `json:"answer"`
	Category   *int    `json:"category"`
	Difficulty *int    `json:"difficulty"`
}

// createQuestion handles POST /questions.
func (h *Handlers) createQuestion(w http.ResponseWriter, r *http.Request) {
	var req createQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w)
		return
	}
	if req.Question == nil || req.Answer == nil || req.Category == nil || req.Difficulty == nil {
		httperrors.RespondBadRequest(w)
		return
	}
	if *req.Question == "" || *req.Answer == "" {
		httperrors.RespondBadRequest(w)
		return
	}

	id, err := h.svc.Create(r.Context(), InsertParams{
		Question:   *req.Question,
		Answer:     *req.Answer,
		Category:   *req.Category,
		Difficulty: *req.Difficulty,
	})
	if err != nil {
		httperrors.RespondUnprocessable(w)
		return
	}

	writeJSON(w, map[string]interface{}{
		"success": true,
		"created": id,
	})
}

// HandleQuestionByID handles DELETE /questions/{id}. A non-numeric id is a
// route that does not exist.
func (h *Handlers) HandleQuestionByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondNotFound(w)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httperrors.RespondNotFound(w)
		case errors.Is(err, ErrUnprocessable):
			httperrors.RespondUnprocessable(w)
		default:
			h.logger.Error().Err(err).Int("question_id", id).Msg("question delete failed")
			httperrors.RespondInternalError(w)
		}
		return
	}

	writeJSON(w, map[string]interface{}{
		"success": true,
		"deleted": id,
	})
}

type searchRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// HandleSearch handles POST /questions/search. A missing or empty
// searchTerm matches every question.
func (h *Handlers) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w)
		return
	}

	questions, err := h.svc.Search(r.Context(), req.SearchTerm)
	if err != nil {
		h.logger.Error().Err(err).Msg("question search failed")
		httperrors.RespondInternalError(w)
		return
	}

	writeJSON(w, map[string]interface{}{
		"questions":       questions,
		"total_questions": len(questions),
	})
}

// HandleCategoryQuestions handles GET /categories/{id}/questions.
func (h *Handlers) HandleCategoryQuestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	categoryID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondNotFound(w)
		return
	}

	questions, err := h.svc.ByCategory(r.Context(), categoryID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httperrors.RespondNotFound(w)
			return
		}
		h.logger.Error().Err(err).Int("category_id", categoryID).Msg("category questions failed")
		httperrors.RespondInternalError(w)
		return
	}

	writeJSON(w, map[string]interface{}{
		"questions":       questions,
		"total_questions": len(questions),
	})
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
