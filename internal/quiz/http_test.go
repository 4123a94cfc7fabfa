package quiz

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/triviahub/trivia-api/internal/question"
)

func newTestHandler(store PoolStore) *Handler {
	return NewHandler(NewService(store, zerolog.Nop()), zerolog.Nop())
}

func postQuiz(h *Handler, payload string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.HandleQuiz(rec, httptest.NewRequest(http.MethodPost, "/quizzes", strings.NewReader(payload)))
	return rec
}

func TestHandleQuiz_PicksUnseenQuestion(t *testing.T) {
	pool := []question.Question{
		{ID: 1, Question: "q1", Answer: "a1", Category: 3, Difficulty: 2},
		{ID: 2, Question: "q2", Answer: "a2", Category: 3, Difficulty: 2},
	}
	h := newTestHandler(storeWith(pool))

	rec := postQuiz(h, `{"previous_questions":[1],"quiz_category":{"id":3,"type":"Geography"}}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Question *question.Question `json:"question"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	if assert.NotNil(t, body.Question) {
		assert.Equal(t, 2, body.Question.ID)
	}
}

func TestHandleQuiz_ExhaustedPoolIsNullQuestion(t *testing.T) {
	pool := []question.Question{{ID: 1, Category: 3}}
	h := newTestHandler(storeWith(pool))

	rec := postQuiz(h, `{"previous_questions":[1],"quiz_category":{"id":3,"type":"Geography"}}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.JSONEq(t, "null", string(body["question"]))
}

func TestHandleQuiz_MissingCategoryIs400(t *testing.T) {
	h := newTestHandler(storeWith(nil))

	for _, payload := range []string{`{"previous_questions":[]}`, `not json`} {
		rec := postQuiz(h, payload)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "payload %s", payload)
	}
}

func TestHandleQuiz_EmptyTableIs500(t *testing.T) {
	h := newTestHandler(storeWith(nil))

	rec := postQuiz(h, `{"previous_questions":[],"quiz_category":{"id":0,"type":"click"}}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body["message"])
}

func TestHandleQuiz_WrongMethodIs405(t *testing.T) {
	h := newTestHandler(storeWith(nil))

	rec := httptest.NewRecorder()
	h.HandleQuiz(rec, httptest.NewRequest(http.MethodGet, "/quizzes", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
