package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/triviahub/trivia-api/internal/question"
)

// DBTX is the pgx query surface shared by *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TriviaRepository provides Postgres-backed access to questions and
// categories. It implements question.Store.
type TriviaRepository struct {
	db DBTX
}

var _ question.Store = (*TriviaRepository)(nil)

// NewTriviaRepository wraps a pgx pool (or transaction) for trivia queries.
func NewTriviaRepository(db DBTX) *TriviaRepository {
	return &TriviaRepository{db: db}
}

const questionColumns = "id, question, answer, category, difficulty"

// ListQuestions returns every question ordered by id.
func (r *TriviaRepository) ListQuestions(ctx context.Context) ([]question.Question, error) {
	rows, err := r.db.Query(ctx, "SELECT "+questionColumns+" FROM questions ORDER BY id")
	if err != nil {
		return nil, err
	}
	return scanQuestions(rows)
}

// CountQuestions returns the total number of questions.
func (r *TriviaRepository) CountQuestions(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM questions").Scan(&count)
	return count, err
}

// ListQuestionsByCategory returns the questions in a category, ordered by
// id. The category id is matched as a raw integer; it need not exist in
// the categories table.
func (r *TriviaRepository) ListQuestionsByCategory(ctx context.Context, categoryID int) ([]question.Question, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+questionColumns+" FROM questions WHERE category = $1 ORDER BY id", categoryID)
	if err != nil {
		return nil, err
	}
	return scanQuestions(rows)
}

// MaxQuestionID returns the highest question id, or question.ErrNotFound
// when the table is empty.
func (r *TriviaRepository) MaxQuestionID(ctx context.Context) (int, error) {
	var id int
	err := r.db.QueryRow(ctx, "SELECT id FROM questions ORDER BY id DESC LIMIT 1").Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, question.ErrNotFound
	}
	return id, err
}

// GetQuestion returns the question with the given id, or
// question.ErrNotFound when absent.
func (r *TriviaRepository) GetQuestion(ctx context.Context, id int) (question.Question, error) {
	var q question.Question
	err := r.db.QueryRow(ctx,
		"SELECT "+questionColumns+" FROM questions WHERE id = $1", id).
		Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty)
	if errors.Is(err, pgx.ErrNoRows) {
		return question.Question{}, question.ErrNotFound
	}
	return q, err
}

// InsertQuestion creates a question and returns the stored row, so callers
// see the assigned id without a second round trip.
func (r *TriviaRepository) InsertQuestion(ctx context.Context, params question.InsertParams) (question.Question, error) {
	var q question.Question
	err := r.db.QueryRow(ctx,
		`INSERT INTO questions (question, answer, category, difficulty)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+questionColumns,
		params.Question, params.Answer, params.Category, params.Difficulty).
		Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty)
	return q, err
}

// DeleteQuestion removes a question by id. Deleting a row that is no
// longer there is an error so the caller can surface the failure.
func (r *TriviaRepository) DeleteQuestion(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM questions WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete question %d: no rows affected", id)
	}
	return nil
}

// SearchQuestions returns every question whose text contains term,
// case-insensitive, ordered by id. An empty term matches all rows.
func (r *TriviaRepository) SearchQuestions(ctx context.Context, term string) ([]question.Question, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+questionColumns+" FROM questions WHERE question ILIKE '%' || $1 || '%' ORDER BY id", term)
	if err != nil {
		return nil, err
	}
	return scanQuestions(rows)
}

// ListCategories returns every category ordered by id.
func (r *TriviaRepository) ListCategories(ctx context.Context) ([]question.Category, error) {
	rows, err := r.db.Query(ctx, "SELECT id, type FROM categories ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []question.Category{}
	for rows.Next() {
		var c question.Category
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func scanQuestions(rows pgx.Rows) ([]question.Question, error) {
	defer rows.Close()

	qs := []question.Question{}
	for rows.Next() {
		var q question.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
			return nil, err
		}
		qs = append(qs, q)
	}
	return qs, rows.Err()
}
