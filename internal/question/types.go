package question

// Question is a trivia question exactly as it is served to clients.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Category labels a group of questions. Read-only through this API.
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// InsertParams carries the fields required to create a question. All four
// are mandatory; the HTTP layer rejects requests missing any of them.
type InsertParams struct {
	Question   string
	Answer     string
	Category   int
	Difficulty int
}
