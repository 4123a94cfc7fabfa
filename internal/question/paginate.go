package question

// QuestionsPerPage is the fixed window size for question listings.
const QuestionsPerPage = 10

// Paginate returns the 1-based page window of qs. Pages past the end come
// back empty, not as an error; non-positive pages read as page one. The
// HTTP layer rejects non-positive page parameters before calling this.
func Paginate(qs []Question, page int) []Question {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * QuestionsPerPage
	if start >= len(qs) {
		return []Question{}
	}
	end := start + QuestionsPerPage
	if end > len(qs) {
		end = len(qs)
	}
	return qs[start:end]
}
