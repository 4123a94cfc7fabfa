package question

import "errors"

var (
	// ErrNotFound reports a missing question, category, or empty listing page.
	ErrNotFound = errors.New("resource not found")

	// ErrUnprocessable reports a well-formed request the data layer refused.
	ErrUnprocessable = errors.New("unprocessable")
)
