package errors

// Canonical messages for the error envelope. The quiz client matches on
// these strings, so they stay exactly as the API has always sent them.
const (
	MsgBadRequest       = "bad request"
	MsgNotFound         = "resource not found"
	MsgMethodNotAllowed = "Method not allowed"
	MsgUnprocessable    = "unprocessable"
	MsgInternalError    = "Internal server error"
)
