package shorts

import "errors"

var (
	// ErrNoDocument: generation was requested but nothing has been uploaded.
	ErrNoDocument = errors.New("no PDF file found")
	// ErrStorageFetch: the document row exists but its bytes could not be
	// downloaded. Fatal for the run.
	ErrStorageFetch = errors.New("failed to download PDF")
	// ErrMalformedResponse: the completion text was not valid JSON in the
	// expected shape.
	ErrMalformedResponse = errors.New("malformed completion response")
	// ErrValidation: the payload parsed but violates the quiz invariants.
	ErrValidation = errors.New("invalid shorts payload")
)
