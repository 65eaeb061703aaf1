package domain

import "errors"

var (
	// ErrUnauthenticated indicates no valid session accompanied the request.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrUserNotFound indicates the session resolved to no stored user record.
	ErrUserNotFound = errors.New("user not found")

	// ErrQuotaExceeded indicates the user's cumulative word usage has reached
	// their limit.
	ErrQuotaExceeded = errors.New("word limit reached")

	// ErrUnknownKind indicates a generation type outside the closed enum.
	ErrUnknownKind = errors.New("unknown generation type")

	// ErrInvalidRequest indicates a request missing fields its kind requires.
	ErrInvalidRequest = errors.New("invalid generation request")

	// ErrDocumentNotFound indicates a documentId that matches no stored document.
	ErrDocumentNotFound = errors.New("document not found")
)
