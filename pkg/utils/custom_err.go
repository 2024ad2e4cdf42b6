package utils

import "errors"

var (
	ErrRemoteUnavailable    = errors.New("trip store unreachable")
	ErrMalformedSnapshot    = errors.New("malformed snapshot payload")
	ErrPushRejected         = errors.New("trip store rejected update")
	ErrMissingAPIKey        = errors.New("missing gemini api key")
	ErrSessionNotFound      = errors.New("session not found")
	ErrInvalidSession       = errors.New("invalid or expired session")
	ErrItemNotFound         = errors.New("item not found")
	ErrConfirmationRequired = errors.New("delete requires confirmation")
	ErrInvalidInput         = errors.New("invalid input")
	ErrDatabaseError        = errors.New("database error")
)
