package services

import "errors"

var (
	// ErrNotFound means the identifier resolved to no document.
	ErrNotFound = errors.New("not found")
	// ErrInvalidID means the identifier is not a valid ObjectID hex
	// string. Detected before any storage round-trip.
	ErrInvalidID = errors.New("invalid id")
	// ErrInvalidCredentials means the admin passphrase did not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports a rejected create or update input. Message is
// safe to return to the caller; Detail names the offending field rule.
type ValidationError struct {
	Message string
	Detail  string
}

func (e *ValidationError) Error() string {
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}
	return e.Message
}
