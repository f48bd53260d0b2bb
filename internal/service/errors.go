package service

import "errors"

var (
	ErrSessionNotFound     = errors.New("chat session not found")
	ErrFaqEntryNotFound    = errors.New("faq entry not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrDatabaseUnavailable = errors.New("this operation requires a database")
)
