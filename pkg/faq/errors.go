package faq

import (
	"errors"
	"fmt"
)

var (
	ErrSessionClosed         = errors.New("session is closed")
	ErrKnowledgeBaseNotReady = errors.New("knowledge base is still loading")
)

// LoadError reports a knowledge base source that could not be fetched or decoded.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load knowledge base from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
