package faq

import "errors"

var (
	// ErrEmptyQuery is returned for blank or whitespace-only input.
	ErrEmptyQuery = errors.New("query is empty")

	// ErrUnknownPrompt is returned when a quick suggestion is not one of
	// the configured prompts.
	ErrUnknownPrompt = errors.New("unknown suggestion prompt")

	// ErrInvalidKnowledgeBase wraps knowledge base configuration defects.
	ErrInvalidKnowledgeBase = errors.New("invalid knowledge base")
)
