package db

import "errors"

// Domain-level database error sentinels.
var (
	// ErrQueryLogNotFound is returned when a query log row does not exist.
	ErrQueryLogNotFound = errors.New("query log not found")
)
