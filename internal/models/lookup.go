package models

import (
	"time"

	"github.com/google/uuid"
)

// FAQ lookup outcome constants
const (
	OutcomeMatched  = "matched"
	OutcomeFallback = "fallback"
)

// NoEntry labels lookups that fell back without a ranked entry.
const NoEntry = "none"

// FAQLookup represents a per-entry hit count by outcome.
type FAQLookup struct {
	EntryID    string
	Outcome    string
	Count      int64
	LastSeenAt time.Time
}

// QueryLog is one accepted FAQ search.
type QueryLog struct {
	ID        uuid.UUID `json:"id"`
	Query     string    `json:"query"`
	Outcome   string    `json:"outcome"`
	EntryID   string    `json:"entry_id"`
	Page      string    `json:"page"`
	CreatedAt time.Time `json:"created_at"`
}

// NewQueryLog builds a log row with a fresh id.
func NewQueryLog(query, outcome, entryID, page string) *QueryLog {
	return &QueryLog{
		ID:        uuid.New(),
		Query:     query,
		Outcome:   outcome,
		EntryID:   entryID,
		Page:      page,
		CreatedAt: time.Now().UTC(),
	}
}
