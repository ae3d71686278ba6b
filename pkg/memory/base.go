// Package memory provides the conversation store for per-user chat history.
//
// The store keeps an append-only log of (user message, bot response) pairs
// and a small per-user rolling profile. Backends exist for SQLite, MySQL,
// and PostgreSQL; all of them own their schema and run each save as a single
// transaction so the history insert and the profile upsert cannot drift
// apart under concurrent requests.
package memory

import (
	"context"
	"time"
)

// HistoryPair is one past exchange: what the fan said and what the persona
// answered.
type HistoryPair struct {
	UserMessage string `json:"user_message"`
	BotResponse string `json:"bot_response"`
}

// Profile is the rolling per-user aggregate updated on every save.
type Profile struct {
	UserID            string    `json:"user_id"`
	KnownInterests    []string  `json:"known_interests"`
	ConversationStyle string    `json:"conversation_style"`
	LastInteraction   time.Time `json:"last_interaction"`
	TotalInteractions int       `json:"total_interactions"`
}

// Store defines the interface for conversation store backends.
//
// Records are append-only: nothing in this interface mutates or deletes a
// stored exchange.
type Store interface {
	// Save appends one conversation record and upserts the user's profile
	// (last_interaction refreshed, total_interactions incremented, or
	// initialized to 1 for a new user). The insert and the upsert are one
	// transaction. contextSummary may be empty.
	Save(ctx context.Context, userID, userMessage, botResponse, contextSummary string) error

	// GetHistory returns up to limit most-recent exchanges for the user,
	// newest first.
	GetHistory(ctx context.Context, userID string, limit int) ([]HistoryPair, error)

	// GetProfile returns the user's profile, or (nil, nil) for an unknown
	// user.
	GetProfile(ctx context.Context, userID string) (*Profile, error)

	// UpdateInterests overwrites the user's known_interests field only;
	// the other profile columns are left untouched.
	UpdateInterests(ctx context.Context, userID string, interests []string) error

	// Summarize buckets the user's lastN most-recent messages into a small
	// fixed topic set and returns a joined summary string, or the
	// first-conversation marker when there is no history.
	Summarize(ctx context.Context, userID string, lastN int) (string, error)

	// Close closes the underlying database connection.
	Close() error
}
