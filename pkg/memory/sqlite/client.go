// Package sqlite provides the SQLite conversation store backend.
//
// SQLite is the default backend: a lightweight file-based database suitable
// for single-process deployments, which matches the request-per-call model
// of the chat service.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bwmarrin/snowflake"
	_ "github.com/mattn/go-sqlite3"

	"github.com/staragent/staragent-go/pkg/memory"
)

// Client implements memory.Store using SQLite as the backend.
type Client struct {
	db   *sql.DB
	node *snowflake.Node
}

// Config contains configuration for the SQLite conversation store.
type Config struct {
	// DBPath is the path to the SQLite database file.
	DBPath string
}

// NewClient creates a new SQLite conversation store, creating the database
// file and schema if needed.
func NewClient(cfg *Config) (*Client, error) {
	dbDir := filepath.Dir(cfg.DBPath)
	if dbDir != "" && dbDir != "." {
		if err := os.MkdirAll(dbDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.DBPath+"?_foreign_keys=1&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, fmt.Errorf("failed to create id generator: %w", err)
	}

	client := &Client{db: db, node: node}
	if err := client.initTables(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return client, nil
}

func (c *Client) initTables(ctx context.Context) error {
	conversations := `
		CREATE TABLE IF NOT EXISTS conversations (
			id INTEGER PRIMARY KEY,
			user_id TEXT NOT NULL,
			user_message TEXT NOT NULL,
			bot_response TEXT NOT NULL,
			timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
			context_summary TEXT
		)
	`
	if _, err := c.db.ExecContext(ctx, conversations); err != nil {
		return fmt.Errorf("failed to create conversations table: %w", err)
	}

	index := `
		CREATE INDEX IF NOT EXISTS idx_conversations_user_time
		ON conversations(user_id, timestamp)
	`
	if _, err := c.db.ExecContext(ctx, index); err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	profiles := `
		CREATE TABLE IF NOT EXISTS user_profiles (
			user_id TEXT PRIMARY KEY,
			known_interests TEXT,
			conversation_style TEXT,
			last_interaction DATETIME DEFAULT CURRENT_TIMESTAMP,
			total_interactions INTEGER DEFAULT 0
		)
	`
	if _, err := c.db.ExecContext(ctx, profiles); err != nil {
		return fmt.Errorf("failed to create user_profiles table: %w", err)
	}
	return nil
}

// Save appends one conversation record and upserts the user profile in a
// single transaction.
func (c *Client) Save(ctx context.Context, userID, userMessage, botResponse, contextSummary string) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	summary := sql.NullString{String: contextSummary, Valid: contextSummary != ""}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO conversations (id, user_id, user_message, bot_response, timestamp, context_summary)
		VALUES (?, ?, ?, ?, ?, ?)
	`, c.node.Generate().Int64(), userID, userMessage, botResponse, now, summary)
	if err != nil {
		return fmt.Errorf("failed to insert conversation: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO user_profiles (user_id, last_interaction, total_interactions)
		VALUES (?, ?, 1)
		ON CONFLICT(user_id) DO UPDATE SET
			last_interaction = excluded.last_interaction,
			total_interactions = total_interactions + 1
	`, userID, now)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// GetHistory returns up to limit most-recent exchanges, newest first.
// Snowflake IDs are monotonic, so they break ties between same-instant rows.
func (c *Client) GetHistory(ctx context.Context, userID string, limit int) ([]memory.HistoryPair, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT user_message, bot_response
		FROM conversations
		WHERE user_id = ?
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var pairs []memory.HistoryPair
	for rows.Next() {
		var pair memory.HistoryPair
		if err := rows.Scan(&pair.UserMessage, &pair.BotResponse); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		pairs = append(pairs, pair)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return pairs, nil
}

// GetProfile returns the user's profile, or (nil, nil) for an unknown user.
func (c *Client) GetProfile(ctx context.Context, userID string) (*memory.Profile, error) {
	var (
		interests sql.NullString
		style     sql.NullString
		profile   memory.Profile
	)
	err := c.db.QueryRowContext(ctx, `
		SELECT known_interests, conversation_style, last_interaction, total_interactions
		FROM user_profiles
		WHERE user_id = ?
	`, userID).Scan(&interests, &style, &profile.LastInteraction, &profile.TotalInteractions)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	profile.UserID = userID
	profile.ConversationStyle = style.String
	if interests.Valid && interests.String != "" {
		if err := json.Unmarshal([]byte(interests.String), &profile.KnownInterests); err != nil {
			return nil, fmt.Errorf("failed to decode interests: %w", err)
		}
	}
	return &profile, nil
}

// UpdateInterests overwrites only the known_interests column.
func (c *Client) UpdateInterests(ctx context.Context, userID string, interests []string) error {
	data, err := json.Marshal(interests)
	if err != nil {
		return fmt.Errorf("failed to encode interests: %w", err)
	}

	_, err = c.db.ExecContext(ctx, `
		INSERT INTO user_profiles (user_id, known_interests)
		VALUES (?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			known_interests = excluded.known_interests
	`, userID, string(data))
	if err != nil {
		return fmt.Errorf("failed to update interests: %w", err)
	}
	return nil
}

// Summarize buckets the user's recent messages into the fixed topic set.
func (c *Client) Summarize(ctx context.Context, userID string, lastN int) (string, error) {
	pairs, err := c.GetHistory(ctx, userID, lastN)
	if err != nil {
		return "", err
	}
	return memory.SummarizeHistory(pairs), nil
}

// Close closes the database connection.
func (c *Client) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}
