// Package mysql provides the MySQL conversation store backend.
package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	_ "github.com/go-sql-driver/mysql"

	"github.com/staragent/staragent-go/pkg/memory"
)

// Client implements memory.Store using MySQL as the backend.
type Client struct {
	db   *sql.DB
	node *snowflake.Node
}

// Config contains configuration for the MySQL conversation store.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// NewClient creates a new MySQL conversation store and initializes the schema.
func NewClient(cfg *Config) (*Client, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName)

	db, err := sql.Open("mysql", dsn)
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
			id BIGINT PRIMARY KEY,
			user_id VARCHAR(255) NOT NULL,
			user_message TEXT NOT NULL,
			bot_response TEXT NOT NULL,
			timestamp DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6),
			context_summary TEXT,
			INDEX idx_conversations_user_time (user_id, timestamp)
		) CHARACTER SET utf8mb4
	`
	if _, err := c.db.ExecContext(ctx, conversations); err != nil {
		return fmt.Errorf("failed to create conversations table: %w", err)
	}

	profiles := `
		CREATE TABLE IF NOT EXISTS user_profiles (
			user_id VARCHAR(255) PRIMARY KEY,
			known_interests TEXT,
			conversation_style TEXT,
			last_interaction DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6),
			total_interactions INT DEFAULT 0
		) CHARACTER SET utf8mb4
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
		ON DUPLICATE KEY UPDATE
			last_interaction = VALUES(last_interaction),
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
		ON DUPLICATE KEY UPDATE known_interests = VALUES(known_interests)
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
