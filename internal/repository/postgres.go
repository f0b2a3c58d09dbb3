package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/model"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS chat_interactions (
		id          BIGSERIAL PRIMARY KEY,
		session_id  TEXT        NOT NULL,
		intent      TEXT        NOT NULL,
		message     TEXT        NOT NULL,
		response    TEXT        NOT NULL,
		action      TEXT        NOT NULL DEFAULT '',
		url         TEXT        NOT NULL DEFAULT '',
		snippets    TEXT[],
		failed      BOOLEAN     NOT NULL DEFAULT FALSE,
		latency_ms  BIGINT      NOT NULL DEFAULT 0,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_chat_interactions_session ON chat_interactions (session_id, created_at DESC)`,
}

// PostgresRepository stores the interaction log
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository connects to PostgreSQL
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	// Disable prepared statement caching to avoid "unnamed prepared statement does not exist" errors behind poolers
	if !strings.Contains(dsn, "prefer_simple_protocol") && strings.Contains(dsn, "://") {
		if !strings.Contains(dsn, "?") {
			dsn += "?prefer_simple_protocol=true"
		} else {
			dsn += "&prefer_simple_protocol=true"
		}
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

// NewPostgresRepositoryFromDB wraps an existing handle
func NewPostgresRepositoryFromDB(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// EnsureSchema creates the interaction table if it is missing
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

// LogInteraction inserts one handled utterance and sets its ID
func (r *PostgresRepository) LogInteraction(ctx context.Context, in *model.Interaction) error {
	query := `
		INSERT INTO chat_interactions (session_id, intent, message, response, action, url, snippets, failed, latency_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	createdAt := in.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	err := r.db.QueryRowxContext(ctx, query,
		in.SessionID, in.Intent, in.Message, in.Response, in.Action, in.URL,
		pq.Array(in.Snippets), in.Failed, in.LatencyMS, createdAt,
	).Scan(&in.ID)
	if err != nil {
		return fmt.Errorf("failed to log interaction: %w", err)
	}
	return nil
}

// RecentInteractions returns the latest entries of a session, newest first
func (r *PostgresRepository) RecentInteractions(ctx context.Context, sessionID string, limit int) ([]model.Interaction, error) {
	query := `
		SELECT id, session_id, intent, message, response, action, url, snippets, failed, latency_ms, created_at
		FROM chat_interactions
		WHERE session_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.db.QueryxContext(ctx, query, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query interactions: %w", err)
	}
	defer rows.Close()

	var out []model.Interaction
	for rows.Next() {
		var in model.Interaction
		err := rows.Scan(&in.ID, &in.SessionID, &in.Intent, &in.Message, &in.Response,
			&in.Action, &in.URL, pq.Array(&in.Snippets), &in.Failed, &in.LatencyMS, &in.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan interaction: %w", err)
		}
		out = append(out, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read interactions: %w", err)
	}
	return out, nil
}
