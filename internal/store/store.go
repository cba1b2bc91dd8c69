package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrSessionNotFound = errors.New("session not found")

// Store persists conversation transcripts in Postgres. It is optional: the
// server runs without one when no DSN is configured.
type Store struct {
	pool *pgxpool.Pool
}

// Turn is one user message and the reply it produced.
type Turn struct {
	ID        int64
	SessionID string
	UserID    string
	Role      string
	Content   string
	Intent    string
	Stage     string
	CreatedAt time.Time
}

type SessionSummary struct {
	SessionID    string
	UserID       string
	MessageCount int
	LastActiveAt time.Time
}

func New(ctx context.Context, dsn string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	s.pool.Close()
}

func (s *Store) Migrate(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS chat_sessions (
			session_id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			last_active_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS chat_turns (
			id BIGSERIAL PRIMARY KEY,
			session_id TEXT NOT NULL REFERENCES chat_sessions(session_id) ON DELETE CASCADE,
			user_id TEXT NOT NULL DEFAULT '',
			role TEXT NOT NULL,
			content TEXT NOT NULL,
			intent TEXT,
			stage TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE INDEX IF NOT EXISTS idx_chat_turns_session_created ON chat_turns(session_id, created_at);`,
		`CREATE INDEX IF NOT EXISTS idx_chat_sessions_last_active ON chat_sessions(last_active_at);`,
	}

	for _, q := range queries {
		if _, err := s.pool.Exec(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

// SaveTurn upserts the session row and appends one transcript turn.
func (s *Store) SaveTurn(ctx context.Context, turn Turn) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO chat_sessions(session_id, user_id, last_active_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (session_id)
		DO UPDATE SET user_id=EXCLUDED.user_id, last_active_at=NOW();
	`, turn.SessionID, turn.UserID)
	if err != nil {
		return err
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO chat_turns(session_id, user_id, role, content, intent, stage)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, turn.SessionID, turn.UserID, turn.Role, turn.Content, nullIfEmpty(turn.Intent), nullIfEmpty(turn.Stage))
	return err
}

// RecentTurns returns the newest turns of a session in chronological order.
func (s *Store) RecentTurns(ctx context.Context, sessionID string, limit int) ([]Turn, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.pool.Query(ctx, `
		SELECT id, session_id, user_id, role, content, COALESCE(intent, ''), COALESCE(stage, ''), created_at
		FROM (
			SELECT id, session_id, user_id, role, content, intent, stage, created_at
			FROM chat_turns
			WHERE session_id=$1
			ORDER BY created_at DESC
			LIMIT $2
		) t
		ORDER BY created_at ASC
	`, sessionID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Turn, 0, limit)
	for rows.Next() {
		var turn Turn
		if err := rows.Scan(&turn.ID, &turn.SessionID, &turn.UserID, &turn.Role, &turn.Content, &turn.Intent, &turn.Stage, &turn.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, turn)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// SessionInfo returns transcript stats for one session.
func (s *Store) SessionInfo(ctx context.Context, sessionID string) (SessionSummary, error) {
	var out SessionSummary
	err := s.pool.QueryRow(ctx, `
		SELECT s.session_id, s.user_id, s.last_active_at,
			(SELECT COUNT(*) FROM chat_turns t WHERE t.session_id = s.session_id)
		FROM chat_sessions s
		WHERE s.session_id=$1
	`, sessionID).Scan(&out.SessionID, &out.UserID, &out.LastActiveAt, &out.MessageCount)
	if errors.Is(err, pgx.ErrNoRows) {
		return SessionSummary{}, ErrSessionNotFound
	}
	if err != nil {
		return SessionSummary{}, err
	}
	return out, nil
}

// IntentCounts aggregates recognized intents across the whole transcript.
func (s *Store) IntentCounts(ctx context.Context) (map[string]int, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT intent, COUNT(*)
		FROM chat_turns
		WHERE intent IS NOT NULL AND role='assistant'
		GROUP BY intent
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var intent string
		var count int
		if err := rows.Scan(&intent, &count); err != nil {
			return nil, err
		}
		out[intent] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
