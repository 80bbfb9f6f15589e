package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/domain"
)

// SQLiteStore implements TurnStore and AnalyticsSink using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

var (
	_ TurnStore     = (*SQLiteStore)(nil)
	_ AnalyticsSink = (*SQLiteStore)(nil)
)

// NewSQLiteStore creates a new SQLite store.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// For in-memory SQLite, multiple connections create separate databases.
	// Keep a single connection to avoid schema/data disappearing across goroutines.
	if dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// migrate runs database migrations.
func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS turns (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			ts TEXT NOT NULL,
			user_message TEXT NOT NULL,
			bot_response TEXT NOT NULL,
			domain TEXT NOT NULL,
			model_id TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_turns_session ON turns(session_id, ts)`,
		`CREATE TABLE IF NOT EXISTS analytics_logs (
			log_key TEXT PRIMARY KEY,
			session_id TEXT NOT NULL,
			ts TEXT NOT NULL,
			payload TEXT NOT NULL
		)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\n%s", err, m)
		}
	}
	return nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// AppendTurn inserts a turn.
func (s *SQLiteStore) AppendTurn(ctx context.Context, turn *domain.Turn) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO turns (session_id, ts, user_message, bot_response, domain, model_id) VALUES (?, ?, ?, ?, ?, ?)`,
		turn.SessionID, turn.Timestamp, turn.UserMessage, turn.BotResponse, string(turn.Domain), turn.ModelID,
	)
	if err != nil {
		return unavailable("insert turn", err)
	}
	return nil
}

// RecentTurns returns the newest limit turns for a session in ascending order.
func (s *SQLiteStore) RecentTurns(ctx context.Context, sessionID string, limit int) ([]domain.Turn, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT session_id, ts, user_message, bot_response, domain, model_id
		FROM turns WHERE session_id = ?
		ORDER BY ts DESC, id DESC LIMIT ?`,
		sessionID, limit,
	)
	if err != nil {
		return nil, unavailable("query turns", err)
	}
	defer rows.Close()

	turns := []domain.Turn{}
	for rows.Next() {
		var t domain.Turn
		var d string
		if err := rows.Scan(&t.SessionID, &t.Timestamp, &t.UserMessage, &t.BotResponse, &d, &t.ModelID); err != nil {
			return nil, unavailable("scan turn", err)
		}
		t.Domain = domain.Domain(d)
		turns = append(turns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("iterate turns", err)
	}

	reverse(turns)
	return turns, nil
}

// WriteRecord stores an analytics record under key.
func (s *SQLiteStore) WriteRecord(ctx context.Context, key string, record *domain.AnalyticsRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal analytics record: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO analytics_logs (log_key, session_id, ts, payload) VALUES (?, ?, ?, ?)`,
		key, record.SessionID, record.Timestamp, string(payload),
	)
	if err != nil {
		return unavailable("insert analytics record", err)
	}
	return nil
}

// GetRecord reads back an analytics record.
func (s *SQLiteStore) GetRecord(ctx context.Context, key string) (*domain.AnalyticsRecord, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM analytics_logs WHERE log_key = ?`, key).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, unavailable("query analytics record", err)
	}
	var record domain.AnalyticsRecord
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return nil, fmt.Errorf("unmarshal analytics record: %w", err)
	}
	return &record, nil
}

// ListRecordKeys returns all analytics keys for a session, sorted.
func (s *SQLiteStore) ListRecordKeys(ctx context.Context, sessionID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT log_key FROM analytics_logs WHERE session_id = ? ORDER BY log_key`, sessionID)
	if err != nil {
		return nil, unavailable("query analytics keys", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, unavailable("scan analytics key", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
