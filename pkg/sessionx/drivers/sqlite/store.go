// Package sqlite persists the session token pair in a local SQLite database,
// giving the session the durable, survives-restart behaviour the app relies
// on. The layout is a single key/value table holding the three session keys.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	_ "modernc.org/sqlite"

	"github.com/jokoapp/joko-go/pkg/sessionx"
)

// Store is a durable sessionx.Store backed by SQLite.
type Store struct {
	db  *sql.DB
	log *slog.Logger
	dsn string
}

var _ sessionx.Store = (*Store)(nil)

// NewStore opens (creating if necessary) the session database at dsn and
// applies pending migrations. A nil logger falls back to slog.Default.
func NewStore(dsn string, log *slog.Logger) (*Store, error) {
	if log == nil {
		log = slog.Default()
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}

	// A single writer is plenty for session state and sidesteps SQLITE_BUSY
	// between Save and Clear racing from different goroutines.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, log: log, dsn: dsn}
	if err := s.applyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate session db: %w", err)
	}
	return s, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Save(accessToken, refreshToken string) error {
	id, hasID := sessionx.UserIDFromToken(s.log, accessToken)

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // safe to call after commit
	}()

	if err := upsert(tx, sessionx.KeyAccessToken, accessToken); err != nil {
		return err
	}
	if refreshToken != "" {
		if err := upsert(tx, sessionx.KeyRefreshToken, refreshToken); err != nil {
			return err
		}
	}
	if hasID {
		if err := upsert(tx, sessionx.KeyUserID, strconv.FormatInt(id, 10)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *Store) AccessToken() (string, bool) {
	return s.get(sessionx.KeyAccessToken)
}

func (s *Store) RefreshToken() (string, bool) {
	return s.get(sessionx.KeyRefreshToken)
}

func (s *Store) UserID() (int64, bool) {
	raw, ok := s.get(sessionx.KeyUserID)
	if !ok {
		return 0, false
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (s *Store) Clear() error {
	_, err := s.db.Exec(
		`DELETE FROM session_kv WHERE key IN (?, ?, ?)`,
		sessionx.KeyAccessToken, sessionx.KeyRefreshToken, sessionx.KeyUserID,
	)
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// get reads a single key. Storage failures are logged and read as absent so
// callers see the same nil-on-missing semantics as the in-memory store.
func (s *Store) get(key string) (string, bool) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM session_kv WHERE key = ?`, key).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", false
	case err != nil:
		s.log.Warn("session db read failed", "key", key, "err", err)
		return "", false
	}
	return value, true
}

func upsert(tx *sql.Tx, key, value string) error {
	_, err := tx.Exec(`
		INSERT INTO session_kv (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("store %s: %w", key, err)
	}
	return nil
}
