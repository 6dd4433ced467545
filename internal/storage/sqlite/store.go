// Package sqlite provides a database/sql store on the pure-Go modernc SQLite
// driver. It is the zero-infrastructure relational backend for local runs.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/tinoosan/social/internal/errs"
	"github.com/tinoosan/social/internal/social"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Store wraps a single-connection pool. SQLite allows one writer at a time,
// so all statements are serialized through that connection.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (creating if needed) the database file at path and configures
// WAL journaling, foreign keys and a busy timeout.
func Open(ctx context.Context, path string) (*Store, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create database directory: %w", err)
			}
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// Pragmas are per connection; keep exactly one alive.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	if err := configure(ctx, db, path); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db, path: path}, nil
}

func configure(ctx context.Context, db *sql.DB, path string) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	var journalMode string
	if err := db.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&journalMode); err != nil {
		return fmt.Errorf("query journal mode: %w", err)
	}
	// in-memory databases report "memory"
	if path != ":memory:" && !strings.EqualFold(journalMode, "wal") {
		return fmt.Errorf("WAL mode not enabled (got %s)", journalMode)
	}
	return db.PingContext(ctx)
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// Ready pings the database.
func (s *Store) Ready(ctx context.Context) error { return s.db.PingContext(ctx) }

// Migrate applies the embedded schema files in name order.
func (s *Store) Migrate(ctx context.Context) error {
	names, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return err
	}
	sort.Strings(names)
	for _, name := range names {
		b, err := migrations.ReadFile(name)
		if err != nil {
			return err
		}
		if _, err := s.db.ExecContext(ctx, string(b)); err != nil {
			return fmt.Errorf("apply %s: %w", name, err)
		}
	}
	return nil
}

// --- Accounts ---

func (s *Store) AccountExists(ctx context.Context, username string) (bool, error) {
	return s.exists(ctx, `SELECT EXISTS(SELECT 1 FROM accounts WHERE username = ?)`, username)
}

// InsertAccount assigns an ID and inserts the row. The UNIQUE constraint on
// username turns a racing duplicate into errs.ErrConflict.
func (s *Store) InsertAccount(ctx context.Context, a social.Account) (social.Account, error) {
	a.ID = uuid.New()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO accounts (id, username, password) VALUES (?, ?, ?)`,
		a.ID.String(), a.Username, a.Password)
	if err != nil {
		if isUniqueViolation(err) {
			return social.Account{}, errs.ErrConflict
		}
		return social.Account{}, err
	}
	return a, nil
}

func (s *Store) FindAccountByUsername(ctx context.Context, username string) (social.Account, error) {
	var a social.Account
	err := s.db.QueryRowContext(ctx,
		`SELECT id, username, password FROM accounts WHERE username = ?`, username).
		Scan(&a.ID, &a.Username, &a.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return social.Account{}, errs.ErrNotFound
	}
	if err != nil {
		return social.Account{}, err
	}
	return a, nil
}

func (s *Store) AccountExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.exists(ctx, `SELECT EXISTS(SELECT 1 FROM accounts WHERE id = ?)`, id.String())
}

// --- Messages ---

func (s *Store) MessageExistsByPostedBy(ctx context.Context, accountID uuid.UUID) (bool, error) {
	return s.exists(ctx, `SELECT EXISTS(SELECT 1 FROM messages WHERE posted_by = ?)`, accountID.String())
}

func (s *Store) InsertMessage(ctx context.Context, m social.Message) (social.Message, error) {
	m.ID = uuid.New()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO messages (id, posted_by, message_text, time_posted_epoch) VALUES (?, ?, ?, ?)`,
		m.ID.String(), m.PostedBy.String(), m.MessageText, m.TimePostedEpoch)
	if err != nil {
		return social.Message{}, err
	}
	return m, nil
}

func (s *Store) MessageExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.exists(ctx, `SELECT EXISTS(SELECT 1 FROM messages WHERE id = ?)`, id.String())
}

func (s *Store) FindMessageByID(ctx context.Context, id uuid.UUID) (social.Message, error) {
	var m social.Message
	err := s.db.QueryRowContext(ctx,
		`SELECT id, posted_by, message_text, time_posted_epoch FROM messages WHERE id = ?`, id.String()).
		Scan(&m.ID, &m.PostedBy, &m.MessageText, &m.TimePostedEpoch)
	if errors.Is(err, sql.ErrNoRows) {
		return social.Message{}, errs.ErrNotFound
	}
	if err != nil {
		return social.Message{}, err
	}
	return m, nil
}

func (s *Store) SaveMessage(ctx context.Context, m social.Message) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE messages SET posted_by = ?, message_text = ?, time_posted_epoch = ? WHERE id = ?`,
		m.PostedBy.String(), m.MessageText, m.TimePostedEpoch, m.ID.String())
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteMessageByID(ctx context.Context, id uuid.UUID) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM messages WHERE id = ?`, id.String())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *Store) FindAllMessages(ctx context.Context) ([]social.Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, posted_by, message_text, time_posted_epoch FROM messages ORDER BY seq ASC`)
	if err != nil {
		return nil, err
	}
	return collectMessages(rows)
}

func (s *Store) FindMessagesByPostedBy(ctx context.Context, accountID uuid.UUID) ([]social.Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, posted_by, message_text, time_posted_epoch FROM messages WHERE posted_by = ? ORDER BY seq ASC`,
		accountID.String())
	if err != nil {
		return nil, err
	}
	return collectMessages(rows)
}

func (s *Store) exists(ctx context.Context, query string, arg any) (bool, error) {
	var ok bool
	if err := s.db.QueryRowContext(ctx, query, arg).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

func collectMessages(rows *sql.Rows) ([]social.Message, error) {
	defer rows.Close()
	out := make([]social.Message, 0)
	for rows.Next() {
		var m social.Message
		if err := rows.Scan(&m.ID, &m.PostedBy, &m.MessageText, &m.TimePostedEpoch); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
